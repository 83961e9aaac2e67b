// Package openai implements a speech-to-text backend on the official OpenAI
// Go SDK. It covers hosts that already hold an SDK client configuration and
// want verbose transcription metadata (detected language, duration) without
// speaking the multipart protocol directly.
package openai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/voicebridge/whisper-stt/provider"
	"github.com/voicebridge/whisper-stt/stt"
)

// ProviderName is the registered name for the OpenAI SDK backend.
const ProviderName = "openai"

// Provider implements stt.Transcriber using the OpenAI Go SDK.
type Provider struct {
	cfg    Config
	client *goopenai.Client
}

// New creates an OpenAI SDK backend from the given configuration.
func New(cfg Config) (*Provider, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sdkCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		sdkCfg.BaseURL = cfg.BaseURL
	}
	sdkCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Provider{
		cfg:    cfg,
		client: goopenai.NewClientWithConfig(sdkCfg),
	}, nil
}

// Factory returns a provider.Factory that creates OpenAI SDK backends from
// a generic config map.
func Factory() provider.Factory[stt.Transcriber] {
	return func(raw map[string]any) (stt.Transcriber, error) {
		cfg := Config{}
		if v, ok := raw["api_key"].(string); ok {
			cfg.APIKey = v
		}
		if v, ok := raw["base_url"].(string); ok {
			cfg.BaseURL = v
		}
		if v, ok := raw["model"].(string); ok {
			cfg.Model = v
		}
		if v, ok := raw["language"].(string); ok {
			cfg.Language = v
		}
		if v, ok := raw["prompt"].(string); ok {
			cfg.Prompt = v
		}
		switch v := raw["temperature"].(type) {
		case float64:
			cfg.Temperature = v
		case int:
			cfg.Temperature = float64(v)
		}
		switch v := raw["timeout"].(type) {
		case time.Duration:
			cfg.Timeout = v
		case string:
			d, err := time.ParseDuration(v)
			if err != nil {
				return nil, fmt.Errorf("openai: invalid timeout %q: %w", v, err)
			}
			cfg.Timeout = d
		}
		return New(cfg)
	}
}

// Name returns the backend name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable checks if the API is reachable by listing models.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	return err == nil
}

// Capabilities reports the audio profile this backend accepts.
func (p *Provider) Capabilities() stt.Capabilities {
	return stt.DefaultCapabilities()
}

// Transcribe sends the audio through the SDK and returns the transcript.
func (p *Provider) Transcribe(ctx context.Context, req stt.Request) (*stt.Result, error) {
	if len(req.Audio) == 0 {
		return nil, fmt.Errorf("openai: empty audio payload")
	}

	model := p.cfg.Model
	if req.Model != "" {
		model = req.Model
	}
	prompt := p.cfg.Prompt
	if req.Prompt != "" {
		prompt = req.Prompt
	}
	lang := stt.LanguageCode(req.Locale)
	if lang == "" {
		lang = p.cfg.Language
	}

	resp, err := p.client.CreateTranscription(ctx, goopenai.AudioRequest{
		Model:       model,
		Reader:      bytes.NewReader(req.Audio),
		FilePath:    req.Format.FileName(),
		Language:    lang,
		Prompt:      prompt,
		Temperature: float32(p.cfg.Temperature),
		Format:      goopenai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &stt.Result{
		Text:     resp.Text,
		Language: resp.Language,
		Duration: resp.Duration,
	}, nil
}

// mapError converts SDK errors into the stt taxonomy.
func mapError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErr.HTTPStatusCode == http.StatusForbidden {
			return stt.NewAuthError(apiErr.HTTPStatusCode, apiErr.Message)
		}
		return stt.NewServerError(apiErr.HTTPStatusCode, apiErr.Message)
	}

	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode == http.StatusUnauthorized || reqErr.HTTPStatusCode == http.StatusForbidden {
			return stt.NewAuthError(reqErr.HTTPStatusCode, reqErr.Error())
		}
		return stt.NewServerError(reqErr.HTTPStatusCode, reqErr.Error())
	}

	return stt.NewNetworkError(err)
}
