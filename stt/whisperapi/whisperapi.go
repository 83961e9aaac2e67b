// Package whisperapi implements a speech-to-text backend against any
// Whisper-compatible HTTP endpoint: the public OpenAI transcription API or a
// self-hosted server speaking the same multipart protocol.
package whisperapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/voicebridge/whisper-stt/httpclient"
	"github.com/voicebridge/whisper-stt/provider"
	"github.com/voicebridge/whisper-stt/stt"
)

// ProviderName is the registered name for the Whisper API backend.
const ProviderName = "whisperapi"

// Provider implements stt.Transcriber against a Whisper-compatible HTTP API.
type Provider struct {
	cfg    Config
	client *httpclient.Client
}

// New creates a Whisper API backend from the given configuration.
func New(cfg Config) (*Provider, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clientCfg := httpclient.Config{
		Name:    ProviderName,
		Timeout: cfg.Timeout,
		TLS:     cfg.TLS,
	}
	if cfg.APIKey != "" {
		clientCfg.Auth = httpclient.BearerAuth(cfg.APIKey)
	}

	client, err := httpclient.New(clientCfg)
	if err != nil {
		return nil, err
	}

	return &Provider{cfg: cfg, client: client}, nil
}

// Factory returns a provider.Factory that creates Whisper API backends from
// a generic config map, as loaded from the stt.providers config section.
func Factory() provider.Factory[stt.Transcriber] {
	return func(raw map[string]any) (stt.Transcriber, error) {
		cfg := Config{}
		if v, ok := raw["server_url"].(string); ok {
			cfg.ServerURL = v
		}
		if v, ok := raw["api_key"].(string); ok {
			cfg.APIKey = v
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
				return nil, fmt.Errorf("whisperapi: invalid timeout %q: %w", v, err)
			}
			cfg.Timeout = d
		}
		return New(cfg)
	}
}

// Name returns the backend name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable checks if the endpoint is reachable. Any HTTP response counts:
// a 405 from a POST-only route still proves the server is up.
func (p *Provider) IsAvailable(ctx context.Context) bool {
	resp, _ := p.client.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   p.cfg.ServerURL,
	})
	return resp != nil
}

// Capabilities reports the audio profile this backend accepts.
func (p *Provider) Capabilities() stt.Capabilities {
	return stt.DefaultCapabilities()
}

// Transcribe sends the audio to the endpoint and returns the transcript.
// Exactly one HTTP request is made; cancelling ctx aborts it.
func (p *Provider) Transcribe(ctx context.Context, req stt.Request) (*stt.Result, error) {
	if len(req.Audio) == 0 {
		return nil, fmt.Errorf("whisperapi: empty audio payload")
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

	body := &httpclient.MultipartBody{
		Files: []httpclient.FileField{{
			FieldName:   "file",
			FileName:    req.Format.FileName(),
			ContentType: req.Format.ContentType(),
			Data:        req.Audio,
		}},
	}
	body.AddField("model", model)
	if lang != "" {
		body.AddField("language", lang)
	}
	if prompt != "" {
		body.AddField("prompt", prompt)
	}
	body.AddField("temperature", strconv.FormatFloat(p.cfg.Temperature, 'f', -1, 64))

	resp, err := p.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   p.cfg.ServerURL,
		Body:   body,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return parseResult(resp.Body)
}

// mapError converts transport-level errors into the stt taxonomy.
func mapError(err error) error {
	var herr *httpclient.Error
	if !errors.As(err, &herr) {
		return stt.NewNetworkError(err)
	}
	switch herr.Code {
	case httpclient.ErrCodeTimeout, httpclient.ErrCodeConnection:
		return stt.NewNetworkError(herr)
	case httpclient.ErrCodeAuth:
		return stt.NewAuthError(herr.StatusCode, string(herr.Body))
	default:
		if herr.StatusCode == 0 {
			// Local request assembly failure, no call was made.
			return stt.NewNetworkError(herr)
		}
		return stt.NewServerError(herr.StatusCode, string(herr.Body))
	}
}

// parseResult interprets a 2xx response body. The canonical form is a JSON
// object with a "text" field; some self-hosted servers answer with the bare
// transcript instead, which is accepted as-is.
func parseResult(body []byte) (*stt.Result, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, stt.NewBadResponseError("empty response body")
	}

	var parsed struct {
		Text     *string `json:"text"`
		Language string  `json:"language"`
		Duration float64 `json:"duration"`
	}
	if err := json.Unmarshal(trimmed, &parsed); err != nil {
		// Plain-text transcript.
		return &stt.Result{Text: string(trimmed)}, nil
	}
	if parsed.Text == nil {
		return nil, stt.NewBadResponseError("response has no text field")
	}

	return &stt.Result{
		Text:     *parsed.Text,
		Language: parsed.Language,
		Duration: parsed.Duration,
	}, nil
}
