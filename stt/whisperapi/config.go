package whisperapi

import (
	"fmt"
	"time"

	"github.com/voicebridge/whisper-stt/httpclient"
	"github.com/voicebridge/whisper-stt/validation"
)

const (
	defaultServerURL = "https://api.openai.com/v1/audio/transcriptions"
	defaultModel     = "whisper-1"
	defaultTimeout   = 60 * time.Second
)

// Config holds configuration for the Whisper API transcription backend.
type Config struct {
	// ServerURL is the full URL of the transcription endpoint. Defaults to
	// the public OpenAI endpoint.
	ServerURL string `yaml:"server_url" mapstructure:"server_url" validate:"required,url"`

	// APIKey is sent as a Bearer token when non-empty. Self-hosted servers
	// typically run without one.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`

	// Model is the model name sent with every request. Defaults to "whisper-1".
	Model string `yaml:"model" mapstructure:"model"`

	// Language is a fallback ISO-639-1 code used when a request carries no
	// locale. Empty means the server auto-detects.
	Language string `yaml:"language" mapstructure:"language"`

	// Prompt is an optional hint text sent with every request.
	Prompt string `yaml:"prompt" mapstructure:"prompt"`

	// Temperature is the sampling temperature, 0 to 1. Defaults to 0.
	Temperature float64 `yaml:"temperature" mapstructure:"temperature" validate:"gte=0,lte=1"`

	// Timeout is the per-request timeout. Defaults to 60s; transcription of
	// long utterances on CPU-bound servers can take a while.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// TLS configures transport TLS, for self-hosted servers with private CAs.
	TLS *httpclient.TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults fills zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.ServerURL == "" {
		c.ServerURL = defaultServerURL
	}
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("whisperapi: timeout must be positive")
	}
	return validation.Struct(c)
}
