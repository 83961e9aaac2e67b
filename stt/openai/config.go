package openai

import (
	"fmt"
	"time"

	"github.com/voicebridge/whisper-stt/validation"
)

const defaultTimeout = 60 * time.Second

// Config holds configuration for the OpenAI SDK transcription backend.
type Config struct {
	// APIKey authenticates against the API. Required.
	APIKey string `yaml:"api_key" mapstructure:"api_key" validate:"required"`

	// BaseURL overrides the SDK's API base (e.g. "http://localhost:8000/v1"
	// for an OpenAI-compatible server). Empty means the official API.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// Model is the model name sent with every request. Defaults to "whisper-1".
	Model string `yaml:"model" mapstructure:"model"`

	// Language is a fallback ISO-639-1 code used when a request carries no
	// locale. Empty means the server auto-detects.
	Language string `yaml:"language" mapstructure:"language"`

	// Prompt is an optional hint text sent with every request.
	Prompt string `yaml:"prompt" mapstructure:"prompt"`

	// Temperature is the sampling temperature, 0 to 1. Defaults to 0.
	Temperature float64 `yaml:"temperature" mapstructure:"temperature" validate:"gte=0,lte=1"`

	// Timeout is the per-request timeout. Defaults to 60s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ApplyDefaults fills zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Model == "" {
		c.Model = "whisper-1"
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("openai: timeout must be positive")
	}
	return validation.Struct(c)
}
