package config

import (
	"fmt"

	"github.com/voicebridge/whisper-stt/logger"
)

// Settings is the top-level configuration record for the bridge.
// Hosts embed or construct it at integration setup; it is read-only
// afterwards and safe to share across concurrent transcription calls.
type Settings struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	STT         STTSettings   `yaml:"stt" mapstructure:"stt"`
}

// STTSettings selects and configures speech-to-text backends.
type STTSettings struct {
	// Provider is the backend to use by default (e.g. "whisperapi", "openai").
	Provider string `yaml:"provider" mapstructure:"provider"`
	// Providers holds per-backend configuration maps keyed by backend name,
	// passed verbatim to the backend's factory.
	Providers map[string]map[string]any `yaml:"providers" mapstructure:"providers"`
}

// ApplyDefaults applies default values to the settings.
func (s *Settings) ApplyDefaults() {
	if s.Name == "" {
		s.Name = "whisper-stt"
	}
	if s.Environment == "" {
		s.Environment = "development"
	}
	if s.Environment == "development" {
		s.Debug = true
	}
	if s.Logging.ServiceName == "" {
		s.Logging.ServiceName = s.Name
	}
	s.Logging.ApplyDefaults()
	if s.STT.Provider == "" {
		s.STT.Provider = "whisperapi"
	}
}

// Validate checks that the settings are consistent.
func (s *Settings) Validate() error {
	switch s.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("environment must be one of [development staging production] (got: %s)", s.Environment)
	}
	if err := s.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// ProviderConfig returns the configuration map for a named backend.
// Missing entries yield an empty map so factories fall back to defaults.
func (s *STTSettings) ProviderConfig(name string) map[string]any {
	if cfg, ok := s.Providers[name]; ok {
		return cfg
	}
	return map[string]any{}
}
