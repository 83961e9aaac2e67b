package stt

import "github.com/voicebridge/whisper-stt/provider"

// NewRegistry creates a provider registry for transcription backends.
func NewRegistry() *provider.Registry[Transcriber] {
	return provider.NewRegistry[Transcriber]()
}

// ManagerOption configures the transcription backend manager.
type ManagerOption func(*managerConfig)

type managerConfig struct {
	selector provider.Selector[Transcriber]
}

// WithSelector sets the backend selection strategy for the manager.
func WithSelector(s provider.Selector[Transcriber]) ManagerOption {
	return func(c *managerConfig) {
		c.selector = s
	}
}

// NewManager creates a backend manager. By default the first available
// backend (by name) is selected; hosts usually pin one with SetDefault.
func NewManager(opts ...ManagerOption) *provider.Manager[Transcriber] {
	cfg := &managerConfig{
		selector: &provider.HealthCheckSelector[Transcriber]{},
	}
	for _, o := range opts {
		o(cfg)
	}
	return provider.NewManager(NewRegistry(), cfg.selector)
}
