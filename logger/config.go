package logger

import "fmt"

// Config contains logging configuration.
type Config struct {
	// Level is the minimum level to emit: trace, debug, info, warn, error, fatal.
	Level string `yaml:"level" mapstructure:"level"`
	// Format selects the output encoding: "json" or "console".
	Format string `yaml:"format" mapstructure:"format"`
	// Output selects the sink: "stdout" or "stderr".
	Output string `yaml:"output" mapstructure:"output"`
	// NoColor disables ANSI colors in console format.
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`
	// Timestamp adds a timestamp field to every event.
	Timestamp bool `yaml:"timestamp" mapstructure:"timestamp"`
	// Caller adds the file:line of the call site.
	Caller bool `yaml:"caller" mapstructure:"caller"`
	// ServiceName tags every event with the owning service.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
}

// ApplyDefaults fills zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
	c.Timestamp = true
}

// Validate checks that the configuration is consistent.
func (c *Config) Validate() error {
	switch c.Level {
	case "trace", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("logging.level must be one of [trace debug info warn error fatal] (got: %s)", c.Level)
	}
	switch c.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be one of [json console] (got: %s)", c.Format)
	}
	return nil
}
