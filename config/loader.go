package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Option customizes Load behavior.
type Option func(*loadOptions)

type loadOptions struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit YAML config file path.
func WithConfigFile(path string) Option {
	return func(o *loadOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) { o.envFile = path }
}

// Load fills cfg from config.yml, .env, and process environment variables,
// in that order of precedence (environment wins). Missing files are not an
// error; the environment alone is a valid configuration source.
func Load(serviceName string, cfg any, opts ...Option) error {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.configFile == "" {
		o.configFile = findFirst(
			"./config.yml",
			"./config/config.yml",
			fmt.Sprintf("./config/%s.yml", serviceName),
		)
	}
	if o.envFile == "" {
		o.envFile = findFirst(
			fmt.Sprintf("./.env.%s", serviceName),
			"./.env",
			"./config/.env",
		)
	}

	v := viper.New()

	if o.configFile != "" && exists(o.configFile) {
		v.SetConfigFile(o.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", o.configFile, err)
		}
	}

	if o.envFile != "" && exists(o.envFile) {
		if err := godotenv.Load(o.envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", o.envFile, err)
		}
	}

	bindEnvironment(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config for %s: %w", serviceName, err)
	}
	return nil
}

// bindEnvironment maps process environment variables onto nested viper keys.
// STT_SERVER_URL becomes both stt_server_url and stt.server_url so either
// flat or nested config structs pick it up.
func bindEnvironment(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		lower := strings.ToLower(pair[0])
		v.Set(lower, pair[1])

		if idx := strings.Index(lower, "_"); idx > 0 {
			nested := lower[:idx] + "." + lower[idx+1:]
			v.Set(nested, pair[1])
		}
	}
}

func findFirst(paths ...string) string {
	for _, p := range paths {
		if exists(p) {
			return p
		}
	}
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
