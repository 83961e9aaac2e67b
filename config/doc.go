// Package config loads host-side settings for the whisper-stt bridge.
//
// Settings come from three layers, later layers overriding earlier ones:
// a YAML file (config.yml), a .env file, and process environment variables.
// Every config struct in this module follows the ApplyDefaults/Validate
// convention so defaults live next to the fields they describe.
//
//	var cfg config.Settings
//	if err := config.Load("whisper-stt", &cfg); err != nil { ... }
package config
