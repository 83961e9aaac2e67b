// Package validation provides input validation for configuration records.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    ServerURL   string  `validate:"required,url"`
//	    Temperature float64 `validate:"gte=0,lte=1"`
//	}
//	err := validation.Struct(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("server_url", cfg.ServerURL)
//	err := v.Error()
package validation
