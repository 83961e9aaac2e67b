package validation

import (
	"strings"
	"testing"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("name", "whisper")
	if v.HasErrors() {
		t.Error("expected no errors for non-empty value")
	}

	v = New()
	v.Required("name", "   ")
	if !v.HasErrors() {
		t.Error("expected error for blank value")
	}
}

func TestValidatorRange(t *testing.T) {
	v := New()
	v.Range("temperature", 0.5, 0, 1)
	if v.HasErrors() {
		t.Errorf("0.5 should be in range: %v", v.Errors())
	}

	v = New()
	v.Range("temperature", 1.5, 0, 1)
	if !v.HasErrors() {
		t.Error("1.5 should be out of range")
	}
}

func TestValidatorOneOf(t *testing.T) {
	v := New()
	v.OneOf("format", "wav", "wav", "ogg")
	if v.HasErrors() {
		t.Errorf("wav should be allowed: %v", v.Errors())
	}

	v = New()
	v.OneOf("format", "mp3", "wav", "ogg")
	if !v.HasErrors() {
		t.Error("mp3 should be rejected")
	}
}

func TestValidatorError_CombinesMessages(t *testing.T) {
	v := New()
	v.Required("server_url", "")
	v.Range("temperature", 2, 0, 1)

	err := v.Error()
	if err == nil {
		t.Fatal("expected combined error")
	}
	if !strings.Contains(err.Error(), "server_url") || !strings.Contains(err.Error(), "temperature") {
		t.Errorf("error should mention both fields: %v", err)
	}
}

func TestStruct(t *testing.T) {
	type cfg struct {
		ServerURL   string  `mapstructure:"server_url" validate:"required,url"`
		Temperature float64 `mapstructure:"temperature" validate:"gte=0,lte=1"`
	}

	if err := Struct(cfg{ServerURL: "http://localhost:8080", Temperature: 0.2}); err != nil {
		t.Errorf("valid struct rejected: %v", err)
	}

	err := Struct(cfg{ServerURL: "", Temperature: 3})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "server_url") {
		t.Errorf("error should use mapstructure tag name: %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ServerURL", "server_url"},
		{"Temperature", "temperature"},
		{"APIKey", "api_key"},
		{"Model", "model"},
	}
	for _, tt := range tests {
		if got := toSnakeCase(tt.in); got != tt.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
