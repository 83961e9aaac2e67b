package logger

import (
	"errors"
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("Format = %q, want console", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("Output = %q, want stdout", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("Timestamp should default to true")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid json", Config{Level: "info", Format: "json"}, false},
		{"valid console", Config{Level: "debug", Format: "console"}, false},
		{"bad level", Config{Level: "verbose", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGet_FallsBackToGlobal(t *testing.T) {
	l := Get("not-registered")
	if l == nil {
		t.Fatal("Get returned nil")
	}
}

func TestGet_ReturnsRegistered(t *testing.T) {
	want := NewDefault("test-service")
	Register("my-component", want)

	if got := Get("my-component"); got != want {
		t.Error("Get should return the registered logger")
	}
}

func TestFields(t *testing.T) {
	m := Fields("a", 1, "b", "two")
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("Fields = %v", m)
	}

	// odd trailing key is dropped
	m = Fields("a", 1, "dangling")
	if len(m) != 1 {
		t.Errorf("expected 1 entry, got %v", m)
	}
}

func TestErrorFields(t *testing.T) {
	m := ErrorFields("transcribe", errors.New("boom"))
	if m[FieldOperation] != "transcribe" {
		t.Errorf("operation = %v", m[FieldOperation])
	}
	if m[FieldError] != "boom" {
		t.Errorf("error = %v", m[FieldError])
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("transcribe", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("duration = %v", m[FieldDuration])
	}
}

func TestWithComponent(t *testing.T) {
	base := NewDefault("svc")
	tagged := base.WithComponent("stt")
	if tagged == base {
		t.Error("WithComponent should return a new logger")
	}
}
