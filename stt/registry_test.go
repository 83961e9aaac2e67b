package stt

import (
	"context"
	"testing"
)

type stubTranscriber struct {
	name string
}

func (s *stubTranscriber) Name() string                       { return s.name }
func (s *stubTranscriber) IsAvailable(_ context.Context) bool { return true }
func (s *stubTranscriber) Transcribe(_ context.Context, _ Request) (*Result, error) {
	return &Result{Text: "stub"}, nil
}

func TestManager_RegisterAndGet(t *testing.T) {
	mgr := NewManager()
	mgr.Register("stub", func(cfg map[string]any) (Transcriber, error) {
		return &stubTranscriber{name: "stub"}, nil
	})

	if err := mgr.Initialize("stub", map[string]any{}); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	tr, err := mgr.GetByName("stub")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	res, err := tr.Transcribe(context.Background(), Request{Audio: []byte("x"), Format: FormatWAV})
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if res.Text != "stub" {
		t.Errorf("Text = %q", res.Text)
	}
}
