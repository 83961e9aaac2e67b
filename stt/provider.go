package stt

import (
	"context"

	"github.com/voicebridge/whisper-stt/provider"
)

// Transcriber is the interface speech-to-text backends must implement.
type Transcriber interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Transcribe sends audio for transcription and returns the transcript.
	// Exactly one outbound call is made per invocation; cancelling ctx
	// aborts it. Failures are *stt.Error values.
	Transcribe(ctx context.Context, req Request) (*Result, error)
}
