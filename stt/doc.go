// Package stt defines the speech-to-text capability interface and common
// types for the whisper-stt bridge.
//
// A host platform's speech pipeline hands audio bytes and a locale tag to a
// Transcriber and gets back a transcript or a typed failure. Backends are
// pluggable through the provider registry.
//
// # Backends
//
//   - stt/whisperapi: any Whisper-compatible HTTP endpoint (whisper.cpp
//     server, OpenAI-compatible API)
//   - stt/openai: the OpenAI API via the official-style Go SDK
//
// # Usage
//
//	mgr := stt.NewManager()
//	mgr.Register(whisperapi.ProviderName, whisperapi.Factory())
//	_ = mgr.Initialize(whisperapi.ProviderName, cfg)
//	backend, _ := mgr.Get(ctx)
//	result, err := backend.Transcribe(ctx, stt.Request{Audio: wav, Format: stt.FormatWAV, Locale: "en-US"})
package stt
