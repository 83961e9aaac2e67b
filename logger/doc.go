// Package logger provides structured logging for the whisper-stt bridge
// using zerolog.
//
// The host platform usually owns the process-wide logging setup; this
// package gives every component of the bridge a consistent, component-tagged
// logger without forcing a particular sink on the host.
//
// # Usage
//
//	log := logger.Get("stt.whisperapi")
//	log.Info("transcription complete", logger.Fields("duration_ms", 420))
package logger
