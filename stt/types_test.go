package stt

import "testing"

func TestFormatContentType(t *testing.T) {
	if got := FormatWAV.ContentType(); got != "audio/wav" {
		t.Errorf("FormatWAV.ContentType() = %q", got)
	}
	if got := FormatOGG.ContentType(); got != "audio/ogg" {
		t.Errorf("FormatOGG.ContentType() = %q", got)
	}
	// Unknown formats fall back to WAV.
	if got := Format("flac").ContentType(); got != "audio/wav" {
		t.Errorf("unknown ContentType() = %q", got)
	}
}

func TestFormatFileName(t *testing.T) {
	if got := FormatWAV.FileName(); got != "audio.wav" {
		t.Errorf("FormatWAV.FileName() = %q", got)
	}
	if got := FormatOGG.FileName(); got != "audio.ogg" {
		t.Errorf("FormatOGG.FileName() = %q", got)
	}
}

func TestDefaultCapabilities(t *testing.T) {
	caps := DefaultCapabilities()
	if len(caps.Formats) == 0 || caps.Formats[0] != FormatWAV {
		t.Errorf("Formats = %v", caps.Formats)
	}
	if len(caps.SampleRates) != 1 || caps.SampleRates[0] != 16000 {
		t.Errorf("SampleRates = %v", caps.SampleRates)
	}
	if len(caps.BitDepths) != 1 || caps.BitDepths[0] != 16 {
		t.Errorf("BitDepths = %v", caps.BitDepths)
	}
	if len(caps.Channels) != 1 || caps.Channels[0] != 1 {
		t.Errorf("Channels = %v", caps.Channels)
	}
}
