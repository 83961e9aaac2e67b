package audio

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestEncodeWAV_Header(t *testing.T) {
	pcm := make([]byte, 320) // 10ms of 16kHz mono 16-bit
	out, err := EncodeWAV(pcm, Info{SampleRate: 16000, Channels: 1})
	if err != nil {
		t.Fatalf("EncodeWAV error: %v", err)
	}

	if len(out) != wavHeaderSize+len(pcm) {
		t.Fatalf("len = %d, want %d", len(out), wavHeaderSize+len(pcm))
	}
	if !bytes.Equal(out[0:4], []byte("RIFF")) || !bytes.Equal(out[8:12], []byte("WAVE")) {
		t.Error("missing RIFF/WAVE magic")
	}

	if got := binary.LittleEndian.Uint32(out[4:8]); got != uint32(36+len(pcm)) {
		t.Errorf("riff size = %d", got)
	}
	if got := binary.LittleEndian.Uint16(out[22:24]); got != 1 {
		t.Errorf("channels = %d", got)
	}
	if got := binary.LittleEndian.Uint32(out[24:28]); got != 16000 {
		t.Errorf("sample rate = %d", got)
	}
	if got := binary.LittleEndian.Uint32(out[28:32]); got != 32000 {
		t.Errorf("byte rate = %d", got)
	}
	if got := binary.LittleEndian.Uint16(out[32:34]); got != 2 {
		t.Errorf("block align = %d", got)
	}
	if got := binary.LittleEndian.Uint16(out[34:36]); got != 16 {
		t.Errorf("bits per sample = %d", got)
	}
	if got := binary.LittleEndian.Uint32(out[40:44]); got != uint32(len(pcm)) {
		t.Errorf("data size = %d", got)
	}
}

func TestEncodeWAV_Stereo(t *testing.T) {
	out, err := EncodeWAV(make([]byte, 4), Info{SampleRate: 44100, Channels: 2})
	if err != nil {
		t.Fatal(err)
	}
	if got := binary.LittleEndian.Uint16(out[32:34]); got != 4 {
		t.Errorf("block align = %d, want 4", got)
	}
	if got := binary.LittleEndian.Uint32(out[28:32]); got != 176400 {
		t.Errorf("byte rate = %d", got)
	}
}

func TestEncodeWAV_Invalid(t *testing.T) {
	if _, err := EncodeWAV(nil, Info{SampleRate: 0, Channels: 1}); err == nil {
		t.Error("zero sample rate should fail")
	}
	if _, err := EncodeWAV(nil, Info{SampleRate: 16000, Channels: 0}); err == nil {
		t.Error("zero channels should fail")
	}
	if _, err := EncodeWAV(nil, Info{SampleRate: 16000, Channels: 1, BitsPerSample: 12}); err == nil {
		t.Error("non-byte-aligned sample width should fail")
	}
}

func TestEncodeWAV_EmptyPayload(t *testing.T) {
	out, err := EncodeWAV(nil, Info{SampleRate: 16000, Channels: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != wavHeaderSize {
		t.Errorf("len = %d, want header only", len(out))
	}
}
