// Package audio wraps raw PCM frames in a WAV container.
//
// Speech pipelines commonly hand over bare 16-bit PCM; Whisper-compatible
// endpoints want a proper RIFF/WAVE file. EncodeWAV prepends the 44-byte
// header so the payload can go straight into a multipart upload.
package audio

import (
	"encoding/binary"
	"fmt"
)

// Info describes the PCM stream being wrapped.
type Info struct {
	// SampleRate in Hz (e.g. 16000).
	SampleRate int
	// Channels is the channel count (1 = mono).
	Channels int
	// BitsPerSample is the sample width. Defaults to 16.
	BitsPerSample int
}

const wavHeaderSize = 44

// EncodeWAV wraps raw PCM data in a RIFF/WAVE container.
func EncodeWAV(pcm []byte, info Info) ([]byte, error) {
	if info.SampleRate <= 0 {
		return nil, fmt.Errorf("audio: sample rate must be positive (got %d)", info.SampleRate)
	}
	if info.Channels <= 0 {
		return nil, fmt.Errorf("audio: channel count must be positive (got %d)", info.Channels)
	}
	bits := info.BitsPerSample
	if bits == 0 {
		bits = 16
	}
	if bits%8 != 0 {
		return nil, fmt.Errorf("audio: bits per sample must be a multiple of 8 (got %d)", bits)
	}

	blockAlign := info.Channels * bits / 8
	byteRate := info.SampleRate * blockAlign

	buf := make([]byte, wavHeaderSize, wavHeaderSize+len(pcm))

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+len(pcm)))
	copy(buf[8:12], "WAVE")

	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(buf[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(buf[22:24], uint16(info.Channels))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(info.SampleRate))
	binary.LittleEndian.PutUint32(buf[28:32], uint32(byteRate))
	binary.LittleEndian.PutUint16(buf[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(buf[34:36], uint16(bits))

	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(len(pcm)))

	return append(buf, pcm...), nil
}
