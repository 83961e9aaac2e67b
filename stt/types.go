package stt

// Format identifies the audio container handed over by the host pipeline.
type Format string

const (
	// FormatWAV is RIFF/WAVE with PCM samples.
	FormatWAV Format = "wav"
	// FormatOGG is an Ogg container (Opus or Vorbis).
	FormatOGG Format = "ogg"
)

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatOGG:
		return "audio/ogg"
	default:
		return "audio/wav"
	}
}

// FileName returns the upload file name for the format.
func (f Format) FileName() string {
	switch f {
	case FormatOGG:
		return "audio.ogg"
	default:
		return "audio.wav"
	}
}

// Request holds the inputs for one transcription call. It exists only for
// the duration of the call and is never persisted.
type Request struct {
	// Audio is the raw audio payload. Must be non-empty.
	Audio []byte
	// Format is the audio container tag.
	Format Format
	// Locale is the host's locale tag (e.g. "en-US"). May be empty, in
	// which case no language hint is sent to the backend.
	Locale string
	// Model overrides the backend's configured model when non-empty.
	Model string
	// Prompt overrides the backend's configured prompt when non-empty.
	Prompt string
}

// Result holds a successful transcription.
type Result struct {
	// Text is the transcript.
	Text string `json:"text"`
	// Language is the detected or requested language, when the backend
	// reports one.
	Language string `json:"language,omitempty"`
	// Duration is the audio duration in seconds, when reported.
	Duration float64 `json:"duration,omitempty"`
}

// Capabilities describes what audio a backend accepts. Hosts use it to
// negotiate the hand-off format with their pipeline.
type Capabilities struct {
	Formats     []Format
	SampleRates []int
	BitDepths   []int
	Channels    []int
}

// DefaultCapabilities matches the common Whisper ingest profile:
// 16 kHz mono 16-bit WAV, plus OGG for hosts that pre-encode.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		Formats:     []Format{FormatWAV, FormatOGG},
		SampleRates: []int{16000},
		BitDepths:   []int{16},
		Channels:    []int{1},
	}
}
