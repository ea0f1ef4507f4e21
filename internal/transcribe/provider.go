package transcribe

import "context"

// Provider is the core abstraction for speech-to-text interaction.
// The engine records audio, hands it to Transcribe, and receives plain
// text. Providers must tolerate any audio the capture layer produces.
type Provider interface {
	// Transcribe sends captured audio to the service and returns the
	// recognized text. Implementations return typed errors from this
	// package for rate limits and outages so the retry layer can react.
	Transcribe(ctx context.Context, req Request) (*Result, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes one transcription call.
type Request struct {
	// Audio is the finalized capture blob.
	Audio []byte

	// MIMEType describes the blob encoding, e.g. "audio/webm".
	MIMEType string

	// Filename is a hint for services that sniff format from the
	// extension. Defaults to "recording.webm" when empty.
	Filename string

	// Language is an optional ISO-639-1 hint, e.g. "en".
	Language string

	// Prompt optionally biases recognition toward expected vocabulary
	// (the stimulus word for single-word reading tasks).
	Prompt string
}

// Result holds the service's transcription.
type Result struct {
	// Text is the recognized speech. Never empty on success; providers
	// return ErrEmptyTranscript instead.
	Text string

	// Model is the actual model that served the request.
	Model string
}

// DefaultFilename is used when a request carries no filename hint.
const DefaultFilename = "recording.webm"

func (r *Request) filename() string {
	if r.Filename != "" {
		return r.Filename
	}
	return DefaultFilename
}
