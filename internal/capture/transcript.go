package capture

// FallbackAnswer is the submittable answer when a recording exists but
// transcription failed or returned nothing usable. It keeps the attempt
// scoreable: the evaluator treats it like any answer string, and it will
// not match a real correct answer.
const FallbackAnswer = "Audio recorded but not transcribed"

// Transcript is the outcome of transcribing one recorded take: either
// recognized text or the recorded-but-not-transcribed fallback.
type Transcript struct {
	// Text is the recognized speech. Empty when Transcribed is false.
	Text string

	// Transcribed reports whether the service produced usable text.
	Transcribed bool
}

// Answer returns the string to submit for evaluation.
func (t Transcript) Answer() string {
	if !t.Transcribed {
		return FallbackAnswer
	}
	return t.Text
}
