package transcribe

import (
	"fmt"
	"time"
)

// ErrRateLimit indicates the service returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrServiceUnavailable indicates the transcription service is down or
// unreachable.
type ErrServiceUnavailable struct {
	Err error
}

func (e *ErrServiceUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transcription service unavailable: %v", e.Err)
	}
	return "transcription service unavailable"
}

func (e *ErrServiceUnavailable) Unwrap() error { return e.Err }

// ErrEmptyTranscript indicates the service answered but recognized no
// usable speech. The capture pipeline converts this into its fallback
// transcript rather than failing the submission.
type ErrEmptyTranscript struct {
	Model string
}

func (e *ErrEmptyTranscript) Error() string {
	return fmt.Sprintf("empty transcript from %s", e.Model)
}
