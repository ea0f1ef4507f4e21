package capture

import (
	"context"
	"errors"
)

// Audio is one finalized capture blob.
type Audio struct {
	Data     []byte
	MIMEType string
}

// Device is the audio capture hardware abstraction. Implementations wrap
// whatever microphone access the host platform provides; the engine only
// needs start/stop semantics and a finalized blob.
type Device interface {
	// Start acquires the device and begins buffering audio.
	// A denied or unavailable device returns an error; the device must
	// be left unacquired in that case.
	Start(ctx context.Context) error

	// Stop finalizes buffered audio into one blob and releases the
	// device.
	Stop() (Audio, error)
}

// Capture state violations. These indicate caller bugs, not runtime
// faults, and are never converted to degraded outcomes.
var (
	ErrAlreadyCapturing = errors.New("capture already in progress")
	ErrNotCapturing     = errors.New("no capture in progress")
	ErrNothingRecorded  = errors.New("nothing recorded")
)
