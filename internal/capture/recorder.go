package capture

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/anika/lexiscreen/internal/transcribe"
)

// RecorderOptions configures a Recorder.
type RecorderOptions struct {
	// OnTick receives the elapsed capture seconds once per second while
	// recording. UI feedback only; it has no correctness effect.
	OnTick func(seconds int)

	// TickInterval overrides the one-second elapsed tick. Tests use a
	// short interval; zero means one second.
	TickInterval time.Duration

	// Prompt biases transcription toward expected vocabulary.
	Prompt string

	// Language is an optional ISO-639-1 hint for the service.
	Language string
}

// Recorder owns one capture device and drives the record → stop →
// transcribe pipeline for a single question. It holds at most one take;
// re-recording replaces the previous blob and transcript entirely.
type Recorder struct {
	device   Device
	provider transcribe.Provider
	opts     RecorderOptions

	mu         sync.Mutex
	capturing  bool
	recorded   bool
	audio      Audio
	transcript *Transcript
	seconds    int
	stopTick   chan struct{}
}

// NewRecorder creates a Recorder for one question instance.
func NewRecorder(device Device, provider transcribe.Provider, opts RecorderOptions) *Recorder {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	return &Recorder{
		device:   device,
		provider: provider,
		opts:     opts,
	}
}

// Start acquires the device and begins a new take, discarding any
// previous blob and transcript. Starting while already capturing is a
// caller bug and is rejected. A device failure leaves the recorder
// unstarted and is recoverable: the session continues without a
// recording.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.capturing {
		return ErrAlreadyCapturing
	}

	if err := r.device.Start(ctx); err != nil {
		return fmt.Errorf("start capture device: %w", err)
	}

	r.capturing = true
	r.recorded = false
	r.audio = Audio{}
	r.transcript = nil
	r.seconds = 0
	r.stopTick = make(chan struct{})
	go r.tickLoop(r.stopTick)

	return nil
}

// Stop finalizes the take and releases the device. From this point the
// attempt counts as recorded regardless of transcription success.
func (r *Recorder) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.capturing {
		return ErrNotCapturing
	}

	r.haltLocked()

	audio, err := r.device.Stop()
	if err != nil {
		return fmt.Errorf("stop capture device: %w", err)
	}

	r.audio = audio
	r.recorded = true
	return nil
}

// Transcribe sends the recorded take to the transcription service.
// Failure, timeout, or an empty result falls back to the
// recorded-but-not-transcribed transcript so the attempt stays scoreable.
func (r *Recorder) Transcribe(ctx context.Context) (Transcript, error) {
	r.mu.Lock()
	if r.capturing {
		r.mu.Unlock()
		return Transcript{}, ErrAlreadyCapturing
	}
	if !r.recorded {
		r.mu.Unlock()
		return Transcript{}, ErrNothingRecorded
	}
	audio := r.audio
	r.mu.Unlock()

	t := Transcript{}
	res, err := r.provider.Transcribe(ctx, transcribe.Request{
		Audio:    audio.Data,
		MIMEType: audio.MIMEType,
		Prompt:   r.opts.Prompt,
		Language: r.opts.Language,
	})
	if err == nil && res.Text != "" {
		t = Transcript{Text: res.Text, Transcribed: true}
	}

	r.mu.Lock()
	r.transcript = &t
	r.mu.Unlock()

	// The fallback is a degraded outcome, not a failure: err is reported
	// for observability but the transcript is always usable.
	return t, err
}

// ForceStop releases the device and halts the elapsed counter without
// finalizing a take. Used on question change or teardown.
func (r *Recorder) ForceStop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.capturing {
		return
	}
	r.haltLocked()
	// Teardown path: the blob is discarded, so the stop error is too.
	r.device.Stop()
}

// Capturing reports whether a take is in progress.
func (r *Recorder) Capturing() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.capturing
}

// Recorded reports whether a finalized take exists.
func (r *Recorder) Recorded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recorded
}

// Transcript returns the most recent transcript, if Transcribe has run.
func (r *Recorder) Transcript() (Transcript, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.transcript == nil {
		return Transcript{}, false
	}
	return *r.transcript, true
}

// Seconds returns the elapsed capture seconds for UI display.
func (r *Recorder) Seconds() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seconds
}

// haltLocked stops the tick loop and clears the capturing flag.
// Callers must hold r.mu.
func (r *Recorder) haltLocked() {
	r.capturing = false
	if r.stopTick != nil {
		close(r.stopTick)
		r.stopTick = nil
	}
}

func (r *Recorder) tickLoop(stop chan struct{}) {
	ticker := time.NewTicker(r.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			r.mu.Lock()
			if !r.capturing {
				r.mu.Unlock()
				return
			}
			r.seconds++
			secs := r.seconds
			cb := r.opts.OnTick
			r.mu.Unlock()

			if cb != nil {
				cb(secs)
			}
		}
	}
}
