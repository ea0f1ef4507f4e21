package capture

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/anika/lexiscreen/internal/transcribe"
)

func TestRecorder_HappyPath(t *testing.T) {
	device := &MockDevice{Blob: Audio{Data: []byte("audio"), MIMEType: "audio/webm"}}
	provider := transcribe.NewMockProvider(transcribe.MockResult{Text: "was"})
	r := NewRecorder(device, provider, RecorderOptions{Prompt: "was"})
	ctx := context.Background()

	if err := r.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !r.Capturing() {
		t.Error("expected capturing state")
	}

	if err := r.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if r.Capturing() {
		t.Error("expected capture to have ended")
	}
	if !r.Recorded() {
		t.Error("expected a finalized take")
	}

	tr, err := r.Transcribe(ctx)
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if !tr.Transcribed || tr.Text != "was" {
		t.Errorf("transcript = %+v", tr)
	}
	if tr.Answer() != "was" {
		t.Errorf("Answer() = %q", tr.Answer())
	}

	if provider.Calls[0].Audio == nil || string(provider.Calls[0].Audio) != "audio" {
		t.Error("provider did not receive the recorded blob")
	}
	if provider.Calls[0].Prompt != "was" {
		t.Errorf("Prompt = %q, want %q", provider.Calls[0].Prompt, "was")
	}
}

func TestRecorder_DeviceDeniedIsRecoverable(t *testing.T) {
	denied := errors.New("permission denied")
	device := &MockDevice{StartErr: denied}
	r := NewRecorder(device, transcribe.NewMockProvider(), RecorderOptions{})

	err := r.Start(context.Background())
	if !errors.Is(err, denied) {
		t.Fatalf("error = %v, want wrapped device error", err)
	}
	if r.Capturing() {
		t.Error("capture state must stay unstarted after a device failure")
	}
	if r.Recorded() {
		t.Error("no take exists after a device failure")
	}
}

func TestRecorder_ReentrantStartRejected(t *testing.T) {
	device := &MockDevice{}
	r := NewRecorder(device, transcribe.NewMockProvider(), RecorderOptions{})
	ctx := context.Background()

	if err := r.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := r.Start(ctx); !errors.Is(err, ErrAlreadyCapturing) {
		t.Errorf("second start error = %v, want ErrAlreadyCapturing", err)
	}
	if device.StartCount() != 1 {
		t.Errorf("device started %d times, want 1", device.StartCount())
	}
}

func TestRecorder_StopWithoutStart(t *testing.T) {
	r := NewRecorder(&MockDevice{}, transcribe.NewMockProvider(), RecorderOptions{})
	if err := r.Stop(); !errors.Is(err, ErrNotCapturing) {
		t.Errorf("error = %v, want ErrNotCapturing", err)
	}
}

func TestRecorder_TranscriptionFailureFallsBack(t *testing.T) {
	device := &MockDevice{Blob: Audio{Data: []byte("audio")}}
	provider := transcribe.NewMockProvider(
		transcribe.MockResult{Err: &transcribe.ErrServiceUnavailable{}},
	)
	r := NewRecorder(device, provider, RecorderOptions{})
	ctx := context.Background()

	if err := r.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := r.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}

	tr, err := r.Transcribe(ctx)
	if err == nil {
		t.Error("expected the underlying error to surface for observability")
	}
	if tr.Transcribed {
		t.Error("failed transcription must not be marked transcribed")
	}
	if tr.Answer() != FallbackAnswer {
		t.Errorf("Answer() = %q, want fallback", tr.Answer())
	}
	if !r.Recorded() {
		t.Error("the attempt stays recorded regardless of transcription failure")
	}
}

func TestRecorder_TranscribeWithoutTake(t *testing.T) {
	r := NewRecorder(&MockDevice{}, transcribe.NewMockProvider(), RecorderOptions{})
	if _, err := r.Transcribe(context.Background()); !errors.Is(err, ErrNothingRecorded) {
		t.Errorf("error = %v, want ErrNothingRecorded", err)
	}
}

func TestRecorder_ReRecordReplacesTake(t *testing.T) {
	device := &MockDevice{Blob: Audio{Data: []byte("take")}}
	provider := transcribe.NewMockProvider(
		transcribe.MockResult{Text: "first"},
		transcribe.MockResult{Text: "second"},
	)
	r := NewRecorder(device, provider, RecorderOptions{})
	ctx := context.Background()

	if err := r.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := r.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if _, err := r.Transcribe(ctx); err != nil {
		t.Fatalf("transcribe: %v", err)
	}

	// Second take replaces the first entirely.
	if err := r.Start(ctx); err != nil {
		t.Fatalf("re-record start: %v", err)
	}
	if _, ok := r.Transcript(); ok {
		t.Error("starting a new take must discard the previous transcript")
	}
	if r.Recorded() {
		t.Error("starting a new take must discard the previous blob")
	}
	if err := r.Stop(); err != nil {
		t.Fatalf("re-record stop: %v", err)
	}
	tr, err := r.Transcribe(ctx)
	if err != nil {
		t.Fatalf("re-record transcribe: %v", err)
	}
	if tr.Text != "second" {
		t.Errorf("Text = %q, want %q", tr.Text, "second")
	}
}

func TestRecorder_ForceStopReleasesDevice(t *testing.T) {
	device := &MockDevice{}
	r := NewRecorder(device, transcribe.NewMockProvider(), RecorderOptions{})

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	r.ForceStop()

	if r.Capturing() {
		t.Error("force stop must end the capture")
	}
	if device.StopCount() != 1 {
		t.Errorf("device stopped %d times, want 1", device.StopCount())
	}
	if r.Recorded() {
		t.Error("force stop must not finalize a take")
	}

	// Idempotent on an idle recorder.
	r.ForceStop()
	if device.StopCount() != 1 {
		t.Error("force stop on an idle recorder must not touch the device")
	}
}

func TestRecorder_ElapsedTicks(t *testing.T) {
	device := &MockDevice{}
	var ticks []int
	var mu sync.Mutex
	r := NewRecorder(device, transcribe.NewMockProvider(), RecorderOptions{
		TickInterval: 5 * time.Millisecond,
		OnTick: func(s int) {
			mu.Lock()
			ticks = append(ticks, s)
			mu.Unlock()
		},
	})

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if err := r.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(ticks) == 0 {
		t.Fatal("expected elapsed ticks while capturing")
	}
	for i, s := range ticks {
		if s != i+1 {
			t.Errorf("tick %d reported %d seconds", i, s)
		}
	}
}
