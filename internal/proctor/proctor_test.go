package proctor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/anika/lexiscreen/internal/capture"
	"github.com/anika/lexiscreen/internal/evaluate"
	"github.com/anika/lexiscreen/internal/question"
	"github.com/anika/lexiscreen/internal/transcribe"
)

const testTick = 2 * time.Millisecond

// verdictSink collects emitted verdicts for assertions.
type verdictSink struct {
	mu       sync.Mutex
	verdicts []evaluate.Verdict
}

func (s *verdictSink) record(v evaluate.Verdict) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verdicts = append(s.verdicts, v)
}

func (s *verdictSink) all() []evaluate.Verdict {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]evaluate.Verdict, len(s.verdicts))
	copy(out, s.verdicts)
	return out
}

func (s *verdictSink) waitForOne(t *testing.T) evaluate.Verdict {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if vs := s.all(); len(vs) > 0 {
			return vs[0]
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("no verdict emitted")
	return evaluate.Verdict{}
}

func choiceQuestion() *question.Question {
	return &question.Question{
		ID:            "ns1",
		Stimulus:      question.Stimulus{Text: "47 or 74"},
		Instruction:   "Which number is larger?",
		Options:       []string{"47", "74"},
		Answer:        question.Answer{"74"},
		Domain:        question.DomainNumberSense,
		TimeLimitSecs: 30,
	}
}

func voiceQuestion() *question.Question {
	return &question.Question{
		ID:            "ph1",
		Stimulus:      question.Stimulus{Text: "was"},
		Instruction:   "Read this word aloud",
		Answer:        question.Answer{"was"},
		Domain:        question.DomainPhonological,
		TimeLimitSecs: 5,
	}
}

func TestProctor_BeginEntersAnswering(t *testing.T) {
	p := New(choiceQuestion(), Options{TickInterval: testTick})
	defer p.Dispose()

	if p.Phase() != PhaseIdle {
		t.Errorf("Phase before Begin = %v", p.Phase())
	}
	p.Begin()

	if p.Phase() != PhaseAnswering {
		t.Errorf("Phase = %v, want answering", p.Phase())
	}
	if p.Remaining() != 30 {
		t.Errorf("Remaining = %d, want 30", p.Remaining())
	}
	if !p.StimulusVisible() {
		t.Error("stimulus must start visible")
	}
}

func TestProctor_TimedExposureHidesStimulus(t *testing.T) {
	q := choiceQuestion()
	q.StimulusDisplayMS = 10

	hidden := make(chan struct{})
	p := New(q, Options{
		TickInterval:     testTick,
		OnStimulusHidden: func() { close(hidden) },
	})
	defer p.Dispose()

	p.Begin()
	if p.Phase() != PhasePresenting {
		t.Errorf("Phase = %v, want presenting", p.Phase())
	}

	select {
	case <-hidden:
	case <-time.After(time.Second):
		t.Fatal("stimulus was never hidden")
	}
	if p.StimulusVisible() {
		t.Error("stimulus still visible after display window")
	}
	if p.Phase() != PhaseAnswering {
		t.Errorf("Phase = %v, want answering", p.Phase())
	}
}

func TestProctor_ManualSubmit(t *testing.T) {
	sink := &verdictSink{}
	p := New(choiceQuestion(), Options{
		TickInterval: testTick,
		OnVerdict:    sink.record,
	})
	defer p.Dispose()

	p.Begin()
	p.Submit("74")

	v := sink.waitForOne(t)
	if !v.IsCorrect {
		t.Error("expected correct verdict")
	}
	if v.RawAnswer != "74" {
		t.Errorf("RawAnswer = %q", v.RawAnswer)
	}
	if p.Phase() != PhaseSubmitted {
		t.Errorf("Phase = %v, want submitted", p.Phase())
	}
}

func TestProctor_AutoSubmitOnTimeout(t *testing.T) {
	sink := &verdictSink{}
	q := choiceQuestion() // timeLimit 30, one tick per interval
	p := New(q, Options{
		TickInterval: testTick,
		OnVerdict:    sink.record,
	})
	defer p.Dispose()

	p.Begin()
	v := sink.waitForOne(t)

	if v.RawAnswer != evaluate.TimeoutAnswer {
		t.Errorf("RawAnswer = %q, want %q", v.RawAnswer, evaluate.TimeoutAnswer)
	}
	if v.IsCorrect {
		t.Error("timeout must score incorrect")
	}
	if v.ErrorPattern != nil {
		t.Error("timeout verdicts are not classified")
	}
	if p.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", p.Remaining())
	}
}

func TestProctor_TimeoutSubmitsStagedTranscript(t *testing.T) {
	sink := &verdictSink{}
	p := New(voiceQuestion(), Options{
		TickInterval: testTick,
		OnVerdict:    sink.record,
	})
	defer p.Dispose()

	p.Begin()
	p.StageTranscript(capture.Transcript{Text: "was", Transcribed: true})

	v := sink.waitForOne(t)
	if v.RawAnswer != "was" {
		t.Errorf("RawAnswer = %q, want staged transcript", v.RawAnswer)
	}
	if !v.IsCorrect {
		t.Error("expected correct voice verdict")
	}
}

func TestProctor_SubmitVoice(t *testing.T) {
	sink := &verdictSink{}
	p := New(voiceQuestion(), Options{
		TickInterval: time.Second,
		OnVerdict:    sink.record,
	})
	defer p.Dispose()

	p.Begin()

	if p.SubmitVoice() {
		t.Error("SubmitVoice must fail before anything was recorded")
	}

	p.StageTranscript(capture.Transcript{Transcribed: false})
	if !p.SubmitVoice() {
		t.Fatal("SubmitVoice failed with a staged transcript")
	}

	v := sink.waitForOne(t)
	if v.RawAnswer != capture.FallbackAnswer {
		t.Errorf("RawAnswer = %q, want fallback", v.RawAnswer)
	}
	if v.IsCorrect {
		t.Error("fallback transcript must score incorrect")
	}
}

func TestProctor_SingleTerminalSubmission(t *testing.T) {
	sink := &verdictSink{}
	p := New(choiceQuestion(), Options{
		TickInterval: testTick,
		OnVerdict:    sink.record,
	})
	defer p.Dispose()

	p.Begin()
	p.Submit("74")
	p.Submit("47")
	p.SubmitVoice()

	// Give any stale countdown a chance to fire wrongly.
	time.Sleep(40 * testTick)

	vs := sink.all()
	if len(vs) != 1 {
		t.Fatalf("got %d verdicts, want exactly 1", len(vs))
	}
	if vs[0].RawAnswer != "74" {
		t.Errorf("RawAnswer = %q, want the first submission", vs[0].RawAnswer)
	}
}

func TestProctor_DisposeCancelsEverything(t *testing.T) {
	sink := &verdictSink{}
	device := &capture.MockDevice{}
	rec := capture.NewRecorder(device, transcribe.NewMockProvider(), capture.RecorderOptions{})
	if err := rec.Start(context.Background()); err != nil {
		t.Fatalf("start recorder: %v", err)
	}

	q := voiceQuestion()
	q.StimulusDisplayMS = 10
	p := New(q, Options{
		TickInterval: testTick,
		OnVerdict:    sink.record,
		Recorder:     rec,
	})

	p.Begin()
	p.Dispose()

	// Wait past both the countdown and the hide timer.
	time.Sleep(20 * testTick)

	if got := sink.all(); len(got) != 0 {
		t.Errorf("disposed proctor emitted %d verdicts", len(got))
	}
	if rec.Capturing() {
		t.Error("dispose must force-stop an in-progress capture")
	}
	if p.SubmitVoice() {
		t.Error("submission after dispose must be rejected")
	}
}

func TestProctor_CountdownTicks(t *testing.T) {
	var mu sync.Mutex
	var seen []int
	q := choiceQuestion()
	q.TimeLimitSecs = 3

	sink := &verdictSink{}
	p := New(q, Options{
		TickInterval: testTick,
		OnVerdict:    sink.record,
		OnCountdown: func(remaining int) {
			mu.Lock()
			seen = append(seen, remaining)
			mu.Unlock()
		},
	})
	defer p.Dispose()

	p.Begin()
	sink.waitForOne(t)

	mu.Lock()
	defer mu.Unlock()
	want := []int{2, 1, 0}
	if len(seen) != len(want) {
		t.Fatalf("ticks = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("tick %d = %d, want %d", i, seen[i], want[i])
		}
	}
}
