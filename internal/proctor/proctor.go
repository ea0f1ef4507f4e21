package proctor

import (
	"sync"
	"time"

	"github.com/anika/lexiscreen/internal/capture"
	"github.com/anika/lexiscreen/internal/evaluate"
	"github.com/anika/lexiscreen/internal/question"
)

// Phase is the lifecycle state of one question instance.
type Phase int

const (
	// PhaseIdle is the state before Begin.
	PhaseIdle Phase = iota

	// PhasePresenting shows the stimulus during its display window.
	// Only reachable for timed-exposure questions.
	PhasePresenting

	// PhaseAnswering runs the countdown; the student may select or record.
	PhaseAnswering

	// PhaseSubmitted is terminal for this question instance.
	PhaseSubmitted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePresenting:
		return "presenting"
	case PhaseAnswering:
		return "answering"
	case PhaseSubmitted:
		return "submitted"
	}
	return "unknown"
}

// Options configures a Proctor.
type Options struct {
	// OnVerdict receives the single terminal verdict for this question.
	OnVerdict func(evaluate.Verdict)

	// OnCountdown receives the remaining seconds after each tick.
	OnCountdown func(remaining int)

	// OnStimulusHidden fires when the stimulus display window elapses.
	OnStimulusHidden func()

	// Recorder, when set, owns voice capture for this question and is
	// force-stopped on Dispose.
	Recorder *capture.Recorder

	// TickInterval overrides the one-second countdown tick. Tests use a
	// short interval; zero means one second.
	TickInterval time.Duration
}

// Proctor drives one question from presentation through timed response
// capture to a single terminal submission. A fresh instance is created
// per question; nothing is shared across questions. Dispose must be
// called when the question is replaced or the session is torn down, so
// no timer or capture from a previous question can fire afterward.
type Proctor struct {
	q    *question.Question
	opts Options

	mu        sync.Mutex
	phase     Phase
	remaining int
	visible   bool
	started   time.Time
	staged    *capture.Transcript
	stop      chan struct{}
	hide      *time.Timer
	disposed  bool
}

// New creates a Proctor for one question. Timers start on Begin.
func New(q *question.Question, opts Options) *Proctor {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	return &Proctor{
		q:    q,
		opts: opts,
	}
}

// Begin enters the question: the countdown starts at the question's time
// limit, and for timed-exposure questions a one-shot timer hides the
// stimulus after its display window, independent of the countdown.
func (p *Proctor) Begin() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.phase != PhaseIdle || p.disposed {
		return
	}

	p.remaining = p.q.TimeLimit()
	p.visible = true
	p.started = time.Now()
	p.stop = make(chan struct{})

	if p.q.TimedExposure() {
		p.phase = PhasePresenting
		p.hide = time.AfterFunc(
			time.Duration(p.q.StimulusDisplayMS)*time.Millisecond,
			p.hideStimulus,
		)
	} else {
		p.phase = PhaseAnswering
	}

	go p.countdownLoop(p.stop)
}

// Submit records a manual answer (choice selection or typed response),
// cancels all outstanding timers, and emits the verdict. No-op once
// submitted or disposed.
func (p *Proctor) Submit(answer string) {
	p.mu.Lock()
	if !p.submittableLocked() {
		p.mu.Unlock()
		return
	}
	elapsed := time.Since(p.started)
	p.finishLocked()
	p.mu.Unlock()

	p.emit(evaluate.Evaluate(&answer, p.q, elapsed))
}

// StageTranscript hands the proctor a transcript to submit, either on an
// explicit voice-submit action or automatically on timeout.
func (p *Proctor) StageTranscript(t capture.Transcript) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.phase == PhaseSubmitted || p.disposed {
		return
	}
	p.staged = &t
}

// SubmitVoice submits the staged transcript (or the recorder's, when a
// recorder is attached and has transcribed). Returns false when nothing
// has been recorded yet; the caller surfaces that to the student.
func (p *Proctor) SubmitVoice() bool {
	p.mu.Lock()
	if !p.submittableLocked() {
		p.mu.Unlock()
		return false
	}
	t, ok := p.transcriptLocked()
	if !ok {
		p.mu.Unlock()
		return false
	}
	elapsed := time.Since(p.started)
	p.finishLocked()
	p.mu.Unlock()

	p.emit(evaluate.EvaluateVoice(t.Answer(), p.q, elapsed))
	return true
}

// Dispose cancels all outstanding timers and force-stops any in-progress
// capture. Mandatory on question change or teardown; after Dispose no
// verdict is ever emitted from this instance.
func (p *Proctor) Dispose() {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return
	}
	p.disposed = true
	p.cancelTimersLocked()
	rec := p.opts.Recorder
	p.mu.Unlock()

	if rec != nil {
		rec.ForceStop()
	}
}

// Phase returns the current lifecycle phase.
func (p *Proctor) Phase() Phase {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase
}

// Remaining returns the countdown's remaining seconds.
func (p *Proctor) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.remaining
}

// StimulusVisible reports whether the stimulus is currently shown.
func (p *Proctor) StimulusVisible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// Elapsed returns wall-clock time since question entry.
func (p *Proctor) Elapsed() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started.IsZero() {
		return 0
	}
	return time.Since(p.started)
}

// submittableLocked reports whether a terminal submission may happen now.
func (p *Proctor) submittableLocked() bool {
	return (p.phase == PhasePresenting || p.phase == PhaseAnswering) && !p.disposed
}

// transcriptLocked resolves the answer transcript: staged first, then the
// attached recorder's.
func (p *Proctor) transcriptLocked() (capture.Transcript, bool) {
	if p.staged != nil {
		return *p.staged, true
	}
	if p.opts.Recorder != nil {
		return p.opts.Recorder.Transcript()
	}
	return capture.Transcript{}, false
}

// finishLocked transitions to Submitted and cancels all timers. Manual
// and timeout submission are mutually exclusive because both pass
// through here under the lock.
func (p *Proctor) finishLocked() {
	p.phase = PhaseSubmitted
	p.cancelTimersLocked()
}

func (p *Proctor) cancelTimersLocked() {
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
	if p.hide != nil {
		p.hide.Stop()
		p.hide = nil
	}
}

func (p *Proctor) emit(v evaluate.Verdict) {
	if p.opts.OnVerdict != nil {
		p.opts.OnVerdict(v)
	}
}

func (p *Proctor) hideStimulus() {
	p.mu.Lock()
	if p.phase != PhasePresenting || p.disposed {
		p.mu.Unlock()
		return
	}
	p.visible = false
	p.phase = PhaseAnswering
	cb := p.opts.OnStimulusHidden
	p.mu.Unlock()

	if cb != nil {
		cb()
	}
}

func (p *Proctor) countdownLoop(stop chan struct{}) {
	ticker := time.NewTicker(p.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if p.tick() {
				return
			}
		}
	}
}

// tick decrements the countdown once. Returns true when the loop should
// exit because the question was submitted.
func (p *Proctor) tick() bool {
	p.mu.Lock()
	if p.phase == PhaseSubmitted || p.disposed {
		p.mu.Unlock()
		return true
	}

	p.remaining--
	remaining := p.remaining
	cb := p.opts.OnCountdown

	if remaining > 0 {
		p.mu.Unlock()
		if cb != nil {
			cb(remaining)
		}
		return false
	}

	// Countdown reached zero: auto-submit whatever answer state exists.
	t, hasVoice := p.transcriptLocked()
	elapsed := time.Since(p.started)
	p.finishLocked()
	p.mu.Unlock()

	if cb != nil {
		cb(0)
	}
	if hasVoice {
		p.emit(evaluate.EvaluateVoice(t.Answer(), p.q, elapsed))
	} else {
		p.emit(evaluate.Evaluate(nil, p.q, elapsed))
	}
	return true
}
