package screening

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/anika/lexiscreen/internal/evaluate"
	"github.com/anika/lexiscreen/internal/question"
	"github.com/anika/lexiscreen/internal/store"
)

// ErrNotFinished is returned when a session is persisted before every
// question has a verdict.
var ErrNotFinished = errors.New("screening: administration not finished")

// Session is one completed administration of a battery.
type Session struct {
	ID           string
	StudentID    string
	ConductedBy  string
	Battery      string
	Verdicts     []evaluate.Verdict
	OverallScore float64
	CreatedAt    time.Time
}

// Administration walks a student through an ordered battery, one
// question at a time, collecting the verdict each question produces.
// It owns no timers: the per-question lifecycle belongs to the proctor,
// which reports back through Record.
type Administration struct {
	studentID   string
	conductedBy string
	battery     string
	questions   []question.Question

	index    int
	verdicts []evaluate.Verdict
}

// New starts an administration over the given battery. The battery order
// is the presentation order.
func New(studentID, conductedBy, battery string, questions []question.Question) *Administration {
	return &Administration{
		studentID:   studentID,
		conductedBy: conductedBy,
		battery:     battery,
		questions:   questions,
		verdicts:    make([]evaluate.Verdict, 0, len(questions)),
	}
}

// Current returns the question awaiting an answer, or nil when the
// battery is exhausted.
func (a *Administration) Current() *question.Question {
	if a.index >= len(a.questions) {
		return nil
	}
	return &a.questions[a.index]
}

// Progress returns the 1-based position of the current question and
// the battery size.
func (a *Administration) Progress() (current, total int) {
	pos := a.index + 1
	if pos > len(a.questions) {
		pos = len(a.questions)
	}
	return pos, len(a.questions)
}

// Record accepts the terminal verdict for the current question and
// advances to the next one. Verdicts for stale questions are dropped.
func (a *Administration) Record(v evaluate.Verdict) {
	cur := a.Current()
	if cur == nil || v.QuestionID != cur.ID {
		return
	}
	a.verdicts = append(a.verdicts, v)
	a.index++
}

// Done reports whether every question has a verdict.
func (a *Administration) Done() bool {
	return a.index >= len(a.questions)
}

// Verdicts returns the verdicts collected so far, in battery order.
func (a *Administration) Verdicts() []evaluate.Verdict {
	return a.verdicts
}

// Finish stamps the session with a fresh ID and the overall score.
// Callable at any point; an abandoned administration is scored over the
// full battery, so unanswered questions count against the student the
// same way timeouts do.
func (a *Administration) Finish() Session {
	return Session{
		ID:           uuid.New().String(),
		StudentID:    a.studentID,
		ConductedBy:  a.conductedBy,
		Battery:      a.battery,
		Verdicts:     a.verdicts,
		OverallScore: Score(a.verdicts, len(a.questions)),
		CreatedAt:    time.Now().UTC(),
	}
}

// Score computes the overall score as the percentage of the battery
// answered correctly. total guards against division by zero and lets an
// abandoned session score over the full battery length.
func Score(verdicts []evaluate.Verdict, total int) float64 {
	if total <= 0 {
		return 0
	}
	correct := 0
	for _, v := range verdicts {
		if v.IsCorrect {
			correct++
		}
	}
	return float64(correct) / float64(total) * 100
}

// Persist writes a finished session through the repository, converting
// verdicts to their stored form.
func Persist(ctx context.Context, repo store.SessionRepo, s Session) error {
	if s.ID == "" {
		return ErrNotFinished
	}

	data := store.SessionData{
		SessionID:    s.ID,
		StudentID:    s.StudentID,
		ConductedBy:  s.ConductedBy,
		Battery:      s.Battery,
		OverallScore: s.OverallScore,
		Verdicts:     toRecords(s.Verdicts),
	}
	if err := repo.Save(ctx, data); err != nil {
		return fmt.Errorf("persist session %s: %w", s.ID, err)
	}
	return nil
}

func toRecords(verdicts []evaluate.Verdict) []store.VerdictData {
	records := make([]store.VerdictData, 0, len(verdicts))
	for _, v := range verdicts {
		rec := store.VerdictData{
			QuestionID:   v.QuestionID,
			RawAnswer:    v.RawAnswer,
			ResponseSecs: v.ResponseSeconds(),
			Correct:      v.IsCorrect,
		}
		if v.ErrorPattern != nil {
			rec.ErrorType = string(v.ErrorPattern.Type)
			rec.ErrorDetail = v.ErrorPattern.Detail
		}
		records = append(records, rec)
	}
	return records
}
