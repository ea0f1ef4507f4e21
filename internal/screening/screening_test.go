package screening

import (
	"context"
	"testing"
	"time"

	"github.com/anika/lexiscreen/internal/errorpattern"
	"github.com/anika/lexiscreen/internal/evaluate"
	"github.com/anika/lexiscreen/internal/question"
	"github.com/anika/lexiscreen/internal/store"
)

func testBattery() []question.Question {
	return []question.Question{
		{ID: "q1", Stimulus: question.Stimulus{Text: "was"}, Answer: question.Answer{"was"}, Domain: question.DomainPhonological},
		{ID: "q2", Stimulus: question.Stimulus{Text: "12"}, Answer: question.Answer{"12"}, Domain: question.DomainNumberSense},
		{ID: "q3", Stimulus: question.Stimulus{Text: "cat"}, Answer: question.Answer{"cat"}, Domain: question.DomainPhonological},
	}
}

func verdict(id string, correct bool) evaluate.Verdict {
	return evaluate.Verdict{
		QuestionID:   id,
		RawAnswer:    "x",
		ResponseTime: 2 * time.Second,
		IsCorrect:    correct,
	}
}

func TestAdministrationWalksBatteryInOrder(t *testing.T) {
	a := New("mia", "ms-garcia", "core", testBattery())

	cur, total := a.Progress()
	if cur != 1 || total != 3 {
		t.Fatalf("progress = %d/%d, want 1/3", cur, total)
	}

	for _, want := range []string{"q1", "q2", "q3"} {
		q := a.Current()
		if q == nil {
			t.Fatalf("expected question %s, got nil", want)
		}
		if q.ID != want {
			t.Fatalf("current = %s, want %s", q.ID, want)
		}
		a.Record(verdict(q.ID, true))
	}

	if !a.Done() {
		t.Error("expected administration to be done")
	}
	if a.Current() != nil {
		t.Error("expected nil current question after battery exhausted")
	}
}

func TestRecordDropsStaleVerdicts(t *testing.T) {
	a := New("mia", "ms-garcia", "core", testBattery())

	// A verdict for a question that is not current must not advance.
	a.Record(verdict("q3", true))
	if len(a.Verdicts()) != 0 {
		t.Fatalf("expected no verdicts, got %d", len(a.Verdicts()))
	}
	if q := a.Current(); q == nil || q.ID != "q1" {
		t.Fatalf("current = %v, want q1", q)
	}
}

func TestFinishComputesPercentCorrect(t *testing.T) {
	a := New("mia", "ms-garcia", "core", testBattery())
	a.Record(verdict("q1", true))
	a.Record(verdict("q2", false))
	a.Record(verdict("q3", true))

	s := a.Finish()
	if s.ID == "" {
		t.Error("expected a non-empty session ID")
	}
	if s.StudentID != "mia" || s.ConductedBy != "ms-garcia" {
		t.Errorf("identity = %s/%s, want mia/ms-garcia", s.StudentID, s.ConductedBy)
	}
	want := 2.0 / 3.0 * 100
	if s.OverallScore != want {
		t.Errorf("overall score = %v, want %v", s.OverallScore, want)
	}
	if s.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be stamped")
	}
}

func TestFinishScoresAbandonedSessionOverFullBattery(t *testing.T) {
	a := New("mia", "ms-garcia", "core", testBattery())
	a.Record(verdict("q1", true))

	s := a.Finish()
	want := 1.0 / 3.0 * 100
	if s.OverallScore != want {
		t.Errorf("overall score = %v, want %v", s.OverallScore, want)
	}
}

func TestScoreEmptyBattery(t *testing.T) {
	if got := Score(nil, 0); got != 0 {
		t.Errorf("score = %v, want 0", got)
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := New("mia", "ms-garcia", "core", testBattery())
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		s := a.Finish()
		if seen[s.ID] {
			t.Fatalf("duplicate session ID %s", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestPersistRoundTrip(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()
	repo := s.SessionRepo()
	ctx := context.Background()

	a := New("mia", "ms-garcia", "core", testBattery())
	a.Record(evaluate.Verdict{
		QuestionID:   "q1",
		RawAnswer:    "saw",
		ResponseTime: 1500 * time.Millisecond,
		IsCorrect:    false,
		ErrorPattern: &errorpattern.Pattern{
			Type:       errorpattern.TypeReversal,
			Detail:     "Reversed was as saw",
			QuestionID: "q1",
		},
	})
	a.Record(verdict("q2", true))
	a.Record(verdict("q3", true))

	sess := a.Finish()
	if err := Persist(ctx, repo, sess); err != nil {
		t.Fatalf("persist: %v", err)
	}

	rows, err := repo.ListByStudent(ctx, "mia", "ms-garcia")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("sessions = %d, want 1", len(rows))
	}

	row := rows[0]
	if row.SessionID != sess.ID {
		t.Errorf("session id = %q, want %q", row.SessionID, sess.ID)
	}
	if len(row.Verdicts) != 3 {
		t.Fatalf("verdicts = %d, want 3", len(row.Verdicts))
	}
	v := row.Verdicts[0]
	if v.ErrorType != "reversal" {
		t.Errorf("error type = %q, want %q", v.ErrorType, "reversal")
	}
	if v.ErrorDetail != "Reversed was as saw" {
		t.Errorf("error detail = %q", v.ErrorDetail)
	}
	if v.ResponseSecs != 1.5 {
		t.Errorf("response secs = %v, want 1.5", v.ResponseSecs)
	}
}

func TestPersistRejectsUnstampedSession(t *testing.T) {
	err := Persist(context.Background(), nil, Session{})
	if err != ErrNotFinished {
		t.Fatalf("err = %v, want ErrNotFinished", err)
	}
}
