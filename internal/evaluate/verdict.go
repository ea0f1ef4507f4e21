package evaluate

import (
	"time"

	"github.com/anika/lexiscreen/internal/errorpattern"
)

// TimeoutAnswer is the sentinel recorded when the countdown expired with
// no answer to evaluate.
const TimeoutAnswer = "timeout"

// Verdict is the scored outcome of one answered question. It is created
// exactly once per question per session and never mutated afterward.
type Verdict struct {
	// QuestionID links the verdict back to its question.
	QuestionID string `json:"questionId"`

	// RawAnswer is the submitted answer, or TimeoutAnswer.
	RawAnswer string `json:"rawAnswer"`

	// ResponseTime is wall-clock time from question entry to submission.
	// Never negative.
	ResponseTime time.Duration `json:"-"`

	// IsCorrect reports whether the answer matched the canonical form.
	IsCorrect bool `json:"isCorrect"`

	// ErrorPattern is set only when IsCorrect is false and classification
	// ran. Timeout verdicts carry none.
	ErrorPattern *errorpattern.Pattern `json:"errorPattern,omitempty"`
}

// ResponseSeconds returns the response time in seconds for reporting and
// persistence.
func (v *Verdict) ResponseSeconds() float64 {
	return v.ResponseTime.Seconds()
}

// TimedOut reports whether this verdict came from an expired countdown
// with no answer.
func (v *Verdict) TimedOut() bool {
	return v.RawAnswer == TimeoutAnswer
}
