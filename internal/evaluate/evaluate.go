package evaluate

import (
	"strings"
	"time"

	"github.com/anika/lexiscreen/internal/errorpattern"
	"github.com/anika/lexiscreen/internal/question"
)

// Evaluate scores a text or choice answer against the question's canonical
// correct form using exact, case-sensitive equality. Choice questions only
// ever present exact option strings, so no normalization applies.
//
// A nil raw answer means the countdown expired with nothing to score: the
// verdict carries the timeout sentinel, is incorrect, and no error-pattern
// classification is attempted.
func Evaluate(raw *string, q *question.Question, elapsed time.Duration) Verdict {
	v := Verdict{
		QuestionID:   q.ID,
		ResponseTime: clamp(elapsed),
	}

	if raw == nil {
		v.RawAnswer = TimeoutAnswer
		return v
	}

	correct := q.Answer.Canonical()
	v.RawAnswer = *raw
	v.IsCorrect = *raw == correct

	if !v.IsCorrect {
		p := errorpattern.Detect(*raw, correct, q.Domain, q.ID)
		v.ErrorPattern = &p
	}
	return v
}

// EvaluateVoice scores a transcribed spoken answer with a tolerant
// comparison: both sides are lower-cased, trimmed, and internal whitespace
// collapsed, and either side containing the other counts as correct. This
// accommodates transcription padding and truncation.
//
// The transcript may be the pipeline's recorded-but-not-transcribed
// fallback; it is treated like any other answer string and will normally
// score incorrect.
func EvaluateVoice(transcript string, q *question.Question, elapsed time.Duration) Verdict {
	v := Verdict{
		QuestionID:   q.ID,
		RawAnswer:    transcript,
		ResponseTime: clamp(elapsed),
	}

	user := normalizeSpeech(transcript)
	correct := normalizeSpeech(q.Answer.Canonical())

	// An empty transcript carries nothing to compare or classify.
	if user == "" {
		return v
	}

	v.IsCorrect = user == correct ||
		strings.Contains(user, correct) ||
		strings.Contains(correct, user)

	if !v.IsCorrect {
		p := errorpattern.Detect(user, correct, q.Domain, q.ID)
		v.ErrorPattern = &p
	}
	return v
}

// normalizeSpeech lower-cases, trims, and collapses internal whitespace.
func normalizeSpeech(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func clamp(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
