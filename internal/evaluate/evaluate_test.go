package evaluate

import (
	"strings"
	"testing"
	"time"

	"github.com/anika/lexiscreen/internal/errorpattern"
	"github.com/anika/lexiscreen/internal/question"
)

func wordQuestion(id, word string) *question.Question {
	return &question.Question{
		ID:          id,
		Stimulus:    question.Stimulus{Text: word},
		Instruction: "Read this word aloud",
		Answer:      question.Answer{word},
		Domain:      question.DomainPhonological,
	}
}

func TestEvaluate_Correct(t *testing.T) {
	q := wordQuestion("q1", "was")
	answer := "was"

	v := Evaluate(&answer, q, 3*time.Second)

	if !v.IsCorrect {
		t.Error("expected correct verdict")
	}
	if v.ErrorPattern != nil {
		t.Error("correct verdicts must not carry an error pattern")
	}
	if v.RawAnswer != "was" {
		t.Errorf("RawAnswer = %q", v.RawAnswer)
	}
	if v.ResponseSeconds() != 3 {
		t.Errorf("ResponseSeconds = %v, want 3", v.ResponseSeconds())
	}
}

func TestEvaluate_CaseSensitive(t *testing.T) {
	q := wordQuestion("q1", "was")
	answer := "Was"

	v := Evaluate(&answer, q, time.Second)

	if v.IsCorrect {
		t.Error("text comparison must be case-sensitive")
	}
	if v.ErrorPattern == nil {
		t.Fatal("incorrect verdict with an answer must carry a pattern")
	}
}

func TestEvaluate_Incorrect_Classifies(t *testing.T) {
	q := wordQuestion("q1", "was")
	answer := "saw"

	v := Evaluate(&answer, q, time.Second)

	if v.IsCorrect {
		t.Error("expected incorrect verdict")
	}
	if v.ErrorPattern == nil || v.ErrorPattern.Type != errorpattern.TypeReversal {
		t.Errorf("ErrorPattern = %+v, want reversal", v.ErrorPattern)
	}
}

func TestEvaluate_Timeout(t *testing.T) {
	q := wordQuestion("q1", "was")

	for _, elapsed := range []time.Duration{0, 5 * time.Second, 30 * time.Second} {
		v := Evaluate(nil, q, elapsed)

		if v.IsCorrect {
			t.Error("timeout must be incorrect")
		}
		if v.RawAnswer != TimeoutAnswer {
			t.Errorf("RawAnswer = %q, want %q", v.RawAnswer, TimeoutAnswer)
		}
		if v.ErrorPattern != nil {
			t.Error("timeout verdicts must not be classified")
		}
		if !v.TimedOut() {
			t.Error("TimedOut() = false")
		}
	}
}

func TestEvaluate_TokenListAnswer(t *testing.T) {
	q := &question.Question{
		ID:     "span1",
		Answer: question.Answer{"3", "9", "1", "7"},
		Domain: question.DomainWorkingMemory,
	}
	answer := "3 9 1 7"

	v := Evaluate(&answer, q, time.Second)
	if !v.IsCorrect {
		t.Error("joined token form must match the canonical answer")
	}
}

func TestEvaluate_NegativeElapsedClamped(t *testing.T) {
	q := wordQuestion("q1", "was")
	answer := "was"

	v := Evaluate(&answer, q, -time.Second)
	if v.ResponseTime != 0 {
		t.Errorf("ResponseTime = %v, want 0", v.ResponseTime)
	}
}

func TestEvaluateVoice_Tolerant(t *testing.T) {
	q := wordQuestion("q1", "elephant")

	tests := []struct {
		name       string
		transcript string
		correct    bool
	}{
		{"exact", "elephant", true},
		{"case and padding", "  Elephant ", true},
		{"transcript contains answer", "the elephant", true},
		{"answer contains transcript", "elepha", true},
		{"collapsed whitespace", "ele  phant", false},
		{"wrong word", "umbrella", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := EvaluateVoice(tt.transcript, q, time.Second)
			if v.IsCorrect != tt.correct {
				t.Errorf("IsCorrect = %v, want %v", v.IsCorrect, tt.correct)
			}
		})
	}
}

func TestEvaluateVoice_SubstringBothDirections(t *testing.T) {
	q := &question.Question{
		ID:     "q1",
		Answer: question.Answer{"the red ball"},
		Domain: question.DomainPhonological,
	}

	// Truncated transcription: the correct answer contains the transcript.
	v := EvaluateVoice("red ball", q, time.Second)
	if !v.IsCorrect {
		t.Error("truncated transcript should score correct")
	}
}

func TestEvaluateVoice_FallbackSentinelScoresIncorrect(t *testing.T) {
	q := wordQuestion("q1", "was")

	v := EvaluateVoice("Audio recorded but not transcribed", q, 4*time.Second)

	if v.IsCorrect {
		t.Error("fallback sentinel must not match a real answer")
	}
	if v.ErrorPattern == nil {
		t.Fatal("fallback sentinel is still an answer string and classifies")
	}
	if v.ErrorPattern.Type != errorpattern.TypeSubstitution {
		t.Errorf("ErrorPattern.Type = %q, want substitution", v.ErrorPattern.Type)
	}
}

func TestEvaluateVoice_ClassifiesNormalizedStrings(t *testing.T) {
	q := wordQuestion("q1", "was")

	v := EvaluateVoice("SAW", q, time.Second)

	if v.IsCorrect {
		t.Error("expected incorrect verdict")
	}
	if v.ErrorPattern == nil || v.ErrorPattern.Type != errorpattern.TypeReversal {
		t.Errorf("ErrorPattern = %+v, want reversal of normalized strings", v.ErrorPattern)
	}
}

func TestEvaluateVoice_EmptyTranscript(t *testing.T) {
	q := wordQuestion("q1", "was")

	v := EvaluateVoice("   ", q, time.Second)

	if v.IsCorrect {
		t.Error("empty transcript cannot be correct")
	}
	if v.ErrorPattern != nil {
		t.Error("nothing to classify for an empty transcript")
	}
}

func TestNormalizeSpeech(t *testing.T) {
	got := normalizeSpeech("  The   Red\tBall ")
	if got != "the red ball" {
		t.Errorf("normalizeSpeech = %q", got)
	}
	if !strings.Contains(got, "red") {
		t.Errorf("unexpected normalization: %q", got)
	}
}
