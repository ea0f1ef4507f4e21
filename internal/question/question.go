package question

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultTimeLimitSecs is the per-question countdown applied when a
// question does not declare its own time limit.
const DefaultTimeLimitSecs = 30

// Question is one screening item as supplied by the test bank.
// Definitions are immutable; the engine never writes back to a Question.
type Question struct {
	// ID uniquely identifies the question within its battery.
	ID string `json:"id"`

	// Stimulus is the prompt material shown (or read) to the student:
	// a single word, a digit string, a token sequence, or a passage.
	Stimulus Stimulus `json:"stimulus"`

	// Instruction is the task description displayed with the stimulus,
	// e.g. "Read this word aloud" or "Which number is larger?"
	Instruction string `json:"instruction"`

	// Options holds the ordered answer choices. Empty for open or
	// voice-response questions.
	Options []string `json:"options,omitempty"`

	// Answer is the correct answer: a single string or an ordered token
	// list whose space-joined form is the canonical answer.
	Answer Answer `json:"correctAnswer"`

	// TimeLimitSecs is the countdown for this question in seconds.
	// Zero means DefaultTimeLimitSecs.
	TimeLimitSecs int `json:"timeLimit,omitempty"`

	// Domain is the cognitive domain this question probes.
	Domain Domain `json:"domain"`

	// StimulusDisplayMS, when positive, is how long the stimulus stays
	// visible before being hidden (timed-exposure tasks such as dot
	// estimation). Zero means the stimulus stays visible.
	StimulusDisplayMS int `json:"stimulusDisplayTime,omitempty"`
}

// TimeLimit returns the effective countdown in seconds.
func (q *Question) TimeLimit() int {
	if q.TimeLimitSecs > 0 {
		return q.TimeLimitSecs
	}
	return DefaultTimeLimitSecs
}

// VoiceResponse reports whether this question is answered by speaking
// rather than by picking an option.
func (q *Question) VoiceResponse() bool {
	return len(q.Options) == 0
}

// TimedExposure reports whether the stimulus is hidden after a display window.
func (q *Question) TimedExposure() bool {
	return q.StimulusDisplayMS > 0
}

// Stimulus is the prompt material for one question. Exactly one of Text
// or Tokens is populated.
type Stimulus struct {
	// Text is a single word, digit string, or passage.
	Text string

	// Tokens is an ordered token sequence (e.g. a digit span).
	Tokens []string
}

// Display returns the stimulus as a single presentable string.
func (s Stimulus) Display() string {
	if len(s.Tokens) > 0 {
		return strings.Join(s.Tokens, " ")
	}
	return s.Text
}

// UnmarshalJSON accepts either a bare string or an array of tokens,
// matching the two stimulus forms the bank format allows.
func (s *Stimulus) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		s.Text = text
		s.Tokens = nil
		return nil
	}
	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return fmt.Errorf("stimulus must be a string or an array of strings")
	}
	s.Text = ""
	s.Tokens = tokens
	return nil
}

// MarshalJSON emits the compact form: a string when Text is set,
// otherwise the token array.
func (s Stimulus) MarshalJSON() ([]byte, error) {
	if len(s.Tokens) > 0 {
		return json.Marshal(s.Tokens)
	}
	return json.Marshal(s.Text)
}
