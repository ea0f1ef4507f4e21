package question

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Answer is a question's correct answer. Single-string answers are stored
// as a one-element slice; token-list answers keep their order.
type Answer []string

// Canonical returns the canonical comparison form: the single string
// as-is, or the tokens joined with single spaces.
func (a Answer) Canonical() string {
	return strings.Join(a, " ")
}

// UnmarshalJSON accepts either a bare string or an array of tokens.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = Answer{single}
		return nil
	}
	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return fmt.Errorf("correctAnswer must be a string or an array of strings")
	}
	*a = Answer(tokens)
	return nil
}

// MarshalJSON emits a bare string for single answers, an array otherwise.
func (a Answer) MarshalJSON() ([]byte, error) {
	if len(a) == 1 {
		return json.Marshal(a[0])
	}
	return json.Marshal([]string(a))
}
