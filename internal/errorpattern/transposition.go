package errorpattern

import (
	"fmt"
	"strings"
)

// TranspositionThreshold is the minimum number of differing positions for
// a same-length answer to count as a transposition.
const TranspositionThreshold = 2

// TranspositionClassifier matches same-length answers where at least two
// positions differ but each differing character still occurs somewhere in
// the correct answer. This is a per-position membership check, not a full
// anagram check, so some substitutions classify as transpositions. The
// loose threshold is intentional and covered by tests.
type TranspositionClassifier struct{}

func (c *TranspositionClassifier) Name() string { return "transposition" }

func (c *TranspositionClassifier) Classify(input *Input) *Pattern {
	user := []rune(input.UserAnswer)
	correct := []rune(input.CorrectAnswer)
	if len(user) != len(correct) {
		return nil
	}

	transposed := 0
	for i := range user {
		if user[i] != correct[i] && strings.ContainsRune(input.CorrectAnswer, user[i]) {
			transposed++
		}
	}
	if transposed < TranspositionThreshold {
		return nil
	}

	return &Pattern{
		Type:       TypeTransposition,
		Detail:     fmt.Sprintf("Transposed letters in %s", input.CorrectAnswer),
		QuestionID: input.QuestionID,
	}
}
