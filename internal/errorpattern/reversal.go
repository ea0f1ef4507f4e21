package errorpattern

import "fmt"

// ReversalClassifier matches answers that are the exact character-reversed
// form of the correct answer, e.g. "saw" for "was" or "43" for "34".
type ReversalClassifier struct{}

func (c *ReversalClassifier) Name() string { return "reversal" }

func (c *ReversalClassifier) Classify(input *Input) *Pattern {
	if reverse(input.UserAnswer) != input.CorrectAnswer {
		return nil
	}
	return &Pattern{
		Type:       TypeReversal,
		Detail:     fmt.Sprintf("Reversed %s as %s", input.CorrectAnswer, input.UserAnswer),
		QuestionID: input.QuestionID,
	}
}

// reverse returns s with its runes in reverse order.
func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
