package errorpattern

import "fmt"

// SequenceClassifier is the catch-all for sequential-logic questions:
// any wrong answer that reached this point is treated as a sequence
// pattern error.
type SequenceClassifier struct{}

func (c *SequenceClassifier) Name() string { return "sequence" }

func (c *SequenceClassifier) Classify(input *Input) *Pattern {
	if !input.Domain.IsSequential() {
		return nil
	}
	return &Pattern{
		Type:       TypeSequence,
		Detail:     fmt.Sprintf("Sequence pattern error on %s", input.QuestionID),
		QuestionID: input.QuestionID,
	}
}

// SubstitutionClassifier is the default fallback: the answer replaced the
// correct one with unrelated content. Always matches.
type SubstitutionClassifier struct{}

func (c *SubstitutionClassifier) Name() string { return "substitution" }

func (c *SubstitutionClassifier) Classify(input *Input) *Pattern {
	return &Pattern{
		Type:       TypeSubstitution,
		Detail:     fmt.Sprintf("Substituted %s with %s", input.CorrectAnswer, input.UserAnswer),
		QuestionID: input.QuestionID,
	}
}
