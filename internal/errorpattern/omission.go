package errorpattern

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// OmissionClassifier matches answers that dropped characters: strictly
// shorter than the correct answer and a contiguous substring of it.
type OmissionClassifier struct{}

func (c *OmissionClassifier) Name() string { return "omission" }

func (c *OmissionClassifier) Classify(input *Input) *Pattern {
	shorter := utf8.RuneCountInString(input.UserAnswer) < utf8.RuneCountInString(input.CorrectAnswer)
	if !shorter || !strings.Contains(input.CorrectAnswer, input.UserAnswer) {
		return nil
	}
	return &Pattern{
		Type:       TypeOmission,
		Detail:     fmt.Sprintf("Omitted characters from %s", input.CorrectAnswer),
		QuestionID: input.QuestionID,
	}
}

// AdditionClassifier matches answers that inserted characters: strictly
// longer than the correct answer and containing it contiguously.
type AdditionClassifier struct{}

func (c *AdditionClassifier) Name() string { return "addition" }

func (c *AdditionClassifier) Classify(input *Input) *Pattern {
	longer := utf8.RuneCountInString(input.UserAnswer) > utf8.RuneCountInString(input.CorrectAnswer)
	if !longer || !strings.Contains(input.UserAnswer, input.CorrectAnswer) {
		return nil
	}
	return &Pattern{
		Type:       TypeAddition,
		Detail:     fmt.Sprintf("Added extra characters to %s", input.CorrectAnswer),
		QuestionID: input.QuestionID,
	}
}
