package errorpattern

import (
	"fmt"
	"strconv"
	"strings"
)

// MagnitudeClassifier matches numeric-domain answers whose parsed value
// differs from the correct one, e.g. choosing 47 when the answer is 74.
// Only applies to numeric-reasoning domains.
type MagnitudeClassifier struct{}

func (c *MagnitudeClassifier) Name() string { return "magnitude" }

func (c *MagnitudeClassifier) Classify(input *Input) *Pattern {
	if !input.Domain.IsNumeric() {
		return nil
	}

	userNum, uok := parseNumeric(input.UserAnswer)
	correctNum, cok := parseNumeric(input.CorrectAnswer)
	if !uok || !cok || userNum == correctNum {
		return nil
	}

	return &Pattern{
		Type:       TypeMagnitude,
		Detail:     fmt.Sprintf("Magnitude error: chose %s instead of %s", input.UserAnswer, input.CorrectAnswer),
		QuestionID: input.QuestionID,
	}
}

// parseNumeric strips everything except digits, sign, and decimal point,
// then parses the remainder as a float.
func parseNumeric(s string) (float64, bool) {
	stripped := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if stripped == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
