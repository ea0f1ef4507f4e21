package errorpattern

import "github.com/anika/lexiscreen/internal/question"

// Type labels how an incorrect answer deviated from the correct one.
type Type string

const (
	TypeReversal      Type = "reversal"
	TypeTransposition Type = "transposition"
	TypeOmission      Type = "omission"
	TypeAddition      Type = "addition"
	TypeMagnitude     Type = "magnitude"
	TypeSequence      Type = "sequence"
	TypeSubstitution  Type = "substitution"
)

// Pattern is the diagnostic output for one incorrect answer.
type Pattern struct {
	Type       Type   `json:"type"`
	Detail     string `json:"detail"`
	QuestionID string `json:"questionId"`
}

// Input holds the context for classification. Callers only build an Input
// when they already know the answer is incorrect.
type Input struct {
	UserAnswer    string
	CorrectAnswer string
	Domain        question.Domain
	QuestionID    string
}
