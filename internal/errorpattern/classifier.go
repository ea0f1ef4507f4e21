package errorpattern

import "github.com/anika/lexiscreen/internal/question"

// Classifier is one rule in the diagnostic cascade.
// Returns nil when the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *Input) *Pattern
}

// DefaultClassifiers returns the cascade in diagnostic priority order:
// structural errors (reversal, transposition) before subset/superset errors
// (omission, addition), then domain-specific semantic errors (magnitude,
// sequence), with substitution as the catch-all. The order itself is part
// of the contract; reordering changes which diagnosis an answer receives.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&ReversalClassifier{},
		&TranspositionClassifier{},
		&OmissionClassifier{},
		&AdditionClassifier{},
		&MagnitudeClassifier{},
		&SequenceClassifier{},
		&SubstitutionClassifier{},
	}
}

// RunClassifiers executes the cascade in order and returns the first match.
// With the default cascade the substitution fallback guarantees a non-nil
// result.
func RunClassifiers(classifiers []Classifier, input *Input) *Pattern {
	for _, c := range classifiers {
		if p := c.Classify(input); p != nil {
			return p
		}
	}
	return nil
}

// Detect classifies an incorrect answer against the correct one using the
// default cascade.
func Detect(userAnswer, correctAnswer string, domain question.Domain, questionID string) Pattern {
	p := RunClassifiers(DefaultClassifiers(), &Input{
		UserAnswer:    userAnswer,
		CorrectAnswer: correctAnswer,
		Domain:        domain,
		QuestionID:    questionID,
	})
	return *p
}
