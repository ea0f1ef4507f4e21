package errorpattern

import (
	"testing"

	"github.com/anika/lexiscreen/internal/question"
)

func TestDetect_Reversal(t *testing.T) {
	p := Detect("saw", "was", question.DomainPhonological, "q1")

	if p.Type != TypeReversal {
		t.Errorf("Type = %q, want %q", p.Type, TypeReversal)
	}
	if p.Detail != "Reversed was as saw" {
		t.Errorf("Detail = %q", p.Detail)
	}
	if p.QuestionID != "q1" {
		t.Errorf("QuestionID = %q, want q1", p.QuestionID)
	}
}

func TestDetect_ReversalPrecedesTransposition(t *testing.T) {
	// "saw" vs "was" also satisfies the transposition rule (two differing
	// positions, both characters present in the correct answer), but
	// reversal sits earlier in the cascade.
	p := Detect("saw", "was", question.DomainPhonological, "q1")
	if p.Type != TypeReversal {
		t.Errorf("Type = %q, want %q", p.Type, TypeReversal)
	}
}

func TestDetect_Transposition(t *testing.T) {
	// Adjacent swap of 'p' and 'h' in "elephant": two positions differ and
	// both characters occur in the correct answer.
	p := Detect("elehpant", "elephant", question.DomainPhonological, "q2")
	if p.Type != TypeTransposition {
		t.Errorf("Type = %q, want %q", p.Type, TypeTransposition)
	}
	if p.Detail != "Transposed letters in elephant" {
		t.Errorf("Detail = %q", p.Detail)
	}
}

func TestDetect_TranspositionRequiresTwoPositions(t *testing.T) {
	// Single differing position falls through to substitution even though
	// the character occurs elsewhere in the correct answer.
	p := Detect("datd", "data", question.DomainPhonological, "q2")
	if p.Type != TypeSubstitution {
		t.Errorf("Type = %q, want %q", p.Type, TypeSubstitution)
	}
}

func TestDetect_Omission(t *testing.T) {
	p := Detect("elephnt", "elephant", question.DomainPhonological, "q3")
	if p.Type != TypeSubstitution {
		// "elephnt" is not a contiguous substring, so it is not an omission.
		t.Errorf("Type = %q, want %q", p.Type, TypeSubstitution)
	}

	p = Detect("eleph", "elephant", question.DomainPhonological, "q3")
	if p.Type != TypeOmission {
		t.Errorf("Type = %q, want %q", p.Type, TypeOmission)
	}
	if p.Detail != "Omitted characters from elephant" {
		t.Errorf("Detail = %q", p.Detail)
	}
}

func TestDetect_Addition(t *testing.T) {
	p := Detect("elephantt", "elephant", question.DomainPhonological, "q4")
	if p.Type != TypeAddition {
		t.Errorf("Type = %q, want %q", p.Type, TypeAddition)
	}
	if p.Detail != "Added extra characters to elephant" {
		t.Errorf("Detail = %q", p.Detail)
	}
}

func TestDetect_Magnitude(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		correct string
		domain  question.Domain
		want    Type
	}{
		{"number sense", "47", "74", question.DomainNumberSense, TypeReversal},
		{"differing values", "12", "20", question.DomainNumberSense, TypeMagnitude},
		{"approximate number", "8", "12", question.DomainApproximateNumber, TypeMagnitude},
		{"non-numeric domain falls through", "12", "20", question.DomainPhonological, TypeSubstitution},
		{"unparseable answer falls through", "many", "12", question.DomainApproximateNumber, TypeSubstitution},
		{"units stripped", "12 dots", "20", question.DomainApproximateNumber, TypeMagnitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Detect(tt.user, tt.correct, tt.domain, "q5")
			if p.Type != tt.want {
				t.Errorf("Detect(%q, %q, %s) = %q, want %q",
					tt.user, tt.correct, tt.domain, p.Type, tt.want)
			}
		})
	}
}

func TestDetect_SequenceCatchAll(t *testing.T) {
	p := Detect("14", "10", question.DomainSequentialLogic, "q6")
	if p.Type != TypeSequence {
		t.Errorf("Type = %q, want %q", p.Type, TypeSequence)
	}
	if p.Detail != "Sequence pattern error on q6" {
		t.Errorf("Detail = %q", p.Detail)
	}
}

func TestDetect_SubstitutionFallback(t *testing.T) {
	p := Detect("cat", "dog", question.DomainPhonological, "q7")
	if p.Type != TypeSubstitution {
		t.Errorf("Type = %q, want %q", p.Type, TypeSubstitution)
	}
	if p.Detail != "Substituted dog with cat" {
		t.Errorf("Detail = %q", p.Detail)
	}
}

func TestDetect_AlwaysReturnsPattern(t *testing.T) {
	// The fallback guarantees a pattern for any incorrect answer,
	// including empty strings.
	p := Detect("", "word", question.DomainPhonological, "q8")
	if p.Type != TypeOmission {
		// "" is shorter than "word" and trivially a substring of it.
		t.Errorf("Type = %q, want %q", p.Type, TypeOmission)
	}
}

func TestDefaultClassifiers_Order(t *testing.T) {
	want := []string{
		"reversal", "transposition", "omission", "addition",
		"magnitude", "sequence", "substitution",
	}
	got := DefaultClassifiers()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.Name() != want[i] {
			t.Errorf("classifier[%d] = %q, want %q", i, c.Name(), want[i])
		}
	}
}
