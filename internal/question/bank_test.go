package question

import (
	"strings"
	"testing"
)

const validBankJSON = `{
	"name": "test-battery",
	"questions": [
		{
			"id": "q1",
			"stimulus": "was",
			"instruction": "Read this word aloud",
			"correctAnswer": "was",
			"domain": "phonological"
		},
		{
			"id": "q2",
			"stimulus": ["3", "9", "1", "7"],
			"instruction": "Repeat the numbers in order",
			"correctAnswer": ["3", "9", "1", "7"],
			"domain": "working-memory",
			"timeLimit": 20,
			"stimulusDisplayTime": 4000
		},
		{
			"id": "q3",
			"stimulus": "47 or 74",
			"instruction": "Which number is larger?",
			"options": ["47", "74"],
			"correctAnswer": "74",
			"domain": "number-sense",
			"timeLimit": 15
		}
	]
}`

func TestLoadBank(t *testing.T) {
	bank, err := LoadBank(strings.NewReader(validBankJSON))
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}

	if bank.Name != "test-battery" {
		t.Errorf("name = %q, want test-battery", bank.Name)
	}
	if len(bank.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(bank.Questions))
	}

	q1 := bank.Questions[0]
	if q1.Stimulus.Display() != "was" {
		t.Errorf("q1 stimulus = %q, want was", q1.Stimulus.Display())
	}
	if !q1.VoiceResponse() {
		t.Error("q1 should be voice-response (no options)")
	}
	if q1.TimeLimit() != DefaultTimeLimitSecs {
		t.Errorf("q1 time limit = %d, want default %d", q1.TimeLimit(), DefaultTimeLimitSecs)
	}

	q2 := bank.Questions[1]
	if q2.Stimulus.Display() != "3 9 1 7" {
		t.Errorf("q2 stimulus = %q, want 3 9 1 7", q2.Stimulus.Display())
	}
	if q2.Answer.Canonical() != "3 9 1 7" {
		t.Errorf("q2 canonical answer = %q, want 3 9 1 7", q2.Answer.Canonical())
	}
	if !q2.TimedExposure() {
		t.Error("q2 should be timed-exposure")
	}

	q3 := bank.Questions[2]
	if q3.VoiceResponse() {
		t.Error("q3 has options, should not be voice-response")
	}
	if q3.TimeLimit() != 15 {
		t.Errorf("q3 time limit = %d, want 15", q3.TimeLimit())
	}
}

func TestLoadBankRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not JSON", `{`},
		{"missing name", `{"questions":[{"id":"q1","stimulus":"a","instruction":"b","correctAnswer":"a","domain":"phonological"}]}`},
		{"empty questions", `{"name":"x","questions":[]}`},
		{"unknown domain", `{"name":"x","questions":[{"id":"q1","stimulus":"a","instruction":"b","correctAnswer":"a","domain":"astrology"}]}`},
		{"missing answer", `{"name":"x","questions":[{"id":"q1","stimulus":"a","instruction":"b","domain":"phonological"}]}`},
		{"single option", `{"name":"x","questions":[{"id":"q1","stimulus":"a","instruction":"b","options":["a"],"correctAnswer":"a","domain":"phonological"}]}`},
		{"unknown field", `{"name":"x","questions":[{"id":"q1","stimulus":"a","instruction":"b","correctAnswer":"a","domain":"phonological","points":5}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadBank(strings.NewReader(tt.json)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadBankRejectsDuplicateIDs(t *testing.T) {
	dup := `{
		"name": "x",
		"questions": [
			{"id": "q1", "stimulus": "a", "instruction": "b", "correctAnswer": "a", "domain": "phonological"},
			{"id": "q1", "stimulus": "c", "instruction": "d", "correctAnswer": "c", "domain": "phonological"}
		]
	}`
	_, err := LoadBank(strings.NewReader(dup))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("err = %v, want duplicate id error", err)
	}
}

func TestSeedBattery(t *testing.T) {
	bank := SeedBattery()
	if len(bank.Questions) == 0 {
		t.Fatal("seed battery is empty")
	}

	known := make(map[Domain]bool, len(KnownDomains))
	for _, d := range KnownDomains {
		known[d] = true
	}

	seen := make(map[string]bool)
	for _, q := range bank.Questions {
		if seen[q.ID] {
			t.Errorf("duplicate seed question id %q", q.ID)
		}
		seen[q.ID] = true
		if !known[q.Domain] {
			t.Errorf("question %q has unknown domain %q", q.ID, q.Domain)
		}
		if len(q.Answer) == 0 {
			t.Errorf("question %q has no answer", q.ID)
		}
	}

	// Callers get a copy, not the shared slice.
	bank.Questions[0].ID = "mutated"
	if SeedBattery().Questions[0].ID == "mutated" {
		t.Error("SeedBattery returned shared state")
	}
}

func TestDomainGates(t *testing.T) {
	tests := []struct {
		domain     Domain
		numeric    bool
		sequential bool
	}{
		{DomainNumberSense, true, false},
		{DomainApproximateNumber, true, false},
		{DomainSequentialLogic, false, true},
		{DomainPhonological, false, false},
		{DomainWorkingMemory, false, false},
		{DomainVisualAttention, false, false},
	}

	for _, tt := range tests {
		if got := tt.domain.IsNumeric(); got != tt.numeric {
			t.Errorf("%s IsNumeric = %v, want %v", tt.domain, got, tt.numeric)
		}
		if got := tt.domain.IsSequential(); got != tt.sequential {
			t.Errorf("%s IsSequential = %v, want %v", tt.domain, got, tt.sequential)
		}
	}
}
