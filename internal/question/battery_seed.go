package question

// seedBattery is the built-in screening battery used when no bank file is
// supplied. One or two items per domain; real deployments load a fuller
// bank via LoadBankFile.
var seedBattery = []Question{
	{
		ID:            "phon-word-was",
		Stimulus:      Stimulus{Text: "was"},
		Instruction:   "Read this word aloud",
		Answer:        Answer{"was"},
		Domain:        DomainPhonological,
		TimeLimitSecs: 20,
	},
	{
		ID:            "phon-word-elephant",
		Stimulus:      Stimulus{Text: "elephant"},
		Instruction:   "Read this word aloud",
		Answer:        Answer{"elephant"},
		Domain:        DomainPhonological,
		TimeLimitSecs: 20,
	},
	{
		ID:            "ns-compare-47-74",
		Stimulus:      Stimulus{Text: "47 or 74"},
		Instruction:   "Which number is larger?",
		Options:       []string{"47", "74"},
		Answer:        Answer{"74"},
		Domain:        DomainNumberSense,
		TimeLimitSecs: 15,
	},
	{
		ID:                "anx-dots-estimate",
		Stimulus:          Stimulus{Text: "● ● ● ● ● ● ● ● ● ● ● ●"},
		Instruction:       "How many dots did you see?",
		Options:           []string{"8", "12", "16", "20"},
		Answer:            Answer{"12"},
		Domain:            DomainApproximateNumber,
		TimeLimitSecs:     15,
		StimulusDisplayMS: 3000,
	},
	{
		ID:            "seq-next-number",
		Stimulus:      Stimulus{Tokens: []string{"2", "4", "6", "8"}},
		Instruction:   "What number comes next?",
		Options:       []string{"9", "10", "12", "14"},
		Answer:        Answer{"10"},
		Domain:        DomainSequentialLogic,
		TimeLimitSecs: 25,
	},
	{
		ID:                "wm-digit-span",
		Stimulus:          Stimulus{Tokens: []string{"3", "9", "1", "7"}},
		Instruction:       "Repeat the numbers in order",
		Answer:            Answer{"3", "9", "1", "7"},
		Domain:            DomainWorkingMemory,
		TimeLimitSecs:     20,
		StimulusDisplayMS: 4000,
	},
	{
		ID:            "va-find-letter",
		Stimulus:      Stimulus{Text: "b d b p d b q"},
		Instruction:   "How many times does 'b' appear?",
		Options:       []string{"2", "3", "4", "5"},
		Answer:        Answer{"3"},
		Domain:        DomainVisualAttention,
		TimeLimitSecs: 30,
	},
}

// SeedBattery returns the built-in battery. Callers get a fresh copy;
// bank questions are treated as immutable everywhere downstream.
func SeedBattery() *Bank {
	qs := make([]Question, len(seedBattery))
	copy(qs, seedBattery)
	return &Bank{Name: "builtin-screening-v1", Questions: qs}
}
