package question

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Bank is an ordered set of questions for one screening battery.
type Bank struct {
	// Name identifies the battery, e.g. "dsm5-screening-v1".
	Name string `json:"name"`

	// Questions are administered in order.
	Questions []Question `json:"questions"`
}

// LoadBank reads a bank from JSON, validates it against the bank schema,
// and applies defaults. Question IDs must be unique within the bank.
func LoadBank(r io.Reader) (*Bank, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}

	if err := validateBank(raw); err != nil {
		return nil, err
	}

	var bank Bank
	if err := json.Unmarshal(raw, &bank); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	seen := make(map[string]bool, len(bank.Questions))
	for i := range bank.Questions {
		q := &bank.Questions[i]
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if q.TimeLimitSecs == 0 {
			q.TimeLimitSecs = DefaultTimeLimitSecs
		}
	}

	return &bank, nil
}

// LoadBankFile loads and validates a bank from a JSON file on disk.
func LoadBankFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bank file: %w", err)
	}
	defer f.Close()
	return LoadBank(f)
}
