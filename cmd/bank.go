package cmd

import (
	"fmt"
	"strings"

	"github.com/anika/lexiscreen/internal/question"
	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Work with question-bank files",
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a question-bank JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := question.LoadBankFile(args[0])
		if err != nil {
			return fmt.Errorf("invalid bank: %w", err)
		}
		fmt.Printf("OK: %q, %d questions\n", bank.Name, len(bank.Questions))
		return nil
	},
}

var bankShowCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Show the questions in a bank (built-in battery when no file given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var bank *question.Bank
		if len(args) == 1 {
			loaded, err := question.LoadBankFile(args[0])
			if err != nil {
				return fmt.Errorf("load bank: %w", err)
			}
			bank = loaded
		} else {
			bank = question.SeedBattery()
		}

		fmt.Printf("Battery: %s (%d questions)\n", bank.Name, len(bank.Questions))
		fmt.Println(strings.Repeat("─", 80))
		fmt.Printf("%-10s  %-20s  %-24s  %6s  %5s\n",
			"ID", "Domain", "Stimulus", "Limit", "Voice")
		fmt.Println(strings.Repeat("─", 80))

		for i := range bank.Questions {
			q := &bank.Questions[i]
			stim := q.Stimulus.Display()
			if len(stim) > 24 {
				stim = stim[:24]
			}
			voice := ""
			if q.VoiceResponse() {
				voice = "yes"
			}
			fmt.Printf("%-10s  %-20s  %-24s  %5ds  %5s\n",
				q.ID, q.Domain, stim, q.TimeLimit(), voice)
		}
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankShowCmd)
}
