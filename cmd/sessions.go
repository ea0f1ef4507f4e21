package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/anika/lexiscreen/internal/store"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions <student-id>",
	Short: "List a student's stored screening sessions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID := args[0]
		conductedBy, _ := cmd.Flags().GetString("by")
		verbose, _ := cmd.Flags().GetBool("verbose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		rows, err := s.SessionRepo().ListByStudent(ctx, studentID, conductedBy)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(rows) == 0 {
			fmt.Printf("No sessions recorded for %s.\n", studentID)
			return nil
		}

		fmt.Printf("%-19s  %-14s  %-12s  %7s  %9s\n",
			"Date", "Administrator", "Battery", "Score", "Questions")
		fmt.Println(strings.Repeat("─", 72))

		for _, row := range rows {
			fmt.Printf("%-19s  %-14s  %-12s  %6.1f%%  %9d\n",
				row.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				row.ConductedBy,
				row.Battery,
				row.OverallScore,
				len(row.Verdicts),
			)

			if !verbose {
				continue
			}
			for _, v := range row.Verdicts {
				mark := "✓"
				if !v.Correct {
					mark = "✗"
				}
				line := fmt.Sprintf("    %s %-10s  %5.1fs  %q", mark, v.QuestionID, v.ResponseSecs, v.RawAnswer)
				if v.ErrorDetail != "" {
					line += "  " + v.ErrorDetail
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

func init() {
	sessionsCmd.Flags().StringP("by", "b", "", "Filter to sessions conducted by this administrator")
	sessionsCmd.Flags().BoolP("verbose", "v", false, "Show per-question verdicts")
}
