package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/anika/lexiscreen/internal/progress"
	"github.com/anika/lexiscreen/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <student-id>",
	Short: "Show a student's screening progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID := args[0]
		conductedBy, _ := cmd.Flags().GetString("by")

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
		scores, err := s.SessionRepo().Scores(ctx, studentID, conductedBy)
		if err != nil {
			return fmt.Errorf("query scores: %w", err)
		}

		stats := progress.Aggregate(scores)
		if stats == nil {
			fmt.Printf("No sessions recorded for %s.\n", studentID)
			return nil
		}

		fmt.Printf("Progress for %s\n", studentID)
		fmt.Println(strings.Repeat("─", 44))
		fmt.Printf("%-16s  %d\n", "Sessions", stats.Count)
		fmt.Printf("%-16s  %.1f%%\n", "Average", stats.Average)
		fmt.Printf("%-16s  %.1f%%\n", "Highest", stats.High)
		fmt.Printf("%-16s  %.1f%%\n", "Lowest", stats.Low)
		fmt.Printf("%-16s  %s (%.1f%% → %.1f%%)\n", "Trend", stats.Trend, stats.FirstScore, stats.LastScore)
		return nil
	},
}

func init() {
	statsCmd.Flags().StringP("by", "b", "", "Filter to sessions conducted by this administrator")
}
