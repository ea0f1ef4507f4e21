package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/anika/lexiscreen/internal/store"
	"github.com/spf13/cobra"
)

var transcriptionsCmd = &cobra.Command{
	Use:   "transcriptions",
	Short: "Inspect speech-to-text API events",
}

var transcriptionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent transcription events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

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
		events, err := s.EventRepo().QueryTranscriptions(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No transcription events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-28s  %-8s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Model", "Audio", "Chars", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 88))

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-28s  %-8d  %-6d  %-7d  %s\n",
				e.ID,
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				model,
				e.AudioBytes,
				e.TextLen,
				e.LatencyMs,
				ok,
			)
			if !e.Success && e.ErrorMessage != "" {
				fmt.Printf("       %s\n", e.ErrorMessage)
			}
		}
		return nil
	},
}

var transcriptionsUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show aggregated transcription usage per provider and model",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		usage, err := s.EventRepo().TranscriptionUsage(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		if len(usage) == 0 {
			fmt.Println("No transcription usage recorded yet.")
			return nil
		}

		fmt.Printf("%-28s  %6s  %8s  %12s  %8s\n",
			"Model", "Calls", "Failed", "Audio Bytes", "Avg Ms")
		fmt.Println(strings.Repeat("─", 72))

		var totalCalls, totalFailures int
		var totalBytes int64
		for _, u := range usage {
			model := u.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-28s  %6d  %8d  %12d  %8d\n",
				model, u.Calls, u.Failures, u.AudioBytes, u.AvgLatency)
			totalCalls += u.Calls
			totalFailures += u.Failures
			totalBytes += u.AudioBytes
		}

		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-28s  %6d  %8d  %12d\n",
			"TOTAL", totalCalls, totalFailures, totalBytes)
		return nil
	},
}

func init() {
	transcriptionsListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")

	transcriptionsCmd.AddCommand(transcriptionsListCmd)
	transcriptionsCmd.AddCommand(transcriptionsUsageCmd)
}
