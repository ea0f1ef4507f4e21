package cmd

import (
	"context"
	"fmt"

	"github.com/anika/lexiscreen/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored screening sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("refusing to delete session data without --force")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		n, err := s.SessionRepo().DeleteAll(context.Background())
		if err != nil {
			return fmt.Errorf("delete sessions: %w", err)
		}

		fmt.Printf("Deleted %d session(s).\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Confirm deletion")
}
