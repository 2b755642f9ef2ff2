// ABOUTME: CLI command for deleting calculations.
// ABOUTME: Deletes by numeric id; a missing id is not an error.
package main

import (
	"fmt"
	"strconv"

	"github.com/TVA808s/pulse/internal/analytics"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a calculation",
	Long: `Delete a zone calculation by its numeric id.

The id is shown in the first column of 'pulse history' output.
Deleting an id that does not exist is reported but is not an error,
so repeated deletes are safe.

EXAMPLES:

  pulse delete 42
  pulse rm 42`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		// Fetch first so the output can show what was deleted
		c, err := repo.GetCalculation(id)
		if err != nil {
			return fmt.Errorf("failed to load calculation: %w", err)
		}
		if c == nil {
			fmt.Printf("No calculation with id %d.\n", id)
			return nil
		}

		if _, err := repo.DeleteCalculation(id); err != nil {
			return fmt.Errorf("failed to delete calculation: %w", err)
		}

		events.Log(analytics.EventCalculationDeleted, map[string]string{
			"id": args[0],
		})

		color.Yellow("✗ Deleted calculation %d", id)
		fmt.Printf("  %s %s bpm, resting %d\n", c.Zone, c.Range(), c.RestingHR)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
