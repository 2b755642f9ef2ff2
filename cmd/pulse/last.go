// ABOUTME: CLI command for showing the most recent calculation.
// ABOUTME: Prints a compact zone-range and resting-HR summary.
package main

import (
	"fmt"

	"github.com/TVA808s/pulse/internal/history"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the most recent calculation",
	Long: `Show the most recent zone calculation as a compact summary.

EXAMPLES:

  pulse last`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := repo.GetLastCalculation()
		if err != nil {
			return fmt.Errorf("failed to load last calculation: %w", err)
		}
		if c == nil {
			fmt.Println("No calculations yet. Run 'pulse calc' first.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s %s bpm, resting %d\n",
			faint.Sprintf("#%d", c.ID),
			c.Zone, c.Range(), c.RestingHR)
		fmt.Printf("  %s %s\n",
			faint.Sprint(history.FormatDay(c.CalculatedAt)),
			faint.Sprint(history.FormatClock(c.CalculatedAt)))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(lastCmd)
}
