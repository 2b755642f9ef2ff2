// ABOUTME: CLI command printing the training zone reference table.
// ABOUTME: Static output; needs no storage connection.
package main

import (
	"fmt"

	"github.com/TVA808s/pulse/internal/zones"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "Show the training zone table",
	Long: `Show the five training zones, their heart-rate reserve percentages,
and what training in each zone does.

EXAMPLES:

  pulse zones`,
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		for _, z := range zones.AllZones {
			pct := zones.ZonePercentages[z]
			fmt.Printf("%s %s\n",
				color.New(color.Bold).Sprintf("%-10s", z),
				faint.Sprintf("%d-%d%% of reserve", pct.Min, pct.Max))
			fmt.Printf("  %s\n", zones.Interpretation(z))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(zonesCmd)
}
