// ABOUTME: CLI command for viewing calculation history.
// ABOUTME: Groups records by day and summarizes resting heart rate.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TVA808s/pulse/internal/analytics"
	"github.com/TVA808s/pulse/internal/history"
	"github.com/TVA808s/pulse/internal/models"
	"github.com/TVA808s/pulse/internal/zones"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	historyZone  string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"ls", "h"},
	Short:   "Show calculation history",
	Long: `Show recent zone calculations grouped by day, newest first.

Each line shows: ID  TIME  ZONE  LIMITS  RESTING-HR

A resting heart-rate summary (min, average, max) over the shown
records is printed at the bottom.

EXAMPLES:

  pulse history                   # Last 20 calculations
  pulse history -n 50             # Last 50
  pulse history --zone aerobic    # Only aerobic zone entries`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var records []*models.Calculation
		var err error

		if historyZone != "" {
			zone := zones.Zone(historyZone)
			if !zones.IsValidZone(zone) {
				return fmt.Errorf("unknown zone: %s", historyZone)
			}
			records, err = repo.ListCalculationsByZone(zone, historyLimit)
		} else {
			records, err = repo.ListCalculations(historyLimit)
		}
		if err != nil {
			return fmt.Errorf("failed to list calculations: %w", err)
		}

		events.Log(analytics.EventHistoryViewed, map[string]string{
			"count": strconv.Itoa(len(records)),
		})

		if len(records) == 0 {
			fmt.Println("No calculations found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, day := range history.GroupByDate(records) {
			color.New(color.Bold).Println(day.Date)
			for _, c := range day.Items {
				fmt.Printf("  %s %s %s %s  %s\n",
					faint.Sprintf("#%-4d", c.ID),
					faint.Sprint(history.FormatClock(c.CalculatedAt)),
					padRight(string(c.Zone), 10),
					c.Range(),
					faint.Sprintf("resting %d", c.RestingHR))
			}
		}

		stats := history.RestingHRStats(records)
		if stats.Avg != nil {
			fmt.Printf("\nResting HR: min %d  avg %d  max %d\n", *stats.Min, *stats.Avg, *stats.Max)
		}

		return nil
	},
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	historyCmd.Flags().StringVarP(&historyZone, "zone", "z", "", "filter by training zone")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(historyCmd)
}
