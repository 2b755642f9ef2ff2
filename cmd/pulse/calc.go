// ABOUTME: CLI command for calculating heart-rate zone limits.
// ABOUTME: Validates inputs, computes limits, and records the result.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/TVA808s/pulse/internal/analytics"
	"github.com/TVA808s/pulse/internal/models"
	"github.com/TVA808s/pulse/internal/zones"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var calcDryRun bool

var calcCmd = &cobra.Command{
	Use:     "calc <zone> <age> <resting-hr>",
	Aliases: []string{"c"},
	Short:   "Calculate zone limits",
	Long: `Calculate heart-rate limits for a training zone using the Karvonen formula.

The formula: max HR = 220 - age, then limits sit inside your heart-rate
reserve (max HR minus resting HR) at the zone's percentage band.

INPUTS:

  zone         recovery, aerobic, tempo, anaerobic, maximal
  age          years, 12-90
  resting-hr   beats per minute, 40-100

Non-digit characters in the numbers are ignored, so "30 yrs" works.

EXAMPLES:

  pulse calc aerobic 30 60
  pulse calc tempo 45 55
  pulse calc maximal 25 48 --dry-run   # Compute without saving`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		zone := zones.Zone(args[0])
		if !zones.IsValidZone(zone) {
			return fmt.Errorf("unknown zone: %s\nValid zones: recovery, aerobic, tempo, anaerobic, maximal", args[0])
		}

		ageText := zones.CleanNumberInput(args[1])
		hrText := zones.CleanNumberInput(args[2])

		if v := zones.ValidateAge(ageText); !v.Valid {
			events.Log(analytics.EventCalculationError, map[string]string{"field": "age", "value": args[1]})
			return fmt.Errorf("invalid age %q: %s", args[1], v.Error)
		}
		if v := zones.ValidateRestingHR(hrText); !v.Valid {
			events.Log(analytics.EventCalculationError, map[string]string{"field": "resting_hr", "value": args[2]})
			return fmt.Errorf("invalid resting heart rate %q: %s", args[2], v.Error)
		}

		result := zones.CalculateAll(ageText, hrText, zone)
		if result == nil {
			events.Log(analytics.EventCalculationError, map[string]string{"field": "input", "value": args[1] + "/" + args[2]})
			return fmt.Errorf("age and resting heart rate must be numbers")
		}

		faint := color.New(color.Faint)
		color.Green("✓ %s zone: %s bpm", zone, zones.FormatRange(result.Limits))
		fmt.Printf("  %s max HR %d, reserve %d\n",
			faint.Sprintf("%d%%-%d%%", zones.ZonePercentages[zone].Min, zones.ZonePercentages[zone].Max),
			result.MaxHR, result.HeartRateReserve)
		fmt.Printf("  %s\n", zones.Interpretation(zone))

		events.Log(analytics.EventCalculationCompleted, map[string]string{
			"zone":       string(zone),
			"age":        ageText,
			"resting_hr": hrText,
		})

		if calcDryRun {
			return nil
		}

		age, _ := strconv.Atoi(ageText)
		restingHR, _ := strconv.Atoi(hrText)
		c := models.NewCalculation(zone, age, restingHR, result.Limits)
		if _, err := repo.SaveCalculation(c); err != nil {
			// The result is already on screen; a failed save should not
			// turn the calculation into an error.
			fmt.Fprintf(os.Stderr, "warning: calculation not saved: %v\n", err)
			return nil
		}
		fmt.Printf("  %s\n", faint.Sprintf("saved as #%d", c.ID))

		return nil
	},
}

func init() {
	calcCmd.Flags().BoolVar(&calcDryRun, "dry-run", false, "compute without saving to history")
	rootCmd.AddCommand(calcCmd)
}
