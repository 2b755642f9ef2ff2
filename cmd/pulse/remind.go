// ABOUTME: CLI command printing today's reminder message.
// ABOUTME: Honors the reminders setting; silent when disabled.
package main

import (
	"fmt"
	"time"

	"github.com/TVA808s/pulse/internal/reminders"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var remindAll bool

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Show today's reminder",
	Long: `Show today's training reminder message.

The message rotates through a small pool by calendar day. When the
reminders setting is off, nothing is printed.

EXAMPLES:

  pulse remind
  pulse remind --all    # Show the full message pool`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !appSettings.RemindersEnabled {
			return nil
		}

		if remindAll {
			for _, r := range reminders.All() {
				color.New(color.Bold).Println(r.Title)
				fmt.Printf("  %s\n", r.Message)
			}
			return nil
		}

		r := reminders.ForDay(time.Now())
		color.New(color.Bold).Println(r.Title)
		fmt.Println(r.Message)
		return nil
	},
}

func init() {
	remindCmd.Flags().BoolVar(&remindAll, "all", false, "show every message in the pool")
	rootCmd.AddCommand(remindCmd)
}
