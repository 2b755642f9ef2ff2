// ABOUTME: CLI commands for application settings.
// ABOUTME: Toggles analytics and reminder collection on or off.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `Show or change application settings.

SETTINGS:

  analytics    Local usage event logging (on by default)
  reminders    Daily reminder messages (on by default)

EXAMPLES:

  pulse settings show
  pulse settings set analytics off
  pulse settings set reminders on`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("analytics:", onOff(appSettings.AnalyticsEnabled))
		fmt.Println("reminders:", onOff(appSettings.RemindersEnabled))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:       "set <setting> <on|off>",
	Short:     "Change a setting",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"analytics", "reminders"},
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := parseOnOff(args[1])
		if err != nil {
			return err
		}

		switch args[0] {
		case "analytics":
			appSettings.AnalyticsEnabled = value
		case "reminders":
			appSettings.RemindersEnabled = value
		default:
			return fmt.Errorf("unknown setting: %s\nValid settings: analytics, reminders", args[0])
		}

		if err := repo.SaveSettings(appSettings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}

		color.Green("✓ %s %s", args[0], onOff(value))
		return nil
	},
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid value %q, use on or off", s)
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
