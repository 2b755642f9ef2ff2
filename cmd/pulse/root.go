// ABOUTME: Root Cobra command for pulse CLI.
// ABOUTME: Handles storage and settings lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"os"

	"github.com/TVA808s/pulse/internal/analytics"
	"github.com/TVA808s/pulse/internal/config"
	"github.com/TVA808s/pulse/internal/models"
	"github.com/TVA808s/pulse/internal/storage"
	"github.com/spf13/cobra"
)

var (
	appConfig   *config.Config
	repo        storage.Repository
	appSettings models.Settings
	events      *analytics.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Heart-rate training zone calculator",
	Long: `Pulse computes heart-rate training zones with the Karvonen formula
and keeps a history of your calculations.

ZONES:

  recovery    50-60% of heart-rate reserve, easy effort
  aerobic     60-70%, base endurance
  tempo       70-80%, sustained hard effort
  anaerobic   80-90%, interval work
  maximal     90-100%, short maximal efforts

QUICK START:

  $ pulse calc aerobic 30 60      # Zone limits for age 30, resting HR 60
  $ pulse history                 # See recent calculations
  $ pulse last                    # Most recent calculation summary
  $ pulse zones                   # Zone reference table

PROFILE & SETTINGS:

  $ pulse profile set --name Anna --age 30
  $ pulse settings set analytics off

SYNC:

  Mirror your history across devices using Charm Cloud.
  Data is E2E encrypted with your SSH key.

  $ pulse sync link       # Link device to your Charm account
  $ pulse sync push       # Push local history to the cloud
  $ pulse sync status     # Check sync status

MCP INTEGRATION:

  Run 'pulse mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "pulse": { "command": "pulse", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Calculations are stored in SQLite at ~/.local/share/pulse/pulse.db.
  Set a different location in ~/.config/pulse/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		switch cmd.Name() {
		case "version", "help", "completion", "zones":
			return nil
		}

		var err error
		appConfig, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = appConfig.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		// Settings reads fall open to defaults so a broken settings row
		// never blocks a calculation.
		appSettings, err = repo.LoadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read settings, using defaults: %v\n", err)
		}

		events = analytics.NewLogger(appConfig.EventsPath(), appSettings.AnalyticsEnabled)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}
