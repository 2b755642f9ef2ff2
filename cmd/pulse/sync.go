// ABOUTME: CLI commands for Charm-based history sync.
// ABOUTME: Supports link, status, push, and wipe operations.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/TVA808s/pulse/internal/charm"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync history across devices",
	Long: `Mirror calculation history across devices using Charm Cloud.

Your data is E2E encrypted with your SSH key before upload.
The server never sees your unencrypted history.

GETTING STARTED:

  1. Link your device (creates/uses SSH key automatically):
     pulse sync link

  2. On other devices, link with the same Charm account:
     pulse sync link

  3. Push your local history to the cloud:
     pulse sync push

COMMANDS:

  link        Link this device to your Charm account
  status      Show sync status and account info
  push        Push local calculations to the cloud mirror
  wipe        Delete all mirrored cloud data (destructive)

The SQLite database stays the source of truth; the cloud mirror is a
copy for other devices.`,
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	Long: `Link this device to your Charm account.

If you don't have a Charm account, one will be created using your SSH key.
If you already have an account, you'll be prompted to link via charm.sh.

Example:
  pulse sync link`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Use charm CLI to link
		charmCmd := exec.Command("charm", "link")
		charmCmd.Stdin = os.Stdin
		charmCmd.Stdout = os.Stdout
		charmCmd.Stderr = os.Stderr

		if err := charmCmd.Run(); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}

		color.Green("\n✓ Device linked to Charm")
		fmt.Println("Run 'pulse sync push' to mirror your history.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	Long: `Show current sync status including:
- Charm account info
- Mirrored record count`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.InitClient()
		if err != nil {
			color.Yellow("Charm client not available: %v", err)
			fmt.Println("\nRun 'pulse sync link' to connect to Charm.")
			return nil
		}

		id, err := client.ID()
		if err != nil {
			color.Yellow("Not linked to Charm")
			fmt.Println("\nRun 'pulse sync link' to connect to Charm.")
			return nil
		}

		fmt.Println("Charm ID:", id)

		mirrored, _ := client.ListCalculations()
		local, _ := repo.ListCalculations(0)

		color.Green("✓ Connected to Charm")
		fmt.Printf("  Local calculations:    %d\n", len(local))
		fmt.Printf("  Mirrored calculations: %d\n", len(mirrored))

		return nil
	},
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push local history to the cloud",
	Long: `Push every local calculation to the Charm Cloud mirror.

Records are keyed by id, so pushing twice overwrites in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to initialize charm client: %w", err)
		}

		records, err := repo.ListCalculations(0)
		if err != nil {
			return fmt.Errorf("failed to list calculations: %w", err)
		}

		for _, c := range records {
			if err := client.PushCalculation(c); err != nil {
				return fmt.Errorf("failed to push calculation %d: %w", c.ID, err)
			}
		}

		color.Green("✓ Pushed %d calculations", len(records))
		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all mirrored cloud data",
	Long: `Delete every calculation from the Charm Cloud mirror.

This is a DESTRUCTIVE operation for the mirror. Your local SQLite
history is untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Confirm
		fmt.Println("This will PERMANENTLY DELETE all mirrored cloud data.")
		fmt.Print("Type 'wipe' to confirm: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "wipe" {
			fmt.Println("Canceled.")
			return nil
		}

		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to initialize charm client: %w", err)
		}

		n, err := client.WipeCalculations()
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		color.Green("✓ Wiped %d mirrored calculations", n)
		return nil
	},
}

func init() {
	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncWipeCmd)

	rootCmd.AddCommand(syncCmd)
}
