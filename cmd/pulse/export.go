// ABOUTME: CLI commands for exporting and importing pulse data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/TVA808s/pulse/internal/storage"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export pulse data",
	Long: `Export calculation history, profile, and settings.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Per-day Markdown tables (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include calculations since this date (YYYY-MM-DD)

EXAMPLES:

  pulse export json                       # Export all data as JSON
  pulse export json -o backup.json        # Save to file
  pulse export yaml                       # Export as YAML
  pulse export markdown --since 2026-01-01`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var since *time.Time
		if exportSince != "" {
			t, err := time.Parse("2006-01-02", exportSince)
			if err != nil {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
			}
			since = &t
		}

		var data []byte
		var err error
		switch format {
		case "json":
			data, err = storage.ExportJSON(repo, since)
		case "yaml":
			data, err = storage.ExportYAML(repo, since)
		case "markdown":
			data, err = storage.ExportMarkdown(repo, since)
		default:
			return fmt.Errorf("unknown format: %s\nValid formats: json, yaml, markdown", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import pulse data from JSON",
	Long: `Import calculations, profile, and settings from a JSON backup file.

Imported calculations get fresh ids, so importing the same file twice
duplicates the records.

EXAMPLES:

  pulse import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		raw, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var data storage.ExportData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("invalid backup file: %w", err)
		}

		if err := repo.ImportData(&data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %d calculations from %s", len(data.Calculations), filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include data since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
