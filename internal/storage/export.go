// ABOUTME: Export and import functionality for pulse data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/TVA808s/pulse/internal/history"
	"github.com/TVA808s/pulse/internal/models"
)

// ExportData represents the full export format for pulse data.
type ExportData struct {
	Version      string                `json:"version" yaml:"version"`
	ExportedAt   time.Time             `json:"exported_at" yaml:"exported_at"`
	Tool         string                `json:"tool" yaml:"tool"`
	Calculations []*models.Calculation `json:"calculations" yaml:"calculations"`
	Profile      models.Profile        `json:"profile" yaml:"profile"`
	Settings     models.Settings       `json:"settings" yaml:"settings"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	calcs, err := d.ListCalculations(0)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}

	profile, err := d.LoadProfile()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	settings, err := d.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	return &ExportData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		Tool:         "pulse",
		Calculations: calcs,
		Profile:      profile,
		Settings:     settings,
	}, nil
}

// ImportData imports data from an export file. Imported records keep their
// timestamps but receive fresh ids.
func (d *DB) ImportData(data *ExportData) error {
	for _, c := range data.Calculations {
		record := *c
		record.ID = 0
		if _, err := d.SaveCalculation(&record); err != nil {
			return fmt.Errorf("import calculation: %w", err)
		}
	}

	if err := d.SaveProfile(data.Profile); err != nil {
		return fmt.Errorf("import profile: %w", err)
	}
	if err := d.SaveSettings(data.Settings); err != nil {
		return fmt.Errorf("import settings: %w", err)
	}
	return nil
}

// FilterSince returns a copy keeping only calculations at or after cutoff.
func (e *ExportData) FilterSince(cutoff time.Time) *ExportData {
	out := *e
	out.Calculations = nil
	for _, c := range e.Calculations {
		if !c.CalculatedAt.Before(cutoff) {
			out.Calculations = append(out.Calculations, c)
		}
	}
	return &out
}

// ExportJSON renders a repository's full data as indented JSON.
func ExportJSON(r Repository, since *time.Time) ([]byte, error) {
	data, err := exportData(r, since)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML renders a repository's full data as YAML.
func ExportYAML(r Repository, since *time.Time) ([]byte, error) {
	data, err := exportData(r, since)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ExportMarkdown renders calculation history as Markdown tables, one table
// per calendar day, most recent day first.
func ExportMarkdown(r Repository, since *time.Time) ([]byte, error) {
	data, err := exportData(r, since)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("# Pulse Zone History\n")

	if len(data.Calculations) == 0 {
		b.WriteString("\nNo calculations recorded.\n")
		return []byte(b.String()), nil
	}

	for _, group := range history.GroupByDate(data.Calculations) {
		fmt.Fprintf(&b, "\n## %s\n\n", group.Date)
		b.WriteString("| Time | Zone | Target (bpm) | Age | Resting HR |\n")
		b.WriteString("|------|------|--------------|-----|------------|\n")
		for _, c := range group.Items {
			fmt.Fprintf(&b, "| %s | %s | %s | %d | %d |\n",
				history.FormatClock(c.CalculatedAt), c.Zone, c.Range(), c.Age, c.RestingHR)
		}
	}

	return []byte(b.String()), nil
}

func exportData(r Repository, since *time.Time) (*ExportData, error) {
	data, err := r.GetAllData()
	if err != nil {
		return nil, err
	}
	if since != nil {
		data = data.FilterSince(*since)
	}
	return data, nil
}
