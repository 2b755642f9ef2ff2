// ABOUTME: Tests for export and import functionality.
// ABOUTME: Covers JSON round-trip, since filtering, and Markdown rendering.
package storage

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/TVA808s/pulse/internal/models"
	"github.com/TVA808s/pulse/internal/zones"
)

func seedExportDB(t *testing.T) *DB {
	t.Helper()
	db := setupTestDB(t)

	old := models.NewCalculation(zones.ZoneRecovery, 30, 58, zones.Limits{Min: 125, Max: 139}).
		WithCalculatedAt(time.Now().AddDate(0, 0, -10))
	recent := models.NewCalculation(zones.ZoneAerobic, 30, 60, zones.Limits{Min: 138, Max: 151})

	for _, c := range []*models.Calculation{old, recent} {
		if _, err := db.SaveCalculation(c); err != nil {
			t.Fatalf("SaveCalculation failed: %v", err)
		}
	}
	if err := db.SaveProfile(models.Profile{Name: "Alex", Age: "30", OnboardingDone: true}); err != nil {
		t.Fatalf("SaveProfile failed: %v", err)
	}
	return db
}

func TestGetAllData(t *testing.T) {
	db := seedExportDB(t)
	defer db.Close()

	data, err := db.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}

	if data.Tool != "pulse" || data.Version != "1.0" {
		t.Errorf("unexpected header: tool %q version %q", data.Tool, data.Version)
	}
	if len(data.Calculations) != 2 {
		t.Errorf("expected 2 calculations, got %d", len(data.Calculations))
	}
	if data.Profile.Name != "Alex" {
		t.Errorf("profile name = %q, want Alex", data.Profile.Name)
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	db := seedExportDB(t)
	defer db.Close()

	raw, err := ExportJSON(db, nil)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("exported JSON does not parse: %v", err)
	}
	if len(data.Calculations) != 2 {
		t.Errorf("expected 2 calculations in export, got %d", len(data.Calculations))
	}
}

func TestExportSinceFilter(t *testing.T) {
	db := seedExportDB(t)
	defer db.Close()

	cutoff := time.Now().AddDate(0, 0, -1)
	raw, err := ExportJSON(db, &cutoff)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("exported JSON does not parse: %v", err)
	}
	if len(data.Calculations) != 1 {
		t.Fatalf("expected 1 calculation after cutoff, got %d", len(data.Calculations))
	}
	if data.Calculations[0].Zone != zones.ZoneAerobic {
		t.Errorf("wrong record survived the filter: %s", data.Calculations[0].Zone)
	}
}

func TestExportMarkdown(t *testing.T) {
	db := seedExportDB(t)
	defer db.Close()

	raw, err := ExportMarkdown(db, nil)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}

	out := string(raw)
	if !strings.Contains(out, "# Pulse Zone History") {
		t.Error("missing document title")
	}
	if !strings.Contains(out, "138-151") {
		t.Error("missing zone range cell")
	}
	if !strings.Contains(out, "aerobic") {
		t.Error("missing zone name cell")
	}
}

func TestImportData(t *testing.T) {
	src := seedExportDB(t)
	data, err := src.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	src.Close()

	dst := setupTestDB(t)
	defer dst.Close()

	if err := dst.ImportData(data); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}

	calcs, err := dst.ListCalculations(0)
	if err != nil {
		t.Fatalf("ListCalculations failed: %v", err)
	}
	if len(calcs) != 2 {
		t.Errorf("expected 2 imported calculations, got %d", len(calcs))
	}

	profile, err := dst.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if profile.Name != "Alex" {
		t.Errorf("imported profile name = %q, want Alex", profile.Name)
	}
}
