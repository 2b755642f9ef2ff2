// ABOUTME: Tests for the Calculation model.
// ABOUTME: Validates constructor fields, builder setter, and range rendering.
package models

import (
	"testing"
	"time"

	"github.com/TVA808s/pulse/internal/zones"
)

func TestNewCalculation(t *testing.T) {
	c := NewCalculation(zones.ZoneAerobic, 30, 60, zones.Limits{Min: 138, Max: 151})

	if c.ID != 0 {
		t.Errorf("ID = %d, want 0 before save", c.ID)
	}
	if c.Zone != zones.ZoneAerobic {
		t.Errorf("Zone = %s, want aerobic", c.Zone)
	}
	if c.Age != 30 {
		t.Errorf("Age = %d, want 30", c.Age)
	}
	if c.RestingHR != 60 {
		t.Errorf("RestingHR = %d, want 60", c.RestingHR)
	}
	if c.ZoneMin != 138 || c.ZoneMax != 151 {
		t.Errorf("bounds = {%d, %d}, want {138, 151}", c.ZoneMin, c.ZoneMax)
	}
	if c.CalculatedAt.IsZero() {
		t.Error("expected CalculatedAt to be set")
	}
}

func TestWithCalculatedAt(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 0, 0, time.Local)
	c := NewCalculation(zones.ZoneTempo, 40, 55, zones.Limits{Min: 142, Max: 155}).
		WithCalculatedAt(at)

	if !c.CalculatedAt.Equal(at) {
		t.Errorf("CalculatedAt = %v, want %v", c.CalculatedAt, at)
	}
}

func TestRange(t *testing.T) {
	c := NewCalculation(zones.ZoneAerobic, 30, 60, zones.Limits{Min: 138, Max: 151})
	if got := c.Range(); got != "138-151" {
		t.Errorf("Range() = %q, want %q", got, "138-151")
	}
}
