// ABOUTME: Calculation record model for persisted zone computations.
// ABOUTME: Records are immutable snapshots; deletion is the only mutation.
package models

import (
	"time"

	"github.com/TVA808s/pulse/internal/zones"
)

// Calculation is one persisted zone computation. Age and RestingHR are
// snapshots of what was entered, not the current profile values.
type Calculation struct {
	ID           int64      `json:"id" yaml:"id"`
	Zone         zones.Zone `json:"zone_name" yaml:"zone_name"`
	Age          int        `json:"age" yaml:"age"`
	RestingHR    int        `json:"resting_hr" yaml:"resting_hr"`
	ZoneMin      int        `json:"zone_min" yaml:"zone_min"`
	ZoneMax      int        `json:"zone_max" yaml:"zone_max"`
	CalculatedAt time.Time  `json:"calculation_date" yaml:"calculation_date"`
}

// NewCalculation builds an unsaved record; the store assigns ID on save.
func NewCalculation(zone zones.Zone, age, restingHR int, limits zones.Limits) *Calculation {
	return &Calculation{
		Zone:         zone,
		Age:          age,
		RestingHR:    restingHR,
		ZoneMin:      limits.Min,
		ZoneMax:      limits.Max,
		CalculatedAt: time.Now(),
	}
}

// WithCalculatedAt sets a custom timestamp.
func (c *Calculation) WithCalculatedAt(t time.Time) *Calculation {
	c.CalculatedAt = t
	return c
}

// Range renders the zone bounds as "min-max".
func (c *Calculation) Range() string {
	return zones.FormatRange(zones.Limits{Min: c.ZoneMin, Max: c.ZoneMax})
}
