// ABOUTME: Tests for zone definitions and interpretation lookup.
// ABOUTME: Validates the percentage table shape and fallback behavior.
package zones

import "testing"

func TestAllZonesHavePercentages(t *testing.T) {
	for _, z := range AllZones {
		pct, ok := ZonePercentages[z]
		if !ok {
			t.Errorf("zone %s has no percentage range", z)
			continue
		}
		if pct.Min >= pct.Max {
			t.Errorf("zone %s range not monotonic: %d >= %d", z, pct.Min, pct.Max)
		}
	}
}

func TestZonesAreContiguous(t *testing.T) {
	// Each zone starts where the previous one ends, covering 50-100%.
	for i := 1; i < len(AllZones); i++ {
		prev := ZonePercentages[AllZones[i-1]]
		cur := ZonePercentages[AllZones[i]]
		if prev.Max != cur.Min {
			t.Errorf("gap between %s and %s: %d != %d",
				AllZones[i-1], AllZones[i], prev.Max, cur.Min)
		}
	}
}

func TestIsValidZone(t *testing.T) {
	for _, z := range AllZones {
		if !IsValidZone(z) {
			t.Errorf("IsValidZone(%s) = false, want true", z)
		}
	}
	if IsValidZone(Zone("sprint")) {
		t.Error("IsValidZone(sprint) = true, want false")
	}
}

func TestInterpretation(t *testing.T) {
	for _, z := range AllZones {
		if Interpretation(z) == noInterpretation {
			t.Errorf("zone %s has no interpretation", z)
		}
	}

	if got := Interpretation(Zone("NotAZone")); got != noInterpretation {
		t.Errorf("Interpretation(NotAZone) = %q, want fallback", got)
	}
}
