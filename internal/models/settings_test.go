// ABOUTME: Tests for the typed settings boundary.
// ABOUTME: Validates bool parsing, serialization, and defaults.
package models

import "testing"

func TestParseBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"false", false},
		{"", false},
		{"TRUE", false},
		{"1", false},
	}

	for _, tt := range tests {
		if got := ParseBool(tt.value); got != tt.want {
			t.Errorf("ParseBool(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestFormatBoolRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		if got := ParseBool(FormatBool(v)); got != v {
			t.Errorf("ParseBool(FormatBool(%v)) = %v", v, got)
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !s.AnalyticsEnabled || !s.RemindersEnabled {
		t.Errorf("defaults should be fail-open enabled, got %+v", s)
	}
}
