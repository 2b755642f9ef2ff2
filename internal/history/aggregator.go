// ABOUTME: Date grouping and resting heart-rate statistics over history.
// ABOUTME: Single-pass scans; grouping preserves first-seen date order.
package history

import (
	"math"
	"time"

	"github.com/TVA808s/pulse/internal/models"
)

// DayGroup holds one calendar day's records in input order.
type DayGroup struct {
	Date  string
	Items []*models.Calculation
}

// GroupByDate buckets records by local calendar day. Group order follows
// the order days are first seen in the input, so the usual most-recent-first
// input yields most-recent-first groups without re-sorting.
func GroupByDate(records []*models.Calculation) []DayGroup {
	var groups []DayGroup
	index := make(map[string]int)

	for _, c := range records {
		date := FormatDay(c.CalculatedAt)
		i, ok := index[date]
		if !ok {
			i = len(groups)
			index[date] = i
			groups = append(groups, DayGroup{Date: date})
		}
		groups[i].Items = append(groups[i].Items, c)
	}
	return groups
}

// Stats summarizes resting heart rate across records.
// All fields are nil for empty input.
type Stats struct {
	Avg *int
	Min *int
	Max *int
}

// RestingHRStats computes min, max, and the mean (rounded half away from
// zero) of resting heart rate in one pass.
func RestingHRStats(records []*models.Calculation) Stats {
	if len(records) == 0 {
		return Stats{}
	}

	sum := 0
	min := records[0].RestingHR
	max := records[0].RestingHR
	for _, c := range records {
		sum += c.RestingHR
		if c.RestingHR < min {
			min = c.RestingHR
		}
		if c.RestingHR > max {
			max = c.RestingHR
		}
	}

	avg := int(math.Round(float64(sum) / float64(len(records))))
	return Stats{Avg: &avg, Min: &min, Max: &max}
}

// FormatDay renders the local calendar day as DD.MM.YYYY.
func FormatDay(t time.Time) string {
	return t.Local().Format("02.01.2006")
}

// FormatClock renders the local wall-clock time as HH:MM.
func FormatClock(t time.Time) string {
	return t.Local().Format("15:04")
}
