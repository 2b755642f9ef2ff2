// ABOUTME: Tests for history grouping and resting-HR statistics.
// ABOUTME: Verifies first-seen group order and nil stats on empty input.
package history

import (
	"testing"
	"time"

	"github.com/TVA808s/pulse/internal/models"
	"github.com/TVA808s/pulse/internal/zones"
)

func record(restingHR int, at time.Time) *models.Calculation {
	c := models.NewCalculation(zones.ZoneAerobic, 30, restingHR, zones.Limits{Min: 138, Max: 151})
	return c.WithCalculatedAt(at)
}

func TestGroupByDate(t *testing.T) {
	day1 := time.Date(2025, 6, 2, 18, 30, 0, 0, time.Local)
	day2 := time.Date(2025, 6, 1, 9, 15, 0, 0, time.Local)

	// Most-recent-first input, two records on the newer day.
	records := []*models.Calculation{
		record(60, day1),
		record(62, day1.Add(-2 * time.Hour)),
		record(58, day2),
	}

	groups := GroupByDate(records)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	if groups[0].Date != "02.06.2025" {
		t.Errorf("first group date = %s, want 02.06.2025", groups[0].Date)
	}
	if groups[1].Date != "01.06.2025" {
		t.Errorf("second group date = %s, want 01.06.2025", groups[1].Date)
	}

	if len(groups[0].Items) != 2 {
		t.Errorf("first group has %d items, want 2", len(groups[0].Items))
	}

	// Input order preserved within the day bucket.
	if groups[0].Items[0].RestingHR != 60 || groups[0].Items[1].RestingHR != 62 {
		t.Errorf("within-day order not preserved: %d, %d",
			groups[0].Items[0].RestingHR, groups[0].Items[1].RestingHR)
	}
}

func TestGroupByDateFirstSeenOrder(t *testing.T) {
	// Deliberately unsorted input: group order must follow first sight,
	// not chronological order.
	dayA := time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local)
	dayB := time.Date(2025, 6, 3, 10, 0, 0, 0, time.Local)

	records := []*models.Calculation{
		record(50, dayA),
		record(51, dayB),
		record(52, dayA),
	}

	groups := GroupByDate(records)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Date != "01.06.2025" {
		t.Errorf("first group = %s, want the first-seen day 01.06.2025", groups[0].Date)
	}
	if len(groups[0].Items) != 2 {
		t.Errorf("first group has %d items, want 2", len(groups[0].Items))
	}
}

func TestGroupByDateEmpty(t *testing.T) {
	if groups := GroupByDate(nil); len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}

func TestRestingHRStats(t *testing.T) {
	now := time.Now()
	records := []*models.Calculation{
		record(50, now),
		record(60, now),
		record(70, now),
	}

	stats := RestingHRStats(records)
	if stats.Avg == nil || *stats.Avg != 60 {
		t.Errorf("Avg = %v, want 60", stats.Avg)
	}
	if stats.Min == nil || *stats.Min != 50 {
		t.Errorf("Min = %v, want 50", stats.Min)
	}
	if stats.Max == nil || *stats.Max != 70 {
		t.Errorf("Max = %v, want 70", stats.Max)
	}
}

func TestRestingHRStatsEmpty(t *testing.T) {
	stats := RestingHRStats(nil)
	if stats.Avg != nil || stats.Min != nil || stats.Max != nil {
		t.Errorf("expected all nil for empty input, got %+v", stats)
	}
}

func TestRestingHRStatsSingle(t *testing.T) {
	stats := RestingHRStats([]*models.Calculation{record(65, time.Now())})
	if stats.Avg == nil || stats.Min == nil || stats.Max == nil {
		t.Fatal("expected non-nil stats")
	}
	if *stats.Avg != 65 || *stats.Min != 65 || *stats.Max != 65 {
		t.Errorf("single record: avg %d min %d max %d, want all 65",
			*stats.Avg, *stats.Min, *stats.Max)
	}
}

func TestRestingHRStatsRounding(t *testing.T) {
	now := time.Now()
	// Mean 55.5 rounds half away from zero to 56.
	stats := RestingHRStats([]*models.Calculation{
		record(50, now),
		record(61, now),
	})
	if stats.Avg == nil || *stats.Avg != 56 {
		t.Errorf("Avg = %v, want 56", stats.Avg)
	}
}
