// ABOUTME: Karvonen heart-rate zone arithmetic.
// ABOUTME: Pure functions; bounds checking is the caller's responsibility.
package zones

import (
	"fmt"
	"math"
	"strconv"
)

// Limits is the computed bpm range for one zone.
type Limits struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Result bundles everything computed from one (age, resting HR) pair.
type Result struct {
	MaxHR            int    `json:"max_hr" yaml:"max_hr"`
	HeartRateReserve int    `json:"heart_rate_reserve" yaml:"heart_rate_reserve"`
	Limits           Limits `json:"zone_limits" yaml:"zone_limits"`
}

// MaxHeartRate estimates maximum heart rate as 220 minus age.
// No guarding; inputs are validated before they get here.
func MaxHeartRate(age int) int {
	return 220 - age
}

// HeartRateReserve returns the Karvonen reserve. The result may be negative
// when resting HR exceeds max HR; that combination is rejected by validation,
// not here.
func HeartRateReserve(maxHR, restingHR int) int {
	return maxHR - restingHR
}

// ZoneLimits computes the bpm bounds for a zone using the percentage table.
// Unknown zones yield {0, 0}. Rounding is half away from zero.
func ZoneLimits(restingHR, reserve int, zone Zone) Limits {
	pct, ok := ZonePercentages[zone]
	if !ok {
		return Limits{}
	}
	return Limits{
		Min: int(math.Round(float64(restingHR) + float64(reserve*pct.Min)/100)),
		Max: int(math.Round(float64(restingHR) + float64(reserve*pct.Max)/100)),
	}
}

// CalculateAll parses the raw text inputs and runs the full pipeline.
// A nil result means one of the inputs is not an integer, which is the
// normal state while the user is still typing, not an error.
func CalculateAll(age, restingHR string, zone Zone) *Result {
	ageNum, err := strconv.Atoi(age)
	if err != nil {
		return nil
	}
	hrNum, err := strconv.Atoi(restingHR)
	if err != nil {
		return nil
	}

	maxHR := MaxHeartRate(ageNum)
	reserve := HeartRateReserve(maxHR, hrNum)

	return &Result{
		MaxHR:            maxHR,
		HeartRateReserve: reserve,
		Limits:           ZoneLimits(hrNum, reserve, zone),
	}
}

// FormatRange renders limits as "min-max".
func FormatRange(l Limits) string {
	return fmt.Sprintf("%d-%d", l.Min, l.Max)
}
