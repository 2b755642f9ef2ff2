// ABOUTME: Training zone definitions for the Karvonen method.
// ABOUTME: Five fixed intensity bands as percentages of heart-rate reserve.
package zones

// Zone identifies a heart-rate training intensity band.
type Zone string

const (
	ZoneRecovery  Zone = "recovery"
	ZoneAerobic   Zone = "aerobic"
	ZoneTempo     Zone = "tempo"
	ZoneAnaerobic Zone = "anaerobic"
	ZoneMaximal   Zone = "maximal"
)

// PercentRange is a zone's band expressed in percent of heart-rate reserve.
type PercentRange struct {
	Min int
	Max int
}

// ZonePercentages maps each zone to its share of heart-rate reserve.
// The table is monotonic: every zone's Min is below its Max.
var ZonePercentages = map[Zone]PercentRange{
	ZoneRecovery:  {Min: 50, Max: 60},
	ZoneAerobic:   {Min: 60, Max: 70},
	ZoneTempo:     {Min: 70, Max: 80},
	ZoneAnaerobic: {Min: 80, Max: 90},
	ZoneMaximal:   {Min: 90, Max: 100},
}

// Interpretations maps each zone to a perceived-effort description.
var Interpretations = map[Zone]string{
	ZoneRecovery:  "Very easy. Free conversation and even singing are possible.",
	ZoneAerobic:   "Comfortable. You can talk in full sentences.",
	ZoneTempo:     "Moderately hard. Breathing quickens, speech comes in short phrases.",
	ZoneAnaerobic: "Hard. Rapid breathing, only single words are possible.",
	ZoneMaximal:   "Very hard. Maximum effort, speech is impossible.",
}

// noInterpretation is returned for zone names outside the table.
const noInterpretation = "No information available."

// AllZones lists the zones in ascending intensity order.
var AllZones = []Zone{
	ZoneRecovery, ZoneAerobic, ZoneTempo, ZoneAnaerobic, ZoneMaximal,
}

// IsValidZone checks if a string is a known zone name.
func IsValidZone(z Zone) bool {
	_, ok := ZonePercentages[z]
	return ok
}

// Interpretation returns the perceived-effort description for a zone.
// Unknown zones get a fallback string, not an error.
func Interpretation(z Zone) string {
	if s, ok := Interpretations[z]; ok {
		return s
	}
	return noInterpretation
}
