// ABOUTME: Input validation for age and resting heart rate text fields.
// ABOUTME: Range guard rails for the UI, not a physiological safety check.
package zones

import "strconv"

// Accepted input ranges, inclusive.
const (
	AgeMin = 12
	AgeMax = 90

	RestingHRMin = 40
	RestingHRMax = 100
)

// Validation is the outcome of checking one text field.
type Validation struct {
	Valid bool
	Error string
}

// CleanNumberInput strips every character that is not an ASCII digit.
func CleanNumberInput(text string) string {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		if text[i] >= '0' && text[i] <= '9' {
			out = append(out, text[i])
		}
	}
	return string(out)
}

// ValidateAge accepts integers in [12, 90]. An empty string is valid so a
// cleared input field does not flash an error mid-edit; the caller treats
// empty as "no result yet".
func ValidateAge(text string) Validation {
	return validateRange(text, AgeMin, AgeMax, "must be between 12 and 90 years")
}

// ValidateRestingHR accepts integers in [40, 100].
func ValidateRestingHR(text string) Validation {
	return validateRange(text, RestingHRMin, RestingHRMax, "must be between 40 and 100 bpm")
}

func validateRange(text string, min, max int, msg string) Validation {
	if text == "" {
		return Validation{Valid: true}
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < min || n > max {
		return Validation{Valid: false, Error: msg}
	}
	return Validation{Valid: true}
}
