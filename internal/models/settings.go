// ABOUTME: Typed application settings over the string key-value table.
// ABOUTME: Boolean parsing and serialization happen here and nowhere else.
package models

// Keys in the user_settings table.
const (
	KeyAllowAnalytics = "allow_analytics"
	KeyAllowReminders = "allow_messages"
	KeyUserName       = "user_name"
	KeyUserAge        = "user_age"
	KeyOnboardingDone = "has_completed_onboarding"
)

// Settings is the typed view of the boolean app toggles.
type Settings struct {
	AnalyticsEnabled bool `json:"analytics_enabled" yaml:"analytics_enabled"`
	RemindersEnabled bool `json:"reminders_enabled" yaml:"reminders_enabled"`
}

// DefaultSettings returns the fail-open defaults: both features enabled.
func DefaultSettings() Settings {
	return Settings{AnalyticsEnabled: true, RemindersEnabled: true}
}

// ParseBool converts a stored settings value to a bool.
// Anything but "true" reads as false.
func ParseBool(value string) bool {
	return value == "true"
}

// FormatBool converts a bool to its stored settings value.
func FormatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
