// ABOUTME: User profile stored as individual settings rows.
package models

// Profile is the lightweight user profile. Age stays free text because it
// feeds the same validation path as calculator input.
type Profile struct {
	Name           string `json:"name" yaml:"name"`
	Age            string `json:"age" yaml:"age"`
	OnboardingDone bool   `json:"has_completed_onboarding" yaml:"has_completed_onboarding"`
}
