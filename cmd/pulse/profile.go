// ABOUTME: CLI commands for the user profile.
// ABOUTME: Shows and updates name, age, and onboarding state.
package main

import (
	"fmt"

	"github.com/TVA808s/pulse/internal/zones"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	profileName      string
	profileAge       string
	profileOnboarded bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
	Long: `Show or update the stored user profile.

The profile's age is used as a convenience default; calculations always
take explicit inputs.

EXAMPLES:

  pulse profile show
  pulse profile set --name Anna --age 30
  pulse profile set --onboarded`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.LoadProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		name := p.Name
		if name == "" {
			name = "(not set)"
		}
		age := p.Age
		if age == "" {
			age = "(not set)"
		}

		fmt.Println("Name:", name)
		fmt.Println("Age: ", age)
		if p.OnboardingDone {
			fmt.Println("Onboarding: done")
		} else {
			fmt.Println("Onboarding: pending")
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := repo.LoadProfile()
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}

		changed := false
		if cmd.Flags().Changed("name") {
			p.Name = profileName
			changed = true
		}
		if cmd.Flags().Changed("age") {
			ageText := zones.CleanNumberInput(profileAge)
			if v := zones.ValidateAge(ageText); !v.Valid {
				return fmt.Errorf("invalid age %q: %s", profileAge, v.Error)
			}
			p.Age = ageText
			changed = true
		}
		if cmd.Flags().Changed("onboarded") {
			p.OnboardingDone = profileOnboarded
			changed = true
		}

		if !changed {
			return fmt.Errorf("nothing to update, pass --name, --age, or --onboarded")
		}

		if err := repo.SaveProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		color.Green("✓ Profile updated")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileSetCmd.Flags().StringVar(&profileAge, "age", "", "age in years (12-90)")
	profileSetCmd.Flags().BoolVar(&profileOnboarded, "onboarded", true, "mark onboarding as completed")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
