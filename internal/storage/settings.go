// ABOUTME: Key-value settings and user profile persistence.
// ABOUTME: Typed settings cross the string boundary in internal/models only.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/TVA808s/pulse/internal/models"
)

const (
	settingsReadAttempts = 3
	settingsRetryDelay   = 50 * time.Millisecond
)

// SetSetting upserts one settings row.
func (d *DB) SetSetting(key, value string) error {
	query := `
		INSERT INTO user_settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := d.db.Exec(query, key, value, time.Now().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// GetSetting returns the stored value, or "" when the key is absent.
// A missing key is not an error.
func (d *DB) GetSetting(key string) (string, error) {
	var value string
	err := d.db.QueryRow("SELECT value FROM user_settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

// LoadSettings reads the boolean toggles. Reads are retried a few times and
// then fall open to the enabled defaults: a broken settings row must not
// take the calculator down with it. The returned error reports the last
// failure so callers can mention degraded mode.
func (d *DB) LoadSettings() (models.Settings, error) {
	var lastErr error
	for attempt := 0; attempt < settingsReadAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(settingsRetryDelay)
		}

		analytics, err := d.GetSetting(models.KeyAllowAnalytics)
		if err != nil {
			lastErr = err
			continue
		}
		reminders, err := d.GetSetting(models.KeyAllowReminders)
		if err != nil {
			lastErr = err
			continue
		}

		return models.Settings{
			AnalyticsEnabled: models.ParseBool(analytics),
			RemindersEnabled: models.ParseBool(reminders),
		}, nil
	}
	return models.DefaultSettings(), lastErr
}

// SaveSettings writes both toggles.
func (d *DB) SaveSettings(s models.Settings) error {
	if err := d.SetSetting(models.KeyAllowAnalytics, models.FormatBool(s.AnalyticsEnabled)); err != nil {
		return err
	}
	return d.SetSetting(models.KeyAllowReminders, models.FormatBool(s.RemindersEnabled))
}

// LoadProfile reads the profile settings rows. Missing rows read as zero
// values, so a fresh database yields an empty profile.
func (d *DB) LoadProfile() (models.Profile, error) {
	name, err := d.GetSetting(models.KeyUserName)
	if err != nil {
		return models.Profile{}, err
	}
	age, err := d.GetSetting(models.KeyUserAge)
	if err != nil {
		return models.Profile{}, err
	}
	done, err := d.GetSetting(models.KeyOnboardingDone)
	if err != nil {
		return models.Profile{}, err
	}

	return models.Profile{
		Name:           name,
		Age:            age,
		OnboardingDone: models.ParseBool(done),
	}, nil
}

// SaveProfile writes all profile rows.
func (d *DB) SaveProfile(p models.Profile) error {
	if err := d.SetSetting(models.KeyUserName, p.Name); err != nil {
		return err
	}
	if err := d.SetSetting(models.KeyUserAge, p.Age); err != nil {
		return err
	}
	return d.SetSetting(models.KeyOnboardingDone, models.FormatBool(p.OnboardingDone))
}

// seedDefaultSettings writes the enabled defaults for toggles that do not
// exist yet. Runs once as part of Open.
func (d *DB) seedDefaultSettings() error {
	defaults := []struct {
		key   string
		value string
	}{
		{models.KeyAllowAnalytics, models.FormatBool(true)},
		{models.KeyAllowReminders, models.FormatBool(true)},
	}

	query := `
		INSERT INTO user_settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO NOTHING
	`
	for _, def := range defaults {
		if _, err := d.db.Exec(query, def.key, def.value, time.Now().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("seed setting %s: %w", def.key, err)
		}
	}
	return nil
}
