// ABOUTME: Repository interface for pulse data storage.
// ABOUTME: Defines the contract the CLI, MCP, and sync layers consume.
package storage

import (
	"github.com/TVA808s/pulse/internal/models"
	"github.com/TVA808s/pulse/internal/zones"
)

// Repository defines the storage interface for pulse data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Calculation operations
	SaveCalculation(c *models.Calculation) (int64, error)
	ListCalculations(limit int) ([]*models.Calculation, error)
	ListCalculationsByZone(zone zones.Zone, limit int) ([]*models.Calculation, error)
	GetCalculation(id int64) (*models.Calculation, error)
	GetLastCalculation() (*models.Calculation, error)
	DeleteCalculation(id int64) (bool, error)

	// Settings and profile
	SetSetting(key, value string) error
	GetSetting(key string) (string, error)
	LoadSettings() (models.Settings, error)
	SaveSettings(s models.Settings) error
	LoadProfile() (models.Profile, error)
	SaveProfile(p models.Profile) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
