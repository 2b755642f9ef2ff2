// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the calculations and user_settings tables.
package storage

// initSchema creates or updates the database schema. Idempotent.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calculations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		zone_name TEXT NOT NULL,
		age INTEGER NOT NULL,
		resting_hr INTEGER NOT NULL,
		zone_min INTEGER NOT NULL,
		zone_max INTEGER NOT NULL,
		calculation_date DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS user_settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_calculations_date ON calculations(calculation_date DESC);
	CREATE INDEX IF NOT EXISTS idx_calculations_zone ON calculations(zone_name, calculation_date DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
