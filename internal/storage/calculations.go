// ABOUTME: Calculation record CRUD for SQLite storage.
// ABOUTME: Records are append-only; deletion is the only mutation.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/TVA808s/pulse/internal/models"
	"github.com/TVA808s/pulse/internal/zones"
)

const calculationColumns = "id, zone_name, age, resting_hr, zone_min, zone_max, calculation_date"

// SaveCalculation stores a new record and returns its assigned id.
// Save failures surface as errors; they are never swallowed here.
func (d *DB) SaveCalculation(c *models.Calculation) (int64, error) {
	query := `
		INSERT INTO calculations (zone_name, age, resting_hr, zone_min, zone_max, calculation_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := d.db.Exec(query,
		string(c.Zone),
		c.Age,
		c.RestingHR,
		c.ZoneMin,
		c.ZoneMax,
		c.CalculatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("save calculation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save calculation: %w", err)
	}
	c.ID = id
	return id, nil
}

// ListCalculations returns up to limit records, most recent first.
// limit <= 0 means no limit.
func (d *DB) ListCalculations(limit int) ([]*models.Calculation, error) {
	query := `
		SELECT ` + calculationColumns + `
		FROM calculations
		ORDER BY calculation_date DESC, id DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	defer rows.Close()

	return scanCalculations(rows)
}

// ListCalculationsByZone returns records for one zone, most recent first.
func (d *DB) ListCalculationsByZone(zone zones.Zone, limit int) ([]*models.Calculation, error) {
	query := `
		SELECT ` + calculationColumns + `
		FROM calculations
		WHERE zone_name = ?
		ORDER BY calculation_date DESC, id DESC
	`
	args := []interface{}{string(zone)}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list calculations by zone: %w", err)
	}
	defer rows.Close()

	return scanCalculations(rows)
}

// GetCalculation returns one record by id, or nil when no row matches.
func (d *DB) GetCalculation(id int64) (*models.Calculation, error) {
	query := `
		SELECT ` + calculationColumns + `
		FROM calculations
		WHERE id = ?
	`
	c, err := scanCalculation(d.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// GetLastCalculation returns the latest record, or nil when the store is
// empty. An empty store is the documented "no data yet" state, not an error.
func (d *DB) GetLastCalculation() (*models.Calculation, error) {
	query := `
		SELECT ` + calculationColumns + `
		FROM calculations
		ORDER BY calculation_date DESC, id DESC
		LIMIT 1
	`
	c, err := scanCalculation(d.db.QueryRow(query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// DeleteCalculation removes a record by id. Returns false when no row
// matched; deleting the same id twice is not an error.
func (d *DB) DeleteCalculation(id int64) (bool, error) {
	res, err := d.db.Exec("DELETE FROM calculations WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete calculation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete calculation: %w", err)
	}
	return affected > 0, nil
}

// scanCalculation scans a single row into a Calculation struct.
func scanCalculation(row *sql.Row) (*models.Calculation, error) {
	var c models.Calculation
	var zone, calcDate string

	err := row.Scan(&c.ID, &zone, &c.Age, &c.RestingHR, &c.ZoneMin, &c.ZoneMax, &calcDate)
	if err != nil {
		return nil, fmt.Errorf("scan calculation: %w", err)
	}

	c.Zone = zones.Zone(zone)
	c.CalculatedAt, _ = time.Parse(time.RFC3339, calcDate)
	return &c, nil
}

// scanCalculations scans multiple rows into a slice of Calculations.
func scanCalculations(rows *sql.Rows) ([]*models.Calculation, error) {
	var calcs []*models.Calculation

	for rows.Next() {
		var c models.Calculation
		var zone, calcDate string

		err := rows.Scan(&c.ID, &zone, &c.Age, &c.RestingHR, &c.ZoneMin, &c.ZoneMax, &calcDate)
		if err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}

		c.Zone = zones.Zone(zone)
		c.CalculatedAt, _ = time.Parse(time.RFC3339, calcDate)
		calcs = append(calcs, &c)
	}

	return calcs, rows.Err()
}
