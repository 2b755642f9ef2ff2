// ABOUTME: Calculation record operations for the Charm KV mirror.
// ABOUTME: Uses id-keyed JSON values and client-side sorting.
package charm

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/TVA808s/pulse/internal/models"
)

// PushCalculation stores one record in the KV mirror, keyed by its id.
// Pushing the same record twice overwrites in place.
func (c *Client) PushCalculation(calc *models.Calculation) error {
	data, err := json.Marshal(calc)
	if err != nil {
		return fmt.Errorf("marshal calculation: %w", err)
	}
	return c.set(calcKey(calc.ID), data)
}

// ListCalculations retrieves mirrored records, most recent first.
func (c *Client) ListCalculations() ([]*models.Calculation, error) {
	allData, err := c.listByPrefix(CalcPrefix)
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}

	var calcs []*models.Calculation
	for _, data := range allData {
		var calc models.Calculation
		if err := json.Unmarshal(data, &calc); err != nil {
			continue // Skip invalid entries
		}
		calcs = append(calcs, &calc)
	}

	sort.Slice(calcs, func(i, j int) bool {
		return calcs[i].CalculatedAt.After(calcs[j].CalculatedAt)
	})
	return calcs, nil
}

// DeleteCalculation removes one mirrored record.
func (c *Client) DeleteCalculation(id int64) error {
	return c.delete(calcKey(id))
}

// WipeCalculations removes every mirrored record.
func (c *Client) WipeCalculations() (int, error) {
	keys, err := c.keysByPrefix(CalcPrefix)
	if err != nil {
		return 0, fmt.Errorf("wipe calculations: %w", err)
	}
	for _, key := range keys {
		if err := c.delete(key); err != nil {
			return 0, fmt.Errorf("wipe calculations: %w", err)
		}
	}
	return len(keys), nil
}

func calcKey(id int64) string {
	return fmt.Sprintf("%s%d", CalcPrefix, id)
}
