// ABOUTME: MCP tool implementations for heart-rate zone calculations.
// ABOUTME: Provides compute, history, last-result, and delete operations.
package mcp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/TVA808s/pulse/internal/history"
	"github.com/TVA808s/pulse/internal/models"
	"github.com/TVA808s/pulse/internal/zones"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// calculate_zone
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calculate_zone",
		Description: "Compute heart-rate zone limits from age and resting heart rate using the Karvonen formula",
	}, s.handleCalculateZone)

	// get_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_history",
		Description: "List recent zone calculations with resting heart-rate statistics",
	}, s.handleGetHistory)

	// get_last_calculation
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_last_calculation",
		Description: "Get the most recent zone calculation as a compact summary",
	}, s.handleGetLastCalculation)

	// delete_calculation
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_calculation",
		Description: "Delete a zone calculation by id",
	}, s.handleDeleteCalculation)
}

// Tool input/output types

type calculateZoneInput struct {
	Zone      string `json:"zone" jsonschema:"Training zone (recovery, aerobic, tempo, anaerobic, maximal)"`
	Age       string `json:"age" jsonschema:"Age in years (12-90)"`
	RestingHR string `json:"resting_hr" jsonschema:"Resting heart rate in bpm (40-100)"`
	Save      bool   `json:"save,omitempty" jsonschema:"Persist the calculation to history"`
}

type calculateZoneOutput struct {
	Zone             string `json:"zone"`
	MaxHR            int    `json:"max_hr"`
	HeartRateReserve int    `json:"heart_rate_reserve"`
	ZoneMin          int    `json:"zone_min"`
	ZoneMax          int    `json:"zone_max"`
	Range            string `json:"range"`
	Interpretation   string `json:"interpretation"`
	ID               int64  `json:"id,omitempty"`
	Message          string `json:"message"`
}

type getHistoryInput struct {
	Zone  string `json:"zone,omitempty" jsonschema:"Filter by training zone"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type deleteCalculationInput struct {
	ID int64 `json:"id" jsonschema:"Calculation id"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleCalculateZone(ctx context.Context, req *mcp.CallToolRequest, input calculateZoneInput) (*mcp.CallToolResult, calculateZoneOutput, error) {
	zone := zones.Zone(input.Zone)
	if !zones.IsValidZone(zone) {
		return nil, calculateZoneOutput{}, fmt.Errorf("unknown zone: %s", input.Zone)
	}

	ageText := zones.CleanNumberInput(input.Age)
	hrText := zones.CleanNumberInput(input.RestingHR)

	if v := zones.ValidateAge(ageText); !v.Valid {
		return nil, calculateZoneOutput{}, fmt.Errorf("invalid age %q: %s", input.Age, v.Error)
	}
	if v := zones.ValidateRestingHR(hrText); !v.Valid {
		return nil, calculateZoneOutput{}, fmt.Errorf("invalid resting heart rate %q: %s", input.RestingHR, v.Error)
	}

	result := zones.CalculateAll(ageText, hrText, zone)
	if result == nil {
		return nil, calculateZoneOutput{}, fmt.Errorf("age and resting heart rate must be numbers")
	}

	out := calculateZoneOutput{
		Zone:             input.Zone,
		MaxHR:            result.MaxHR,
		HeartRateReserve: result.HeartRateReserve,
		ZoneMin:          result.Limits.Min,
		ZoneMax:          result.Limits.Max,
		Range:            zones.FormatRange(result.Limits),
		Interpretation:   zones.Interpretation(zone),
		Message:          fmt.Sprintf("%s zone: %s bpm", input.Zone, zones.FormatRange(result.Limits)),
	}

	if input.Save {
		age, _ := strconv.Atoi(ageText)
		restingHR, _ := strconv.Atoi(hrText)
		c := models.NewCalculation(zone, age, restingHR, result.Limits)
		id, err := s.repo.SaveCalculation(c)
		if err != nil {
			return nil, calculateZoneOutput{}, fmt.Errorf("failed to save calculation: %w", err)
		}
		out.ID = id
		out.Message = fmt.Sprintf("%s (saved as #%d)", out.Message, id)
	}

	return nil, out, nil
}

func (s *Server) handleGetHistory(ctx context.Context, req *mcp.CallToolRequest, input getHistoryInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var records []*models.Calculation
	var err error
	if input.Zone != "" {
		zone := zones.Zone(input.Zone)
		if !zones.IsValidZone(zone) {
			return nil, nil, fmt.Errorf("unknown zone: %s", input.Zone)
		}
		records, err = s.repo.ListCalculationsByZone(zone, input.Limit)
	} else {
		records, err = s.repo.ListCalculations(input.Limit)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list calculations: %w", err)
	}

	if len(records) == 0 {
		return nil, map[string]interface{}{"message": "No calculations found."}, nil
	}

	stats := history.RestingHRStats(records)
	return nil, map[string]interface{}{
		"calculations": records,
		"resting_hr_stats": map[string]interface{}{
			"avg": stats.Avg,
			"min": stats.Min,
			"max": stats.Max,
		},
	}, nil
}

func (s *Server) handleGetLastCalculation(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	c, err := s.repo.GetLastCalculation()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load last calculation: %w", err)
	}
	if c == nil {
		return nil, map[string]interface{}{"message": "No calculations yet."}, nil
	}

	return nil, map[string]interface{}{
		"zone_range": c.Range(),
		"resting_hr": strconv.Itoa(c.RestingHR),
	}, nil
}

func (s *Server) handleDeleteCalculation(ctx context.Context, req *mcp.CallToolRequest, input deleteCalculationInput) (*mcp.CallToolResult, simpleOutput, error) {
	deleted, err := s.repo.DeleteCalculation(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete calculation: %w", err)
	}
	if !deleted {
		return nil, simpleOutput{Message: fmt.Sprintf("No calculation with id %d.", input.ID)}, nil
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted calculation %d.", input.ID)}, nil
}
