// ABOUTME: MCP resource implementations for the pulse zone store.
// ABOUTME: Provides pulse://zones, pulse://recent, and pulse://stats resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/TVA808s/pulse/internal/history"
	"github.com/TVA808s/pulse/internal/zones"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// pulse://zones - static training zone table
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "pulse://zones",
		Name:        "Training Zone Table",
		Description: "The five Karvonen training zones with percentage ranges and effort descriptions",
		MIMEType:    "text/markdown",
	}, s.handleZonesResource)

	// pulse://recent - last 10 calculations
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "pulse://recent",
		Name:        "Recent Calculations",
		Description: "Last 10 zone calculations",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// pulse://stats - resting heart-rate statistics over all history
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "pulse://stats",
		Name:        "Resting HR Statistics",
		Description: "Min, average, and max resting heart rate across all calculations",
		MIMEType:    "application/json",
	}, s.handleStatsResource)
}

// Resource handlers

func (s *Server) handleZonesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	var b strings.Builder
	b.WriteString("| Zone | % of HRR | Effort |\n")
	b.WriteString("|------|----------|--------|\n")
	for _, z := range zones.AllZones {
		pct := zones.ZonePercentages[z]
		fmt.Fprintf(&b, "| %s | %d-%d%% | %s |\n", z, pct.Min, pct.Max, zones.Interpretation(z))
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "pulse://zones",
			MIMEType: "text/markdown",
			Text:     b.String(),
		}},
	}, nil
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.repo.ListCalculations(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "pulse://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.repo.ListCalculations(0)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}

	stats := history.RestingHRStats(records)
	result := map[string]interface{}{
		"count": len(records),
		"avg":   stats.Avg,
		"min":   stats.Min,
		"max":   stats.Max,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "pulse://stats",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
