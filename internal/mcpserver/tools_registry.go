package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aberghammer-analytics/nbastatgo/internal/registry"
)

func (s *Server) registerRegistryTools() {
	s.mcp.AddTool(mcp.NewTool("list_fields",
		mcp.WithDescription("List the field registry: column names grouped by category, legacy-name mappings, and the candidate date formats."),
	), s.handleListFields)

	s.mcp.AddTool(mcp.NewTool("infer_data_type",
		mcp.WithDescription("Infer which data type a stats endpoint's tables should be standardized as (player, game, season, team, or base)."),
		mcp.WithString("endpoint",
			mcp.Description("Endpoint name, e.g. \"boxscoretraditionalv3\""),
			mcp.Required(),
		),
	), s.handleInferDataType)
}

func (s *Server) handleListFields(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"categories":   s.fields.ByCategory(),
		"renames":      s.fields.Renames(),
		"date_formats": s.fields.DateFormats(),
	})
}

func (s *Server) handleInferDataType(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	endpoint := req.GetString("endpoint", "")
	if endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	dt := registry.DataTypeForEndpoint(endpoint)
	return jsonResult(map[string]string{
		"endpoint":  endpoint,
		"data_type": string(dt),
	})
}
