// Package mcpserver exposes the standardization and validation engine as
// MCP tools over stdio, so AI assistants can clean and check tabular
// stats data without linking the library. The server never fetches data
// itself; records arrive as JSON in the tool arguments.
package mcpserver

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aberghammer-analytics/nbastatgo/internal/registry"
	"github.com/aberghammer-analytics/nbastatgo/internal/standardize"
)

// Server is the MCP front end over the standardization engine.
type Server struct {
	mcp          *server.MCPServer
	standardizer *standardize.Standardizer
	fields       *registry.Fields
}

// New creates an MCP server with all tools registered. A nil registry
// uses the default field tables.
func New(fields *registry.Fields, version string) *Server {
	if fields == nil {
		fields = registry.DefaultFields()
	}
	s := &Server{
		standardizer: standardize.New(fields),
		fields:       fields,
	}

	s.mcp = server.NewMCPServer(
		"nbastatgo",
		version,
		server.WithToolCapabilities(true),
	)

	s.registerStandardizeTools()
	s.registerRegistryTools()

	return s
}

// ServeStdio runs the server on stdin/stdout until the client hangs up.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// textResult creates a simple text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}
