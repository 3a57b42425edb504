package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aberghammer-analytics/nbastatgo/internal/mcpserver"
)

func init() {
	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the standardization tools over MCP on stdio",
		Long: `Run an MCP (Model Context Protocol) server on stdin/stdout exposing the
standardization and validation engine as tools for AI assistants:
standardize_records, validate_records, convert_value, list_fields, and
infer_data_type.`,
		RunE: runMCP,
	}

	rootCmd.AddCommand(mcpCmd)
}

func runMCP(_ *cobra.Command, _ []string) error {
	slog.Info("Starting MCP server on stdio", "version", version)
	return mcpserver.New(nil, version).ServeStdio()
}
