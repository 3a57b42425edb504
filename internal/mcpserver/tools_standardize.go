package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/aberghammer-analytics/nbastatgo/internal/convert"
	"github.com/aberghammer-analytics/nbastatgo/internal/record"
	"github.com/aberghammer-analytics/nbastatgo/internal/registry"
	"github.com/aberghammer-analytics/nbastatgo/internal/standardize"
	"github.com/aberghammer-analytics/nbastatgo/internal/validate"
)

func (s *Server) registerStandardizeTools() {
	s.mcp.AddTool(mcp.NewTool("standardize_records",
		mcp.WithDescription("Standardize tabular stats records: canonical lowercase column names, zero-padded IDs, parsed dates, derived fields. Returns the standardized rows plus any per-cell conversion failures."),
		mcp.WithString("records",
			mcp.Description("JSON array of row objects (or object of column arrays)"),
			mcp.Required(),
		),
		mcp.WithString("data_type",
			mcp.Description("One of: base, player, game, season, team. Defaults to base."),
		),
		mcp.WithString("season",
			mcp.Description("Season label to inject, e.g. \"2023-24\" or \"2023\""),
		),
		mcp.WithBoolean("playoffs",
			mcp.Description("Whether the records are playoff data"),
		),
		mcp.WithString("source_endpoint",
			mcp.Description("Source endpoint tag to inject, e.g. \"leaguedashplayerstats\""),
		),
	), s.handleStandardizeRecords)

	s.mcp.AddTool(mcp.NewTool("validate_records",
		mcp.WithDescription("Validate tabular records against declarative rules. Returns passed flag plus ordered error and warning messages; data problems never fail the call."),
		mcp.WithString("records",
			mcp.Description("JSON array of row objects (or object of column arrays)"),
			mcp.Required(),
		),
		mcp.WithString("required_columns",
			mcp.Description("JSON array of column names that must be present, e.g. [\"player_id\",\"team_id\"]"),
		),
		mcp.WithString("range_rules",
			mcp.Description("JSON object of inclusive bounds per column, e.g. {\"age\":[15,50]}"),
		),
		mcp.WithNumber("max_null_pct",
			mcp.Description("Null-fraction ceiling per column before a warning, 0-100. Defaults to 50."),
		),
		mcp.WithBoolean("default_ranges",
			mcp.Description("Also apply the built-in range catalog to matching columns"),
		),
	), s.handleValidateRecords)

	s.mcp.AddTool(mcp.NewTool("convert_value",
		mcp.WithDescription("Run a single scalar converter: id, date, minutes, clock, height, weight, winloss, or season."),
		mcp.WithString("converter",
			mcp.Description("Converter name"),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description("Value to convert"),
			mcp.Required(),
		),
	), s.handleConvertValue)
}

func (s *Server) handleStandardizeRecords(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recordsJSON := req.GetString("records", "")
	if recordsJSON == "" {
		return nil, fmt.Errorf("records is required")
	}
	rec, err := record.DecodeJSON([]byte(recordsJSON))
	if err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}
	dt, err := registry.ParseDataType(req.GetString("data_type", "base"))
	if err != nil {
		return nil, err
	}

	ctx := toolContext(req)
	out, failures, err := s.standardizer.Standardize(rec, dt, ctx)
	if err != nil {
		return nil, err
	}

	return jsonResult(map[string]any{
		"records":  out.Rows(),
		"failures": failureMessages(failures),
	})
}

func (s *Server) handleValidateRecords(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recordsJSON := req.GetString("records", "")
	if recordsJSON == "" {
		return nil, fmt.Errorf("records is required")
	}
	rec, err := record.DecodeJSON([]byte(recordsJSON))
	if err != nil {
		return nil, fmt.Errorf("parse records: %w", err)
	}

	rules, err := toolRules(req, rec)
	if err != nil {
		return nil, err
	}
	result, err := validate.Record(rec, rules)
	if err != nil {
		return nil, err
	}
	return jsonResult(result)
}

func (s *Server) handleConvertValue(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	converter := req.GetString("converter", "")
	value := req.GetString("value", "")

	out, err := ConvertScalar(s.fields, converter, value)
	if err != nil {
		return nil, err
	}
	return jsonResult(map[string]any{"value": out})
}

// ConvertScalar dispatches one scalar conversion by converter name.
func ConvertScalar(fields *registry.Fields, converter, value string) (any, error) {
	switch converter {
	case "id":
		return convert.ID(value)
	case "date":
		t, err := convert.Date(value, fields.DateFormats())
		if err != nil {
			return nil, err
		}
		return t.Format("2006-01-02"), nil
	case "minutes":
		return convert.MinutesSeconds(value)
	case "clock":
		return convert.Clock(value)
	case "height":
		return convert.Height(value)
	case "weight":
		return convert.Weight(value)
	case "winloss":
		return convert.WinLoss(value)
	case "season":
		return convert.NormalizeSeason(value)
	default:
		return nil, fmt.Errorf("unknown converter %q", converter)
	}
}

// toolContext builds a standardization context from tool arguments, or
// nil when none were given.
func toolContext(req mcp.CallToolRequest) *standardize.Context {
	args := req.GetArguments()
	season := req.GetString("season", "")
	source := req.GetString("source_endpoint", "")
	playoffs, hasPlayoffs := args["playoffs"].(bool)
	if season == "" && source == "" && !hasPlayoffs {
		return nil
	}
	if season != "" {
		if normalized, err := convert.NormalizeSeason(season); err == nil {
			season = normalized
		}
	}
	return &standardize.Context{Season: season, Playoffs: playoffs, Source: source}
}

// toolRules builds a validation rule set from tool arguments.
func toolRules(req mcp.CallToolRequest, rec *record.Record) (validate.Rules, error) {
	var rules validate.Rules

	if requiredJSON := req.GetString("required_columns", ""); requiredJSON != "" {
		if err := parseJSON(requiredJSON, &rules.Required); err != nil {
			return rules, fmt.Errorf("parse required_columns: %w", err)
		}
	}

	rules.Ranges = make(map[string]registry.Range)
	if useDefaults, _ := req.GetArguments()["default_ranges"].(bool); useDefaults {
		for col, r := range registry.RangesFor(rec.ColumnNames()) {
			rules.Ranges[col] = r
		}
	}
	if rangesJSON := req.GetString("range_rules", ""); rangesJSON != "" {
		var raw map[string][2]float64
		if err := parseJSON(rangesJSON, &raw); err != nil {
			return rules, fmt.Errorf("parse range_rules: %w", err)
		}
		for col, bounds := range raw {
			rules.Ranges[col] = registry.Range{Min: bounds[0], Max: bounds[1]}
		}
	}

	if pct, ok := req.GetArguments()["max_null_pct"].(float64); ok {
		rules.MaxNullPct = &pct
	}
	return rules, nil
}

func failureMessages(failures []standardize.Failure) []string {
	msgs := make([]string, len(failures))
	for i, f := range failures {
		if f.Row < 0 {
			msgs[i] = fmt.Sprintf("column %q: %s", f.Column, f.Reason)
			continue
		}
		msgs[i] = fmt.Sprintf("column %q row %d: %s", f.Column, f.Row, f.Reason)
	}
	return msgs
}
