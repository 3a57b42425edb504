package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aberghammer-analytics/nbastatgo/internal/cli"
	"github.com/aberghammer-analytics/nbastatgo/internal/record"
	"github.com/aberghammer-analytics/nbastatgo/internal/registry"
	"github.com/aberghammer-analytics/nbastatgo/internal/validate"
)

func init() {
	validateCmd := &cobra.Command{
		Use:   "validate [files...]",
		Short: "Validate standardized records against declarative rules",
		Long: `Validate records against required columns, numeric range rules, and a
null-fraction ceiling. Hard violations are errors; soft issues come back
as warnings. The command exits non-zero when any file fails.

Examples:
  nbastat validate clean/gamelog.json --required player_id,team_id
  nbastat validate clean/*.json --range age:15:50 --range pts:0:120
  nbastat validate roster.csv --default-ranges --max-null-pct 25`,
		Args: cobra.MinimumNArgs(1),
		RunE: runValidate,
	}

	validateCmd.Flags().StringSlice("required", nil, "columns that must be present (comma separated)")
	validateCmd.Flags().StringArray("range", nil, "range rule col:min:max (repeatable)")
	validateCmd.Flags().Float64("max-null-pct", validate.DefaultMaxNullPct, "null percentage ceiling per column")
	validateCmd.Flags().Bool("default-ranges", false, "apply the built-in range catalog to matching columns")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	required, _ := cmd.Flags().GetStringSlice("required")
	rangeSpecs, _ := cmd.Flags().GetStringArray("range")
	maxNullPct, _ := cmd.Flags().GetFloat64("max-null-pct")
	useDefaults, _ := cmd.Flags().GetBool("default-ranges")

	files, err := expandPatterns(args)
	if err != nil {
		return err
	}

	ranges, err := parseRangeSpecs(rangeSpecs)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range files {
		rec, err := record.LoadFile(path)
		if err != nil {
			return err
		}

		rules := validate.Rules{
			Required:   required,
			Ranges:     make(map[string]registry.Range),
			MaxNullPct: &maxNullPct,
		}
		if useDefaults {
			for col, r := range registry.RangesFor(rec.ColumnNames()) {
				rules.Ranges[col] = r
			}
		}
		for col, r := range ranges {
			rules.Ranges[col] = r
		}

		result, err := validate.Record(rec, rules)
		if err != nil {
			return err
		}
		printValidation(path, result)
		if !result.Passed {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", failed, len(files))
	}
	return nil
}

func printValidation(path string, result validate.Result) {
	fmt.Println(cli.FormatTitle(path))
	if result.Passed {
		fmt.Println(cli.FormatSuccess("passed"))
	} else {
		fmt.Println(cli.FormatError(fmt.Sprintf("failed with %d error(s)", len(result.Errors))))
	}
	for _, msg := range result.Errors {
		fmt.Println("  " + cli.FormatError(msg))
	}
	for _, msg := range result.Warnings {
		fmt.Println("  " + cli.FormatWarning(msg))
	}
}

// parseRangeSpecs parses repeated col:min:max flags.
func parseRangeSpecs(specs []string) (map[string]registry.Range, error) {
	ranges := make(map[string]registry.Range, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid range %q, want col:min:max", spec)
		}
		minVal, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: %w", spec, err)
		}
		maxVal, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid range %q: %w", spec, err)
		}
		ranges[parts[0]] = registry.Range{Min: minVal, Max: maxVal}
	}
	return ranges, nil
}
