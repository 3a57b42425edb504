package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/aberghammer-analytics/nbastatgo/internal/cli"
	"github.com/aberghammer-analytics/nbastatgo/internal/common"
	"github.com/aberghammer-analytics/nbastatgo/internal/convert"
	"github.com/aberghammer-analytics/nbastatgo/internal/record"
	"github.com/aberghammer-analytics/nbastatgo/internal/registry"
	"github.com/aberghammer-analytics/nbastatgo/internal/standardize"
	"github.com/aberghammer-analytics/nbastatgo/internal/validate"
)

func init() {
	standardizeCmd := &cobra.Command{
		Use:   "standardize [files...]",
		Short: "Standardize raw stats records from JSON or CSV files",
		Long: `Standardize raw tabular records: canonical lowercase column names,
zero-padded IDs, parsed dates, seconds-valued durations, derived fields.

Examples:
  # Standardize a game log export in place next to the original
  nbastat standardize gamelog.json --data-type game

  # Infer the data type from the endpoint that produced the table
  nbastat standardize stats.json --endpoint leaguedashplayerstats --season 2023

  # Standardize a directory of exports and validate each result
  nbastat standardize exports/*.json -o clean/ --validate`,
		Args: cobra.MinimumNArgs(1),
		RunE: runStandardize,
	}

	standardizeCmd.Flags().StringP("data-type", "t", "base", "data type: base, player, game, season, team")
	standardizeCmd.Flags().String("endpoint", "", "source endpoint; infers data type and tags output")
	standardizeCmd.Flags().String("season", "", "season to inject, e.g. 2023 or 2023-24")
	standardizeCmd.Flags().Bool("playoffs", false, "mark records as playoff data")
	standardizeCmd.Flags().StringP("output-dir", "o", "", "directory for standardized files (default: alongside input, .std suffix)")
	standardizeCmd.Flags().Bool("validate", false, "validate each standardized record against the default range catalog")

	rootCmd.AddCommand(standardizeCmd)
}

func runStandardize(cmd *cobra.Command, args []string) error {
	dataType, _ := cmd.Flags().GetString("data-type")
	endpoint, _ := cmd.Flags().GetString("endpoint")
	season, _ := cmd.Flags().GetString("season")
	playoffs, _ := cmd.Flags().GetBool("playoffs")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	runValidation, _ := cmd.Flags().GetBool("validate")

	files, err := expandPatterns(args)
	if err != nil {
		return err
	}

	dt, err := registry.ParseDataType(dataType)
	if err != nil {
		return err
	}
	if endpoint != "" && !cmd.Flags().Changed("data-type") {
		dt = registry.DataTypeForEndpoint(endpoint)
		slog.Info("Inferred data type from endpoint", "endpoint", endpoint, "data_type", string(dt))
	}

	ctx, err := buildContext(season, playoffs, endpoint)
	if err != nil {
		return err
	}
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	var bar *progressbar.ProgressBar
	if len(files) > 1 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Standardizing..."),
		)
	}

	s := standardize.New(nil)
	totalRows, totalFailures, failedFiles := 0, 0, 0

	for _, path := range files {
		rows, failures, err := standardizeFile(s, path, dt, ctx, outputDir, runValidation)
		if err != nil {
			slog.Error("Failed to standardize file", "file", path, "error", err)
			failedFiles++
		} else {
			totalRows += rows
			totalFailures += failures
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		fmt.Fprintln(os.Stderr)
	}

	fmt.Println(cli.FormatTitle("Standardization complete"))
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d file(s), %d row(s)", len(files)-failedFiles, totalRows)))
	if outputDir != "" {
		fmt.Println(cli.FormatSubtle("output: " + outputDir))
	}
	if totalFailures > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("%d cell(s) kept their original value", totalFailures)))
	}
	if failedFiles > 0 {
		return fmt.Errorf("%d file(s) could not be processed", failedFiles)
	}
	return nil
}

func standardizeFile(s *standardize.Standardizer, path string, dt registry.DataType, ctx *standardize.Context, outputDir string, runValidation bool) (rows, failureCount int, err error) {
	rec, err := record.LoadFile(path)
	if err != nil {
		return 0, 0, err
	}

	out, failures, err := s.Standardize(rec, dt, ctx)
	if err != nil {
		return 0, 0, err
	}

	if runValidation {
		result, err := validate.Record(out, validate.Rules{
			Ranges: registry.RangesFor(out.ColumnNames()),
		})
		if err != nil {
			return 0, 0, err
		}
		printValidation(path, result)
	}

	target := outputPath(path, outputDir)
	if err := record.SaveFile(target, out); err != nil {
		return 0, 0, err
	}
	slog.Info("Standardized file",
		"file", filepath.Base(path),
		"rows", out.NumRows(),
		"columns", out.NumColumns(),
		"failures", len(failures),
		"output", target)
	return out.NumRows(), len(failures), nil
}

// outputPath picks where a standardized file lands: the output directory
// when given, otherwise next to the input with a .std suffix.
func outputPath(path, outputDir string) string {
	base := filepath.Base(path)
	if outputDir != "" {
		return filepath.Join(outputDir, base)
	}
	ext := filepath.Ext(base)
	return filepath.Join(filepath.Dir(path), strings.TrimSuffix(base, ext)+".std"+ext)
}

func buildContext(season string, playoffs bool, endpoint string) (*standardize.Context, error) {
	if season == "" && !playoffs && endpoint == "" {
		return nil, nil
	}
	if season != "" {
		normalized, err := convert.NormalizeSeason(season)
		if err != nil {
			return nil, err
		}
		season = normalized
	}
	return &standardize.Context{Season: season, Playoffs: playoffs, Source: endpoint}, nil
}

// expandPatterns resolves globs and verifies plain paths exist.
func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			files = append(files, matches...)
		}
	}
	if len(files) == 0 {
		return nil, common.NewUserError("no input files found", nil)
	}
	return files, nil
}
