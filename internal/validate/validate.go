// Package validate checks canonical records against declarative rules.
// Data-quality problems are reported through the Result, never as
// errors; only malformed rule specifications are returned as errors.
package validate

import (
	"fmt"

	"github.com/aberghammer-analytics/nbastatgo/internal/common"
	"github.com/aberghammer-analytics/nbastatgo/internal/convert"
	"github.com/aberghammer-analytics/nbastatgo/internal/record"
	"github.com/aberghammer-analytics/nbastatgo/internal/registry"
)

// DefaultMaxNullPct is the null-fraction ceiling used when the rules do
// not set one.
const DefaultMaxNullPct = 50.0

// Rules is a declarative rule set for one validation call.
type Rules struct {
	// Required lists columns that must be present and not entirely null.
	Required []string
	// Ranges bounds the values of numeric columns, inclusive.
	Ranges map[string]registry.Range
	// MaxNullPct caps the fraction of nulls per column before a warning
	// is raised. Nil uses DefaultMaxNullPct.
	MaxNullPct *float64
}

// Result is the outcome of one validation call. It is created once and
// never mutated afterwards.
type Result struct {
	Passed   bool     `json:"passed"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Record checks a record against the rules. The returned error is
// non-nil only for malformed rules, which are caller programming errors.
func Record(rec *record.Record, rules Rules) (Result, error) {
	if rec == nil {
		return Result{}, fmt.Errorf("validate: nil record")
	}
	maxNullPct := DefaultMaxNullPct
	if rules.MaxNullPct != nil {
		maxNullPct = *rules.MaxNullPct
	}
	if maxNullPct < 0 || maxNullPct > 100 {
		return Result{}, fmt.Errorf("validate: %w: %.1f not in [0, 100]",
			common.ErrInvalidNullCeiling, maxNullPct)
	}
	for col, r := range rules.Ranges {
		if r.Min > r.Max {
			return Result{}, fmt.Errorf("validate: %w: column %q has min %g > max %g",
				common.ErrInvalidRangeRule, col, r.Min, r.Max)
		}
	}

	var errs, warnings []string

	if rec.NumRows() == 0 {
		warnings = append(warnings, "record has no rows")
	}

	errs = append(errs, checkRequired(rec, rules.Required)...)
	errs = append(errs, checkRanges(rec, rules.Ranges)...)
	warnings = append(warnings, checkNullFractions(rec, rules.Required, maxNullPct)...)

	return Result{
		Passed:   len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}, nil
}

// checkRequired reports missing required columns and required columns
// that are entirely null.
func checkRequired(rec *record.Record, required []string) []string {
	var errs []string
	for _, name := range required {
		if !rec.Has(name) {
			errs = append(errs, fmt.Sprintf("required column %q is missing", name))
			continue
		}
		values, _ := rec.Values(name)
		if len(values) == 0 {
			continue
		}
		if countNulls(values) == len(values) {
			errs = append(errs, fmt.Sprintf("required column %q is entirely null", name))
		}
	}
	return errs
}

// checkRanges verifies every non-null value of each ruled column lies
// within its inclusive bounds. Columns absent from the record are not an
// error; the rules describe what is acceptable, not what must exist.
func checkRanges(rec *record.Record, ranges map[string]registry.Range) []string {
	var errs []string
	for _, col := range rec.Columns() {
		bounds, ok := ranges[col.Name]
		if !ok {
			continue
		}
		for i, v := range col.Values {
			if record.IsNull(v) {
				continue
			}
			f, err := convert.Float(v)
			if err != nil {
				errs = append(errs, fmt.Sprintf(
					"column %q row %d: value %v is not numeric", col.Name, i, v))
				continue
			}
			if f < bounds.Min || f > bounds.Max {
				errs = append(errs, fmt.Sprintf(
					"column %q row %d: value %v outside range [%g, %g]",
					col.Name, i, v, bounds.Min, bounds.Max))
			}
		}
	}
	return errs
}

// checkNullFractions warns when a column's null fraction exceeds the
// ceiling. With required columns specified, only those columns are
// checked; otherwise every column is. Entirely-null required columns are
// already hard errors and are not re-reported here.
func checkNullFractions(rec *record.Record, required []string, maxNullPct float64) []string {
	requiredSet := make(map[string]bool, len(required))
	for _, name := range required {
		requiredSet[name] = true
	}

	var warnings []string
	for _, col := range rec.Columns() {
		if len(required) > 0 && !requiredSet[col.Name] {
			continue
		}
		rows := len(col.Values)
		if rows == 0 {
			continue
		}
		pct := float64(countNulls(col.Values)) / float64(rows) * 100
		switch {
		case pct == 100 && !requiredSet[col.Name]:
			warnings = append(warnings, fmt.Sprintf("column %q is entirely null", col.Name))
		case pct > maxNullPct && pct < 100:
			warnings = append(warnings, fmt.Sprintf(
				"column %q is %.1f%% null (ceiling %.1f%%)", col.Name, pct, maxNullPct))
		}
	}
	return warnings
}

func countNulls(values []any) int {
	nulls := 0
	for _, v := range values {
		if record.IsNull(v) {
			nulls++
		}
	}
	return nulls
}
