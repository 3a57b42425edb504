// Package standardize implements the record transformer: it maps raw
// tabular records with inconsistent column names and value encodings to
// canonical records, consulting the field registry and the scalar
// converters. Individual value conversions fail safe (original value
// kept, incident recorded); only caller-contract violations return an
// error.
package standardize

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aberghammer-analytics/nbastatgo/internal/common"
	"github.com/aberghammer-analytics/nbastatgo/internal/convert"
	"github.com/aberghammer-analytics/nbastatgo/internal/record"
	"github.com/aberghammer-analytics/nbastatgo/internal/registry"
)

// Context carries the metadata injected into standardized records.
type Context struct {
	Season   string // season label, e.g. "2023-24"
	Playoffs bool
	Source   string // source endpoint tag
}

// Failure records one fail-safe conversion failure. Row is -1 for
// column-level incidents such as a rename collision.
type Failure struct {
	Column string
	Row    int
	Value  any
	Reason string
}

// Columns holding play-by-play clock text like "PT11M23S".
var clockColumns = map[string]bool{
	"clock":      true,
	"game_clock": true,
}

// Columns holding weight text converted to whole pounds.
var weightColumns = map[string]bool{
	"weight":        true,
	"player_weight": true,
}

// Derived and split column names.
const (
	heightInchesColumn = "height_inches"
	homeTeamColumn     = "home_team"
	awayTeamColumn     = "away_team"
	matchupColumn      = "matchup"
	winLossColumn      = "wl"
)

// Standardizer applies the standardization rules for a field registry.
// It is stateless across calls; concurrent calls on independent records
// are safe as long as the registry is not being extended.
type Standardizer struct {
	fields *registry.Fields
	now    func() time.Time
}

// New creates a standardizer. A nil registry uses the default tables.
func New(fields *registry.Fields) *Standardizer {
	if fields == nil {
		fields = registry.DefaultFields()
	}
	return &Standardizer{fields: fields, now: time.Now}
}

// Fields exposes the registry so callers can extend it before use.
func (s *Standardizer) Fields() *registry.Fields {
	return s.fields
}

// Standardize transforms a raw record into its canonical form. The
// returned record has the same row count and row order as the input;
// per-value failures are returned (and logged) rather than raised. An
// unsupported data type is a programming error and returns a non-nil
// error.
func (s *Standardizer) Standardize(rec *record.Record, dt registry.DataType, ctx *Context) (*record.Record, []Failure, error) {
	if rec == nil {
		return nil, nil, fmt.Errorf("standardize: nil record")
	}
	switch dt {
	case registry.DataTypeBase, registry.DataTypePlayer, registry.DataTypeGame,
		registry.DataTypeSeason, registry.DataTypeTeam:
	default:
		return nil, nil, fmt.Errorf("standardize: %w: %q", common.ErrUnknownDataType, dt)
	}

	out := rec.Clone()
	var failures []Failure

	s.renamePass(out, &failures)
	s.categoryPass(out, dt, &failures)

	switch dt {
	case registry.DataTypePlayer:
		s.playerPass(out, &failures)
	case registry.DataTypeGame:
		s.gamePass(out, &failures)
	}

	s.appendMetadata(out, dt, ctx)

	for _, f := range failures {
		common.LogDebug("value conversion failed", common.Fields{
			"column": f.Column,
			"row":    f.Row,
			"value":  f.Value,
			"reason": f.Reason,
		})
	}
	if len(failures) > 0 {
		slog.Warn("standardization kept original values for unconvertible cells",
			"data_type", string(dt),
			"failures", len(failures),
			"rows", out.NumRows())
	}
	return out, failures, nil
}

// renamePass folds column names to lowercase and resolves legacy
// spellings to their canonical names. A rename that would collide with
// an existing column is skipped so raw columns never merge silently.
func (s *Standardizer) renamePass(rec *record.Record, failures *[]Failure) {
	for _, name := range rec.ColumnNames() {
		target := strings.ToLower(name)
		if canonical, ok := s.fields.Canonical(target); ok {
			target = canonical
		}
		if target == name {
			continue
		}
		if err := rec.RenameColumn(name, target); err != nil {
			*failures = append(*failures, Failure{
				Column: name,
				Row:    -1,
				Reason: fmt.Sprintf("rename to %q skipped: %v", target, err),
			})
		}
	}
}

// categoryPass converts values column by column according to the field
// registry. Duration categories are deferred to the game pass, and
// weight columns to the player pass, so their text forms are not mangled
// by numeric coercion first.
func (s *Standardizer) categoryPass(rec *record.Record, dt registry.DataType, failures *[]Failure) {
	layouts := s.fields.DateFormats()
	for _, name := range rec.ColumnNames() {
		if dt == registry.DataTypePlayer && weightColumns[name] {
			continue
		}
		switch s.fields.Category(name) {
		case registry.ID:
			convertColumn(rec, name, failures, true, func(v any) (any, error) {
				return convert.ID(v)
			})
		case registry.Date:
			convertColumn(rec, name, failures, false, func(v any) (any, error) {
				return convert.DateValue(v, layouts)
			})
		case registry.Integer:
			convertColumn(rec, name, failures, false, func(v any) (any, error) {
				return convert.Int(v)
			})
		case registry.Float:
			convertColumn(rec, name, failures, false, func(v any) (any, error) {
				return convert.Float(v)
			})
		case registry.String:
			convertColumn(rec, name, failures, false, func(v any) (any, error) {
				return convert.String(v)
			})
		case registry.MinutesSeconds, registry.Seconds:
			// Converted by the game pass; season and player tables
			// report these columns as decimal minutes and keep them.
		}
	}
}

// playerPass derives height_inches from feet-inches height text and
// converts weight text to whole pounds.
func (s *Standardizer) playerPass(rec *record.Record, failures *[]Failure) {
	for _, name := range rec.ColumnNames() {
		if s.fields.IsHeightField(name) && !rec.Has(heightInchesColumn) {
			s.deriveHeightInches(rec, name, failures)
		}
		if weightColumns[name] {
			convertColumn(rec, name, failures, false, func(v any) (any, error) {
				return convert.Weight(v)
			})
		}
	}
}

func (s *Standardizer) deriveHeightInches(rec *record.Record, source string, failures *[]Failure) {
	values, err := rec.Values(source)
	if err != nil {
		return
	}
	derived := make([]any, len(values))
	converted := 0
	for i, v := range values {
		if record.IsNull(v) {
			continue
		}
		text, ok := v.(string)
		if !ok {
			// Height already numeric; carry it over as inches.
			if n, err := convert.Float(v); err == nil {
				derived[i] = n
				converted++
			}
			continue
		}
		inches, err := convert.Height(text)
		if err != nil {
			*failures = append(*failures, Failure{Column: source, Row: i, Value: v, Reason: err.Error()})
			continue
		}
		derived[i] = float64(inches)
		converted++
	}
	if converted == 0 {
		return
	}
	if err := rec.AddColumn(heightInchesColumn, derived); err != nil {
		*failures = append(*failures, Failure{Column: heightInchesColumn, Row: -1, Reason: err.Error()})
	}
}

// gamePass converts game-table specifics: MM:SS minutes, seconds
// columns, ISO clock text, matchup splits, and win/loss tokens.
func (s *Standardizer) gamePass(rec *record.Record, failures *[]Failure) {
	for _, name := range rec.ColumnNames() {
		switch {
		case s.fields.Category(name) == registry.MinutesSeconds:
			convertColumn(rec, name, failures, false, func(v any) (any, error) {
				text, ok := v.(string)
				if !ok {
					return v, nil // already numeric, leave as-is
				}
				return convert.MinutesSeconds(text)
			})
		case s.fields.Category(name) == registry.Seconds:
			convertColumn(rec, name, failures, false, func(v any) (any, error) {
				return convert.Int(v)
			})
		case clockColumns[name]:
			convertColumn(rec, name, failures, false, func(v any) (any, error) {
				text, ok := v.(string)
				if !ok {
					return v, nil
				}
				return convert.Clock(text)
			})
		case name == winLossColumn:
			convertColumn(rec, name, failures, false, func(v any) (any, error) {
				return convert.WinLoss(v)
			})
		case name == matchupColumn:
			s.splitMatchup(rec, name, failures)
		}
	}
}

// splitMatchup adds home_team and away_team columns derived from matchup
// text. Rows that do not parse keep their matchup text and get null
// split cells; if no row parses, no columns are added.
func (s *Standardizer) splitMatchup(rec *record.Record, source string, failures *[]Failure) {
	if rec.Has(homeTeamColumn) || rec.Has(awayTeamColumn) {
		return
	}
	values, err := rec.Values(source)
	if err != nil {
		return
	}
	home := make([]any, len(values))
	away := make([]any, len(values))
	parsed := 0
	for i, v := range values {
		if record.IsNull(v) {
			continue
		}
		text, ok := v.(string)
		if !ok {
			*failures = append(*failures, Failure{Column: source, Row: i, Value: v,
				Reason: fmt.Sprintf("cannot read %T as matchup", v)})
			continue
		}
		h, a, err := convert.Matchup(text)
		if err != nil {
			*failures = append(*failures, Failure{Column: source, Row: i, Value: v, Reason: err.Error()})
			continue
		}
		home[i], away[i] = h, a
		parsed++
	}
	if parsed == 0 {
		return
	}
	if err := rec.AddColumn(awayTeamColumn, away); err != nil {
		*failures = append(*failures, Failure{Column: awayTeamColumn, Row: -1, Reason: err.Error()})
		return
	}
	if err := rec.AddColumn(homeTeamColumn, home); err != nil {
		*failures = append(*failures, Failure{Column: homeTeamColumn, Row: -1, Reason: err.Error()})
	}
}

// appendMetadata adds the contextual columns last. Columns already
// present are left alone, which keeps standardization idempotent.
func (s *Standardizer) appendMetadata(rec *record.Record, dt registry.DataType, ctx *Context) {
	if ctx == nil {
		return
	}
	rows := rec.NumRows()
	fill := func(v any) []any {
		values := make([]any, rows)
		for i := range values {
			values[i] = v
		}
		return values
	}

	if dt == registry.DataTypeSeason || dt == registry.DataTypeTeam {
		if ctx.Season != "" && !rec.Has(registry.MetaSeasonID) {
			_ = rec.AddColumn(registry.MetaSeasonID, fill(ctx.Season))
		}
		if !rec.Has(registry.MetaIsPlayoffs) {
			_ = rec.AddColumn(registry.MetaIsPlayoffs, fill(ctx.Playoffs))
		}
	}
	if !rec.Has(registry.MetaStandardizedAt) {
		_ = rec.AddColumn(registry.MetaStandardizedAt, fill(s.now().UTC().Truncate(time.Second)))
	}
	if ctx.Source != "" && !rec.Has(registry.MetaSourceEndpoint) {
		_ = rec.AddColumn(registry.MetaSourceEndpoint, fill(ctx.Source))
	}
}

// convertColumn rewrites a column's values through fn, keeping the
// original value whenever fn fails. Null cells are skipped unless
// convertNulls is set (ID columns report null IDs as failures).
func convertColumn(rec *record.Record, name string, failures *[]Failure, convertNulls bool, fn func(any) (any, error)) {
	values, err := rec.Values(name)
	if err != nil {
		return
	}
	for i, v := range values {
		if record.IsNull(v) {
			if convertNulls {
				*failures = append(*failures, Failure{Column: name, Row: i, Value: v, Reason: "null value"})
			}
			continue
		}
		converted, err := fn(v)
		if err != nil {
			*failures = append(*failures, Failure{Column: name, Row: i, Value: v, Reason: err.Error()})
			continue
		}
		values[i] = converted
	}
}
