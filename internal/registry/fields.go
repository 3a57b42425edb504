// Package registry holds the declarative tables driving standardization
// and validation: column categories, legacy-name mappings, date formats,
// endpoint classifications, and default numeric ranges. The tables are
// built once and may be extended by the caller before use; nothing here
// mutates them implicitly, and concurrent extension is the caller's
// responsibility.
package registry

import (
	"sort"
	"strings"
)

// Category classifies a column for standardization.
type Category int

// Column categories.
const (
	Unclassified Category = iota
	ID
	Date
	MinutesSeconds
	Seconds
	Integer
	Float
	String
)

// String returns the lowercase name of the category.
func (c Category) String() string {
	switch c {
	case ID:
		return "id"
	case Date:
		return "date"
	case MinutesSeconds:
		return "minutes_seconds"
	case Seconds:
		return "seconds"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	default:
		return "unclassified"
	}
}

// Fields is the field registry: it answers what category a column belongs
// to and what canonical name a legacy column maps to. Lookups are
// case-insensitive because raw column names arrive in mixed case.
type Fields struct {
	categories  map[string]Category
	renames     map[string]string
	dateFormats []string
	height      map[string]bool
	playoff     map[string]bool
}

// Columns zero-padded to ten digits.
var idFields = []string{
	"player_id", "team_id", "game_id", "person_id",
	"playerid", "teamid", "gameid", "personid",
}

// Legacy spellings resolved to one canonical name.
var fieldRenames = map[string]string{
	"gameid":    "game_id",
	"teamid":    "team_id",
	"playerid":  "player_id",
	"person_id": "player_id",
	"personid":  "player_id",
}

var dateFields = []string{
	"game_date", "birthdate", "birth_date", "from_year", "to_year",
}

// Candidate date layouts, tried in order.
var dateLayouts = []string{
	"2006-01-02T15:04:05", // ISO with time
	"2006-01-02",          // ISO date
	"01/02/2006",          // US format
	"02/01/2006",          // international format
}

// Columns in MM:SS form converted to whole seconds.
var minutesSecondsFields = []string{
	"min", "minutes", "matchupminutes", "matchup_minutes",
}

// Columns already expressed in seconds; never converted twice.
var secondsFields = []string{
	"seconds", "matchup_seconds", "clock_seconds",
}

var integerFields = []string{
	"age", "games", "games_played", "gp", "w", "l", "wins", "losses",
	"season_year", "draft_year", "draft_round", "draft_number",
	"fgm", "fga", "fg3m", "fg3a", "ftm", "fta",
	"oreb", "dreb", "reb", "ast", "stl", "blk", "tov", "pf", "pts",
	"plus_minus",
}

var floatFields = []string{
	"fg_pct", "fg3_pct", "ft_pct",
	"height_inches", "weight",
	"ts_pct", "efg_pct", "ast_pct", "reb_pct", "usg_pct",
	"pace", "pie",
}

var stringFields = []string{
	"player_name", "team_name", "team_abbreviation", "matchup", "wl",
	"player_first_name", "player_last_name",
	"position", "college", "country",
}

// Height columns in feet-inches form like "6-11".
var heightFields = []string{
	"height", "player_height",
}

// Columns indicating playoff vs regular season data.
var playoffIndicatorFields = []string{
	"season_type", "season_type_all_star", "is_playoffs",
}

// Metadata columns appended during standardization.
const (
	MetaSeasonID       = "season_id"
	MetaIsPlayoffs     = "is_playoffs"
	MetaStandardizedAt = "standardized_at"
	MetaSourceEndpoint = "source_endpoint"
)

// DefaultFields builds the registry with the standard NBA column tables.
func DefaultFields() *Fields {
	f := &Fields{
		categories: make(map[string]Category),
		renames:    make(map[string]string),
		height:     make(map[string]bool),
		playoff:    make(map[string]bool),
	}

	add := func(names []string, cat Category) {
		for _, n := range names {
			f.categories[n] = cat
		}
	}
	add(integerFields, Integer)
	add(floatFields, Float)
	add(stringFields, String)
	add(dateFields, Date)
	add(secondsFields, Seconds)
	add(minutesSecondsFields, MinutesSeconds)
	// ID classification wins over any overlapping table.
	add(idFields, ID)

	for from, to := range fieldRenames {
		f.renames[from] = to
	}
	f.dateFormats = append(f.dateFormats, dateLayouts...)
	for _, n := range heightFields {
		f.height[n] = true
	}
	for _, n := range playoffIndicatorFields {
		f.playoff[n] = true
	}
	return f
}

// Category answers the classification of a column name, ignoring case.
// Unknown columns report Unclassified.
func (f *Fields) Category(name string) Category {
	return f.categories[strings.ToLower(name)]
}

// Canonical answers the canonical replacement for a legacy column name,
// ignoring case. The second result is false when no mapping exists.
func (f *Fields) Canonical(name string) (string, bool) {
	to, ok := f.renames[strings.ToLower(name)]
	return to, ok
}

// IsHeightField reports whether a column holds feet-inches height text.
func (f *Fields) IsHeightField(name string) bool {
	return f.height[strings.ToLower(name)]
}

// IsPlayoffIndicator reports whether a column marks playoff data.
func (f *Fields) IsPlayoffIndicator(name string) bool {
	return f.playoff[strings.ToLower(name)]
}

// DateFormats returns the candidate date layouts in priority order.
func (f *Fields) DateFormats() []string {
	out := make([]string, len(f.dateFormats))
	copy(out, f.dateFormats)
	return out
}

// AddField registers a custom column classification. Names are folded to
// lowercase. Intended for setup before standardization begins; the
// registry provides no locking.
func (f *Fields) AddField(name string, cat Category) {
	f.categories[strings.ToLower(name)] = cat
}

// AddRename registers a custom legacy-to-canonical column mapping.
func (f *Fields) AddRename(from, to string) {
	f.renames[strings.ToLower(from)] = strings.ToLower(to)
}

// AddDateFormat appends a date layout to the candidate list.
func (f *Fields) AddDateFormat(layout string) {
	f.dateFormats = append(f.dateFormats, layout)
}

// ByCategory groups all registered column names by category name, sorted
// for stable display.
func (f *Fields) ByCategory() map[string][]string {
	out := make(map[string][]string)
	for name, cat := range f.categories {
		out[cat.String()] = append(out[cat.String()], name)
	}
	for _, names := range out {
		sort.Strings(names)
	}
	return out
}

// Renames returns a copy of the legacy-to-canonical name table.
func (f *Fields) Renames() map[string]string {
	out := make(map[string]string, len(f.renames))
	for from, to := range f.renames {
		out[from] = to
	}
	return out
}
