package registry

// Range is an inclusive [Min, Max] bound on a numeric column.
type Range struct {
	Min float64
	Max float64
}

// DefaultRanges is the catalog of acceptable value ranges for common
// columns, on a per-game scale. Consumed only by the validator; the
// standardizer never rejects values.
func DefaultRanges() map[string]Range {
	return map[string]Range{
		"age":           {15, 50},
		"gp":            {0, 110},
		"games":         {0, 110},
		"games_played":  {0, 110},
		"height_inches": {55, 100},
		"weight":        {120, 420},
		"fg_pct":        {0, 1},
		"fg3_pct":       {0, 1},
		"ft_pct":        {0, 1},
		"ts_pct":        {0, 1},
		"efg_pct":       {0, 1},
		"ast_pct":       {0, 1},
		"reb_pct":       {0, 1},
		"usg_pct":       {0, 1},
		"pts":           {0, 120},
		"reb":           {0, 60},
		"ast":           {0, 40},
		"stl":           {0, 15},
		"blk":           {0, 20},
		"tov":           {0, 20},
		"pf":            {0, 10},
		"plus_minus":    {-70, 70},
		"pace":          {60, 130},
		"pie":           {-1, 1},
	}
}

// RangesFor filters the default catalog down to columns present in the
// given names, so a caller can validate a record against only the rules
// that apply to it.
func RangesFor(names []string) map[string]Range {
	defaults := DefaultRanges()
	out := make(map[string]Range)
	for _, n := range names {
		if r, ok := defaults[n]; ok {
			out[n] = r
		}
	}
	return out
}
