package convert

import (
	"fmt"
	"strings"
)

// Matchup splits matchup text into home and away team abbreviations.
// "TOR @ BOS" reads as TOR visiting BOS; "LAL vs. BOS" reads as LAL
// hosting BOS.
func Matchup(s string) (home, away string, err error) {
	trimmed := strings.TrimSpace(s)

	if parts := strings.SplitN(trimmed, " @ ", 2); len(parts) == 2 {
		away = strings.TrimSpace(parts[0])
		home = strings.TrimSpace(parts[1])
		if home == "" || away == "" {
			return "", "", fmt.Errorf("%q is not a recognizable matchup", s)
		}
		return home, away, nil
	}
	if parts := strings.SplitN(trimmed, " vs. ", 2); len(parts) == 2 {
		home = strings.TrimSpace(parts[0])
		away = strings.TrimSpace(parts[1])
		if home == "" || away == "" {
			return "", "", fmt.Errorf("%q is not a recognizable matchup", s)
		}
		return home, away, nil
	}
	return "", "", fmt.Errorf("%q is not a recognizable matchup", s)
}

// WinLoss normalizes a win/loss token to "W" or "L".
func WinLoss(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("cannot read %T as win/loss", v)
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "win", "won":
		return "W", nil
	case "l", "loss", "lost":
		return "L", nil
	default:
		return "", fmt.Errorf("%q is not a win/loss token", s)
	}
}
