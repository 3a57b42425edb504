package convert

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var seasonLabelRe = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// SeasonLabel formats a season's starting year the way the stats API
// labels seasons: 2023 becomes "2023-24".
func SeasonLabel(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// CurrentSeasonYear returns the starting year of the season in progress
// at the given time. Seasons roll over in October.
func CurrentSeasonYear(now time.Time) int {
	year := now.Year()
	if now.Month() <= time.September {
		year--
	}
	return year
}

// NormalizeSeason resolves the season spellings callers use ("2024",
// "2023-24", "20232024") to the canonical "YYYY-YY" label.
func NormalizeSeason(s string) (string, error) {
	if seasonLabelRe.MatchString(s) {
		return s, nil
	}
	switch len(s) {
	case 4:
		year, err := strconv.Atoi(s)
		if err != nil {
			return "", fmt.Errorf("%q is not a season", s)
		}
		return SeasonLabel(year), nil
	case 8:
		first, err1 := strconv.Atoi(s[:4])
		second, err2 := strconv.Atoi(s[4:])
		if err1 != nil || err2 != nil || second != first+1 {
			return "", fmt.Errorf("%q is not a season", s)
		}
		return SeasonLabel(first), nil
	default:
		return "", fmt.Errorf("%q is not a season", s)
	}
}
