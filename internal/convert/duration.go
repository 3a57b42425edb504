package convert

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	minutesSecondsRe = regexp.MustCompile(`^(\d{1,3}):([0-5]\d)$`)
	isoClockRe       = regexp.MustCompile(`^PT(\d+)M(\d+(?:\.\d+)?)S$`)
)

// MinutesSeconds converts "M:SS" or "MM:SS" text to whole seconds.
func MinutesSeconds(s string) (int64, error) {
	m := minutesSecondsRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%q is not in MM:SS form", s)
	}
	minutes, _ := strconv.ParseInt(m[1], 10, 64)
	seconds, _ := strconv.ParseInt(m[2], 10, 64)
	return minutes*60 + seconds, nil
}

// Clock converts an ISO-8601 duration clock like "PT11M23S" (the
// play-by-play game clock) to whole seconds. Fractional seconds are
// truncated.
func Clock(s string) (int64, error) {
	m := isoClockRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%q is not an ISO clock duration", s)
	}
	minutes, _ := strconv.ParseInt(m[1], 10, 64)
	seconds, _ := strconv.ParseFloat(m[2], 64)
	return minutes*60 + int64(math.Floor(seconds)), nil
}
