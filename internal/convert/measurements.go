package convert

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	heightRe        = regexp.MustCompile(`^(\d+)-(\d{1,2})$`)
	leadingNumberRe = regexp.MustCompile(`^(\d+)`)
)

// Height converts feet-inches text like "6-11" to total inches.
func Height(s string) (int64, error) {
	m := heightRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%q is not in feet-inches form", s)
	}
	feet, _ := strconv.ParseInt(m[1], 10, 64)
	inches, _ := strconv.ParseInt(m[2], 10, 64)
	if inches >= 12 {
		return 0, fmt.Errorf("%q has %d inches, want 0-11", s, inches)
	}
	return feet*12 + inches, nil
}

// Weight extracts the leading numeric portion of weight text ("220",
// "220 lbs") as whole pounds. Numeric input passes through as an integer.
func Weight(v any) (int64, error) {
	if s, ok := v.(string); ok {
		m := leadingNumberRe.FindStringSubmatch(strings.TrimSpace(s))
		if m == nil {
			return 0, fmt.Errorf("%q has no leading number", s)
		}
		return strconv.ParseInt(m[1], 10, 64)
	}
	return Int(v)
}
