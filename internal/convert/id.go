package convert

import (
	"fmt"
	"strings"
)

// IDWidth is the fixed width identifiers are zero-padded to. The stats
// API encodes game IDs as ten-digit strings; player and team IDs are
// padded to match so every ID column sorts and joins lexically.
const IDWidth = 10

// ID renders any value convertible to a decimal integer as a
// zero-padded ID string. Values already IDWidth digits or longer pass
// through unchanged; truncation never occurs.
func ID(v any) (string, error) {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return "", fmt.Errorf("empty value")
		}
		if !isDigits(s) {
			return "", fmt.Errorf("%q is not a numeric ID", s)
		}
		if len(s) >= IDWidth {
			return s, nil
		}
		return pad(s), nil
	}

	n, err := Int(v)
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", fmt.Errorf("negative ID %d", n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) >= IDWidth {
		return s, nil
	}
	return pad(s), nil
}

func pad(s string) string {
	return strings.Repeat("0", IDWidth-len(s)) + s
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
