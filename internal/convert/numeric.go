// Package convert holds the scalar converters used during
// standardization. Each converter is a pure function over one value and
// reports failure through its error return; the record transformer
// decides what failure means (it keeps the original value).
package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Int coerces a scalar to an int64. Floats must be integral; strings must
// parse as a decimal integer.
func Int(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float32:
		return Int(float64(n))
	case float64:
		if math.Trunc(n) != n || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int64(n), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not an integer", n)
		}
		return i, nil
	case nil:
		return 0, fmt.Errorf("null value")
	default:
		return 0, fmt.Errorf("cannot convert %T to integer", v)
	}
}

// Float coerces a scalar to a float64.
func Float(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", n)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("null value")
	default:
		return 0, fmt.Errorf("cannot convert %T to float", v)
	}
}

// String renders a scalar as text. Floats keep their shortest form.
func String(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(s), 'g', -1, 32), nil
	case nil:
		return "", fmt.Errorf("null value")
	default:
		return fmt.Sprint(v), nil
	}
}
