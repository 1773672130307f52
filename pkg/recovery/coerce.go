package recovery

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Best-effort primitive coercion. Each function converts what it reasonably
// can and reports ok=false for everything else — never panics, never errors.

// CoerceString converts strings, numbers, booleans, and Stringers.
func CoerceString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32), true
	case int:
		return strconv.Itoa(s), true
	case int32:
		return strconv.FormatInt(int64(s), 10), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case json.Number:
		return s.String(), true
	case fmt.Stringer:
		return s.String(), true
	default:
		return "", false
	}
}

// CoerceNumber converts numbers, numeric strings, and booleans (1/0).
func CoerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// CoerceBool converts booleans, boolean-ish strings ("true", "1", ...), and
// numbers (non-zero is true).
func CoerceBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(b)
		return parsed, err == nil
	case float64:
		return b != 0, true
	case int:
		return b != 0, true
	case int64:
		return b != 0, true
	case json.Number:
		f, err := b.Float64()
		return f != 0, err == nil
	default:
		return false, false
	}
}
