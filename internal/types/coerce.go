package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToFloat interprets a decoded JSON or spreadsheet value as a finite number.
// Numeric strings are accepted; blanks, booleans and null are not.
func ToFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ToInt interprets a value as an integer. Numbers are truncated toward zero,
// strings must hold an integer literal.
func ToInt(v any) (int, bool) {
	switch n := v.(type) {
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, ok := ToFloat(n)
		if !ok {
			return 0, false
		}
		return int(math.Trunc(f)), true
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		f, ok := ToFloat(v)
		if !ok {
			return 0, false
		}
		return int(math.Trunc(f)), true
	}
}

// ToText renders a value as a string
func ToText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprint(s)
	}
}
