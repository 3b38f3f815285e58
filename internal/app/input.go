package app

import (
	"math"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Bodies arrive as map[string]any, so numbers are float64 and clients that
// quote their numbers still get accepted, mirroring the API's historically
// loose typing. Fractional values are rejected for integer fields.

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

func asInt(v any) (int, bool) {
	i, ok := asInt64(v)
	return int(i), ok
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asDate accepts YYYY-MM-DD only; that is both the wire format and what the
// DATE columns take without driver-side surprises.
func asDate(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", false
	}
	return s, true
}
