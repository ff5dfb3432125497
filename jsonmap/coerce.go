package jsonmap

import (
	"math"
	"strconv"
)

// The input tree is untrusted and loosely typed, so every field access
// goes through one of these coercions. They accept what encoding/json
// produces (float64 numbers, string, bool, map[string]any, []any) plus
// native ints from hand-built trees, and never panic. The (value, ok)
// forms let callers keep the fatal/non-fatal distinction explicit.

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		if s {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		if s == math.Trunc(s) && math.Abs(s) < 1e15 {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'g', -1, 64)
	}
	return ""
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func asUint32(v any) (uint32, bool) {
	switch n := v.(type) {
	case int:
		if n < 0 || int64(n) > math.MaxUint32 {
			return 0, false
		}
		return uint32(n), true
	case int64:
		if n < 0 || n > math.MaxUint32 {
			return 0, false
		}
		return uint32(n), true
	case float64:
		if n < 0 || n > math.MaxUint32 || n != math.Trunc(n) {
			return 0, false
		}
		return uint32(n), true
	case string:
		u, err := strconv.ParseUint(n, 10, 32)
		if err != nil {
			return 0, false
		}
		return uint32(u), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int:
		return b != 0
	case int64:
		return b != 0
	case float64:
		return b != 0
	case string:
		return b == "true" || b == "1"
	}
	return false
}

// intOr returns the coerced int or def when coercion fails.
func intOr(v any, def int) int {
	if i, ok := asInt(v); ok {
		return i
	}
	return def
}

// floatOr returns the coerced float or def when coercion fails.
func floatOr(v any, def float64) float64 {
	if f, ok := asFloat(v); ok {
		return f
	}
	return def
}
