// Package normalize converts raw scraped cell text into typed values. Every
// function is total: malformed, empty, or placeholder input maps to the zero
// value, never an error, so one bad cell cannot sink a whole page.
package normalize

import (
	"strconv"
	"strings"
)

var placeholders = map[string]struct{}{
	"":    {},
	"n/a": {},
	"na":  {},
	"-":   {},
	"—":   {},
	"–":   {},
}

// Int parses s into an int. Percent signs and leading plus signs are
// stripped; a leading minus is kept. Decimal input is truncated toward zero.
func Int(s string) int {
	cleaned, ok := clean(s)
	if !ok {
		return 0
	}
	if v, err := strconv.Atoi(cleaned); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return int(f)
	}
	return 0
}

// Float parses s into a float64 under the same cleaning rules as Int.
func Float(s string) float64 {
	cleaned, ok := clean(s)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// Percent parses a percentage cell like "83%" and clamps to [0, 100].
func Percent(s string) float64 {
	v := Float(s)
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Text trims whitespace and collapses placeholder cells to the empty string.
func Text(s string) string {
	trimmed := strings.TrimSpace(s)
	if _, ok := placeholders[strings.ToLower(trimmed)]; ok {
		return ""
	}
	return trimmed
}

// CollapseSpace trims s and squeezes interior runs of whitespace, including
// newlines, to single spaces. Scraped labels often carry layout whitespace.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func clean(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	if _, ok := placeholders[strings.ToLower(trimmed)]; ok {
		return "", false
	}

	trimmed = strings.TrimSuffix(trimmed, "%")
	trimmed = strings.TrimPrefix(trimmed, "+")
	trimmed = strings.ReplaceAll(trimmed, ",", "")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}
