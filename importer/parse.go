package importer

import (
	"math"
	"strconv"
	"strings"
)

// SplitFieldString splits single values, "a|b;c" style lists and JSON-like
// lists such as "['AI', 'ML']". Order and duplicates are kept.
func SplitFieldString(raw string) []string {
	return splitListCell(raw, isFieldDelimiter)
}

func splitListCell(raw string, delimiter func(rune) bool) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return []string{}
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = s[1 : len(s)-1]
	}

	pieces := strings.FieldsFunc(s, delimiter)
	parts := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		cleaned := strings.TrimSpace(stripQuotes(piece))
		if cleaned != "" {
			parts = append(parts, cleaned)
		}
	}
	return parts
}

func stripQuotes(value string) string {
	return strings.NewReplacer("'", "", `"`, "").Replace(value)
}

func isComma(r rune) bool {
	return r == ','
}

func isFieldDelimiter(r rune) bool {
	return r == '|' || r == ',' || r == ';'
}

// parseYear accepts integral numbers such as "2020" or "2020.0".
func parseYear(raw string) (int, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	if value != math.Trunc(value) || math.Abs(value) > math.MaxInt32 {
		return 0, false
	}
	return int(value), true
}
