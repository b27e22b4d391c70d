package utils

import (
	"strings"
	"unicode"
)

// SanitizeText trims surrounding whitespace and drops control characters, so
// names entered on a kiosk keyboard cannot smuggle in line breaks or escapes.
func SanitizeText(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s))
}

// SanitizeOptional applies SanitizeText and maps an empty result to nil.
func SanitizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	clean := SanitizeText(*s)
	if clean == "" {
		return nil
	}
	return &clean
}
