package domain

import (
	"strings"
)

// NormalizeLang prepares a language code for storage: trims whitespace and
// lowercases it. "KO " becomes "ko".
func NormalizeLang(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// NormalizeSpaces trims text and compresses runs of spaces into one.
// Newlines and tabs inside the text are kept.
func NormalizeSpaces(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// TrimPtr trims the pointed-to string. Blank values become nil.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
