// Package normalize canonicalizes labels and request values so that
// display text and filter keys compare consistently.
package normalize

import (
	"strings"
	"unicode"
)

// Value turns a display label into a comparable key.
//
// It lowercases and trims s, replaces each run of internal whitespace with a
// single hyphen, and then drops every character that is not an ASCII letter,
// digit, underscore or hyphen. "Content Creation" becomes "content-creation"
// and "Hugging Face!" becomes "hugging-face". Value is idempotent and never
// fails; empty input yields "".
func Value(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		if isWordOrHyphen(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// QueryParam trims surrounding whitespace from a raw query value.
// Case is preserved.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

func isWordOrHyphen(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '-':
		return true
	}
	return false
}
