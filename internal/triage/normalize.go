package triage

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize lowercases text and collapses each whitespace run into one space.
// Leading and trailing whitespace is collapsed, not trimmed.
func Normalize(text string) string {
	lower := Lower(text)

	var b strings.Builder
	b.Grow(len(lower))
	inSpace := false
	for _, r := range lower {
		if IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// Lower applies full Unicode lowercase mapping (final sigma, dotted capital I).
// A Caser is stateful, so one is built per call.
func Lower(text string) string {
	return cases.Lower(language.Und).String(text)
}

// IsSpace reports Unicode whitespace including the ASCII separator controls 0x1c-0x1f,
// which the model's training-time tokenizer also treated as whitespace.
func IsSpace(r rune) bool {
	if r >= 0x1c && r <= 0x1f {
		return true
	}
	return unicode.IsSpace(r)
}
