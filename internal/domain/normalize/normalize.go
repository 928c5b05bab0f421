// Package normalize canonicalizes free text typed into registration forms
// into comparable keys.
package normalize

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// mojibake covers dashes that were decoded as Windows-1252 somewhere
// between the form and the spreadsheet export.
var mojibake = strings.NewReplacer("â€“", "-", "â€”", "-")

// Key returns the normalized form of text: lower-cased, dash variants
// unified to '-', every rune other than letters, digits, '_', whitespace
// and '-' removed, whitespace collapsed and trimmed.
//
// Key is total and idempotent: Key(Key(s)) == Key(s).
func Key(text string) string {
	if text == "" {
		return ""
	}
	// Transformers carry state, so each call builds its own chain.
	lowered, _, _ := transform.String(runes.Map(unicode.ToLower), text)
	lowered = mojibake.Replace(lowered)

	cleaned, _, _ := transform.String(transform.Chain(
		runes.Map(unifyDash),
		runes.Remove(runes.Predicate(isNoise)),
	), lowered)

	return strings.Join(strings.Fields(cleaned), " ")
}

// Any coerces v to text and normalizes it. A nil value yields "".
func Any(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return Key(t)
	case fmt.Stringer:
		return Key(t.String())
	default:
		return Key(fmt.Sprint(t))
	}
}

func unifyDash(r rune) rune {
	switch r {
	case '–', '—':
		return '-'
	}
	return r
}

func isNoise(r rune) bool {
	switch {
	case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
		return false
	case r == '_', r == '-':
		return false
	}
	return true
}
