// Package features provides the pure, deterministic similarity primitives
// the reranker builds on: text normalization, phonetic codes, edit
// distance, n-grams, dominant-term extraction, and class overlap. Every
// function here is total and side-effect-free, safe to call from multiple
// goroutines without synchronization.
package features

import "strings"

// NormalizeText upper-cases ASCII, collapses any run of non-alphanumeric
// characters to a single space, and trims. The result contains only
// [A-Z0-9 ] with single internal spaces.
func NormalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastWasSpace := true // suppress leading space
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 'a' + 'A')
			lastWasSpace = false
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasSpace = false
		default:
			if !lastWasSpace {
				b.WriteByte(' ')
				lastWasSpace = true
			}
		}
	}
	out := b.String()
	return strings.TrimRight(out, " ")
}

// Tokens splits a normalized string on its single internal spaces.
func Tokens(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}
