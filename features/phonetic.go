package features

import "strings"

// Algorithm names a phonetic code producer, used both as a map key and as
// the reported flag's algorithm tag. Evaluation order is fixed: metaphone
// is preferred over soundex when both match.
type Algorithm string

const (
	AlgorithmMetaphone Algorithm = "metaphone"
	AlgorithmSoundex   Algorithm = "soundex"
)

// AlgorithmOrder is the fixed precedence used when reporting which
// algorithm produced a shared phonetic code.
var AlgorithmOrder = []Algorithm{AlgorithmMetaphone, AlgorithmSoundex}

// PhoneticCodes computes every non-empty (algorithm, code) pair for s.
// Each algorithm is applied to the concatenation of all alphabetic tokens
// in the normalized string with spaces removed.
func PhoneticCodes(normalized string) map[Algorithm]string {
	letters := alphabeticConcat(normalized)
	if letters == "" {
		return nil
	}
	codes := make(map[Algorithm]string, 2)
	if m := metaphone(letters); m != "" {
		codes[AlgorithmMetaphone] = m
	}
	if sx := soundex(letters); sx != "" {
		codes[AlgorithmSoundex] = sx
	}
	return codes
}

// SharedPhonetic reports whether a and b share an (algorithm, code) pair,
// returning the first such algorithm in AlgorithmOrder and its code.
func SharedPhonetic(a, b map[Algorithm]string) (Algorithm, string, bool) {
	for _, alg := range AlgorithmOrder {
		ca, ok := a[alg]
		if !ok {
			continue
		}
		if cb, ok := b[alg]; ok && ca == cb {
			return alg, ca, true
		}
	}
	return "", "", false
}

func alphabeticConcat(normalized string) string {
	var b strings.Builder
	for _, r := range normalized {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// soundex implements standard American Soundex: first letter retained,
// subsequent letters mapped to digit codes, duplicates (including those
// separated only by H or W) and vowels dropped, zero-padded to a
// 4-character code.
func soundex(letters string) string {
	if letters == "" {
		return ""
	}
	codeOf := func(r byte) byte {
		switch r {
		case 'B', 'F', 'P', 'V':
			return '1'
		case 'C', 'G', 'J', 'K', 'Q', 'S', 'X', 'Z':
			return '2'
		case 'D', 'T':
			return '3'
		case 'L':
			return '4'
		case 'M', 'N':
			return '5'
		case 'R':
			return '6'
		default:
			return '0'
		}
	}

	first := letters[0]
	out := []byte{first}
	lastCode := codeOf(first)
	for i := 1; i < len(letters) && len(out) < 4; i++ {
		if letters[i] == 'H' || letters[i] == 'W' {
			continue
		}
		c := codeOf(letters[i])
		if c != '0' && c != lastCode {
			out = append(out, c)
		}
		lastCode = c
	}
	for len(out) < 4 {
		out = append(out, '0')
	}
	return string(out)
}

// metaphone implements a simplified primary-code Metaphone: it collapses
// common digraphs, drops silent letters, and maps the rest onto a reduced
// consonant alphabet. It does not aim for full fidelity to the original
// Metaphone/Double Metaphone rule set, only a stable, deterministic
// approximation adequate for flagging similar-sounding marks.
func metaphone(letters string) string {
	if letters == "" {
		return ""
	}
	s := letters

	// Drop a leading silent letter in common digraphs.
	switch {
	case strings.HasPrefix(s, "KN"), strings.HasPrefix(s, "GN"), strings.HasPrefix(s, "PN"):
		s = s[1:]
	case strings.HasPrefix(s, "WR"):
		s = s[1:]
	case strings.HasPrefix(s, "X"):
		s = "S" + s[1:]
	}

	var out strings.Builder
	runes := []rune(s)
	var lastWritten rune
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		next := rune(0)
		if i+1 < len(runes) {
			next = runes[i+1]
		}

		var code rune
		switch r {
		case 'A', 'E', 'I', 'O', 'U':
			if i == 0 {
				code = r
			} else {
				continue
			}
		case 'B':
			if i == len(runes)-1 && i > 0 && runes[i-1] == 'M' {
				continue
			}
			code = 'B'
		case 'C':
			switch {
			case next == 'H':
				code = 'X'
				i++
			case next == 'I' || next == 'E' || next == 'Y':
				code = 'S'
			default:
				code = 'K'
			}
		case 'D':
			if next == 'G' {
				code = 'J'
				i++
			} else {
				code = 'T'
			}
		case 'G':
			if next == 'H' {
				code = 'F'
				i++
			} else {
				code = 'K'
			}
		case 'H':
			continue
		case 'K':
			code = 'K'
		case 'P':
			if next == 'H' {
				code = 'F'
				i++
			} else {
				code = 'P'
			}
		case 'Q':
			code = 'K'
		case 'S':
			if next == 'H' {
				code = 'X'
				i++
			} else {
				code = 'S'
			}
		case 'T':
			if next == 'H' {
				code = '0'
				i++
			} else {
				code = 'T'
			}
		case 'V':
			code = 'F'
		case 'W', 'Y':
			if i == 0 {
				code = r
			} else {
				continue
			}
		case 'X':
			code = 'K'
		case 'Z':
			code = 'S'
		default:
			code = r
		}

		if code == lastWritten {
			continue
		}
		out.WriteRune(code)
		lastWritten = code
	}
	return out.String()
}
