// Package prefilter recognizes regex patterns shaped as a flat, top-level
// alternation of plain literals (e.g. `cat|dog|bird`, with no groups,
// quantifiers, or anchors anywhere) and builds a multi-pattern literal
// matcher for them, so the match driver can reject texts that contain none
// of the alternatives in O(n) without ever constructing a traveller.
package prefilter

// DetectFlatLiterals reports whether pattern is entirely a top-level `|`
// alternation of plain literal runs — no `(`, `)`, `*`, `+`, `?`, `^`, or
// `$` anywhere — and if so returns its alternatives as plain strings
// (escapes resolved). A pattern with a single literal and no `|` at all
// still counts: DetectFlatLiterals("cat") reports (["cat"], true).
func DetectFlatLiterals(pattern string) ([]string, bool) {
	if pattern == "" {
		return nil, false
	}
	var literals []string
	var cur []rune
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '\\':
			i++
			if i >= len(runes) {
				return nil, false
			}
			if !isSpecial(runes[i]) {
				return nil, false
			}
			cur = append(cur, runes[i])
		case '|':
			literals = append(literals, string(cur))
			cur = nil
		case '(', ')', '*', '+', '?', '^', '$':
			return nil, false
		default:
			cur = append(cur, r)
		}
	}
	literals = append(literals, string(cur))
	for _, lit := range literals {
		if lit == "" {
			return nil, false
		}
	}
	return literals, true
}

func isSpecial(r rune) bool {
	switch r {
	case '(', ')', '|', '*', '+', '?', '\\', '^', '$':
		return true
	default:
		return false
	}
}
