package engine

import "github.com/redfalang/redfa/nfa"

// Match is the result of a successful Regex.Match call: the whole-match
// span plus every capturing group's reconstructed spans, per spec §6.
type Match struct {
	text   []rune
	begin  int
	end    int
	groups [][]nfa.Span // groups[i] is capture index i+1's closed spans, in match order
}

// Begin returns the whole match's start offset (rune index) into the
// original text.
func (m *Match) Begin() int { return m.begin }

// End returns the whole match's end offset (rune index, exclusive) into
// the original text.
func (m *Match) End() int { return m.end }

// Substr returns the whole match's substring: text[Begin():End()].
func (m *Match) Substr() string { return string(m.text[m.begin:m.end]) }

// NumGroups returns the number of explicit capturing groups (not counting
// the implicit whole-match group 0).
func (m *Match) NumGroups() int { return len(m.groups) }

// GroupSpans returns every closed span captured by group i (1-based; i==0
// is the whole match), in match order. An unmatched group (one that never
// closed a span during this match) returns an empty slice.
func (m *Match) GroupSpans(i int) []nfa.Span {
	if i == 0 {
		return []nfa.Span{{Start: m.begin, End: m.end}}
	}
	if i < 1 || i > len(m.groups) {
		return nil
	}
	return m.groups[i-1]
}

// LatestCaptures returns one string per group (index 0 is the whole
// match): the substring of the last closed span of group i, or "" if
// group i never closed a span on this match.
func (m *Match) LatestCaptures() []string {
	out := make([]string, len(m.groups)+1)
	out[0] = m.Substr()
	for i, spans := range m.groups {
		if len(spans) == 0 {
			continue
		}
		last := spans[len(spans)-1]
		out[i+1] = string(m.text[last.Start:last.End])
	}
	return out
}

// AllCaptures returns one string slice per group (index 0 is
// [wholeMatch]): every closed span of group i, in order of occurrence.
func (m *Match) AllCaptures() [][]string {
	out := make([][]string, len(m.groups)+1)
	out[0] = []string{m.Substr()}
	for i, spans := range m.groups {
		strs := make([]string, len(spans))
		for j, s := range spans {
			strs[j] = string(m.text[s.Start:s.End])
		}
		out[i+1] = strs
	}
	return out
}
