// Package engine selects an automaton backend for a compiled pattern and
// runs the find/match driver against it (spec §4.8): for group-free
// patterns it converts to a DFA and walks it deterministically; patterns
// with capturing groups retain the NFA so group reconstruction (nfa
// package) has the backward-trail information it needs.
package engine

import (
	"fmt"

	"github.com/redfalang/redfa/dfa"
	"github.com/redfalang/redfa/internal/automaton"
	"github.com/redfalang/redfa/nfa"
	"github.com/redfalang/redfa/prefilter"
)

// Config controls backend selection and optional acceleration. The zero
// value is not ready to use; call DefaultConfig.
type Config struct {
	// ForceNFA always retains the NFA backend, even for group-free
	// patterns that would otherwise be converted to a DFA. Useful for
	// tests that want to exercise NFA traversal specifically.
	// Default: false
	ForceNFA bool

	// AlwaysDFA converts to a DFA even when the pattern has capturing
	// groups, exercising the group-lifted DFA representation (spec §4.8:
	// "Implementations MAY always convert; the group-lifted DFA preserves
	// span information"). ForceNFA takes precedence if both are set.
	// Default: false
	AlwaysDFA bool

	// EnablePrefilter builds an Aho-Corasick literal prefilter (see the
	// prefilter package) when the pattern is a flat top-level literal
	// alternation, and consults it before running the full driver.
	// Default: true
	EnablePrefilter bool

	// MaxPatternLength caps the regex source length Compile accepts,
	// guarding against the subset construction's exponential-in-NFA-size
	// worst case (spec §5: "implementations should cap input size
	// externally"). Zero means unlimited.
	// Default: 4096
	MaxPatternLength int
}

// DefaultConfig returns the engine's default configuration.
func DefaultConfig() Config {
	return Config{ForceNFA: false, EnablePrefilter: true, MaxPatternLength: 4096}
}

// Validate reports whether c's fields are internally consistent.
func (c Config) Validate() error {
	if c.MaxPatternLength < 0 {
		return fmt.Errorf("engine: MaxPatternLength must be >= 0, got %d", c.MaxPatternLength)
	}
	return nil
}

// Regex is a compiled pattern ready to match against input text, backed
// by either an NFA or a DFA traveller depending on Config and whether the
// pattern has capturing groups.
type Regex struct {
	n         *nfa.NFA
	d         *dfa.DFA
	useDFA    bool
	numGroups int
	pf        *prefilter.Prefilter
}

// Compile parses pattern into an NFA, removes dead ends, and — unless
// config forces NFA retention, or the pattern has capturing groups and
// config.AlwaysDFA is not set — converts it to a DFA. Returns a parse error from the nfa package
// unchanged.
func Compile(pattern string, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.MaxPatternLength > 0 && len(pattern) > config.MaxPatternLength {
		return nil, &nfa.ParseError{Message: fmt.Sprintf("pattern length %d exceeds MaxPatternLength %d", len(pattern), config.MaxPatternLength)}
	}

	n, err := nfa.Parse(pattern)
	if err != nil {
		return nil, err
	}
	n = nfa.RemoveDeadEnds(n)

	r := &Regex{n: n, numGroups: len(n.Groups())}
	if !config.ForceNFA && (config.AlwaysDFA || len(n.Groups()) == 0) {
		r.d = dfa.FromNFA(n)
		r.useDFA = true
	}

	if config.EnablePrefilter {
		if literals, ok := prefilter.DetectFlatLiterals(pattern); ok {
			if pf, err := prefilter.Build(literals); err == nil {
				r.pf = pf
			}
		}
	}
	return r, nil
}

// NumGroups returns the number of capturing groups in the compiled
// pattern (not counting the implicit whole-match group 0).
func (r *Regex) NumGroups() int { return r.numGroups }

// Find implements spec §4.8's find(text): the leftmost starting position
// at which some prefix of text[start:] is accepted, with the longest such
// prefix at that position. Returns ok=false if no starting position
// matches anywhere in text.
func (r *Regex) Find(text string) (begin, end int, ok bool) {
	if r.pf != nil && !r.pf.MaybeMatches(text) {
		return 0, 0, false
	}
	runes := []rune(text)
	for start := 0; start <= len(runes); start++ {
		length, matched := r.tryLength(runes[start:], start == 0)
		if matched {
			return start, start + length, true
		}
	}
	return 0, 0, false
}

// Match implements spec §4.8's match(text): like Find, but on success
// also reconstructs every capturing group's closed spans, offset into
// text's own coordinates. Returns ok=false if no starting position
// matches anywhere in text.
func (r *Regex) Match(text string) (*Match, bool) {
	if r.pf != nil && !r.pf.MaybeMatches(text) {
		return nil, false
	}
	runes := []rune(text)
	for start := 0; start <= len(runes); start++ {
		m, matched := r.tryMatch(runes, start, start == 0)
		if matched {
			return m, true
		}
	}
	return nil, false
}

func (r *Regex) tryLength(suffix []rune, isStart bool) (int, bool) {
	symbols := automaton.Stream(suffix, isStart)
	if r.useDFA {
		t := dfa.NewTraveller(r.d)
		t.Travel(symbols)
		return t.Length()
	}
	t := nfa.NewTraveller(r.n)
	t.Travel(symbols)
	return t.Length()
}

func (r *Regex) tryMatch(runes []rune, start int, isStart bool) (*Match, bool) {
	symbols := automaton.Stream(runes[start:], isStart)
	var length int
	var groupSpans [][]nfa.Span
	var matched bool

	if r.useDFA {
		t := dfa.NewTraveller(r.d)
		t.Travel(symbols)
		length, matched = t.Length()
		if matched {
			groupSpans = dfa.GroupSpans(r.d, t.History())
		}
	} else {
		t := nfa.NewTraveller(r.n)
		t.Travel(symbols)
		length, matched = t.Length()
		if matched {
			groupSpans = nfa.GroupSpans(r.n, t.History())
		}
	}
	if !matched {
		return nil, false
	}

	offsetSpans := make([][]nfa.Span, len(groupSpans))
	for i, spans := range groupSpans {
		offset := make([]nfa.Span, len(spans))
		for j, s := range spans {
			offset[j] = nfa.Span{Start: start + s.Start, End: start + s.End}
		}
		offsetSpans[i] = offset
	}

	return &Match{
		text:   runes,
		begin:  start,
		end:    start + length,
		groups: offsetSpans,
	}, true
}
