package prefilter

import "github.com/coregx/ahocorasick"

// Prefilter is a sound necessary-condition check: if MaybeMatches reports
// false, none of the built literals occur anywhere in text, so a regex
// compiled from exactly those literals (per DetectFlatLiterals) cannot
// match it either. It never reports a false negative; it may report a
// false positive (a literal occurs, but not at a position the full regex
// would accept as a complete match, which cannot happen for the flat
// alternation shape this package targets, but Prefilter does not assume
// that of its caller).
type Prefilter struct {
	automaton *ahocorasick.Automaton
}

// Build compiles literals into a Prefilter. Returns an error if the
// underlying Aho-Corasick automaton fails to build (e.g. literals is
// empty).
func Build(literals []string) (*Prefilter, error) {
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Prefilter{automaton: auto}, nil
}

// MaybeMatches reports whether any built literal occurs anywhere in text.
func (p *Prefilter) MaybeMatches(text string) bool {
	return p.automaton.IsMatch([]byte(text))
}
