package dfa

import (
	"testing"

	"github.com/redfalang/redfa/internal/automaton"
	"github.com/redfalang/redfa/nfa"
)

func runDFA(d *DFA, text string) (int, bool) {
	runes := []rune(text)
	t := NewTraveller(d)
	t.Travel(automaton.Stream(runes, true))
	return t.Length()
}

func compile(t *testing.T, pattern string) (*nfa.NFA, *DFA) {
	t.Helper()
	n, err := nfa.Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	n = nfa.RemoveDeadEnds(n)
	return n, FromNFA(n)
}

func TestSubsetConstructionDeterminism(t *testing.T) {
	_, d := compile(t, "(a|b)*a")
	for _, tc := range []struct {
		text   string
		length int
		ok     bool
	}{
		{"a", 1, true},
		{"b", 0, false},
		{"aa", 2, true},
		{"ba", 2, true},
	} {
		length, ok := runDFA(d, tc.text)
		if ok != tc.ok || (ok && length != tc.length) {
			t.Errorf("(a|b)*a on %q: got (%d,%v), want (%d,%v)", tc.text, length, ok, tc.length, tc.ok)
		}
	}
}

func TestSubsetConstructionEveryStateHasAtMostOneDestination(t *testing.T) {
	_, d := compile(t, "(a+b*)*a(a|b)")
	for _, s := range d.States() {
		edges := d.trans[s]
		seen := map[Symbol]StateID{}
		for sym, dest := range edges {
			if existing, ok := seen[sym]; ok && existing != dest {
				t.Fatalf("state %d has two destinations on %v", s, sym)
			}
			seen[sym] = dest
		}
	}
}

func TestSubsetConstructionEmptyInput(t *testing.T) {
	_, d := compile(t, "(11)*(00|10)*")
	length, ok := runDFA(d, "")
	if !ok || length != 0 {
		t.Fatalf("(11)*(00|10)* on \"\": got (%d,%v), want (0,true)", length, ok)
	}
}
