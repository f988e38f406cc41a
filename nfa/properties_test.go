package nfa

import (
	"testing"

	"github.com/redfalang/redfa/internal/automaton"
)

// TestEpsilonClosureIdempotence checks spec §8's universal property:
// ε-closure(ε-closure(S)) = ε-closure(S), and S ⊆ ε-closure(S).
func TestEpsilonClosureIdempotence(t *testing.T) {
	n, err := Parse("(a+b*)*a(a|b)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, s := range n.States() {
		seed := map[StateID]struct{}{s: {}}
		once := n.EpsilonClosure(seed)
		twice := n.EpsilonClosure(once)

		if _, ok := once[s]; !ok {
			t.Errorf("state %d: ε-closure does not contain its own seed", s)
		}
		if !setsEqual(once, twice) {
			t.Errorf("state %d: ε-closure(ε-closure(S)) != ε-closure(S)", s)
		}
	}
}

func setsEqual(a, b map[StateID]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for s := range a {
		if _, ok := b[s]; !ok {
			return false
		}
	}
	return true
}

// TestAcceptanceDeterminism checks spec §8: repeated find() on the same
// automaton and text returns the same result.
func TestAcceptanceDeterminism(t *testing.T) {
	n, err := Parse("(a+b*)*a(a|b)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	n = RemoveDeadEnds(n)

	first, firstOK := runNFA(n, "aabab")
	for i := 0; i < 5; i++ {
		length, ok := runNFA(n, "aabab")
		if ok != firstOK || length != first {
			t.Fatalf("run %d: got (%d,%v), want (%d,%v)", i, length, ok, first, firstOK)
		}
	}
}

// TestGroupSpanSoundness checks spec §8: every returned span (b,e)
// satisfies 0 <= b <= e <= len(text).
func TestGroupSpanSoundness(t *testing.T) {
	n, err := Parse("(ab((cd)*)ef)+")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	n = RemoveDeadEnds(n)

	text := "abcdefabefabcdcdef"
	runes := []rune(text)
	tr := NewTraveller(n)
	tr.Travel(automaton.Stream(runes, true))
	if _, ok := tr.Length(); !ok {
		t.Fatal("expected a match")
	}

	for gi, spans := range GroupSpans(n, tr.History()) {
		for _, s := range spans {
			if !(0 <= s.Start && s.Start <= s.End && s.End <= len(runes)) {
				t.Errorf("group %d span %+v violates 0<=b<=e<=len(text)=%d", gi, s, len(runes))
			}
		}
	}
}
