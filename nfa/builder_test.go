package nfa

import (
	"testing"

	"github.com/redfalang/redfa/internal/automaton"
)

func runNFA(n *NFA, text string) (int, bool) {
	runes := []rune(text)
	t := NewTraveller(n)
	t.Travel(automaton.Stream(runes, true))
	return t.Length()
}

func TestBuilderSymbol(t *testing.T) {
	b := NewBuilder()
	n := b.Symbol(automaton.NewChar('a'))

	if length, ok := runNFA(n, "a"); !ok || length != 1 {
		t.Fatalf("Symbol('a') on \"a\": got (%d,%v), want (1,true)", length, ok)
	}
	if _, ok := runNFA(n, "b"); ok {
		t.Fatalf("Symbol('a') on \"b\": expected no match")
	}
}

func TestBuilderConcatenate(t *testing.T) {
	b := NewBuilder()
	n, err := b.Concatenate(b.Symbol(automaton.NewChar('a')), b.Symbol(automaton.NewChar('b')))
	if err != nil {
		t.Fatalf("Concatenate: %v", err)
	}
	if length, ok := runNFA(n, "ab"); !ok || length != 2 {
		t.Fatalf("ab on \"ab\": got (%d,%v), want (2,true)", length, ok)
	}
	if _, ok := runNFA(n, "a"); ok {
		t.Fatalf("ab on \"a\": expected no match")
	}
}

func TestBuilderUnion(t *testing.T) {
	b := NewBuilder()
	n, err := b.Union([]*NFA{b.Symbol(automaton.NewChar('a')), b.Symbol(automaton.NewChar('b'))})
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	for _, tc := range []struct {
		text string
		ok   bool
	}{
		{"a", true}, {"b", true}, {"c", false},
	} {
		_, ok := runNFA(n, tc.text)
		if ok != tc.ok {
			t.Errorf("a|b on %q: got ok=%v, want %v", tc.text, ok, tc.ok)
		}
	}
}

func TestBuilderKleeneStar(t *testing.T) {
	b := NewBuilder()
	n, err := b.KleeneStar(b.Symbol(automaton.NewChar('a')))
	if err != nil {
		t.Fatalf("KleeneStar: %v", err)
	}
	for _, tc := range []struct {
		text   string
		length int
	}{
		{"", 0}, {"a", 1}, {"aaa", 3},
	} {
		length, ok := runNFA(n, tc.text)
		if !ok || length != tc.length {
			t.Errorf("a* on %q: got (%d,%v), want (%d,true)", tc.text, length, ok, tc.length)
		}
	}
}

func TestBuilderKleenePlusRequiresOne(t *testing.T) {
	b := NewBuilder()
	n, err := b.KleenePlus(b.Symbol(automaton.NewChar('a')))
	if err != nil {
		t.Fatalf("KleenePlus: %v", err)
	}
	if _, ok := runNFA(n, ""); ok {
		t.Fatalf("a+ on \"\": expected no match")
	}
	if length, ok := runNFA(n, "aa"); !ok || length != 2 {
		t.Fatalf("a+ on \"aa\": got (%d,%v), want (2,true)", length, ok)
	}
}

func TestBuilderOptional(t *testing.T) {
	b := NewBuilder()
	n, err := b.Optional(b.Symbol(automaton.NewChar('a')))
	if err != nil {
		t.Fatalf("Optional: %v", err)
	}
	if length, ok := runNFA(n, ""); !ok || length != 0 {
		t.Fatalf("a? on \"\": got (%d,%v), want (0,true)", length, ok)
	}
	if length, ok := runNFA(n, "a"); !ok || length != 1 {
		t.Fatalf("a? on \"a\": got (%d,%v), want (1,true)", length, ok)
	}
}

func TestBuilderGroupedPreservesTopology(t *testing.T) {
	b := NewBuilder()
	inner := b.Symbol(automaton.NewChar('a'))
	n, err := b.Grouped(inner)
	if err != nil {
		t.Fatalf("Grouped: %v", err)
	}
	if len(n.Groups()) != 1 {
		t.Fatalf("Grouped: got %d groups, want 1", len(n.Groups()))
	}
	if length, ok := runNFA(n, "a"); !ok || length != 1 {
		t.Fatalf("(a) on \"a\": got (%d,%v), want (1,true)", length, ok)
	}
}

func TestSoleStartAndAcceptInvariant(t *testing.T) {
	if _, err := soleStart("test", newEmptyGraph()); err == nil {
		t.Fatal("soleStart on a start-less graph: expected InvariantError")
	}
	if _, err := soleAccept("test", newEmptyGraph()); err == nil {
		t.Fatal("soleAccept on an accept-less graph: expected InvariantError")
	}
}
