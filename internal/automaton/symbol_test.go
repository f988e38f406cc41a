package automaton

import "testing"

func TestSymbolKinds(t *testing.T) {
	tests := []struct {
		name     string
		sym      Symbol
		wantChar bool
		wantZero bool
	}{
		{"char", NewChar('a'), true, false},
		{"epsilon", EpsilonSymbol, false, true},
		{"start", StartSymbol, false, true},
		{"end", EndSymbol, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sym.IsChar(); got != tt.wantChar {
				t.Errorf("IsChar() = %v, want %v", got, tt.wantChar)
			}
			if got := tt.sym.IsZeroWidth(); got != tt.wantZero {
				t.Errorf("IsZeroWidth() = %v, want %v", got, tt.wantZero)
			}
		})
	}
}

func TestSymbolAsMapKey(t *testing.T) {
	m := map[Symbol]int{
		NewChar('a'):  1,
		NewChar('b'):  2,
		EpsilonSymbol: 3,
		StartSymbol:   4,
		EndSymbol:     5,
	}
	if m[NewChar('a')] != 1 || m[EpsilonSymbol] != 3 {
		t.Fatal("Symbol values did not behave as stable map keys")
	}
	if NewChar('a') == NewChar('b') {
		t.Fatal("distinct chars compared equal")
	}
}

func TestKindString(t *testing.T) {
	if Char.String() != "Char" || Epsilon.String() != "Epsilon" {
		t.Fatal("unexpected Kind.String() output")
	}
}
