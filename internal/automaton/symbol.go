// Package automaton defines the transition alphabet shared by the NFA and
// DFA packages: every edge in either automaton is labeled with a Symbol.
package automaton

import "fmt"

// Kind identifies which member of the Symbol sum type a value holds.
type Kind uint8

const (
	// Char consumes one input rune and advances position by one.
	Char Kind = iota
	// Epsilon consumes no input. Only ever appears inside an NFA; the
	// DFA has no epsilon edges after subset construction collapses them.
	Epsilon
	// Start is a zero-width assertion satisfied once, at the beginning
	// of the slice handed to a traversal.
	Start
	// End is a zero-width assertion satisfied once, at the end of the
	// slice handed to a traversal.
	End
)

// String renders the Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case Char:
		return "Char"
	case Epsilon:
		return "Epsilon"
	case Start:
		return "Start"
	case End:
		return "End"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Symbol is the transition alphabet: {Char(c), Epsilon, Start, End}.
// It is a value type so it can be used directly as a map key.
type Symbol struct {
	kind Kind
	r    rune // valid only when kind == Char
}

// NewChar builds a literal-character symbol.
func NewChar(r rune) Symbol { return Symbol{kind: Char, r: r} }

// EpsilonSymbol, StartSymbol and EndSymbol are the three zero-payload
// members of the alphabet. They are safe to compare and use as map keys
// directly since Symbol is a plain value type.
var (
	EpsilonSymbol = Symbol{kind: Epsilon}
	StartSymbol   = Symbol{kind: Start}
	EndSymbol     = Symbol{kind: End}
)

// Kind reports which alphabet member this symbol is.
func (s Symbol) Kind() Kind { return s.kind }

// IsChar reports whether this symbol consumes input.
func (s Symbol) IsChar() bool { return s.kind == Char }

// IsZeroWidth reports whether this symbol never advances the consumed
// length of a traversal (Epsilon, Start, and End are all zero-width;
// only Char advances).
func (s Symbol) IsZeroWidth() bool { return s.kind != Char }

// Char returns the literal rune. Only meaningful when Kind() == Char.
func (s Symbol) Char() rune { return s.r }

// String renders the symbol for diagnostics and DOT-style dumps.
func (s Symbol) String() string {
	switch s.kind {
	case Char:
		return fmt.Sprintf("%q", s.r)
	case Epsilon:
		return "ε"
	case Start:
		return "^"
	case End:
		return "$"
	default:
		return "?"
	}
}
