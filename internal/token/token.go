// Package token turns regex source text into a lazy sequence of tokens,
// handling backslash-escapes of the special characters the parser cares
// about. It is the only component between the regex source string and the
// recursive-descent parser in package nfa.
package token

import "fmt"

// Kind identifies which member of the token sum type a Token holds.
type Kind uint8

const (
	// Literal is a plain (possibly escaped) character to match.
	Literal Kind = iota
	OpenParen
	CloseParen
	Pipe
	Star
	Plus
	Question
	Caret
	Dollar
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case OpenParen:
		return "("
	case CloseParen:
		return ")"
	case Pipe:
		return "|"
	case Star:
		return "*"
	case Plus:
		return "+"
	case Question:
		return "?"
	case Caret:
		return "^"
	case Dollar:
		return "$"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Token is a single lexical unit of regex source. For Kind == Literal,
// Char holds the matched rune; for every other Kind, Char is unused.
type Token struct {
	Kind Kind
	Char rune
}

// specials maps an unescaped special rune to the token it produces, and
// records which specials can legally be escaped (all of them — escaping
// any of these characters simply yields that character literally).
var specials = map[rune]Kind{
	'(': OpenParen,
	')': CloseParen,
	'|': Pipe,
	'*': Star,
	'+': Plus,
	'?': Question,
	'^': Caret,
	'$': Dollar,
}

// SyntaxError reports a malformed escape sequence encountered while
// tokenizing. It is translated into the public MalformedRegexError at the
// compile boundary.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string { return e.Message }

// Tokenizer lazily scans a regex source string into Tokens, one rune of
// lookahead at a time. It has no knowledge of grammar — that lives in the
// parser, which consumes tokens via Next.
type Tokenizer struct {
	src []rune
	pos int
}

// New creates a Tokenizer over the given regex source.
func New(src string) *Tokenizer {
	return &Tokenizer{src: []rune(src)}
}

// Next returns the next token in the stream. ok is false once the source
// is exhausted (not an error). err is non-nil for a malformed escape: a
// backslash followed by a non-special character, or a backslash at the
// very end of the source (a dangling escape).
func (t *Tokenizer) Next() (tok Token, ok bool, err error) {
	if t.pos >= len(t.src) {
		return Token{}, false, nil
	}

	c := t.src[t.pos]
	t.pos++

	if c == '\\' {
		if t.pos >= len(t.src) {
			return Token{}, false, &SyntaxError{Message: "dangling escape character at end of pattern"}
		}
		escaped := t.src[t.pos]
		t.pos++
		if _, isSpecial := specials[escaped]; !isSpecial && escaped != '\\' {
			return Token{}, false, &SyntaxError{
				Message: fmt.Sprintf("cannot escape %q: not a special character", escaped),
			}
		}
		return Token{Kind: Literal, Char: escaped}, true, nil
	}

	if kind, isSpecial := specials[c]; isSpecial {
		return Token{Kind: kind}, true, nil
	}
	return Token{Kind: Literal, Char: c}, true, nil
}
