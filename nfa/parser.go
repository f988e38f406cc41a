package nfa

import (
	"fmt"

	"github.com/redfalang/redfa/internal/automaton"
	"github.com/redfalang/redfa/internal/token"
)

// Parser is a recursive-descent parser over a regex source string, with a
// one-token lookahead implemented via a "current token + consumed" flag:
// it reads a token from the underlying Tokenizer on demand, marks it
// consumed once used by a grammar rule, and only re-reads when consumed.
//
// Grammar (informal, see spec):
//
//	alternation := expression ( '|' expression )*
//	expression  := kleene+                       (implicit concatenation)
//	kleene      := basic ( '*' | '+' | '?' )?
//	basic       := char | '^' | '$' | '(' alternation ')'
type Parser struct {
	tok      *token.Tokenizer
	build    *Builder
	cur      token.Token
	curOK    bool
	consumed bool
	primed   bool
}

// NewParser creates a Parser over the given regex source.
func NewParser(src string) *Parser {
	return &Parser{
		tok:      token.New(src),
		build:    NewBuilder(),
		consumed: true,
	}
}

// Parse consumes the full token stream and returns the resulting NFA.
// Returns a *ParseError if the source is not a well-formed pattern per the
// grammar above, or an *InvariantError if a Builder combinator's
// precondition was violated (a parser/builder bug, not a pattern error).
func Parse(src string) (*NFA, error) {
	p := NewParser(src)
	n, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	tok, ok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, &ParseError{Message: fmt.Sprintf("unexpected trailing %v (unmatched ')'?)", tok.Kind)}
	}
	return n, nil
}

// peek returns the current lookahead token, reading a fresh one from the
// tokenizer only if the previous one has been consumed. ok is false at
// end of input.
func (p *Parser) peek() (token.Token, bool, error) {
	if !p.primed || p.consumed {
		tok, ok, err := p.tok.Next()
		if err != nil {
			return token.Token{}, false, &ParseError{Message: err.Error()}
		}
		p.cur, p.curOK, p.consumed, p.primed = tok, ok, false, true
	}
	return p.cur, p.curOK, nil
}

// advance marks the current lookahead token as used.
func (p *Parser) advance() { p.consumed = true }

// parseAlternation parses `expression ('|' expression)*`.
func (p *Parser) parseAlternation() (*NFA, error) {
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	alternatives := []*NFA{first}
	for {
		tok, ok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !ok || tok.Kind != token.Pipe {
			break
		}
		p.advance()
		next, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, next)
	}
	if len(alternatives) == 1 {
		return alternatives[0], nil
	}
	return p.build.Union(alternatives)
}

// parseExpression parses one-or-more quantified atoms and concatenates
// them. An expression with zero atoms (e.g. an empty alternative `(|a)`)
// is a MalformedRegex.
func (p *Parser) parseExpression() (*NFA, error) {
	var result *NFA
	for {
		tok, ok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !ok || tok.Kind == token.Pipe || tok.Kind == token.CloseParen {
			break
		}
		atom, err := p.parseKleene()
		if err != nil {
			return nil, err
		}
		if result == nil {
			result = atom
			continue
		}
		result, err = p.build.Concatenate(result, atom)
		if err != nil {
			return nil, err
		}
	}
	if result == nil {
		return nil, &ParseError{Message: "empty alternative: expected at least one atom"}
	}
	return result, nil
}

// parseKleene parses `basic ('*' | '+' | '?')?`.
func (p *Parser) parseKleene() (*NFA, error) {
	atom, err := p.parseBasic()
	if err != nil {
		return nil, err
	}
	tok, ok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !ok {
		return atom, nil
	}
	switch tok.Kind {
	case token.Star:
		p.advance()
		return p.build.KleeneStar(atom)
	case token.Plus:
		p.advance()
		return p.build.KleenePlus(atom)
	case token.Question:
		p.advance()
		return p.build.Optional(atom)
	default:
		return atom, nil
	}
}

// parseBasic parses a literal character, an anchor (^ or $), or a
// parenthesized alternation.
func (p *Parser) parseBasic() (*NFA, error) {
	tok, ok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ParseError{Message: "unexpected end of pattern"}
	}

	switch tok.Kind {
	case token.Literal:
		p.advance()
		return p.build.Symbol(automaton.NewChar(tok.Char)), nil
	case token.Caret:
		p.advance()
		return p.build.Symbol(automaton.StartSymbol), nil
	case token.Dollar:
		p.advance()
		return p.build.Symbol(automaton.EndSymbol), nil
	case token.OpenParen:
		p.advance()
		inner, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		closeTok, ok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !ok || closeTok.Kind != token.CloseParen {
			return nil, &ParseError{Message: "unclosed group: expected ')'"}
		}
		p.advance()
		return p.build.Grouped(inner)
	default:
		return nil, &ParseError{Message: fmt.Sprintf("unexpected %v: two sub-expressions with no operator between them, or a stray metacharacter", tok.Kind)}
	}
}
