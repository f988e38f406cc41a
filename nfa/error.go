package nfa

import "fmt"

// ParseError is raised by the parser for any pattern shape it does not
// accept: unclosed groups, empty alternatives, two adjacent sub-expressions
// with no '|' between them inside a group, or a tokenizer-level escape
// error bubbling up through Parse. It is translated into the public
// redfa.MalformedRegexError at the compile boundary.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return "malformed regex: " + e.Message }

// InvariantError signals that a Builder combinator was invoked on an NFA
// fragment that doesn't satisfy its precondition (exactly one start and one
// accept state). This can only happen if the Builder or Parser has a bug —
// never as a result of user input — and is translated into the public
// redfa.InvariantViolationError at the compile boundary.
type InvariantError struct {
	Op      string
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("nfa: invariant violated in %s: %s", e.Op, e.Message)
}
