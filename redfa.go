// Package redfa is a small regex engine built directly from the automaton
// theory it implements: Thompson's construction turns parsed regex source
// into an epsilon-NFA, subset construction optionally determinizes it into
// a DFA, and — for patterns with capturing groups — backward-trail
// reconstruction recovers every group's matched spans from a successful
// NFA traversal.
//
// Basic usage:
//
//	re, err := redfa.Compile(`(a|b)*a`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	begin, end, ok := re.Find("cabba")
//
// Capturing groups:
//
//	re := redfa.MustCompile(`(ab((cd)*)ef)+`)
//	m, ok := re.Match("abcdefabefabcdcdef")
//	if ok {
//	    fmt.Println(m.AllCaptures())
//	}
//
// Limitations: the pattern grammar supports literals, `|`, `*`, `+`, `?`,
// grouping, and the `^`/`$` zero-width boundary assertions — no character
// classes, backreferences, or repetition counts. See the Parser
// documentation in package nfa for the full grammar.
package redfa

import (
	"fmt"

	"github.com/redfalang/redfa/engine"
	"github.com/redfalang/redfa/nfa"
)

// Config controls compilation and match-time behavior. The zero value is
// not ready to use; start from DefaultConfig.
type Config = engine.Config

// DefaultConfig returns redfa's default configuration: DFA backend for
// group-free patterns, NFA backend (with group reconstruction) otherwise,
// and literal prefiltering enabled where the pattern allows it.
func DefaultConfig() Config { return engine.DefaultConfig() }

// Regex is a compiled pattern. A Regex is immutable after Compile returns
// and is safe to use concurrently from multiple goroutines (spec §5): all
// of its read-only methods allocate a fresh traveller per call.
type Regex struct {
	engine  *engine.Regex
	pattern string
}

// MalformedRegexError is returned by Compile when pattern is not a
// well-formed regex: an unclosed group, two adjacent sub-expressions with
// no operator between them, an escape of a non-special character, or a
// trailing backslash.
type MalformedRegexError struct {
	Pattern string
	reason  string
}

func (e *MalformedRegexError) Error() string {
	return fmt.Sprintf("redfa: malformed regex %q: %s", e.Pattern, e.reason)
}

// InvariantViolationError is returned by Compile when a Thompson
// combinator was invoked on an NFA fragment lacking exactly one start or
// one accept state. This indicates a bug in the builder or parser, not an
// invalid user pattern, and should not occur for any pattern Compile
// accepts as well-formed.
type InvariantViolationError struct {
	Op      string
	reason  string
	Pattern string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("redfa: internal invariant violated in %s while compiling %q: %s", e.Op, e.Pattern, e.reason)
}

// Compile compiles a regular expression pattern with DefaultConfig.
//
// Returns a *MalformedRegexError if pattern is not well-formed, or a
// *InvariantViolationError if a builder invariant is violated (a bug,
// not a user-input error).
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics if it is not well-formed.
// Intended for patterns known to be valid at compile time, e.g. package-
// level variables.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// CompileWithConfig compiles pattern with an explicit Config.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	eng, err := engine.Compile(pattern, config)
	if err != nil {
		var parseErr *nfa.ParseError
		var invErr *nfa.InvariantError
		switch e := err.(type) {
		case *nfa.ParseError:
			parseErr = e
		case *nfa.InvariantError:
			invErr = e
		}
		if parseErr != nil {
			return nil, &MalformedRegexError{Pattern: pattern, reason: parseErr.Message}
		}
		if invErr != nil {
			return nil, &InvariantViolationError{Op: invErr.Op, Pattern: pattern, reason: invErr.Message}
		}
		return nil, &MalformedRegexError{Pattern: pattern, reason: err.Error()}
	}
	return &Regex{engine: eng, pattern: pattern}, nil
}

// String returns the source pattern this Regex was compiled from.
func (r *Regex) String() string { return r.pattern }

// NumSubexp returns the number of capturing groups in the pattern (not
// counting the implicit whole-match group 0).
func (r *Regex) NumSubexp() int { return r.engine.NumGroups() }

// Find returns the leftmost match's (begin, end) rune offsets into text,
// and ok=false if the pattern matches nowhere in text. Per spec
// leftmost-earliest-start / longest-at-start semantics: no prefix of
// text[b':] for b' < begin is accepted, and among all accepted prefixes
// starting at begin, end-begin is the longest.
func (r *Regex) Find(text string) (begin, end int, ok bool) {
	return r.engine.Find(text)
}

// MatchString reports whether text contains any match of the pattern.
func (r *Regex) MatchString(text string) bool {
	_, _, ok := r.Find(text)
	return ok
}

// FindString returns the leftmost match's substring, and ok=false if the
// pattern matches nowhere in text.
func (r *Regex) FindString(text string) (string, bool) {
	begin, end, ok := r.Find(text)
	if !ok {
		return "", false
	}
	runes := []rune(text)
	return string(runes[begin:end]), true
}

// Match runs the full match driver, including capturing-group
// reconstruction, and returns ok=false if the pattern matches nowhere in
// text.
func (r *Regex) Match(text string) (*engine.Match, bool) {
	return r.engine.Match(text)
}
