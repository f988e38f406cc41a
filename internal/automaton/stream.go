package automaton

// Stream turns an input slice into the symbol sequence a traversal
// consumes: [Start?, Char(r0), Char(r1), …, Char(r_{n-1}), End]. Start is
// only emitted when isStart is true — used by the match driver to assert
// '^' only at the true beginning of the original text, not at every retry
// offset when searching for a match anywhere in the text.
func Stream(text []rune, isStart bool) []Symbol {
	out := make([]Symbol, 0, len(text)+2)
	if isStart {
		out = append(out, StartSymbol)
	}
	for _, r := range text {
		out = append(out, NewChar(r))
	}
	out = append(out, EndSymbol)
	return out
}
