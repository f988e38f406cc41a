package nfa

import "testing"

func TestParseLiteralConcatenation(t *testing.T) {
	n, err := Parse("abc")
	if err != nil {
		t.Fatalf("Parse(\"abc\"): %v", err)
	}
	if length, ok := runNFA(n, "abc"); !ok || length != 3 {
		t.Fatalf("abc on \"abc\": got (%d,%v), want (3,true)", length, ok)
	}
	if _, ok := runNFA(n, "ab"); ok {
		t.Fatalf("abc on \"ab\": expected no match")
	}
}

func TestParseAlternationPrecedence(t *testing.T) {
	n, err := Parse("ab|cd")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	for _, tc := range []struct {
		text string
		ok   bool
	}{
		{"ab", true}, {"cd", true}, {"ac", false},
	} {
		_, ok := runNFA(n, tc.text)
		if ok != tc.ok {
			t.Errorf("ab|cd on %q: got ok=%v, want %v", tc.text, ok, tc.ok)
		}
	}
}

func TestParseQuantifiers(t *testing.T) {
	for _, tc := range []struct {
		pattern string
		text    string
		length  int
		ok      bool
	}{
		{"a*", "", 0, true},
		{"a*", "aaaa", 4, true},
		{"a+", "", 0, false},
		{"a+", "aa", 2, true},
		{"a?b", "b", 1, true},
		{"a?b", "ab", 2, true},
	} {
		n, err := Parse(tc.pattern)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.pattern, err)
		}
		length, ok := runNFA(n, tc.text)
		if ok != tc.ok || (ok && length != tc.length) {
			t.Errorf("%s on %q: got (%d,%v), want (%d,%v)", tc.pattern, tc.text, length, ok, tc.length, tc.ok)
		}
	}
}

func TestParseGroupOrderMatchesSourceLeftParen(t *testing.T) {
	n, err := Parse("(ab((cd)*)ef)+")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := len(n.Groups()); got != 3 {
		t.Fatalf("got %d groups, want 3", got)
	}
}

func TestParseErrors(t *testing.T) {
	for _, pattern := range []string{
		"(a",
		"a)",
		"a\\q",
		"a\\",
		"",
		"(|a)",
		"a|",
	} {
		if _, err := Parse(pattern); err == nil {
			t.Errorf("Parse(%q): expected a MalformedRegex error, got nil", pattern)
		}
	}
}

func TestParseEscapedMetacharacterIsLiteral(t *testing.T) {
	n, err := Parse(`a\*b`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if length, ok := runNFA(n, "a*b"); !ok || length != 3 {
		t.Fatalf(`a\*b on "a*b": got (%d,%v), want (3,true)`, length, ok)
	}
}

func TestParseAnchors(t *testing.T) {
	n, err := Parse("^a")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if length, ok := runNFA(n, "a"); !ok || length != 1 {
		t.Fatalf("^a on \"a\": got (%d,%v), want (1,true)", length, ok)
	}
}
