package token

import "testing"

func collect(t *testing.T, src string) ([]Token, error) {
	t.Helper()
	tz := New(src)
	var toks []Token
	for {
		tok, ok, err := tz.Next()
		if err != nil {
			return toks, err
		}
		if !ok {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func TestTokenizeLiteralsAndSpecials(t *testing.T) {
	toks, err := collect(t, "a(b|c)*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Kind{Literal, OpenParen, Literal, Pipe, Literal, CloseParen, Star}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestEscapeOfSpecialYieldsLiteral(t *testing.T) {
	toks, err := collect(t, `\(\)\\`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []rune{'(', ')', '\\'}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, r := range want {
		if toks[i].Kind != Literal || toks[i].Char != r {
			t.Errorf("token %d = %+v, want literal %q", i, toks[i], r)
		}
	}
}

func TestEscapeOfNonSpecialIsError(t *testing.T) {
	_, err := collect(t, `\a`)
	if err == nil {
		t.Fatal("expected error escaping non-special character")
	}
}

func TestTrailingBackslashIsError(t *testing.T) {
	_, err := collect(t, `abc\`)
	if err == nil {
		t.Fatal("expected error for dangling trailing backslash")
	}
}

func TestEmptyPattern(t *testing.T) {
	toks, err := collect(t, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 0 {
		t.Fatalf("expected no tokens, got %v", toks)
	}
}
