package token

import "testing"

func collect(src string) []Token {
	l := NewLexer(src)
	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func TestLexNumbersAndOperators(t *testing.T) {
	toks := collect("2 + 3.5 * x1")
	wantKinds := []Kind{Number, Plus, Number, Star, Ident, EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantKinds), toks)
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d kind = %v; want %v", i, toks[i].Kind, k)
		}
	}
	if toks[0].Value != 2 {
		t.Errorf("toks[0].Value = %v; want 2", toks[0].Value)
	}
	if toks[2].Value != 3.5 {
		t.Errorf("toks[2].Value = %v; want 3.5", toks[2].Value)
	}
	if toks[4].Text != "x1" {
		t.Errorf("toks[4].Text = %q; want x1", toks[4].Text)
	}
}

func TestLexParensCommaCaretPositions(t *testing.T) {
	toks := collect("pow(2,3)^1")
	wantKinds := []Kind{Ident, LParen, Number, Comma, Number, RParen, Caret, Number, EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(wantKinds), toks)
	}
	if toks[0].Pos != 0 {
		t.Errorf("toks[0].Pos = %d; want 0", toks[0].Pos)
	}
	if toks[1].Pos != 3 {
		t.Errorf("toks[1].Pos = %d; want 3", toks[1].Pos)
	}
}

func TestLexIllegalCharacter(t *testing.T) {
	toks := collect("2 & 3")
	if toks[1].Kind != Illegal {
		t.Fatalf("kind = %v; want Illegal", toks[1].Kind)
	}
	if toks[1].Text != "&" {
		t.Errorf("text = %q; want &", toks[1].Text)
	}
}

func TestLexEOFRepeats(t *testing.T) {
	l := NewLexer("")
	a := l.Next()
	b := l.Next()
	if a.Kind != EOF || b.Kind != EOF {
		t.Fatalf("expected repeated EOF, got %v, %v", a, b)
	}
}
