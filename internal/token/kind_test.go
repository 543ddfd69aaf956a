package token_test

import (
	"testing"

	"gqlgrammar/internal/source"
	"gqlgrammar/internal/token"
)

func tok(k token.Kind, text string) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}, Text: text}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.IntValue, token.BigIntValue, token.FloatValue,
		token.StringValue, token.BlockString,
	}
	for _, k := range lits {
		if !tok(k, "").IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Name, token.Dollar, token.LParen, token.EOF}
	for _, k := range non {
		if tok(k, "").IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunct(t *testing.T) {
	puncts := []token.Kind{
		token.Bang, token.Dollar, token.Amp, token.LParen, token.RParen,
		token.Spread, token.Colon, token.Equals, token.At,
		token.LBracket, token.RBracket, token.LBrace, token.Pipe, token.RBrace,
	}
	for _, k := range puncts {
		if !tok(k, "").IsPunct() {
			t.Fatalf("%v should be punct", k)
		}
	}
	non := []token.Kind{token.Name, token.IntValue, token.Invalid}
	for _, k := range non {
		if tok(k, "").IsPunct() {
			t.Fatalf("%v must NOT be punct", k)
		}
	}
}

func TestIs(t *testing.T) {
	null := tok(token.Name, "null")
	if !null.Is(token.Name, "null") || !null.Is(token.Name, "") {
		t.Fatalf("null name must match by kind and by text")
	}
	if null.Is(token.Name, "nullable") || null.Is(token.StringValue, "") {
		t.Fatalf("null name must not match other text or kind")
	}
}

func TestPunctFor(t *testing.T) {
	for _, s := range []string{"!", "$", "(", ")", "...", ":", "@", "[", "]", "{", "}"} {
		k, ok := token.PunctFor(s)
		if !ok {
			t.Fatalf("%q must be a punctuator", s)
		}
		if got := k.Describe(); got != "'"+s+"'" {
			t.Fatalf("Describe(%v) = %s", k, got)
		}
	}
	if _, ok := token.PunctFor("#"); ok {
		t.Fatalf("# is a comment, not a punctuator")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		tok  token.Token
		want string
	}{
		{tok(token.EOF, ""), "end of input"},
		{tok(token.Name, "Query"), "'Query'"},
		{tok(token.Dollar, "$"), "'$'"},
		{tok(token.IntValue, "42"), "integer 42"},
		{tok(token.StringValue, `"x"`), `string "x"`},
	}
	for _, tt := range tests {
		if got := tt.tok.Describe(); got != tt.want {
			t.Errorf("Describe(%v) = %q, want %q", tt.tok.Kind, got, tt.want)
		}
	}
}
