package parser

import (
	"testing"

	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/source"
	"gqlgrammar/internal/token"
)

func TestStreamAppendsEOF(t *testing.T) {
	toks := []token.Token{{Kind: token.Name, Text: "a", Span: source.Span{File: 1, Start: 0, End: 1}}}
	s := NewStream(toks, Options{})
	if s.Next().Text != "a" {
		t.Fatal("first token lost")
	}
	eof := s.Next()
	if eof.Kind != token.EOF || eof.Span.Start != 1 {
		t.Fatalf("synthetic EOF = %+v", eof)
	}
	if s.Next().Kind != token.EOF {
		t.Fatal("Next past EOF must keep returning EOF")
	}
	if len(toks) != 1 {
		t.Fatal("input slice must not be modified")
	}

	empty := NewStream(nil, Options{})
	if !empty.AtEOF() {
		t.Fatal("empty stream must be at EOF")
	}
}

func TestStreamMarkReset(t *testing.T) {
	s := stream(t, "a b c")
	m := s.Mark()
	s.Next()
	s.Next()
	s.Reset(m)
	if s.Peek().Text != "a" {
		t.Fatalf("Reset did not restore, at %s", s.Peek().Describe())
	}
}

func TestParseProductions(t *testing.T) {
	tests := []struct {
		prod Production
		src  string
	}{
		{ProdValue, "{a: $b}"},
		{ProdDefaultValue, "[1, 2]"},
		{ProdType, "[T!]"},
		{ProdArguments, "(a: $b)"},
		{ProdConstArguments, "(a: 1)"},
		{ProdDirectives, "@a @b(c: $d)"},
		{ProdConstDirectives, "@a(b: C)"},
		{ProdString, `"""doc"""`},
	}
	for _, tt := range tests {
		t.Run(tt.prod.String(), func(t *testing.T) {
			node, err := Parse[B](lex(t, tt.src), tt.prod, Options{})
			if err != nil {
				t.Fatalf("Parse(%s, %q): %v", tt.prod, tt.src, err)
			}
			if node == nil {
				t.Fatal("nil node")
			}
			got, ok := ParseProduction(tt.prod.String())
			if !ok || got != tt.prod {
				t.Fatalf("ParseProduction(%s) = %v, %v", tt.prod, got, ok)
			}
		})
	}
	if _, ok := ParseProduction("document"); ok {
		t.Fatal("unknown production accepted")
	}
}

func TestParseTrailingTokens(t *testing.T) {
	_, err := Parse[B](lex(t, "1 2"), ProdValue, Options{})
	perr := requireError(t, err, diag.SynTrailingTokens)
	if perr.Message != "unexpected integer 2 after value" {
		t.Fatalf("message = %q", perr.Message)
	}
	d := perr.Diagnostic()
	if d.Code != diag.SynTrailingTokens || d.Severity != diag.SevError {
		t.Fatalf("diagnostic = %+v", d)
	}
}

func TestStringLit(t *testing.T) {
	str, err := StringLit(stream(t, "\"\"\"\n  Docs\n    here\n\"\"\""))
	if err != nil || str != "Docs\n  here\n" {
		t.Fatalf("StringLit = %q, %v", str, err)
	}
	_, err = StringLit(stream(t, "Name"))
	perr := requireError(t, err, diag.SynUnexpectedToken)
	if perr.Message != "expected string, got 'Name'" {
		t.Fatalf("message = %q", perr.Message)
	}
}
