package parser

import (
	"testing"

	"gqlgrammar/internal/ast"
	"gqlgrammar/internal/diag"
)

func TestType(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"String", "String"},
		{"String!", "String!"},
		{"[Int]", "[Int]"},
		{"[String!]!", "[String!]!"},
		{"[[ID!]]!", "[[ID!]]!"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			ty, err := Type[B](stream(t, tt.src))
			if err != nil {
				t.Fatalf("Type(%q): %v", tt.src, err)
			}
			if got := ty.String(); got != tt.want {
				t.Fatalf("Type(%q) = %s", tt.src, got)
			}
		})
	}
}

func TestTypeStructure(t *testing.T) {
	ty, err := Type[B](stream(t, "[String!]!"))
	if err != nil {
		t.Fatal(err)
	}
	want := ast.NonNullType(ast.ListType(ast.NonNullType(ast.NamedType[B]("String"))))
	if !ast.EqualTypes(ty, want) {
		t.Fatalf("Type = %s, want %s", ty, want)
	}
}

func TestTypeDoubleBangIsTrailing(t *testing.T) {
	s := stream(t, "Int!!")
	ty, err := Type[B](s)
	if err != nil {
		t.Fatal(err)
	}
	if ty.String() != "Int!" || s.AtEOF() {
		t.Fatalf("Type = %s, second '!' must be left unconsumed", ty)
	}

	_, err = Parse[B](lex(t, "Int!!"), ProdType, Options{})
	requireError(t, err, diag.SynTrailingTokens)
}

func TestTypeErrors(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
		msg  string
	}{
		{"!", diag.SynUnexpectedToken, "expected type, got '!'"},
		{"[Int", diag.SynUnexpectedToken, "expected ']', got end of input"},
		{"[]", diag.SynUnexpectedToken, "expected type, got ']'"},
		{"1", diag.SynUnexpectedToken, "expected type, got integer 1"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := stream(t, tt.src)
			_, err := Type[B](s)
			perr := requireError(t, err, tt.code)
			if perr.Message != tt.msg {
				t.Fatalf("message = %q, want %q", perr.Message, tt.msg)
			}
			if s.Pos() != 0 {
				t.Fatalf("stream moved to %d", s.Pos())
			}
		})
	}

	_, err := Type[B](NewStream(lex(t, "[[[Int]]]"), Options{MaxDepth: 2}))
	requireError(t, err, diag.SynTooDeep)
}
