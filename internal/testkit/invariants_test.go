package testkit

import (
	"strings"
	"testing"

	"gqlgrammar/internal/ast"
	"gqlgrammar/internal/lexer"
	"gqlgrammar/internal/parser"
	"gqlgrammar/internal/source"
	"gqlgrammar/internal/text"
)

func TestTokenInvariantsHoldForLexer(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("in.graphql", []byte("# c\n@skip(if: $x) [1, 2.5, \"s\", \"\"\"b\"\"\"]")))
	tokens := lexer.Tokenize(file, lexer.Options{})
	if err := CheckTokenInvariants(tokens, file); err != nil {
		t.Fatal(err)
	}
}

func TestTokenInvariantsCatchMismatch(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("in.graphql", []byte("abc")))
	tokens := lexer.Tokenize(file, lexer.Options{})
	tokens[0].Text = "xyz"
	err := CheckTokenInvariants(tokens, file)
	if err == nil || !strings.Contains(err.Error(), "does not match source") {
		t.Fatalf("err = %v", err)
	}
	if err := CheckTokenInvariants(tokens[:0], file); err == nil {
		t.Fatal("expected error for stream without EOF")
	}
}

func TestDirectiveSpans(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("in.graphql", []byte(`@a @b(x: 1) @c`)))
	tokens := lexer.Tokenize(file, lexer.Options{})
	node, err := parser.Parse[text.Borrowed](tokens, parser.ProdDirectives, parser.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckDirectiveSpans(node.([]ast.Directive[text.Borrowed]), file); err != nil {
		t.Fatal(err)
	}
}
