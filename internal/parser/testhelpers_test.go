package parser

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/lexer"
	"gqlgrammar/internal/source"
	"gqlgrammar/internal/text"
	"gqlgrammar/internal/token"
)

type B = text.Borrowed

// lex tokenizes src as a virtual file and fails the test on lexer errors.
func lex(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.graphql", []byte(src))
	bag := diag.NewBag(100)
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("lexer errors for %q: %s", src, diagnosticsSummary(bag))
	}
	return toks
}

// stream lexes src into a Stream with default options.
func stream(t *testing.T, src string) *Stream {
	t.Helper()
	return NewStream(lex(t, src), Options{})
}

// requireError asserts err is a *Error with the given code.
func requireError(t *testing.T, err error, code diag.Code) *Error {
	t.Helper()
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *parser.Error", err)
	}
	if perr.Code != code {
		t.Fatalf("code = %s, want %s (%s)", perr.Code.ID(), code.ID(), perr.Message)
	}
	return perr
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}
