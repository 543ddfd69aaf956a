package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gqlgrammar/internal/lexer"
	"gqlgrammar/internal/source"
	"gqlgrammar/internal/token"
)

func lexString(t *testing.T, src string) ([]token.Token, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("tokens.graphql", []byte(src))
	return lexer.Tokenize(fs.Get(id), lexer.Options{}), fs
}

func TestFormatTokensPretty(t *testing.T) {
	toks, fs := lexString(t, "@skip(if: $x)")
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(toks) {
		t.Fatalf("got %d lines for %d tokens", len(lines), len(toks))
	}
	if !strings.Contains(lines[4], `Colon`) || !strings.Contains(lines[5], "(leading: Space)") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestFormatTokensJSON(t *testing.T) {
	toks, _ := lexString(t, "a, b")
	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 || out[1].Text != "b" || out[2].Kind != "EOF" {
		t.Fatalf("tokens = %+v", out)
	}
	if strings.Join(out[1].Leading, ",") != "Comma,Space" {
		t.Fatalf("leading = %v", out[1].Leading)
	}
}

func TestFormatTokensTable(t *testing.T) {
	toks, fs := lexString(t, "[1]")
	var buf bytes.Buffer
	if err := FormatTokensTable(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"KIND", "LBracket", "IntValue", `"1"`, "1:3", "EOF"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table lacks %q:\n%s", want, out)
		}
	}
}
