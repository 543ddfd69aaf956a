package parser

import (
	"strconv"
	"strings"
	"testing"
	"unsafe"

	"gqlgrammar/internal/ast"
	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/text"
)

func TestValueRendering(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"true", "true"},
		{"false", "false"},
		{"null", "null"},
		{"RED", "RED"},
		{"42", "42"},
		{"-7", "-7"},
		{"1.5", "1.5"},
		{"-2e3", "-2000"},
		{"18446744073709551616", "18446744073709551616"},
		{`"hi\n"`, `"hi\n"`},
		{`"""  block  """`, `"block\n"`},
		{"$var", "$var"},
		{"[]", "[]"},
		{"[1, [2, 3], $x]", "[1, [2, 3], $x]"},
		{"{b: 1, a: {c: null}}", "{a: {c: null}, b: 1}"},
		{"{}", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			s := stream(t, tt.src)
			v, err := Value[B](s)
			if err != nil {
				t.Fatalf("Value(%q): %v", tt.src, err)
			}
			if got := v.String(); got != tt.want {
				t.Fatalf("Value(%q) = %s, want %s", tt.src, got, tt.want)
			}
			if !s.AtEOF() {
				t.Fatalf("stream not consumed, at %s", s.Peek().Describe())
			}
		})
	}
}

func TestValueKinds(t *testing.T) {
	tests := []struct {
		src  string
		kind ast.ValueKind
	}{
		{"true", ast.ValueBoolean},
		{"null", ast.ValueNull},
		{"nullable", ast.ValueEnum},
		{"0", ast.ValueInt},
		{"340282366920938463463374607431768211455", ast.ValueBigInt},
		{"0.0", ast.ValueFloat},
		{`""`, ast.ValueString},
		{`""""""`, ast.ValueString},
		{"$a", ast.ValueVariable},
		{"[null]", ast.ValueList},
		{"{a: 1}", ast.ValueObject},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			v, err := Value[B](stream(t, tt.src))
			if err != nil {
				t.Fatalf("Value(%q): %v", tt.src, err)
			}
			if v.Kind() != tt.kind {
				t.Fatalf("kind = %v, want %v", v.Kind(), tt.kind)
			}
		})
	}
}

func TestDefaultValueRejectsVariables(t *testing.T) {
	v, err := Value[B](stream(t, "$name"))
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if name, ok := v.Variable(); !ok || name != "name" {
		t.Fatalf("Variable() = %q, %v", name, ok)
	}

	s := stream(t, "$name")
	_, err = DefaultValue[B](s)
	perr := requireError(t, err, diag.SynUnexpectedToken)
	if perr.Message != "expected value, got '$'" {
		t.Fatalf("message = %q", perr.Message)
	}
	if s.Pos() != 0 {
		t.Fatalf("failed production moved the stream to %d", s.Pos())
	}

	_, err = DefaultValue[B](stream(t, "[1, {a: $x}]"))
	perr = requireError(t, err, diag.SynUnexpectedToken)
	if perr.Span.Start != 8 {
		t.Fatalf("error span = %v, want the '$' at offset 8", perr.Span)
	}
}

func TestValueErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
		msg  string
	}{
		{"empty", "", diag.SynUnexpectedToken, "expected value, got end of input"},
		{"punct", ")", diag.SynUnexpectedToken, "expected value, got ')'"},
		{"unclosed list", "[1, 2", diag.SynUnexpectedToken, "expected ']', got end of input"},
		{"object missing colon", "{a 1}", diag.SynUnexpectedToken, "expected ':', got integer 1"},
		{"object bad key", "{1: 2}", diag.SynUnexpectedToken, "expected object field name or '}', got integer 1"},
		{"variable without name", "$ 1", diag.SynUnexpectedToken, "expected variable name, got integer 1"},
		{"bad escape", `"\q"`, diag.SynBadLiteral, `invalid string: bad escaped char 'q'`},
		{"bad escape in list", `[1, "\u00"]`, diag.SynBadLiteral, `invalid string: \u must have 4 characters`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stream(t, tt.src)
			_, err := Value[B](s)
			perr := requireError(t, err, tt.code)
			if !strings.HasPrefix(perr.Message, tt.msg) {
				t.Fatalf("message = %q, want prefix %q", perr.Message, tt.msg)
			}
			if s.Pos() != 0 {
				t.Fatalf("failed production moved the stream to %d", s.Pos())
			}
		})
	}
}

func TestBadLiteralSpan(t *testing.T) {
	_, err := Value[B](stream(t, `  "ab\qc"`))
	perr := requireError(t, err, diag.SynBadLiteral)
	if perr.Span.Start != 5 || perr.Span.End != 7 {
		t.Fatalf("span = %v, want the escape at 5-7", perr.Span)
	}
	if perr.Unwrap() == nil {
		t.Fatal("decode error must be wrapped")
	}
}

func TestObjectDuplicateKeysLaterWins(t *testing.T) {
	v, err := Value[B](stream(t, "{a: 1, a: 2}"))
	if err != nil {
		t.Fatal(err)
	}
	obj, _ := v.Object()
	if obj.Len() != 1 {
		t.Fatalf("Len() = %d", obj.Len())
	}
	got, _ := obj.Get("a")
	if n, _ := got.Int(); n.Uint64() != 2 {
		t.Fatalf("a = %s, want 2", got)
	}
}

func TestFloatRangeSaturates(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1e999", "+Inf"},
		{"-1e999", "-Inf"},
		{"1e-400", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			v, err := Value[B](stream(t, tt.src))
			if err != nil {
				t.Fatalf("Value(%q): %v", tt.src, err)
			}
			f, ok := v.Float()
			if !ok || strconv.FormatFloat(f, 'g', -1, 64) != tt.want {
				t.Fatalf("Float() = %v, %v, want %s", f, ok, tt.want)
			}
		})
	}
}

func TestMaxDepth(t *testing.T) {
	src := strings.Repeat("[", 5) + strings.Repeat("]", 5)
	if _, err := Value[B](NewStream(lex(t, src), Options{MaxDepth: 5})); err != nil {
		t.Fatalf("depth 5 within limit: %v", err)
	}
	_, err := Value[B](NewStream(lex(t, src), Options{MaxDepth: 4}))
	requireError(t, err, diag.SynTooDeep)

	deep := strings.Repeat("{a: ", 200) + "1" + strings.Repeat("}", 200)
	_, err = DefaultValue[B](stream(t, deep))
	requireError(t, err, diag.SynTooDeep)
}

func TestBorrowedValueAliasesSource(t *testing.T) {
	toks := lex(t, `{key: "plain"}`)
	v, err := Value[B](NewStream(toks, Options{}))
	if err != nil {
		t.Fatal(err)
	}
	obj, _ := v.Object()
	key := obj.Keys()[0]
	if unsafe.StringData(string(key)) != unsafe.StringData(toks[1].Text) {
		t.Fatal("borrowed key must alias the token text")
	}

	owned, err := Value[text.Owned](NewStream(toks, Options{}))
	if err != nil {
		t.Fatal(err)
	}
	oobj, _ := owned.Object()
	okey := oobj.Keys()[0]
	if unsafe.StringData(string(okey)) == unsafe.StringData(toks[1].Text) {
		t.Fatal("owned key must not alias the token text")
	}
	if !ast.EqualValues(v, owned) || !ast.EqualValues(owned, ast.OwnValue(v)) {
		t.Fatal("both policies must build equal trees")
	}
}
