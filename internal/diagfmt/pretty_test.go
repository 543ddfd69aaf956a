package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/source"
)

func singleDiagBag(t *testing.T, content string, start, end uint32) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fs.SetBaseDir("/home/user/project")
	id := fs.AddVirtual("/home/user/project/src/query.graphql", []byte(content))
	bag := diag.NewBag(10)
	d := diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: start, End: end}, "expected value, got ')'").
		WithNote(source.Span{File: id, Start: start, End: end}, "expected value")
	bag.Add(d)
	return bag, fs
}

func TestPrettyPathModes(t *testing.T) {
	bag, fs := singleDiagBag(t, "f(a: )\n", 5, 6)
	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/query.graphql:1:6:"},
		{"relative", PathModeRelative, "src/query.graphql:1:6:"},
		{"basename", PathModeBasename, "query.graphql:1:6:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode}); err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(buf.String(), tt.contains) {
				t.Fatalf("output does not start with %q:\n%s", tt.contains, buf.String())
			}
		})
	}
}

func TestPrettySnippet(t *testing.T) {
	bag, fs := singleDiagBag(t, "f(a: )\n", 5, 6)
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"query.graphql:1:6: ERROR SYN2001: expected value, got ')'",
		" 1 | f(a: )",
		"   |      ^",
		"  note: query.graphql:1:6: expected value",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	// "日本" occupies four cells; the caret must start after them.
	content := "\"\u65e5\u672c\" $\n"
	bag, fs := singleDiagBag(t, content, 9, 10)
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[2] != "   |        ^" {
		t.Fatalf("caret line = %q", lines[2])
	}
}

func TestPrettyMax(t *testing.T) {
	bag, fs := singleDiagBag(t, "x\n", 0, 1)
	bag.Add(diag.NewError(diag.SynBadLiteral, bag.Items()[0].Primary, "second"))
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{Max: 1}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "second") {
		t.Fatalf("Max not applied:\n%s", buf.String())
	}
}

func TestJSONDiagnostics(t *testing.T) {
	bag, fs := singleDiagBag(t, "f(a: )\n", 5, 6)
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true, PathMode: PathModeBasename})
	if out.Count != 1 {
		t.Fatalf("count = %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Code != "SYN2001" || d.Severity != "ERROR" {
		t.Fatalf("diagnostic = %+v", d)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 6 || d.Location.File != "query.graphql" {
		t.Fatalf("location = %+v", d.Location)
	}
	if len(d.Notes) != 1 {
		t.Fatalf("notes = %+v", d.Notes)
	}
}
