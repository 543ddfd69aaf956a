package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/source"
)

type palette struct {
	err, warn, info, code, path, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgCyan, color.Bold),
		code:  color.New(color.Bold),
		path:  color.New(color.FgWhite, color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
		note:  color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.path, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty writes diagnostics in human-readable form, in bag order (call
// bag.Sort first for stable output). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	   <line> | <source line>
//	          | ^~~~
//
// followed by its notes when opts.ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	for _, d := range items {
		start, _ := fs.Resolve(d.Primary)
		sev := p.severity(d.Severity)
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			p.path.Sprint(formatPath(fs, d.Primary.File, opts.PathMode)),
			start.Line, start.Col,
			sev.Sprint(strings.ToUpper(d.Severity.String())),
			p.code.Sprint(d.Code.ID()),
			d.Message,
		); err != nil {
			return err
		}
		if err := writeSnippet(w, fs, d.Primary, sev, p); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			if _, err := fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
				p.note.Sprint("note:"),
				formatPath(fs, n.Span.File, opts.PathMode), ns.Line, ns.Col, n.Msg,
			); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeSnippet prints the first line of span with a caret underline. Columns
// are measured in display cells so wide runes stay aligned.
func writeSnippet(w io.Writer, fs *source.FileSet, span source.Span, sev *color.Color, p palette) error {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	line := strings.TrimSuffix(f.GetLine(start.Line), "\r")
	lineNo := fmt.Sprintf("%d", start.Line)
	gutter := strings.Repeat(" ", len(lineNo))

	col := min(int(start.Col-1), len(line))
	endCol := len(line)
	if end.Line == start.Line {
		endCol = min(int(end.Col-1), len(line))
	}
	if endCol < col {
		endCol = col
	}
	pad := runewidth.StringWidth(expandTabs(line[:col]))
	width := max(runewidth.StringWidth(expandTabs(line[col:endCol])), 1)
	underline := "^" + strings.Repeat("~", width-1)

	_, err := fmt.Fprintf(w, " %s | %s\n %s | %s%s\n",
		lineNo, expandTabs(line), gutter, strings.Repeat(" ", pad), sev.Sprint(underline))
	return err
}

func formatPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	return f.FormatPath(mode.String(), fs.BaseDir())
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
