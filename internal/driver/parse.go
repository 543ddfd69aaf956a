package driver

import (
	"errors"
	"fmt"
	"strings"

	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/observ"
	"gqlgrammar/internal/parser"
	"gqlgrammar/internal/source"
	"gqlgrammar/internal/text"
	"gqlgrammar/internal/token"
	"gqlgrammar/internal/trace"
)

// TextPolicy selects the text instantiation of parsed nodes.
type TextPolicy uint8

const (
	TextBorrowed TextPolicy = iota
	TextOwned
)

func (p TextPolicy) String() string {
	if p == TextOwned {
		return "owned"
	}
	return "borrowed"
}

// ParseTextPolicy converts "borrowed" or "owned".
func ParseTextPolicy(s string) (TextPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "borrowed":
		return TextBorrowed, nil
	case "owned":
		return TextOwned, nil
	default:
		return TextBorrowed, fmt.Errorf("invalid text policy: %q (expected: borrowed|owned)", s)
	}
}

// Request describes one parse.
type Request struct {
	Production     parser.Production
	Text           TextPolicy
	MaxDepth       int
	MaxDiagnostics int
	Tracer         trace.Tracer // nil disables tracing
}

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	// Node is ast.Value[T], ast.Type[T], []ast.Argument[T],
	// []ast.Directive[T] or string, depending on the production.
	Node   any
	Bag    *diag.Bag
	Timing observ.Report
}

// Parse loads path and runs req.Production over it. Lexer and syntax
// errors land in the result's Bag; only I/O failures are returned.
func Parse(path string, req Request) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ParseFile(fs, fileID, req), nil
}

// ParseFile parses a file already present in fs.
func ParseFile(fs *source.FileSet, fileID source.FileID, req Request) *ParseResult {
	return parseFile(fs, fileID, req, 0)
}

func parseFile(fs *source.FileSet, fileID source.FileID, req Request, parent uint64) *ParseResult {
	tr := req.Tracer
	if tr == nil {
		tr = trace.Nop
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(req.MaxDiagnostics)
	res := &ParseResult{FileSet: fs, File: file, Bag: bag}
	timer := observ.NewTimer()
	defer func() { res.Timing = timer.Report() }()

	fileSpan := trace.Begin(tr, trace.ScopeFile, "file", parent).WithExtra("path", file.Path)
	defer fileSpan.End("")

	tokens := lex(file, bag, tr, fileSpan.ID(), timer)
	if bag.HasErrors() {
		return res
	}

	sp := trace.Begin(tr, trace.ScopePhase, "parse", fileSpan.ID()).
		WithExtra("production", req.Production.String())
	phase := timer.Begin("parse")
	node, err := runProduction(tokens, req)
	timer.End(phase, req.Production.String())
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			bag.Add(perr.Diagnostic())
		} else {
			bag.Add(diag.NewError(diag.UnknownCode, source.Span{File: fileID}, err.Error()))
		}
		sp.End("error")
		return res
	}
	trace.Point(tr, trace.ScopeNode, "node", fmt.Sprintf("%T", node), sp.ID())
	sp.End("ok")
	res.Node = node
	return res
}

func runProduction(tokens []token.Token, req Request) (any, error) {
	opts := parser.Options{MaxDepth: req.MaxDepth}
	if req.Text == TextOwned {
		return parser.Parse[text.Owned](tokens, req.Production, opts)
	}
	return parser.Parse[text.Borrowed](tokens, req.Production, opts)
}
