package driver

import (
	"strconv"

	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/lexer"
	"gqlgrammar/internal/observ"
	"gqlgrammar/internal/source"
	"gqlgrammar/internal/token"
	"gqlgrammar/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return TokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeFile lexes a file already present in fs.
func TokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	tokens := lex(file, bag, trace.Nop, 0, observ.NewTimer())
	return &TokenizeResult{FileSet: fs, File: file, Tokens: tokens, Bag: bag}
}

// lex runs the lexer over file, reporting into bag. Files not in NFC get a
// warning since visually equal names may then compare unequal.
func lex(file *source.File, bag *diag.Bag, tr trace.Tracer, parent uint64, timer *observ.Timer) []token.Token {
	phase := timer.Begin("lex")
	sp := trace.Begin(tr, trace.ScopePhase, "lex", parent)
	reporter := (&lexer.ReporterAdapter{Bag: bag}).Reporter()
	if file.Flags&source.FileNotNFC != 0 {
		diag.ReportWarning(reporter, diag.LexNotNormalized,
			source.Span{File: file.ID},
			"source is not in Unicode normalization form C").Emit()
	}
	tokens := lexer.Tokenize(file, lexer.Options{Reporter: reporter})
	count := strconv.Itoa(len(tokens))
	sp.WithExtra("tokens", count).End("")
	timer.End(phase, count+" tokens")
	return tokens
}
