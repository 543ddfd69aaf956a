package lexer

import (
	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/source"
)

type Options struct {
	// Reporter receives lexical errors. With a nil Reporter errors are
	// dropped and lexing continues.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
