package lexer

import (
	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/token"
)

// scanString scans "..." including the quotes.
// Escapes are only skipped here; internal/literal decodes and
// validates them.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			return lx.emit(token.StringValue, start)
		case '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			if b := lx.cursor.Peek(); b == '\n' || b == '\r' {
				continue
			}
			lx.cursor.Bump()
		case '\n', '\r':
			tok := lx.emit(token.Invalid, start)
			lx.errLex(diag.LexUnterminatedString, tok.Span, "line terminator in string literal")
			return tok
		default:
			lx.cursor.Bump()
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

// scanBlockString scans """..."""; an inner \""" does not close it.
func (lx *Lexer) scanBlockString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpN(3)
	for !lx.cursor.EOF() {
		switch {
		case lx.cursor.HasPrefix(`\"""`):
			lx.cursor.BumpN(4)
		case lx.cursor.HasPrefix(`"""`):
			lx.cursor.BumpN(3)
			return lx.emit(token.BlockString, start)
		default:
			lx.cursor.Bump()
		}
	}
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedBlockString, tok.Span, "unterminated block string")
	return tok
}
