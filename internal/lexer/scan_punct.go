package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/token"
)

var singlePunct = [256]token.Kind{
	'!': token.Bang,
	'$': token.Dollar,
	'&': token.Amp,
	'(': token.LParen,
	')': token.RParen,
	':': token.Colon,
	'=': token.Equals,
	'@': token.At,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'|': token.Pipe,
	'}': token.RBrace,
}

// scanPunct recognises punctuators; anything else reports LexUnknownChar.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()

	if b == '.' {
		if lx.cursor.HasPrefix("...") {
			lx.cursor.BumpN(3)
			return lx.emit(token.Spread, start)
		}
		lx.cursor.Bump()
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexUnknownChar, tok.Span, "unexpected '.', did you mean '...'?")
		return tok
	}

	if k := singlePunct[b]; k != token.Invalid {
		lx.cursor.Bump()
		return lx.emit(k, start)
	}

	// unknown: consume a whole rune so UTF-8 is not split
	r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	n, err := safecast.Conv[uint32](max(size, 1))
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	lx.cursor.BumpN(n)
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, fmt.Sprintf("unexpected character %q", r))
	return tok
}
