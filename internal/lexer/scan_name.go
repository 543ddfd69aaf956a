package lexer

import "gqlgrammar/internal/token"

// scanName scans /[_A-Za-z][_0-9A-Za-z]*/. true, false and null stay Name tokens.
func (lx *Lexer) scanName() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isNameContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Name, start)
}
