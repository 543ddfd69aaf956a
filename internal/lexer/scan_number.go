package lexer

import (
	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/token"
)

// scanNumber recognises IntValue and FloatValue per the GraphQL grammar:
//
//	IntegerPart: -? (0 | [1-9][0-9]*)
//	FractionalPart: . [0-9]+
//	ExponentPart: [eE] [+-]? [0-9]+
//
// Integers that overflow uint64 get Kind BigIntValue.
// Malformed numbers report LexBadNumber and yield an Invalid token.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntValue

	lx.cursor.Eat('-')
	digitsStart := lx.cursor.Off

	switch b := lx.cursor.Peek(); {
	case b == '0':
		lx.cursor.Bump()
		if isDigit(lx.cursor.Peek()) {
			for isDigit(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.badNumber(start, "unexpected digit after leading zero")
		}
	case isDigit(b):
		for isDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	default:
		return lx.badNumber(start, "expected digit after '-'")
	}
	digitsEnd := lx.cursor.Off

	// fraction
	if lx.cursor.Peek() == '.' {
		kind = token.FloatValue
		lx.cursor.Bump()
		if !isDigit(lx.cursor.Peek()) {
			return lx.badNumber(start, "expected digit after '.'")
		}
		for isDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// exponent
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		kind = token.FloatValue
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDigit(lx.cursor.Peek()) {
			return lx.badNumber(start, "expected digit in exponent")
		}
		for isDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// 1.2.3 or 123abc is an error, not two tokens
	if b := lx.cursor.Peek(); b == '.' || isNameStart(b) {
		lx.cursor.Bump()
		return lx.badNumber(start, "invalid character after number")
	}

	if kind == token.IntValue && exceedsUint64(lx.src[digitsStart:digitsEnd]) {
		kind = token.BigIntValue
	}
	return lx.emit(kind, start)
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexBadNumber, tok.Span, msg)
	return tok
}
