package lexer

import (
	"gqlgrammar/internal/token"
)

// collectLeadingTrivia gathers the ignored tokens before a significant one:
// - runs of ' ' and '\t' become one TriviaSpace
// - runs of '\n' and '\r' become one TriviaNewline
// - ',' -> TriviaComma
// - #... to end of line -> TriviaComment
// - U+FEFF anywhere -> TriviaBOM
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		var kind token.TriviaKind

		switch b := lx.cursor.Peek(); {
		case b == ' ' || b == '\t':
			for b2 := lx.cursor.Peek(); b2 == ' ' || b2 == '\t'; b2 = lx.cursor.Peek() {
				lx.cursor.Bump()
			}
			kind = token.TriviaSpace
		case b == '\n' || b == '\r':
			for b2 := lx.cursor.Peek(); b2 == '\n' || b2 == '\r'; b2 = lx.cursor.Peek() {
				lx.cursor.Bump()
			}
			kind = token.TriviaNewline
		case b == ',':
			lx.cursor.Bump()
			kind = token.TriviaComma
		case b == '#':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' && lx.cursor.Peek() != '\r' {
				lx.cursor.Bump()
			}
			kind = token.TriviaComment
		case lx.cursor.HasPrefix("\uFEFF"):
			lx.cursor.BumpN(3)
			kind = token.TriviaBOM
		default:
			// no more trivia
			return
		}

		sp := lx.cursor.SpanFrom(start)
		lx.hold = append(lx.hold, token.Trivia{
			Kind: kind,
			Span: sp,
			Text: lx.src[sp.Start:sp.End],
		})
	}
}
