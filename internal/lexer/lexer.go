package lexer

import (
	"gqlgrammar/internal/source"
	"gqlgrammar/internal/token"
)

type Lexer struct {
	file   *source.File
	src    string // whole file; Token.Text slices into it
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead
	hold   []token.Trivia // pending leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		src:    string(file.Content),
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Tokenize lexes the whole file and returns every token including the final EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	tokens := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

// Next returns the next significant token with its Leading trivia attached.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	// EOF gets no leading trivia
	if lx.cursor.EOF() {
		lx.hold = nil
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isNameStart(ch):
		tok = lx.scanName()
	case isDigit(ch) || ch == '-':
		tok = lx.scanNumber()
	case ch == '"':
		if lx.cursor.HasPrefix(`"""`) {
			tok = lx.scanBlockString()
		} else {
			tok = lx.scanString()
		}
	default:
		tok = lx.scanPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns the zero-width span at the cursor.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.src[sp.Start:sp.End]}
}
