package parser

import (
	"gqlgrammar/internal/source"
	"gqlgrammar/internal/token"
)

// DefaultMaxDepth bounds list, object and list-type nesting when
// Options.MaxDepth is zero.
const DefaultMaxDepth = 128

type Options struct {
	MaxDepth int
}

// Stream is a cursor over a token slice. It is owned by one parse at a time.
type Stream struct {
	toks  []token.Token
	pos   int
	depth int
	max   int
}

// Mark is a saved stream position.
type Mark struct {
	pos   int
	depth int
}

// NewStream wraps toks. A trailing EOF token is appended when missing.
func NewStream(toks []token.Token, opts Options) *Stream {
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		var end source.Span
		if len(toks) > 0 {
			end = toks[len(toks)-1].Span.Tail()
		}
		toks = append(toks[:len(toks):len(toks)], token.Token{Kind: token.EOF, Span: end})
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Stream{toks: toks, max: maxDepth}
}

// Peek returns the current token without consuming it.
func (s *Stream) Peek() token.Token {
	return s.toks[s.pos]
}

// Next consumes the current token. At EOF it keeps returning EOF.
func (s *Stream) Next() token.Token {
	tok := s.toks[s.pos]
	if tok.Kind != token.EOF {
		s.pos++
	}
	return tok
}

// AtEOF reports whether every significant token has been consumed.
func (s *Stream) AtEOF() bool {
	return s.toks[s.pos].Kind == token.EOF
}

// Pos is the index of the current token.
func (s *Stream) Pos() int { return s.pos }

func (s *Stream) Mark() Mark {
	return Mark{pos: s.pos, depth: s.depth}
}

func (s *Stream) Reset(m Mark) {
	s.pos, s.depth = m.pos, m.depth
}

// prevSpan is the span of the last consumed token, or the head of the
// current one at the start of the stream.
func (s *Stream) prevSpan() source.Span {
	if s.pos == 0 {
		return s.toks[0].Span.Head()
	}
	return s.toks[s.pos-1].Span
}

func (s *Stream) at(k token.Kind) bool {
	return s.toks[s.pos].Kind == k
}

// eat consumes the current token when it has kind k.
func (s *Stream) eat(k token.Kind) (token.Token, bool) {
	if !s.at(k) {
		return token.Token{}, false
	}
	return s.Next(), true
}

// expect consumes a token of kind k or fails with an unexpected-token error
// naming what.
func (s *Stream) expect(k token.Kind, what string) (token.Token, error) {
	if tok, ok := s.eat(k); ok {
		return tok, nil
	}
	return token.Token{}, s.unexpected(what)
}

// enter increments the nesting depth. The caller must call leave.
func (s *Stream) enter() error {
	if s.depth >= s.max {
		return s.tooDeep()
	}
	s.depth++
	return nil
}

func (s *Stream) leave() {
	s.depth--
}
