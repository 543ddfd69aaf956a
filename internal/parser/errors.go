package parser

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"gqlgrammar/internal/diag"
	"gqlgrammar/internal/literal"
	"gqlgrammar/internal/source"
	"gqlgrammar/internal/token"
)

// Error is a failed production. Parsing never recovers locally: the first
// committed failure is returned to the caller unchanged.
type Error struct {
	Code     diag.Code
	Span     source.Span
	Expected string // set for SynUnexpectedToken
	Message  string
	Err      error // decode error for SynBadLiteral

	at int // token index where the failure happened
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Diagnostic converts e into an error diagnostic.
func (e *Error) Diagnostic() diag.Diagnostic {
	d := diag.NewError(e.Code, e.Span, e.Message)
	if e.Expected != "" {
		d = d.WithNote(e.Span, "expected "+e.Expected)
	}
	return d
}

// committed reports whether the error must stop ordered choice. Only
// unexpected-token failures let the next alternative run.
func (e *Error) committed() bool {
	return e.Code != diag.SynUnexpectedToken
}

func (s *Stream) unexpected(expected string) *Error {
	tok := s.Peek()
	span := tok.Span
	if tok.Kind == token.EOF {
		span = s.prevSpan().Tail()
	}
	return &Error{
		Code:     diag.SynUnexpectedToken,
		Span:     span,
		Expected: expected,
		Message:  fmt.Sprintf("expected %s, got %s", expected, tok.Describe()),
		at:       s.pos,
	}
}

func (s *Stream) tooDeep() *Error {
	return &Error{
		Code:    diag.SynTooDeep,
		Span:    s.Peek().Span,
		Message: fmt.Sprintf("nesting exceeds the maximum depth of %d", s.max),
		at:      s.pos,
	}
}

// badLiteral reports a decode failure of tok, narrowing the span to the
// offending bytes when the decoder located them.
func badLiteral(tok token.Token, at int, err error) *Error {
	span := tok.Span
	var litErr *literal.Error
	if errors.As(err, &litErr) && litErr.Len > 0 {
		off, errOff := safecast.Conv[uint32](litErr.Offset)
		n, errLen := safecast.Conv[uint32](litErr.Len)
		if errOff == nil && errLen == nil && off+n <= span.Len() {
			span = source.Span{File: span.File, Start: span.Start + off, End: span.Start + off + n}
		}
	}
	return &Error{
		Code:    diag.SynBadLiteral,
		Span:    span,
		Message: fmt.Sprintf("invalid %s: %v", tok.Kind.Describe(), err),
		Err:     err,
		at:      at,
	}
}

// further picks the failure that got further into the stream; ties keep a.
func further(a, b *Error) *Error {
	if a == nil || b.at > a.at {
		return b
	}
	return a
}
