// Package text selects how AST string data is stored.
//
// Every AST node and grammar production is generic over a Text policy. The
// policy is fixed by the type argument at the call site, so one parser
// implementation serves both flavours:
//
//   - Borrowed keeps the slice of the source string the lexer produced.
//     Nodes stay valid only as long as the caller keeps that source alive
//     and unmodified (token texts alias it).
//   - Owned clones the bytes, so nodes have no tie to the source buffer.
package text

import "strings"

// Text is the constraint satisfied by string-holding policies. T is the
// policy type itself: FromSource on the zero value builds a T from a slice of
// the source.
type Text[T any] interface {
	~string
	FromSource(s string) T
}

// Borrowed is a zero-copy view into the source text.
type Borrowed string

// FromSource returns s without copying.
func (Borrowed) FromSource(s string) Borrowed { return Borrowed(s) }

// Owned holds its own copy of the text.
type Owned string

// FromSource returns an independent copy of s.
func (Owned) FromSource(s string) Owned { return Owned(strings.Clone(s)) }

// Make builds a T from a source slice according to the policy T.
func Make[T Text[T]](s string) T {
	var zero T
	return zero.FromSource(s)
}

// Convert re-homes a value of one policy into another, copying when the
// target policy requires it.
func Convert[To Text[To], From Text[From]](s From) To {
	return Make[To](string(s))
}
