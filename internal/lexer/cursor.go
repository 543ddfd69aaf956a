package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"gqlgrammar/internal/source"
)

// Cursor walks the bytes of one file.
type Cursor struct {
	File  *source.File
	Off   uint32
	Limit uint32 // exclusive bound for Off
}

func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, Limit: limit}
}

func (c *Cursor) EOF() bool { return c.Off >= c.Limit }

// Peek returns the next byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Bump consumes and returns the next byte, or 0 at EOF.
func (c *Cursor) Bump() byte {
	b := c.Peek()
	if !c.EOF() {
		c.Off++
	}
	return b
}

// BumpN advances over n bytes, stopping at the limit.
func (c *Cursor) BumpN(n uint32) {
	c.Off = min(c.Off+n, c.Limit)
}

// Eat consumes the next byte if it is b.
func (c *Cursor) Eat(b byte) bool {
	if c.EOF() || c.File.Content[c.Off] != b {
		return false
	}
	c.Off++
	return true
}

// HasPrefix reports whether the unread input starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	rest := c.File.Content[c.Off:c.Limit]
	return len(rest) >= len(s) && string(rest[:len(s)]) == s
}

// Mark is a saved offset; SpanFrom turns it into the span read since.
type Mark uint32

func (c *Cursor) Mark() Mark { return Mark(c.Off) }

func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}
