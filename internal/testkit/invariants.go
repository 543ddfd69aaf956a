// Package testkit holds structural checks shared by tests and fuzz
// harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"gqlgrammar/internal/ast"
	"gqlgrammar/internal/source"
	"gqlgrammar/internal/text"
	"gqlgrammar/internal/token"
)

// CheckTokenInvariants verifies a lexer result against its file:
//  1. the stream ends with exactly one EOF
//  2. every span lies in the file and starts after the previous one ends
//  3. token text is the source slice under its span
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		return fmt.Errorf("token stream does not end with EOF")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	var prevEnd uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("token %d: span %v out of bounds (len %d)", i, sp, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d: span %v overlaps previous token ending at %d", i, sp, prevEnd)
		}
		if tok.Kind == token.EOF && i != len(tokens)-1 {
			return fmt.Errorf("token %d: EOF before end of stream", i)
		}
		if tok.Kind != token.EOF && sp.Empty() {
			return fmt.Errorf("token %d: empty span for %s", i, tok.Kind)
		}
		if want := string(sf.Content[sp.Start:sp.End]); tok.Text != want {
			return fmt.Errorf("token %d: text %q does not match source %q", i, tok.Text, want)
		}
		prevEnd = sp.End
	}
	return nil
}

// CheckDirectiveSpans verifies that every directive span is non-empty,
// inside the file, starts at its '@' and follows the previous directive.
func CheckDirectiveSpans[T text.Text[T]](ds []ast.Directive[T], sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	var prev source.Span
	for i, d := range ds {
		sp := d.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("directive %d: empty span %v", i, sp)
		}
		if sp.File != sf.ID || d.Pos.File != sf.ID {
			return fmt.Errorf("directive %d: span file mismatch", i)
		}
		if sp.End > lenContent {
			return fmt.Errorf("directive %d: span %v beyond content (len %d)", i, sp, lenContent)
		}
		if d.Pos.Start != sp.Start || d.Pos.Len() != 1 {
			return fmt.Errorf("directive %d: '@' span %v does not open %v", i, d.Pos, sp)
		}
		if i > 0 && sp.Start < prev.End {
			return fmt.Errorf("directive %d: span %v overlaps previous %v", i, sp, prev)
		}
		prev = sp
	}
	return nil
}
