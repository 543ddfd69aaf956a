// Package fuzztests houses Go fuzz harnesses for the lexer, the literal
// decoders and every parser production. They guard against panics, hangs
// and broken span invariants on arbitrary input.
package fuzztests
