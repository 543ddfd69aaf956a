// Package token defines lexical token kinds and trivia for GraphQL source.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Ignored tokens (whitespace, line terminators, commas, # comments, BOM)
//     are represented as leading Trivia and never appear in the main token stream.
//   - Keywords (true, false, null, query, type, ...) are plain Name tokens.
//     The grammar decides what a name means in context.
package token
