// Package diag defines the diagnostic model shared by the lexer, the grammar
// engine and the driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable ID form
//     (LEX1002, SYN2001, ...).
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages.
//
// # Emitting diagnostics
//
// Phases report through a Reporter so emission stays decoupled from storage.
// BagReporter collects into a Bag, which supports a size limit, sorting and
// deduplication. Package diag does no formatting or IO; rendering lives in
// internal/diagfmt.
package diag
