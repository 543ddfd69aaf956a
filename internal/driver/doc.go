// Package driver wires loading, lexing and parsing together for the CLI.
//
// The grammar packages do no I/O. The driver loads files into a
// source.FileSet, collects lexer and parser diagnostics into a diag.Bag and
// runs independent files in parallel.
package driver
