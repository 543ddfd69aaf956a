// Package trace records driver activity as a stream of span events.
//
// Tracing is off by default and costs one interface call per span when
// disabled. The driver opens a span per command, one per file and one per
// phase (lex, parse):
//
//	tr, err := trace.New(trace.Config{Level: trace.LevelPhase, Output: os.Stderr})
//	sp := trace.Begin(tr, trace.ScopePhase, "lex", 0)
//	defer sp.End("")
//
// Levels select scopes: phase shows driver and phase spans, detail adds
// per-file spans, debug shows everything.
package trace
