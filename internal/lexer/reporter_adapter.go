package lexer

import "gqlgrammar/internal/diag"

// ReporterAdapter feeds lexer errors into a Bag, dropping exact repeats.
type ReporterAdapter struct {
	Bag *diag.Bag
}

func (r *ReporterAdapter) Reporter() diag.Reporter {
	return diag.NewDedupReporter(diag.BagReporter{Bag: r.Bag})
}
