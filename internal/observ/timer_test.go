package observ

import (
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	lex := tm.Begin("lex")
	tm.End(lex, "12 tokens")
	parse := tm.Begin("parse")
	tm.End(parse, "")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(r.Phases))
	}
	if r.Phases[0].Name != "lex" || r.Phases[0].Note != "12 tokens" {
		t.Fatalf("phase 0 = %+v", r.Phases[0])
	}
	if r.TotalMS < r.Phases[0].DurationMS {
		t.Fatalf("total %f below phase duration %f", r.TotalMS, r.Phases[0].DurationMS)
	}

	summary := r.Summary("a.graphql")
	for _, want := range []string{"timings: a.graphql\n", "lex", "// 12 tokens", "total"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestEmptyTimer(t *testing.T) {
	r := NewTimer().Report()
	if len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Fatalf("report = %+v", r)
	}
}
