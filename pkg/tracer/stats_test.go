package tracer

import (
	"testing"

	"github.com/df07/go-optical-raytracer/pkg/optics"
)

func TestTraceStatsMerge(t *testing.T) {
	var total TraceStats
	a := TraceStats{Lineages: 1, RaysCreated: 3, Paths: 3}
	a.Interactions[optics.KindBeamSplitter] = 1
	a.Terminations[Escaped] = 2
	a.Terminations[Interacted] = 1
	b := TraceStats{Lineages: 1, DegenerateLineages: 1}

	total.merge(a)
	total.merge(b)

	if total.Lineages != 2 || total.DegenerateLineages != 1 || total.RaysCreated != 3 || total.Paths != 3 {
		t.Errorf("Unexpected totals %+v", total)
	}
	if total.TotalInteractions() != 1 {
		t.Errorf("Expected 1 interaction, got %d", total.TotalInteractions())
	}
	if total.Terminated(Escaped) != 2 || total.Terminated(Termination(99)) != 0 {
		t.Errorf("Unexpected termination counts %v", total.Terminations)
	}
}

func TestTerminationString(t *testing.T) {
	tests := map[Termination]string{
		Escaped:         "escaped",
		EventLimit:      "event-limit",
		Invalid:         "invalid",
		Termination(42): "Termination(42)",
	}
	for term, expected := range tests {
		if got := term.String(); got != expected {
			t.Errorf("Expected %s, got %s", expected, got)
		}
	}
}
