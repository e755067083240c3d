package tracer

import (
	"time"

	"github.com/df07/go-optical-raytracer/pkg/optics"
)

// TraceStats contains statistics about a trace call
type TraceStats struct {
	Lineages           int                  // Source rays traced
	DegenerateLineages int                  // Source rays with no usable direction
	RaysCreated        int                  // Ray states pushed on a work stack
	Paths              int                  // Paths emitted
	Interactions       [optics.NumKinds]int // Interactions per element kind
	Terminations       [numTerminations]int // Paths per termination reason
	Mode               string               // "sequential" or "parallel"
	Workers            int                  // Workers used
	Duration           time.Duration        // Wall time of the trace
}

// TotalInteractions returns the number of interactions across all kinds
func (s TraceStats) TotalInteractions() int {
	total := 0
	for _, n := range s.Interactions {
		total += n
	}
	return total
}

// Terminated returns the number of paths that ended for the given reason
func (s TraceStats) Terminated(t Termination) int {
	if t < 0 || int(t) >= numTerminations {
		return 0
	}
	return s.Terminations[t]
}

// merge adds the per-lineage counters of o into s
func (s *TraceStats) merge(o TraceStats) {
	s.Lineages += o.Lineages
	s.DegenerateLineages += o.DegenerateLineages
	s.RaysCreated += o.RaysCreated
	s.Paths += o.Paths
	for i := range s.Interactions {
		s.Interactions[i] += o.Interactions[i]
	}
	for i := range s.Terminations {
		s.Terminations[i] += o.Terminations[i]
	}
}
