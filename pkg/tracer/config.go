package tracer

import (
	"fmt"
	"math"
)

// Config controls termination and scheduling of a trace
type Config struct {
	EmissionThreshold float64 // Child rays must exceed this intensity to be emitted
	MaxEvents         int     // Maximum interactions along one lineage branch
	MaxPathLength     float64 // Propagation budget per source ray (mm)
	MaxRaysPerLineage int     // Ceiling on ray states created from one source ray
	Parallel          bool    // Allow tracing lineages concurrently
	ParallelThreshold int     // Minimum number of source rays before going parallel
	NumWorkers        int     // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		EmissionThreshold: 1e-3,
		MaxEvents:         256,
		MaxPathLength:     5000,
		MaxRaysPerLineage: 4096,
		Parallel:          true,
		ParallelThreshold: 32,
		NumWorkers:        0, // Auto-detect CPU count
	}
}

// Validate reports the first out-of-range value
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.EmissionThreshold) || c.EmissionThreshold < 0 || c.EmissionThreshold >= 1:
		return fmt.Errorf("%w: emission threshold %v outside [0, 1)", ErrInvalidConfig, c.EmissionThreshold)
	case c.MaxEvents <= 0:
		return fmt.Errorf("%w: max events %d must be positive", ErrInvalidConfig, c.MaxEvents)
	case !(c.MaxPathLength > 0) || math.IsInf(c.MaxPathLength, 0):
		return fmt.Errorf("%w: max path length %v must be positive and finite", ErrInvalidConfig, c.MaxPathLength)
	case c.MaxRaysPerLineage <= 0:
		return fmt.Errorf("%w: max rays per lineage %d must be positive", ErrInvalidConfig, c.MaxRaysPerLineage)
	case c.ParallelThreshold < 0:
		return fmt.Errorf("%w: parallel threshold %d is negative", ErrInvalidConfig, c.ParallelThreshold)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count %d is negative", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}
