package tracer

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
	"github.com/df07/go-optical-raytracer/pkg/optics"
	"seehuhn.de/go/geom/vec"
)

// Tracer propagates rays through a fixed element list. It is immutable after
// New and safe for concurrent use.
type Tracer struct {
	resolver *Resolver
	config   Config
	logger   core.Logger
}

// New validates the configuration and every element and creates a tracer.
// Elements of unknown type are rejected with ErrUnknownElement.
func New(elements []optics.Element, config Config, logger core.Logger) (*Tracer, error) {
	if logger == nil {
		logger = core.NopLogger()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	for i, el := range elements {
		if el == nil {
			return nil, fmt.Errorf("%w: element %d is nil", ErrUnknownElement, i)
		}
		if err := optics.Validate(el); err != nil {
			if errors.Is(err, optics.ErrUnknownKind) {
				return nil, fmt.Errorf("%w: element %d: %v", ErrUnknownElement, i, err)
			}
			return nil, fmt.Errorf("element %d (%s %q): %w", i, el.Kind(), el.Geom().Name, err)
		}
		if _, err := el.Geom().Segment.Tangent(); err != nil {
			// A zero-length element can never be hit; keep it but say so
			logger.Warningf("element %d (%s %q) is degenerate and will be ignored", i, el.Kind(), el.Geom().Name)
		}
	}

	// Copy so later changes to the caller's slice cannot race with a trace
	owned := make([]optics.Element, len(elements))
	copy(owned, elements)

	return &Tracer{
		resolver: NewResolver(owned),
		config:   config,
		logger:   logger,
	}, nil
}

// Config returns the configuration the tracer was built with
func (t *Tracer) Config() Config {
	return t.config
}

// Trace traces every source ray and returns the finalized paths in lineage
// order. The result is identical whether or not lineages run in parallel.
func (t *Tracer) Trace(rays []core.RayState) ([]RayPath, TraceStats) {
	start := time.Now()
	workers := t.workerCount(len(rays))

	var (
		results []LineageResult
		stats   TraceStats
	)
	if workers > 1 {
		stats.Mode = "parallel"
		results = t.traceParallel(rays, workers)
	} else {
		stats.Mode = "sequential"
		results = t.traceSequential(rays)
	}
	stats.Workers = workers

	t.logger.Debugf("traced %d lineages (%s, %d workers)", len(rays), stats.Mode, workers)

	// Concatenate in lineage order
	var paths []RayPath
	for _, r := range results {
		paths = append(paths, r.Paths...)
		stats.merge(r.Stats)
	}
	stats.Duration = time.Since(start)
	return paths, stats
}

// workerCount returns 1 for sequential execution
func (t *Tracer) workerCount(numRays int) int {
	if !t.config.Parallel || numRays < t.config.ParallelThreshold || numRays < 2 {
		return 1
	}
	pool := t.config.NumWorkers
	if pool <= 0 {
		pool = defaultWorkers()
	}
	if pool > numRays {
		pool = numRays
	}
	return pool
}

func (t *Tracer) traceSequential(rays []core.RayState) []LineageResult {
	results := make([]LineageResult, len(rays))
	for i, ray := range rays {
		paths, stats := t.traceLineage(i, ray)
		results[i] = LineageResult{Index: i, Paths: paths, Stats: stats}
	}
	return results
}

func (t *Tracer) traceParallel(rays []core.RayState, workers int) []LineageResult {
	pool := NewWorkerPool(t, len(rays), workers)
	pool.Start()
	for i, ray := range rays {
		pool.SubmitTask(LineageTask{Index: i, Ray: ray})
	}
	pool.Stop()

	// Each lineage has its own slot, so completion order does not matter
	results := make([]LineageResult, len(rays))
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		results[result.Index] = result
	}
	return results
}

// traceLineage follows one source ray and all of its descendants using an
// explicit stack.
func (t *Tracer) traceLineage(lineage int, seed core.RayState) ([]RayPath, TraceStats) {
	var (
		paths []RayPath
		stats TraceStats
	)
	stats.Lineages = 1

	emit := func(ray *core.RayState, term Termination) {
		paths = append(paths, newPath(ray, lineage, term))
		stats.Paths++
		stats.Terminations[term]++
	}

	dir, err := core.Normalize(seed.Direction)
	if err != nil || !core.IsFinite(seed.Position) || !seed.Polarization.IsFinite() {
		stats.DegenerateLineages++
		return nil, stats
	}
	seed.Direction = dir
	if !(seed.RemainingLength > 0) || seed.RemainingLength > t.config.MaxPathLength {
		seed.RemainingLength = t.config.MaxPathLength
	}
	seed.PathPoints = []vec.Vec2{seed.Position}

	stack := []core.RayState{seed}
	stats.RaysCreated = 1

	for len(stack) > 0 {
		ray := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for {
			hit, index, ok := t.resolver.Nearest(ray.Position, ray.Direction)

			// Budget checks finalize the ray and extend its path
			if !ok {
				ray.PathPoints = append(ray.PathPoints, ray.At(ray.RemainingLength))
				emit(&ray, Escaped)
				break
			}
			if hit.T > ray.RemainingLength {
				ray.PathPoints = append(ray.PathPoints, ray.At(ray.RemainingLength))
				emit(&ray, LengthLimit)
				break
			}
			if ray.EventCount >= t.config.MaxEvents {
				ray.PathPoints = append(ray.PathPoints, ray.At(ray.RemainingLength))
				emit(&ray, EventLimit)
				break
			}
			ray.PathPoints = append(ray.PathPoints, hit.Point)

			ray.Position = hit.Point
			ray.RemainingLength -= hit.T
			ray.EventCount++

			el := t.resolver.Element(index)
			stats.Interactions[el.Kind()]++
			res, valid := t.interact(el, &ray, hit)
			if !valid {
				emit(&ray, Invalid)
				break
			}

			// An unchanged single continuation extends the current path
			if res.Len() == 1 && sameState(res.At(0).State, &ray) {
				ray.Direction = unit(res.At(0).Direction)
				continue
			}

			term := Interacted
			if res.Len() == 0 {
				term = Absorbed
			}

			n := res.Len()
			if room := t.config.MaxRaysPerLineage - stats.RaysCreated; n > room {
				n = room
				term = BranchLimit
			}

			// Push in reverse so the first output is traced first
			for i := n - 1; i >= 0; i-- {
				stack = append(stack, child(&ray, res.At(i).State))
			}
			stats.RaysCreated += n
			emit(&ray, term)
			break
		}
	}

	return paths, stats
}

// interact dispatches to the element's interaction model. The match is
// exhaustive over the element kinds; New rejects anything else.
func (t *Tracer) interact(el optics.Element, ray *core.RayState, hit geometry.Hit) (optics.Result, bool) {
	in := optics.State{
		Direction:    ray.Direction,
		Intensity:    ray.Intensity,
		Polarization: ray.Polarization,
		WavelengthNm: ray.WavelengthNm,
	}
	threshold := t.config.EmissionThreshold

	var res optics.Result
	switch e := el.(type) {
	case *optics.Refractive:
		res = e.Interact(in, hit, threshold)
	case *optics.Lens:
		res = e.Interact(in, hit, threshold)
	case *optics.Mirror:
		res = e.Interact(in, hit, threshold)
	case *optics.BeamSplitter:
		res = e.Interact(in, hit, threshold)
	case *optics.Dichroic:
		res = e.Interact(in, hit, threshold)
	case *optics.Waveplate:
		res = e.Interact(in, hit, threshold)
	default:
		return res, false
	}
	return res, !res.Invalid()
}

// stateTolerance absorbs rounding noise from models that leave a state unchanged
const stateTolerance = 1e-12

// sameState reports whether s leaves everything but the direction of ray unchanged
func sameState(s optics.State, ray *core.RayState) bool {
	return math.Abs(s.Intensity-ray.Intensity) <= stateTolerance*ray.Intensity &&
		s.Polarization.ApproxEqual(ray.Polarization, stateTolerance) &&
		s.WavelengthNm == ray.WavelengthNm
}

// child starts a new path at the parent's current position
func child(parent *core.RayState, s optics.State) core.RayState {
	return core.RayState{
		Position:        parent.Position,
		Direction:       unit(s.Direction),
		Intensity:       s.Intensity,
		Polarization:    s.Polarization,
		WavelengthNm:    s.WavelengthNm,
		PathPoints:      []vec.Vec2{parent.Position},
		RemainingLength: parent.RemainingLength,
		EventCount:      parent.EventCount,
		ColorTag:        parent.ColorTag,
	}
}

// unit removes rounding drift from a direction produced by a model
func unit(d vec.Vec2) vec.Vec2 {
	if u, err := core.Normalize(d); err == nil {
		return u
	}
	return d
}
