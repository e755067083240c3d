package optics

import (
	"math"
	"testing"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
	"seehuhn.de/go/geom/vec"
)

const testTolerance = 1e-9

// mustHit intersects a ray with the element's segment, failing the test on a miss
func mustHit(t *testing.T, el Element, origin, dir vec.Vec2) geometry.Hit {
	t.Helper()
	hit, ok := el.Geom().Segment.Intersect(origin, dir)
	if !ok {
		t.Fatalf("Expected ray from %v along %v to hit %v", origin, dir, el.Geom().Segment)
	}
	return hit
}

func horizontalState(dir vec.Vec2) State {
	return State{Direction: dir, Intensity: 1, Polarization: core.Horizontal, WavelengthNm: 550}
}

func nearlyEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func vecNearlyEqual(a, b vec.Vec2, tol float64) bool {
	return nearlyEqual(a.X, b.X, tol) && nearlyEqual(a.Y, b.Y, tol)
}

// outputsByBranch indexes a result's rays by branch
func outputsByBranch(res Result) map[Branch]Output {
	m := make(map[Branch]Output, res.Len())
	for i := 0; i < res.Len(); i++ {
		m[res.At(i).Branch] = res.At(i)
	}
	return m
}

// interact dispatches to the element's model with a zero threshold
func interact(el Element, in State, hit geometry.Hit) Result {
	switch e := el.(type) {
	case *Refractive:
		return e.Interact(in, hit, 0)
	case *Lens:
		return e.Interact(in, hit, 0)
	case *Mirror:
		return e.Interact(in, hit, 0)
	case *BeamSplitter:
		return e.Interact(in, hit, 0)
	case *Dichroic:
		return e.Interact(in, hit, 0)
	case *Waveplate:
		return e.Interact(in, hit, 0)
	}
	panic("unhandled element")
}
