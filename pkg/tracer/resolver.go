package tracer

import (
	"github.com/df07/go-optical-raytracer/pkg/geometry"
	"github.com/df07/go-optical-raytracer/pkg/optics"
	"seehuhn.de/go/geom/vec"
)

// tieEpsilon is the margin by which a later element must be nearer to win
const tieEpsilon = 1e-12

// Resolver finds the nearest element along a ray
type Resolver struct {
	elements []optics.Element
	segments []geometry.Segment
}

// NewResolver creates a resolver over a fixed element list
func NewResolver(elements []optics.Element) *Resolver {
	segments := make([]geometry.Segment, len(elements))
	for i, el := range elements {
		segments[i] = el.Geom().Segment
	}
	return &Resolver{elements: elements, segments: segments}
}

// Nearest returns the closest hit and the index of its element. Hits within
// tieEpsilon of each other resolve to the earliest element in list order.
func (r *Resolver) Nearest(origin, dir vec.Vec2) (geometry.Hit, int, bool) {
	var best geometry.Hit
	bestIndex := -1

	for i, seg := range r.segments {
		hit, ok := seg.Intersect(origin, dir)
		if !ok {
			continue
		}
		if bestIndex < 0 || hit.T < best.T-tieEpsilon {
			best = hit
			bestIndex = i
		}
	}

	return best, bestIndex, bestIndex >= 0
}

// Element returns the element at index i
func (r *Resolver) Element(i int) optics.Element {
	return r.elements[i]
}
