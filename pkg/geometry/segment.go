package geometry

import (
	"errors"
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"seehuhn.de/go/geom/vec"
)

// Epsilon guards against self-intersection at a ray's own origin and
// against numerically parallel crossings.
const Epsilon = 1e-9

// ErrDegenerateSegment is returned for segments whose endpoints coincide
var ErrDegenerateSegment = errors.New("geometry: degenerate segment")

// Segment is a flat optical interface between two endpoints
type Segment struct {
	A vec.Vec2
	B vec.Vec2
}

// NewSegment creates a segment from its endpoints
func NewSegment(a, b vec.Vec2) Segment {
	return Segment{A: a, B: b}
}

// Length returns the distance between the endpoints
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Length()
}

// Midpoint returns the centre of the segment
func (s Segment) Midpoint() vec.Vec2 {
	return s.A.Add(s.B).Mul(0.5)
}

// Tangent returns the unit direction from A to B
func (s Segment) Tangent() (vec.Vec2, error) {
	t, err := core.Normalize(s.B.Sub(s.A))
	if err != nil {
		return vec.Vec2{}, ErrDegenerateSegment
	}
	return t, nil
}

// Normal returns the intrinsic unit normal, the tangent rotated 90° counter-clockwise.
// Its side of the segment is the front.
func (s Segment) Normal() (vec.Vec2, error) {
	t, err := s.Tangent()
	if err != nil {
		return vec.Vec2{}, err
	}
	return core.Perp(t), nil
}

// Intersect tests whether the ray origin + t·dir crosses the segment at t > Epsilon.
// dir must be a unit vector. Degenerate segments never report a hit.
func (s Segment) Intersect(origin, dir vec.Vec2) (Hit, bool) {
	length := s.Length()
	tangent, err := s.Tangent()
	if err != nil {
		return Hit{}, false
	}
	normal := core.Perp(tangent)
	mid := s.Midpoint()

	// A ray parallel to the supporting line never crosses it
	denominator := dir.Dot(normal)
	if math.Abs(denominator) < 1e-12 {
		return Hit{}, false
	}

	t := mid.Sub(origin).Dot(normal) / denominator
	if !(t > Epsilon) || math.IsInf(t, 0) {
		return Hit{}, false
	}

	point := origin.Add(dir.Mul(t))

	// The crossing must lie within half a segment length of the midpoint
	along := point.Sub(mid).Dot(tangent)
	if math.Abs(along) > length/2+Epsilon {
		return Hit{}, false
	}

	hit := Hit{
		T:        t,
		Point:    point,
		Tangent:  tangent,
		Normal:   normal,
		Midpoint: mid,
		Length:   length,
	}

	// Ray travelling along the intrinsic normal approaches from the back
	if denominator > 0 {
		hit.Normal = normal.Mul(-1)
		hit.Flipped = true
	}

	return hit, true
}
