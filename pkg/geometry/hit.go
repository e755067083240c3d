package geometry

import "seehuhn.de/go/geom/vec"

// Hit describes where a ray crosses a segment
type Hit struct {
	T        float64  // Distance along the ray
	Point    vec.Vec2 // Intersection point
	Tangent  vec.Vec2 // Intrinsic unit tangent A→B; never flipped
	Normal   vec.Vec2 // Unit normal oriented against the incoming ray
	Flipped  bool     // True if Normal is the reverse of the intrinsic normal
	Midpoint vec.Vec2 // Segment midpoint
	Length   float64  // Segment length
}

// IntrinsicNormal returns the segment's own normal, independent of the ray
func (h Hit) IntrinsicNormal() vec.Vec2 {
	if h.Flipped {
		return h.Normal.Mul(-1)
	}
	return h.Normal
}
