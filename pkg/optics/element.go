package optics

import (
	"fmt"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
	"seehuhn.de/go/geom/vec"
)

// Element is a flat optical interface. The set of implementations is closed:
// Refractive, Lens, Mirror, BeamSplitter, Dichroic and Waveplate.
type Element interface {
	Kind() Kind
	Geom() Geometry
	isElement()
}

// Geometry holds the placement shared by every element kind
type Geometry struct {
	Segment  geometry.Segment
	AngleDeg float64 // Intrinsic orientation of the forward normal
	Name     string
}

// Centered builds a segment of the given length around center whose
// intrinsic normal points at angleDeg.
func Centered(center vec.Vec2, length, angleDeg float64) Geometry {
	forward := core.FromAngle(angleDeg)
	tangent := vec.Vec2{X: forward.Y, Y: -forward.X} // forward rotated -90°
	half := tangent.Mul(length / 2)
	return Geometry{
		Segment:  geometry.NewSegment(center.Sub(half), center.Add(half)),
		AngleDeg: angleDeg,
	}
}

// Named returns a copy of g carrying a display name
func (g Geometry) Named(name string) Geometry {
	g.Name = name
	return g
}

// Forward returns the unit forward normal derived from AngleDeg alone
func (g Geometry) Forward() vec.Vec2 {
	return core.FromAngle(g.AngleDeg)
}

// Validate checks kind-specific properties. Any type outside the closed set
// of element kinds is rejected with ErrUnknownKind.
func Validate(el Element) error {
	switch e := el.(type) {
	case *Refractive:
		if !(e.N1 > 0) || !(e.N2 > 0) {
			return fmt.Errorf("%w: refractive indices must be positive (n1=%v, n2=%v)", ErrInvalidProperty, e.N1, e.N2)
		}
	case *Lens:
		if e.EFLmm == 0 || !isFinite(e.EFLmm) {
			return fmt.Errorf("%w: lens focal length must be finite and non-zero", ErrInvalidProperty)
		}
	case *Mirror:
		if e.Reflectivity < 0 || e.Reflectivity > 1 || !isFinite(e.Reflectivity) {
			return fmt.Errorf("%w: reflectivity %v outside [0, 1]", ErrInvalidProperty, e.Reflectivity)
		}
	case *BeamSplitter:
		if e.SplitT < 0 || e.SplitR < 0 || !isFinite(e.SplitT) || !isFinite(e.SplitR) {
			return fmt.Errorf("%w: split ratios must be non-negative", ErrInvalidProperty)
		}
	case *Dichroic:
		if !isFinite(e.CutoffNm) || e.TransitionWidthNm < 0 {
			return fmt.Errorf("%w: invalid dichroic edge", ErrInvalidProperty)
		}
		if e.PassType != Longpass && e.PassType != Shortpass {
			return fmt.Errorf("%w: pass type %v", ErrInvalidProperty, e.PassType)
		}
	case *Waveplate:
		if !isFinite(e.PhaseShiftDeg) || !isFinite(e.FastAxisDeg) {
			return fmt.Errorf("%w: waveplate angles must be finite", ErrInvalidProperty)
		}
	default:
		return fmt.Errorf("%w: %T", ErrUnknownKind, el)
	}
	return el.Geom().checkOrientation()
}

// orientationTolerance bounds 1 - cos of the angle between the forward
// normal and the segment normal
const orientationTolerance = 1e-6

// checkOrientation requires AngleDeg to point along the segment's intrinsic
// normal so that every model sees the same front side. Degenerate segments
// are left to the caller.
func (g Geometry) checkOrientation() error {
	normal, err := g.Segment.Normal()
	if err != nil {
		return nil
	}
	if normal.Dot(g.Forward()) < 1-orientationTolerance {
		return fmt.Errorf("%w: forward angle %v° is not the normal of segment %v-%v (%v°)",
			ErrInvalidProperty, g.AngleDeg, g.Segment.A, g.Segment.B, core.AngleDeg(normal))
	}
	return nil
}
