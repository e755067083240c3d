package optics

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/geometry"
)

// Lens is an ideal thin lens in the paraxial approximation.
// Steep rays are traced without complaint; their result is only geometric.
type Lens struct {
	Geometry
	EFLmm float64 // Effective focal length, negative for diverging lenses
}

// NewLens creates a thin lens
func NewLens(g Geometry, eflMm float64) *Lens {
	return &Lens{Geometry: g, EFLmm: eflMm}
}

func (l *Lens) Kind() Kind     { return KindLens }
func (l *Lens) Geom() Geometry { return l.Geometry }
func (l *Lens) isElement()     {}

// Interact applies θ_out = θ_in - y/f in the lens's normal/tangent frame
func (l *Lens) Interact(in State, hit geometry.Hit, threshold float64) Result {
	var res Result
	if l.EFLmm == 0 {
		res.invalid = true
		return res
	}

	forward := hit.Normal.Mul(-1)
	height := hit.Point.Sub(hit.Midpoint).Dot(hit.Tangent)

	thetaIn := math.Atan2(in.Direction.Dot(hit.Tangent), in.Direction.Dot(forward))
	thetaOut := thetaIn - height/l.EFLmm

	out := in
	out.Direction = forward.Mul(math.Cos(thetaOut)).Add(hit.Tangent.Mul(math.Sin(thetaOut)))
	res.add(out, Transmitted, threshold)
	return res
}
