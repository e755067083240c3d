package optics

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
)

// Refractive is a boundary between two dielectric media. A ray travelling
// along the intrinsic normal goes from N1 into N2.
type Refractive struct {
	Geometry
	N1 float64
	N2 float64
}

// NewRefractive creates a refractive boundary
func NewRefractive(g Geometry, n1, n2 float64) *Refractive {
	return &Refractive{Geometry: g, N1: n1, N2: n2}
}

func (r *Refractive) Kind() Kind     { return KindRefractive }
func (r *Refractive) Geom() Geometry { return r.Geometry }
func (r *Refractive) isElement()     {}

// indices returns the media the ray leaves and enters
func (r *Refractive) indices(hit geometry.Hit) (from, to float64) {
	if hit.Flipped {
		return r.N1, r.N2
	}
	return r.N2, r.N1
}

// Interact applies Snell's law and unpolarized Fresnel splitting
func (r *Refractive) Interact(in State, hit geometry.Hit, threshold float64) Result {
	var res Result
	n1, n2 := r.indices(hit)

	reflected := in
	reflected.Direction = core.Reflect(in.Direction, hit.Normal)

	refracted, cosT, ok := Refract(in.Direction, hit.Normal, n1/n2)
	if !ok {
		// Total internal reflection keeps all of the power
		res.add(reflected, Reflected, threshold)
		return res
	}

	cosI := math.Min(-in.Direction.Dot(hit.Normal), 1.0)
	reflectance := FresnelReflectance(n1, n2, cosI, cosT)

	transmitted := in
	transmitted.Direction = refracted
	transmitted.Intensity = in.Intensity * (1 - reflectance)
	reflected.Intensity = in.Intensity * reflectance

	res.add(transmitted, Transmitted, threshold)
	res.add(reflected, Reflected, threshold)
	return res
}
