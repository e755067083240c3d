package optics

import (
	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
)

// Mirror is a specular reflector
type Mirror struct {
	Geometry
	Reflectivity float64 // Fraction of power reflected, in [0, 1]
}

// NewMirror creates a mirror
func NewMirror(g Geometry, reflectivity float64) *Mirror {
	return &Mirror{Geometry: g, Reflectivity: reflectivity}
}

func (m *Mirror) Kind() Kind     { return KindMirror }
func (m *Mirror) Geom() Geometry { return m.Geometry }
func (m *Mirror) isElement()     {}

// Interact reflects the ray and flips the phase of its p component
func (m *Mirror) Interact(in State, hit geometry.Hit, threshold float64) Result {
	var res Result
	res.add(reflectState(in, hit, in.Intensity*m.Reflectivity), Reflected, threshold)
	return res
}

// reflectState is the reflected copy of in carrying the given intensity
func reflectState(in State, hit geometry.Hit, intensity float64) State {
	return State{
		Direction:    core.Reflect(in.Direction, hit.Normal),
		Intensity:    intensity,
		Polarization: core.Reflector(core.AngleDeg(hit.Normal)).Apply(in.Polarization),
		WavelengthNm: in.WavelengthNm,
	}
}
