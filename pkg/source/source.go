package source

import (
	"image/color"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"seehuhn.de/go/geom/vec"
)

// Generator produces the initial rays of a light source
type Generator interface {
	Rays() []core.RayState
}

// Emission holds the properties shared by every ray of a source
type Emission struct {
	Intensity    float64
	Polarization core.Jones
	WavelengthNm float64
	Color        color.NRGBA // Zero value means the colour of WavelengthNm
}

// DefaultEmission returns unit intensity, horizontally polarized light
func DefaultEmission(wavelengthNm float64) Emission {
	return Emission{
		Intensity:    1,
		Polarization: core.Horizontal,
		WavelengthNm: wavelengthNm,
	}
}

// WithPolarization returns a copy of e with the given polarization
func (e Emission) WithPolarization(j core.Jones) Emission {
	e.Polarization = j
	return e
}

// WithIntensity returns a copy of e with the given intensity
func (e Emission) WithIntensity(intensity float64) Emission {
	e.Intensity = intensity
	return e
}

// ray builds a seed state at pos travelling along dir
func (e Emission) ray(pos, dir vec.Vec2) core.RayState {
	tag := e.Color
	if tag == (color.NRGBA{}) {
		tag = core.WavelengthToColor(e.WavelengthNm)
	}
	return core.RayState{
		Position:     pos,
		Direction:    dir,
		Intensity:    e.Intensity,
		Polarization: e.Polarization.Normalize(),
		WavelengthNm: e.WavelengthNm,
		ColorTag:     tag,
	}
}

// Ray is a single ray
type Ray struct {
	Origin   vec.Vec2
	AngleDeg float64
	Emission
}

// NewRay creates a single ray source
func NewRay(origin vec.Vec2, angleDeg, wavelengthNm float64) *Ray {
	return &Ray{Origin: origin, AngleDeg: angleDeg, Emission: DefaultEmission(wavelengthNm)}
}

// Rays returns the single ray
func (r *Ray) Rays() []core.RayState {
	return []core.RayState{r.ray(r.Origin, core.FromAngle(r.AngleDeg))}
}

// Beam is a collimated bundle of parallel rays spread evenly across Width
type Beam struct {
	Center   vec.Vec2
	AngleDeg float64
	Width    float64
	Count    int
	Emission
}

// NewBeam creates a collimated beam
func NewBeam(center vec.Vec2, angleDeg, width float64, count int, wavelengthNm float64) *Beam {
	return &Beam{Center: center, AngleDeg: angleDeg, Width: width, Count: count, Emission: DefaultEmission(wavelengthNm)}
}

// Rays returns Count parallel rays, edge to edge
func (b *Beam) Rays() []core.RayState {
	if b.Count <= 0 {
		return nil
	}
	dir := core.FromAngle(b.AngleDeg)
	across := core.Perp(dir)

	rays := make([]core.RayState, b.Count)
	for i := range rays {
		offset := spread(i, b.Count, b.Width)
		rays[i] = b.ray(b.Center.Add(across.Mul(offset)), dir)
	}
	return rays
}

// Fan is a point source emitting Count rays across SpreadDeg
type Fan struct {
	Origin    vec.Vec2
	AngleDeg  float64
	SpreadDeg float64
	Count     int
	Emission
}

// NewFan creates a point source
func NewFan(origin vec.Vec2, angleDeg, spreadDeg float64, count int, wavelengthNm float64) *Fan {
	return &Fan{Origin: origin, AngleDeg: angleDeg, SpreadDeg: spreadDeg, Count: count, Emission: DefaultEmission(wavelengthNm)}
}

// Rays returns Count rays with evenly spaced angles
func (f *Fan) Rays() []core.RayState {
	if f.Count <= 0 {
		return nil
	}
	rays := make([]core.RayState, f.Count)
	for i := range rays {
		angle := f.AngleDeg + spread(i, f.Count, f.SpreadDeg)
		rays[i] = f.ray(f.Origin, core.FromAngle(angle))
	}
	return rays
}

// Collect concatenates the rays of every generator in order
func Collect(generators ...Generator) []core.RayState {
	var rays []core.RayState
	for _, g := range generators {
		rays = append(rays, g.Rays()...)
	}
	return rays
}

// spread returns the i-th of n evenly spaced offsets across [-width/2, width/2].
// A single sample sits in the middle.
func spread(i, n int, width float64) float64 {
	if n == 1 {
		return 0
	}
	return -width/2 + width*float64(i)/float64(n-1)
}
