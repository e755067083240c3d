package optics

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
	"seehuhn.de/go/geom/vec"
)

// Waveplate is a linear retarder. Its handedness depends on which way the
// ray crosses it relative to the forward normal given by AngleDeg.
type Waveplate struct {
	Geometry
	PhaseShiftDeg float64 // 90 for a quarter-wave plate, 180 for a half-wave plate
	FastAxisDeg   float64
}

// NewWaveplate creates a waveplate
func NewWaveplate(g Geometry, phaseShiftDeg, fastAxisDeg float64) *Waveplate {
	return &Waveplate{Geometry: g, PhaseShiftDeg: phaseShiftDeg, FastAxisDeg: fastAxisDeg}
}

func (w *Waveplate) Kind() Kind     { return KindWaveplate }
func (w *Waveplate) Geom() Geometry { return w.Geometry }
func (w *Waveplate) isElement()     {}

// Retardance returns the signed phase in radians for a ray travelling along
// direction d. Only the element's own orientation is consulted.
func (w *Waveplate) Retardance(d vec.Vec2) float64 {
	delta := w.PhaseShiftDeg * math.Pi / 180
	if d.Dot(w.Forward()) < 0 {
		return delta
	}
	return -delta
}

// Interact retards the polarization, leaving direction and intensity alone
func (w *Waveplate) Interact(in State, _ geometry.Hit, threshold float64) Result {
	var res Result
	out := in
	out.Polarization = core.Retarder(w.FastAxisDeg, w.Retardance(in.Direction)).Apply(in.Polarization)
	res.add(out, Transmitted, threshold)
	return res
}
