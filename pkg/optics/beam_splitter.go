package optics

import (
	"math/cmplx"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
)

// BeamSplitter divides a ray into an undeviated and a reflected branch.
// A polarizing splitter passes the component along PBSAxisDeg and reflects
// the orthogonal one; otherwise the flat SplitT/SplitR percentages apply.
type BeamSplitter struct {
	Geometry
	SplitT     float64 // Transmitted percentage
	SplitR     float64 // Reflected percentage
	Polarizing bool
	PBSAxisDeg float64 // Transmission axis in the lab frame
}

// NewBeamSplitter creates a non-polarizing beam splitter
func NewBeamSplitter(g Geometry, splitT, splitR float64) *BeamSplitter {
	return &BeamSplitter{Geometry: g, SplitT: splitT, SplitR: splitR}
}

// NewPolarizingBeamSplitter creates a PBS transmitting along axisDeg
func NewPolarizingBeamSplitter(g Geometry, axisDeg float64) *BeamSplitter {
	return &BeamSplitter{Geometry: g, SplitT: 50, SplitR: 50, Polarizing: true, PBSAxisDeg: axisDeg}
}

func (b *BeamSplitter) Kind() Kind     { return KindBeamSplitter }
func (b *BeamSplitter) Geom() Geometry { return b.Geometry }
func (b *BeamSplitter) isElement()     {}

// Fractions returns the transmitted and reflected power fractions. Percentages
// summing to more than 100 are scaled down so no power is created.
func (b *BeamSplitter) Fractions() (t, r float64) {
	t, r = b.SplitT/100, b.SplitR/100
	if sum := t + r; sum > 1 {
		t, r = t/sum, r/sum
	}
	return t, r
}

// Interact splits the ray according to the splitter mode
func (b *BeamSplitter) Interact(in State, hit geometry.Hit, threshold float64) Result {
	if b.Polarizing {
		return b.interactPolarizing(in, hit, threshold)
	}

	var res Result
	t, r := b.Fractions()

	transmitted := in
	transmitted.Intensity = in.Intensity * t
	res.add(transmitted, Transmitted, threshold)
	res.add(reflectState(in, hit, in.Intensity*r), Reflected, threshold)
	return res
}

func (b *BeamSplitter) interactPolarizing(in State, hit geometry.Hit, threshold float64) Result {
	var res Result
	pol := in.Polarization.Normalize()

	// Amplitudes along the pass axis and its orthogonal
	passAmp := pol.Project(b.PBSAxisDeg)
	blockAmp := pol.Project(b.PBSAxisDeg + 90)
	passPower := cmplx.Abs(passAmp) * cmplx.Abs(passAmp)
	blockPower := cmplx.Abs(blockAmp) * cmplx.Abs(blockAmp)

	transmitted := in
	transmitted.Intensity = in.Intensity * passPower
	transmitted.Polarization = core.LinearJones(b.PBSAxisDeg).Scale(unitPhase(passAmp))
	res.add(transmitted, Transmitted, threshold)

	reflected := in
	reflected.Intensity = in.Intensity * blockPower
	reflected.Polarization = core.LinearJones(b.PBSAxisDeg + 90).Scale(unitPhase(blockAmp))
	reflected = reflectState(reflected, hit, reflected.Intensity)
	res.add(reflected, Reflected, threshold)
	return res
}

// unitPhase returns a/|a|, or 1 for a zero amplitude
func unitPhase(a complex128) complex128 {
	m := cmplx.Abs(a)
	if m == 0 {
		return 1
	}
	return a / complex(m, 0)
}
