package optics

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"seehuhn.de/go/geom/vec"
)

// State is the physical part of a ray seen by an interaction model
type State struct {
	Direction    vec.Vec2
	Intensity    float64
	Polarization core.Jones
	WavelengthNm float64
}

// Branch labels an outgoing ray
type Branch int

const (
	Transmitted Branch = iota
	Reflected
)

func (b Branch) String() string {
	if b == Reflected {
		return "reflected"
	}
	return "transmitted"
}

// Output is one outgoing ray of an interaction
type Output struct {
	State
	Branch Branch
}

// Result holds the zero, one or two rays leaving an interaction
type Result struct {
	outputs [2]Output
	n       int
	invalid bool
}

// Len returns the number of outgoing rays
func (r Result) Len() int {
	return r.n
}

// At returns the i-th outgoing ray
func (r Result) At(i int) Output {
	return r.outputs[i]
}

// Invalid reports whether the interaction produced a non-finite value
func (r Result) Invalid() bool {
	return r.invalid
}

// add emits s unless its intensity fails to exceed threshold
func (r *Result) add(s State, branch Branch, threshold float64) {
	if !isFinite(s.Intensity) || !core.IsFinite(s.Direction) || !s.Polarization.IsFinite() {
		r.invalid = true
		return
	}
	if !(s.Intensity > threshold) {
		return
	}
	r.outputs[r.n] = Output{State: s, Branch: branch}
	r.n++
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
