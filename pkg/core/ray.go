package core

import (
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// RayState is a pending unit of tracing work. The traversal engine owns it
// exclusively while it sits on the work stack.
type RayState struct {
	Position     vec.Vec2 // Current origin (mm)
	Direction    vec.Vec2 // Unit propagation direction
	Intensity    float64  // Relative power in [0, 1]
	Polarization Jones    // Normalized Jones vector
	WavelengthNm float64  // Vacuum wavelength

	PathPoints      []vec.Vec2 // Visited positions of the current path, append-only
	RemainingLength float64    // Propagation budget left (mm)
	EventCount      int        // Interactions so far along this lineage

	ColorTag color.NRGBA // Display hint inherited from the source
}

// At returns the point at distance t along the ray
func (r *RayState) At(t float64) vec.Vec2 {
	return r.Position.Add(r.Direction.Mul(t))
}
