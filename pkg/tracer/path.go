package tracer

import (
	"fmt"
	"image/color"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Termination records why a path ended
type Termination int

const (
	Escaped     Termination = iota // No further element was hit
	Interacted                     // An interaction changed the ray state or branched it
	Absorbed                       // An interaction emitted nothing above threshold
	EventLimit                     // MaxEvents was reached
	LengthLimit                    // The propagation budget ran out
	BranchLimit                    // MaxRaysPerLineage stopped further branching
	Invalid                        // A non-finite value appeared

	numTerminations = int(Invalid) + 1
)

var terminationNames = [numTerminations]string{
	"escaped", "interacted", "absorbed", "event-limit", "length-limit", "branch-limit", "invalid",
}

func (t Termination) String() string {
	if t < 0 || int(t) >= numTerminations {
		return fmt.Sprintf("Termination(%d)", int(t))
	}
	return terminationNames[t]
}

// RayPath is a finalized run of straight segments over which intensity,
// polarization and wavelength were constant.
type RayPath struct {
	Points       []vec.Vec2
	Color        color.NRGBA // Source colour with alpha from Intensity
	Intensity    float64
	Polarization core.Jones // State that applied along these segments
	WavelengthNm float64
	Lineage      int // Index of the source ray
	Termination  Termination
}

// Length returns the total distance covered by the path
func (p RayPath) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.Points); i++ {
		total += p.Points[i].Sub(p.Points[i-1]).Length()
	}
	return total
}

// Path returns the points as an open polyline
func (p RayPath) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i, pt := range p.Points {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, []vec.Vec2{pt}) {
				return
			}
		}
	}
}

// newPath freezes the state of ray into a path ending at the given points
func newPath(ray *core.RayState, lineage int, term Termination) RayPath {
	return RayPath{
		Points:       ray.PathPoints,
		Color:        core.WithIntensity(ray.ColorTag, ray.Intensity),
		Intensity:    ray.Intensity,
		Polarization: ray.Polarization,
		WavelengthNm: ray.WavelengthNm,
		Lineage:      lineage,
		Termination:  term,
	}
}
