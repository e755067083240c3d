// Package paraxial analyses lens trains along an optical axis with ray
// transfer (ABCD) matrices.
package paraxial

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/optics"
	"gonum.org/v1/gonum/mat"
	"seehuhn.de/go/geom/vec"
)

// ErrNoLenses is returned when the axis crosses no lens
var ErrNoLenses = errors.New("paraxial: axis crosses no lens")

// Axis is the optical axis of a system
type Axis struct {
	Origin    vec.Vec2
	Direction vec.Vec2
}

// Surface is a thin lens at a distance along the axis
type Surface struct {
	Name        string
	Distance    float64 // From the axis origin (mm)
	FocalLength float64
}

// System is an ordered train of thin lenses
type System struct {
	Axis     Axis
	Surfaces []Surface
	Skipped  []string // Non-lens elements the axis crosses
}

// FromElements collects the lenses that the axis crosses, in order along it
func FromElements(axis Axis, elements []optics.Element) (*System, error) {
	dir, err := core.Normalize(axis.Direction)
	if err != nil {
		return nil, fmt.Errorf("paraxial: axis direction: %w", err)
	}
	axis.Direction = dir

	sys := &System{Axis: axis}
	for _, el := range elements {
		hit, ok := el.Geom().Segment.Intersect(axis.Origin, dir)
		if !ok {
			continue
		}
		lens, isLens := el.(*optics.Lens)
		if !isLens {
			sys.Skipped = append(sys.Skipped, fmt.Sprintf("%s %q", el.Kind(), el.Geom().Name))
			continue
		}
		sys.Surfaces = append(sys.Surfaces, Surface{
			Name:        lens.Name,
			Distance:    hit.T,
			FocalLength: lens.EFLmm,
		})
	}
	if len(sys.Surfaces) == 0 {
		return nil, ErrNoLenses
	}

	sort.SliceStable(sys.Surfaces, func(i, j int) bool {
		return sys.Surfaces[i].Distance < sys.Surfaces[j].Distance
	})
	return sys, nil
}

// lensMatrix refracts a ray at a thin lens
func lensMatrix(f float64) *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		1, 0,
		-1 / f, 1,
	})
}

// translationMatrix propagates a ray through free space
func translationMatrix(d float64) *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		1, d,
		0, 1,
	})
}

// Matrix returns the ABCD matrix from the first lens to the last lens
func (s *System) Matrix() *mat.Dense {
	m := lensMatrix(s.Surfaces[0].FocalLength)
	for i := 1; i < len(s.Surfaces); i++ {
		gap := s.Surfaces[i].Distance - s.Surfaces[i-1].Distance
		var step, next mat.Dense
		step.Mul(translationMatrix(gap), m)
		next.Mul(lensMatrix(s.Surfaces[i].FocalLength), &step)
		m = &next
	}
	return m
}

// EffectiveFocalLength returns -1/C. ok is false for an afocal system.
func (s *System) EffectiveFocalLength() (efl float64, ok bool) {
	c := s.Matrix().At(1, 0)
	if math.Abs(c) < 1e-15 {
		return math.Inf(1), false
	}
	return -1 / c, true
}

// BackFocalDistance returns the distance from the last lens to the focus
// of a collimated input beam. ok is false for an afocal system.
func (s *System) BackFocalDistance() (bfd float64, ok bool) {
	m := s.Matrix()
	a, c := m.At(0, 0), m.At(1, 0)
	if math.Abs(c) < 1e-15 {
		return math.Inf(1), false
	}
	return -a / c, true
}

// Magnification returns the angular magnification D of an afocal system
// and the A element otherwise.
func (s *System) Magnification() float64 {
	m := s.Matrix()
	if _, ok := s.EffectiveFocalLength(); !ok {
		return m.At(1, 1)
	}
	return m.At(0, 0)
}

// Propagate maps a ray height and angle (radians) at the first lens to the
// height and angle just after the last lens.
func (s *System) Propagate(y, theta float64) (float64, float64) {
	in := mat.NewDense(2, 1, []float64{y, theta})
	var out mat.Dense
	out.Mul(s.Matrix(), in)
	return out.At(0, 0), out.At(1, 0)
}

// Length returns the distance from the first to the last lens
func (s *System) Length() float64 {
	return s.Surfaces[len(s.Surfaces)-1].Distance - s.Surfaces[0].Distance
}
