package scene

import (
	"github.com/df07/go-optical-raytracer/pkg/optics"
	"github.com/df07/go-optical-raytracer/pkg/source"
	"seehuhn.de/go/geom/vec"
)

// NewDichroicScene merges a red and a blue beam with a longpass dichroic.
// The elements are described as caller records and built through optics.Build.
func NewDichroicScene() (*Scene, error) {
	dm := optics.Centered(vec.Vec2{}, 20, 135)
	fold := optics.Centered(vec.Vec2{Y: -60}, 20, 135)

	elements, err := optics.BuildAll([]optics.Spec{
		{
			Kind:     "dichroic",
			A:        dm.Segment.A,
			B:        dm.Segment.B,
			AngleDeg: 135,
			Name:     "DM",
			Props: map[string]float64{
				"cutoff_wavelength_nm": 550,
				"transition_width_nm":  15,
			},
			PassType: "longpass",
		},
		{
			Kind:     "mirror",
			A:        fold.Segment.A,
			B:        fold.Segment.B,
			AngleDeg: 135,
			Name:     "fold",
			Props:    map[string]float64{"reflectivity": 0.98},
		},
	})
	if err != nil {
		return nil, err
	}

	red := source.NewBeam(vec.Vec2{X: -80}, 0, 4, 3, 650)
	blue := source.NewBeam(vec.Vec2{X: -80, Y: -60}, 0, 4, 3, 450)

	return &Scene{
		Elements: elements,
		Sources:  []source.Generator{red, blue},
		Config:   sceneConfig(),
	}, nil
}
