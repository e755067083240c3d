package scene

import (
	"github.com/df07/go-optical-raytracer/pkg/optics"
	"github.com/df07/go-optical-raytracer/pkg/source"
	"seehuhn.de/go/geom/vec"
)

// NewIsolatorScene creates a PBS + quarter-wave plate isolator. Light
// returning from the mirror comes back vertically polarized and is
// reflected out of the beam by the PBS instead of reaching the source.
func NewIsolatorScene() (*Scene, error) {
	laser := source.NewRay(vec.Vec2{X: -80, Y: 0}, 0, 633)

	elements := []optics.Element{
		optics.NewPolarizingBeamSplitter(optics.Centered(vec.Vec2{X: -40}, 20, 135).Named("PBS"), 0),
		optics.NewWaveplate(optics.Centered(vec.Vec2{X: 0}, 20, 0).Named("QWP"), 90, 45),
		optics.NewMirror(optics.Centered(vec.Vec2{X: 40}, 20, 180).Named("M1"), 1),
	}

	return &Scene{
		Elements: elements,
		Sources:  []source.Generator{laser},
		Config:   sceneConfig(),
	}, nil
}

// NewPBSScene creates a half-wave plate rotating horizontal light to 45°
// followed by a PBS that splits it into two orthogonally polarized beams
func NewPBSScene() (*Scene, error) {
	beam := source.NewBeam(vec.Vec2{X: -80, Y: 0}, 0, 6, 5, 532)

	elements := []optics.Element{
		optics.NewWaveplate(optics.Centered(vec.Vec2{X: -50}, 20, 0).Named("HWP"), 180, 22.5),
		optics.NewPolarizingBeamSplitter(optics.Centered(vec.Vec2{}, 20, 135).Named("PBS"), 0),
		optics.NewMirror(optics.Centered(vec.Vec2{Y: 60}, 20, -45).Named("fold"), 1),
	}

	return &Scene{
		Elements: elements,
		Sources:  []source.Generator{beam},
		Config:   sceneConfig(),
	}, nil
}
