package scene

import (
	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/optics"
	"github.com/df07/go-optical-raytracer/pkg/source"
	"seehuhn.de/go/geom/vec"
)

// NewCavityScene creates a flat-flat resonator. A slightly tilted ray walks
// off the mirrors after a few round trips, leaking through the coupler each pass.
func NewCavityScene() (*Scene, error) {
	seed := source.NewRay(vec.Vec2{}, 2, 1064)
	seed.Emission = seed.WithPolarization(core.Vertical)

	elements := []optics.Element{
		optics.NewMirror(optics.Centered(vec.Vec2{X: -50}, 30, 0).Named("HR"), 1),
		optics.NewBeamSplitter(optics.Centered(vec.Vec2{X: 50}, 30, 180).Named("OC"), 10, 90),
	}

	config := sceneConfig()
	config.MaxPathLength = 2000

	return &Scene{
		Elements: elements,
		Sources:  []source.Generator{seed},
		Config:   config,
	}, nil
}
