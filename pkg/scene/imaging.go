package scene

import (
	"github.com/df07/go-optical-raytracer/pkg/optics"
	"github.com/df07/go-optical-raytracer/pkg/paraxial"
	"github.com/df07/go-optical-raytracer/pkg/source"
	"seehuhn.de/go/geom/vec"
)

// NewTelescopeScene creates a 2x Keplerian beam expander
func NewTelescopeScene() (*Scene, error) {
	const (
		objectiveFocal = 50.0
		eyepieceFocal  = 100.0
	)
	beam := source.NewBeam(vec.Vec2{X: -50}, 0, 10, 7, 550)

	elements := []optics.Element{
		optics.NewLens(optics.Centered(vec.Vec2{X: 0}, 40, 0).Named("objective"), objectiveFocal),
		optics.NewLens(optics.Centered(vec.Vec2{X: objectiveFocal + eyepieceFocal}, 40, 0).Named("eyepiece"), eyepieceFocal),
	}

	return &Scene{
		Elements: elements,
		Sources:  []source.Generator{beam},
		Config:   sceneConfig(),
		Axis:     &paraxial.Axis{Origin: vec.Vec2{X: -50}, Direction: vec.Vec2{X: 1}},
	}, nil
}

// NewSlabScene creates a point source shining through a glass slab
func NewSlabScene() (*Scene, error) {
	fan := source.NewFan(vec.Vec2{X: -60}, 0, 50, 11, 532)

	// Both faces have their intrinsic normal along +x, so N1 is the medium on the left
	elements := []optics.Element{
		optics.NewRefractive(optics.Centered(vec.Vec2{X: 0}, 60, 0).Named("front"), 1.0, 1.5),
		optics.NewRefractive(optics.Centered(vec.Vec2{X: 25}, 60, 0).Named("back"), 1.5, 1.0),
	}

	return &Scene{
		Elements: elements,
		Sources:  []source.Generator{fan},
		Config:   sceneConfig(),
	}, nil
}
