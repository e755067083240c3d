package scene

import (
	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/optics"
	"github.com/df07/go-optical-raytracer/pkg/paraxial"
	"github.com/df07/go-optical-raytracer/pkg/source"
	"github.com/df07/go-optical-raytracer/pkg/tracer"
)

// Scene contains everything needed for one trace
type Scene struct {
	Info     SceneInfo
	Elements []optics.Element   // Optical interfaces, in resolver order
	Sources  []source.Generator // Light sources
	Config   tracer.Config      // Trace configuration tuned for the scene
	Axis     *paraxial.Axis     // Optical axis for paraxial analysis, if any
}

// Rays returns the seed rays of every source, in source order
func (s *Scene) Rays() []core.RayState {
	return source.Collect(s.Sources...)
}

// NewTracer validates the scene and creates a tracer for it
func (s *Scene) NewTracer(logger core.Logger) (*tracer.Tracer, error) {
	return tracer.New(s.Elements, s.Config, logger)
}

// Paraxial returns the lens train along the scene axis
func (s *Scene) Paraxial() (*paraxial.System, error) {
	if s.Axis == nil {
		return nil, ErrNoAxis
	}
	return paraxial.FromElements(*s.Axis, s.Elements)
}

// sceneConfig returns the default trace configuration with a shorter path
// budget suited to bench-top scenes
func sceneConfig() tracer.Config {
	config := tracer.DefaultConfig()
	config.MaxPathLength = 400
	return config
}
