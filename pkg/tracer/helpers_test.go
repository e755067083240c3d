package tracer

import (
	"fmt"
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/optics"
	"seehuhn.de/go/geom/vec"
)

// recordingLogger keeps warnings for inspection
type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debugf(string, ...interface{}) {}
func (l *recordingLogger) Infof(string, ...interface{})  {}
func (l *recordingLogger) Warningf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func sequentialConfig() Config {
	config := DefaultConfig()
	config.Parallel = false
	return config
}

func mustTracer(t *testing.T, elements []optics.Element, config Config) *Tracer {
	t.Helper()
	tr, err := New(elements, config, nil)
	if err != nil {
		t.Fatalf("Unexpected error creating tracer: %v", err)
	}
	return tr
}

func seedRay(pos, dir vec.Vec2, pol core.Jones) core.RayState {
	return core.RayState{
		Position:     pos,
		Direction:    dir,
		Intensity:    1,
		Polarization: pol,
		WavelengthNm: 633,
		ColorTag:     color.NRGBA{R: 255, A: 255},
	}
}

func nearlyEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func pointNearlyEqual(a, b vec.Vec2, tol float64) bool {
	return nearlyEqual(a.X, b.X, tol) && nearlyEqual(a.Y, b.Y, tol)
}

// cavity returns two facing mirrors at x = ±10
func cavity(reflectivity float64) []optics.Element {
	return []optics.Element{
		optics.NewMirror(optics.Centered(vec.Vec2{X: 10}, 20, 180), reflectivity),
		optics.NewMirror(optics.Centered(vec.Vec2{X: -10}, 20, 0), reflectivity),
	}
}
