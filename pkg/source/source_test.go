package source

import (
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"seehuhn.de/go/geom/vec"
)

func TestRaySource(t *testing.T) {
	r := NewRay(vec.Vec2{X: 1, Y: 2}, 90, 633)
	rays := r.Rays()
	if len(rays) != 1 {
		t.Fatalf("Expected 1 ray, got %d", len(rays))
	}
	ray := rays[0]
	if ray.Position != (vec.Vec2{X: 1, Y: 2}) {
		t.Errorf("Expected origin (1, 2), got %v", ray.Position)
	}
	if math.Abs(ray.Direction.X) > 1e-12 || math.Abs(ray.Direction.Y-1) > 1e-12 {
		t.Errorf("Expected direction +y, got %v", ray.Direction)
	}
	if ray.Intensity != 1 || ray.Polarization != core.Horizontal || ray.WavelengthNm != 633 {
		t.Errorf("Expected default emission, got %+v", ray)
	}
	if ray.ColorTag != core.WavelengthToColor(633) {
		t.Errorf("Expected wavelength colour, got %v", ray.ColorTag)
	}
}

func TestBeamSpacing(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		width    float64
		expected []float64 // y offsets for a beam along +x
	}{
		{"single ray in the middle", 1, 10, []float64{0}},
		{"edge to edge", 3, 10, []float64{-5, 0, 5}},
		{"five rays", 5, 4, []float64{-2, -1, 0, 1, 2}},
		{"no rays", 0, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rays := NewBeam(vec.Vec2{X: 3}, 0, tt.width, tt.count, 550).Rays()
			if len(rays) != len(tt.expected) {
				t.Fatalf("Expected %d rays, got %d", len(tt.expected), len(rays))
			}
			for i, r := range rays {
				if math.Abs(r.Position.Y-tt.expected[i]) > 1e-12 || r.Position.X != 3 {
					t.Errorf("Ray %d: expected (3, %v), got %v", i, tt.expected[i], r.Position)
				}
				if r.Direction != (vec.Vec2{X: 1, Y: 0}) {
					t.Errorf("Ray %d: expected direction +x, got %v", i, r.Direction)
				}
			}
		})
	}
}

func TestFanAngles(t *testing.T) {
	f := NewFan(vec.Vec2{}, 0, 20, 5, 450)
	rays := f.Rays()
	expected := []float64{-10, -5, 0, 5, 10}
	if len(rays) != len(expected) {
		t.Fatalf("Expected %d rays, got %d", len(expected), len(rays))
	}
	for i, r := range rays {
		if got := core.AngleDeg(r.Direction); math.Abs(got-expected[i]) > 1e-9 {
			t.Errorf("Ray %d: expected %v°, got %v°", i, expected[i], got)
		}
		if r.Position != (vec.Vec2{}) {
			t.Errorf("Ray %d: expected all rays from the origin, got %v", i, r.Position)
		}
	}
}

func TestEmissionOverrides(t *testing.T) {
	f := NewFan(vec.Vec2{}, 0, 0, 1, 500)
	f.Emission = f.WithPolarization(core.Jones{X: 2, Y: 0}).WithIntensity(0.25)
	f.Color = color.NRGBA{R: 1, G: 2, B: 3, A: 255}

	r := f.Rays()[0]
	if !r.Polarization.ApproxEqual(core.Horizontal, 1e-12) {
		t.Errorf("Expected polarization to be normalized, got %v", r.Polarization)
	}
	if r.Intensity != 0.25 {
		t.Errorf("Expected intensity 0.25, got %f", r.Intensity)
	}
	if r.ColorTag != f.Color {
		t.Errorf("Expected explicit colour %v, got %v", f.Color, r.ColorTag)
	}
}

func TestCollectKeepsOrder(t *testing.T) {
	rays := Collect(
		NewRay(vec.Vec2{X: 1}, 0, 500),
		NewBeam(vec.Vec2{X: 2}, 0, 2, 2, 600),
		NewRay(vec.Vec2{X: 3}, 0, 700),
	)
	expected := []float64{1, 2, 2, 3}
	if len(rays) != len(expected) {
		t.Fatalf("Expected %d rays, got %d", len(expected), len(rays))
	}
	for i, r := range rays {
		if r.Position.X != expected[i] {
			t.Errorf("Ray %d: expected x=%v, got %v", i, expected[i], r.Position.X)
		}
	}
}
