package optics

import (
	"math"
	"testing"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"seehuhn.de/go/geom/vec"
)

func TestRefractiveNormalIncidenceFresnel(t *testing.T) {
	// Intrinsic normal +x, so a ray travelling +x goes from n1 into n2
	glass := NewRefractive(Centered(vec.Vec2{}, 20, 0), 1.0, 1.5)
	dir := vec.Vec2{X: 1, Y: 0}
	hit := mustHit(t, glass, vec.Vec2{X: -10, Y: 0}, dir)

	res := glass.Interact(horizontalState(dir), hit, 1e-3)
	out := outputsByBranch(res)

	expectedR := math.Pow((1.0-1.5)/(1.0+1.5), 2)
	if math.Abs(expectedR-0.04) > 1e-12 {
		t.Fatalf("Expected analytic reflectance 0.04, got %f", expectedR)
	}

	reflected, ok := out[Reflected]
	if !ok {
		t.Fatal("Expected a reflected branch")
	}
	if math.Abs(reflected.Intensity-expectedR)/expectedR > 0.01 {
		t.Errorf("Expected reflectance %f within 1%%, got %f", expectedR, reflected.Intensity)
	}
	if !vecNearlyEqual(reflected.Direction, vec.Vec2{X: -1, Y: 0}, testTolerance) {
		t.Errorf("Expected reflected direction (-1, 0), got %v", reflected.Direction)
	}

	transmitted, ok := out[Transmitted]
	if !ok {
		t.Fatal("Expected a transmitted branch")
	}
	if !nearlyEqual(transmitted.Intensity, 1-expectedR, 1e-9) {
		t.Errorf("Expected transmitted intensity %f, got %f", 1-expectedR, transmitted.Intensity)
	}
	if !vecNearlyEqual(transmitted.Direction, dir, testTolerance) {
		t.Errorf("Expected undeviated transmission at normal incidence, got %v", transmitted.Direction)
	}
	if !transmitted.Polarization.ApproxEqual(core.Horizontal, testTolerance) ||
		!reflected.Polarization.ApproxEqual(core.Horizontal, testTolerance) {
		t.Error("Expected both branches to inherit the parent polarization")
	}
}

func TestRefractiveTotalInternalReflectionBoundary(t *testing.T) {
	const n1, n2 = 1.517, 1.0
	critical := math.Asin(n2/n1) * 180 / math.Pi

	tests := []struct {
		name            string
		incidenceDeg    float64
		threshold       float64
		wantTransmitted bool
	}{
		{"exactly critical", critical, 1e-3, false},
		{"exactly critical, zero threshold", critical, 0, false},
		{"beyond critical", critical + 5, 1e-3, false},
		{"one degree below critical", critical - 1, 1e-3, true},
		{"one degree below critical, zero threshold", critical - 1, 0, true},
		{"normal incidence", 0, 1e-3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := NewRefractive(Centered(vec.Vec2{}, 100, 0), n1, n2)
			dir := core.FromAngle(tt.incidenceDeg)
			origin := dir.Mul(-10)
			hit := mustHit(t, surface, origin, dir)

			res := surface.Interact(horizontalState(dir), hit, tt.threshold)
			out := outputsByBranch(res)

			_, gotTransmitted := out[Transmitted]
			if gotTransmitted != tt.wantTransmitted {
				t.Errorf("Expected transmitted branch %t, got %t", tt.wantTransmitted, gotTransmitted)
			}
			reflected, ok := out[Reflected]
			if !ok {
				t.Fatal("Expected a reflected branch")
			}
			if !tt.wantTransmitted && reflected.Intensity != 1 {
				t.Errorf("Expected full intensity reflection, got %v", reflected.Intensity)
			}
		})
	}
}

func TestSnellRoundTrip(t *testing.T) {
	normal := vec.Vec2{X: -1, Y: 0} // faces a ray travelling +x
	for _, n1 := range []float64{1.05, 1.33, 1.5, 2.2, 2.9} {
		for _, n2 := range []float64{1.1, 1.52, 2.0, 2.95} {
			critical := 90.0
			if n1 > n2 {
				critical = math.Asin(n2/n1) * 180 / math.Pi
			}
			for _, frac := range []float64{0, 0.3, 0.6, 0.95} {
				d := core.FromAngle(frac * critical)

				inside, _, ok := Refract(d, normal, n1/n2)
				if !ok {
					t.Fatalf("n1=%v n2=%v angle=%v: unexpected TIR going in", n1, n2, frac*critical)
				}
				back, _, ok := Refract(inside, normal, n2/n1)
				if !ok {
					t.Fatalf("n1=%v n2=%v angle=%v: unexpected TIR coming back", n1, n2, frac*critical)
				}
				if !vecNearlyEqual(back, d, 1e-9) {
					t.Errorf("n1=%v n2=%v: expected %v after round trip, got %v", n1, n2, d, back)
				}
			}
		}
	}
}

func TestRefractiveSideConvention(t *testing.T) {
	// The same boundary crossed in both directions swaps the indices
	surface := NewRefractive(Centered(vec.Vec2{}, 100, 0), 1.0, 1.5)
	dir := core.FromAngle(30)

	forward := outputsByBranch(surface.Interact(horizontalState(dir), mustHit(t, surface, dir.Mul(-10), dir), 0))
	reverseDir := vec.Vec2{X: -dir.X, Y: dir.Y}
	reverse := outputsByBranch(surface.Interact(horizontalState(reverseDir), mustHit(t, surface, reverseDir.Mul(-10), reverseDir), 0))

	// Entering glass bends toward the normal
	if sin := forward[Transmitted].Direction.Y; !(sin < dir.Y) {
		t.Errorf("Expected refraction toward the normal going into n2, got sin %f", sin)
	}
	// Leaving glass bends away from it
	if sin := reverse[Transmitted].Direction.Y; !(sin > reverseDir.Y) {
		t.Errorf("Expected refraction away from the normal going into n1, got sin %f", sin)
	}
}

func TestEnergyNonCreation(t *testing.T) {
	geom := Centered(vec.Vec2{}, 100, 0)
	elements := []Element{
		NewRefractive(geom, 1.0, 1.7),
		NewRefractive(geom, 2.4, 1.0),
		NewBeamSplitter(geom, 50, 50),
		NewBeamSplitter(geom, 80, 60),
		NewPolarizingBeamSplitter(geom, 30),
		NewDichroic(geom, 550, 10, Longpass),
		NewDichroic(geom, 500, 0, Shortpass),
	}

	for _, el := range elements {
		for _, angle := range []float64{0, 15, 35, 60, 80} {
			for _, wl := range []float64{450, 550, 650} {
				dir := core.FromAngle(angle)
				hit := mustHit(t, el, dir.Mul(-10), dir)
				in := State{Direction: dir, Intensity: 0.8, Polarization: core.Diagonal, WavelengthNm: wl}

				res := interact(el, in, hit)
				total := 0.0
				for i := 0; i < res.Len(); i++ {
					total += res.At(i).Intensity
				}
				if total > in.Intensity+1e-12 {
					t.Errorf("%v at %v°, %vnm: children carry %f > parent %f", el.Kind(), angle, wl, total, in.Intensity)
				}
			}
		}
	}
}
