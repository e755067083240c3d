package core

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestJones_Stokes(t *testing.T) {
	tests := []struct {
		name       string
		j          Jones
		s1, s2, s3 float64
	}{
		{"horizontal", Horizontal, 1, 0, 0},
		{"vertical", Vertical, -1, 0, 0},
		{"diagonal", Diagonal, 0, 1, 0},
		{"antidiagonal", Antidiag, 0, -1, 0},
		{"left circular", CircularLeft, 0, 0, 1},
		{"right circular", CircularRight, 0, 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s0, s1, s2, s3 := tt.j.Stokes()
			if math.Abs(s0-1) > tolerance {
				t.Errorf("Expected S0=1, got %f", s0)
			}
			if math.Abs(s1-tt.s1) > tolerance || math.Abs(s2-tt.s2) > tolerance || math.Abs(s3-tt.s3) > tolerance {
				t.Errorf("Expected (%v, %v, %v), got (%f, %f, %f)", tt.s1, tt.s2, tt.s3, s1, s2, s3)
			}
		})
	}
}

func TestRetarder_QuarterWave(t *testing.T) {
	qwp := Retarder(45, math.Pi/2)
	out := qwp.Apply(Horizontal)

	_, _, _, s3 := out.Stokes()
	if math.Abs(math.Abs(s3)-1) > tolerance {
		t.Errorf("Expected circular output, got S3=%f (%v)", s3, out)
	}

	// The opposite retardance gives the conjugate state
	conj := Retarder(45, -math.Pi/2).Apply(Horizontal)
	_, _, _, s3c := conj.Stokes()
	if math.Abs(s3+s3c) > tolerance {
		t.Errorf("Expected opposite handedness, got S3=%f and S3=%f", s3, s3c)
	}
}

func TestRetarder_HalfWaveRotatesLinear(t *testing.T) {
	hwp := Retarder(22.5, math.Pi)
	out := hwp.Apply(Horizontal)

	// A half-wave plate at 22.5° rotates horizontal to 45°
	_, _, s2, _ := out.Stokes()
	if math.Abs(s2-1) > tolerance {
		t.Errorf("Expected diagonal output, got %v", out)
	}
}

func TestRetarder_Unitary(t *testing.T) {
	m := Retarder(30, 1.234)
	in := LinearJones(17)
	if math.Abs(m.Apply(in).Power()-in.Power()) > tolerance {
		t.Errorf("Retarder should preserve power")
	}
}

func TestReflector(t *testing.T) {
	// Normal along x: the x component is the p component
	m := Reflector(0)
	out := m.Apply(Jones{X: 0.6, Y: 0.8})
	if cmplx.Abs(out.X+0.6) > tolerance || cmplx.Abs(out.Y-0.8) > tolerance {
		t.Errorf("Expected (-0.6, 0.8), got %v", out)
	}

	// The normal's sign does not matter
	if !Reflector(180).Apply(Diagonal).ApproxEqual(Reflector(0).Apply(Diagonal), tolerance) {
		t.Errorf("Reflector should not depend on normal orientation")
	}
}

func matrixNearlyEqual(a, b JonesMatrix) bool {
	for i := 0; i < 2; i++ {
		for k := 0; k < 2; k++ {
			if cmplx.Abs(a[i][k]-b[i][k]) > tolerance {
				return false
			}
		}
	}
	return true
}

func TestJonesMatrix_Identities(t *testing.T) {
	tests := []struct {
		name string
		m    JonesMatrix
	}{
		{"double reflection", Reflector(37).Mul(Reflector(37))},
		{"zero retardance", Retarder(25, 0)},
		{"full wave", Retarder(60, 2*math.Pi)},
		{"half wave twice", Retarder(10, math.Pi).Mul(Retarder(10, math.Pi))},
		{"rotation and inverse", RotationJones(73).Mul(RotationJones(-73))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !matrixNearlyEqual(tt.m, IdentityJones) {
				t.Errorf("Expected identity, got %v", tt.m)
			}
			if !IdentityJones.Apply(CircularLeft).ApproxEqual(CircularLeft, tolerance) {
				t.Errorf("Identity should leave states unchanged")
			}
		})
	}
}

func TestParsePolarization(t *testing.T) {
	j, err := ParsePolarization("vertical")
	if err != nil || j != Vertical {
		t.Errorf("Expected vertical, got %v (%v)", j, err)
	}
	if _, err := ParsePolarization("elliptic-ish"); err == nil {
		t.Errorf("Expected error for unknown preset")
	}
}

func TestWithIntensity(t *testing.T) {
	c := WavelengthToColor(532)
	if c.G == 0 {
		t.Errorf("Expected green component for 532 nm, got %v", c)
	}
	if got := WithIntensity(c, 0.5).A; got != 128 {
		t.Errorf("Expected alpha 128, got %d", got)
	}
	if got := WithIntensity(c, 2).A; got != 255 {
		t.Errorf("Expected clamped alpha 255, got %d", got)
	}
}
