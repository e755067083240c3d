package core

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Jones is a coherent polarization state expressed in the lab x/y basis
type Jones struct {
	X complex128
	Y complex128
}

// Common polarization states
var (
	Horizontal = Jones{X: 1, Y: 0}
	Vertical   = Jones{X: 0, Y: 1}
	Diagonal   = Jones{X: complex(math.Sqrt2/2, 0), Y: complex(math.Sqrt2/2, 0)}
	Antidiag   = Jones{X: complex(math.Sqrt2/2, 0), Y: complex(-math.Sqrt2/2, 0)}
	// CircularLeft has S3 = +1, CircularRight has S3 = -1
	CircularLeft  = Jones{X: complex(math.Sqrt2/2, 0), Y: complex(0, math.Sqrt2/2)}
	CircularRight = Jones{X: complex(math.Sqrt2/2, 0), Y: complex(0, -math.Sqrt2/2)}
)

// LinearJones returns linear polarization at deg degrees from the x axis
func LinearJones(deg float64) Jones {
	rad := deg * math.Pi / 180
	return Jones{X: complex(math.Cos(rad), 0), Y: complex(math.Sin(rad), 0)}
}

// ParsePolarization maps a preset name to a Jones vector
func ParsePolarization(name string) (Jones, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "horizontal", "h", "x":
		return Horizontal, nil
	case "vertical", "v", "y":
		return Vertical, nil
	case "diagonal", "+45", "d":
		return Diagonal, nil
	case "antidiagonal", "-45", "a":
		return Antidiag, nil
	case "left", "lcp", "circular-left":
		return CircularLeft, nil
	case "right", "rcp", "circular-right":
		return CircularRight, nil
	}
	return Jones{}, fmt.Errorf("core: unknown polarization %q", name)
}

// Power returns |X|² + |Y|²
func (j Jones) Power() float64 {
	return real(j.X)*real(j.X) + imag(j.X)*imag(j.X) + real(j.Y)*real(j.Y) + imag(j.Y)*imag(j.Y)
}

// Normalize scales the vector to unit power. A zero vector is returned unchanged.
func (j Jones) Normalize() Jones {
	p := j.Power()
	if p <= 0 || math.IsNaN(p) {
		return j
	}
	s := complex(1/math.Sqrt(p), 0)
	return Jones{X: j.X * s, Y: j.Y * s}
}

// Scale multiplies both components by a complex factor
func (j Jones) Scale(c complex128) Jones {
	return Jones{X: j.X * c, Y: j.Y * c}
}

// Project returns the complex amplitude of j along the real unit axis at deg degrees
func (j Jones) Project(deg float64) complex128 {
	rad := deg * math.Pi / 180
	return complex(math.Cos(rad), 0)*j.X + complex(math.Sin(rad), 0)*j.Y
}

// Stokes returns the Stokes parameters of j
func (j Jones) Stokes() (s0, s1, s2, s3 float64) {
	xx := real(j.X * cmplx.Conj(j.X))
	yy := real(j.Y * cmplx.Conj(j.Y))
	xy := cmplx.Conj(j.X) * j.Y
	return xx + yy, xx - yy, 2 * real(xy), 2 * imag(xy)
}

// IsFinite reports whether no component is NaN or infinite
func (j Jones) IsFinite() bool {
	return !cmplx.IsNaN(j.X) && !cmplx.IsNaN(j.Y) && !cmplx.IsInf(j.X) && !cmplx.IsInf(j.Y)
}

// ApproxEqual compares component-wise within tol
func (j Jones) ApproxEqual(o Jones, tol float64) bool {
	return cmplx.Abs(j.X-o.X) <= tol && cmplx.Abs(j.Y-o.Y) <= tol
}

func (j Jones) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", j.X, j.Y)
}

// JonesMatrix is a 2x2 complex linear map acting on Jones vectors
type JonesMatrix [2][2]complex128

// IdentityJones leaves every state unchanged
var IdentityJones = JonesMatrix{{1, 0}, {0, 1}}

// Apply returns m·j
func (m JonesMatrix) Apply(j Jones) Jones {
	return Jones{
		X: m[0][0]*j.X + m[0][1]*j.Y,
		Y: m[1][0]*j.X + m[1][1]*j.Y,
	}
}

// Mul returns the product m·o
func (m JonesMatrix) Mul(o JonesMatrix) JonesMatrix {
	var r JonesMatrix
	for i := 0; i < 2; i++ {
		for k := 0; k < 2; k++ {
			r[i][k] = m[i][0]*o[0][k] + m[i][1]*o[1][k]
		}
	}
	return r
}

// RotationJones rotates the lab frame by deg degrees (real orthogonal matrix)
func RotationJones(deg float64) JonesMatrix {
	rad := deg * math.Pi / 180
	c, s := complex(math.Cos(rad), 0), complex(math.Sin(rad), 0)
	return JonesMatrix{{c, -s}, {s, c}}
}

// Retarder returns the Jones matrix of a linear retarder with its fast axis at
// fastDeg and phase delta (radians) applied to the slow axis.
func Retarder(fastDeg, delta float64) JonesMatrix {
	toAxes := RotationJones(-fastDeg)
	phase := JonesMatrix{{1, 0}, {0, cmplx.Exp(complex(0, delta))}}
	return RotationJones(fastDeg).Mul(phase).Mul(toAxes)
}

// Reflector returns the Jones matrix for reflection off a surface whose normal
// points at normalDeg: the p component (along the normal) gains a π phase.
func Reflector(normalDeg float64) JonesMatrix {
	flip := JonesMatrix{{-1, 0}, {0, 1}}
	return RotationJones(normalDeg).Mul(flip).Mul(RotationJones(-normalDeg))
}
