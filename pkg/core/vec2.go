package core

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// DegenerateEpsilon is the magnitude below which a vector has no usable direction
const DegenerateEpsilon = 1e-12

// ErrDegenerateVector is returned when a near-zero vector has to be normalized
var ErrDegenerateVector = errors.New("core: degenerate vector")

// Normalize returns a unit vector in the direction of v
func Normalize(v vec.Vec2) (vec.Vec2, error) {
	length := v.Length()
	if !(length > DegenerateEpsilon) || math.IsInf(length, 0) {
		return vec.Vec2{}, ErrDegenerateVector
	}
	return v.Mul(1 / length), nil
}

// Reflect mirrors v about a surface with unit normal n: v - 2(v·n)n
func Reflect(v, n vec.Vec2) vec.Vec2 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Rotate returns v rotated counter-clockwise by deg degrees
func Rotate(v vec.Vec2, deg float64) vec.Vec2 {
	m := matrix.RotateDeg(deg)
	// Only the linear part applies to directions
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// Perp returns v rotated by 90° counter-clockwise
func Perp(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

// Cross returns the z component of the 3D cross product a × b
func Cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// FromAngle returns the unit vector at deg degrees from the +x axis
func FromAngle(deg float64) vec.Vec2 {
	rad := deg * math.Pi / 180
	return vec.Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// AngleDeg returns the direction of v in degrees, in (-180, 180]
func AngleDeg(v vec.Vec2) float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// IsFinite reports whether both components of v are finite numbers
func IsFinite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
