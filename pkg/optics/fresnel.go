package optics

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// FresnelReflectance returns the unpolarized power reflectance (the mean of
// the s and p reflectances) for light going from index n1 to n2.
// cosI and cosT are the cosines of the incidence and refraction angles.
func FresnelReflectance(n1, n2, cosI, cosT float64) float64 {
	rs := (n1*cosI - n2*cosT) / (n1*cosI + n2*cosT)
	rp := (n1*cosT - n2*cosI) / (n1*cosT + n2*cosI)
	return (rs*rs + rp*rp) / 2
}

// criticalTolerance treats sin(theta_t) this close to 1 as total internal
// reflection, so rounding at the critical angle cannot leak a grazing ray.
const criticalTolerance = 1e-12

// Refract bends the unit direction d through a surface with unit normal n
// facing the incoming ray, using eta = n1/n2. ok is false on total internal
// reflection.
func Refract(d, n vec.Vec2, eta float64) (out vec.Vec2, cosT float64, ok bool) {
	cosI := math.Min(-d.Dot(n), 1.0)
	sinT := eta * math.Sqrt(math.Max(0, 1-cosI*cosI))
	if sinT >= 1-criticalTolerance {
		return vec.Vec2{}, 0, false
	}
	cosT = math.Sqrt(1 - sinT*sinT)

	// Vector form of Snell's law
	out = d.Mul(eta).Add(n.Mul(eta*cosI - cosT))
	return out, cosT, true
}
