package optics

import (
	"fmt"
	"math"
	"strings"

	"github.com/df07/go-optical-raytracer/pkg/geometry"
)

// PassType selects which side of the cutoff a dichroic transmits
type PassType int

const (
	Longpass  PassType = iota // Long wavelengths pass, short ones are reflected
	Shortpass                 // Short wavelengths pass, long ones are reflected
)

func (p PassType) String() string {
	switch p {
	case Longpass:
		return "longpass"
	case Shortpass:
		return "shortpass"
	}
	return fmt.Sprintf("PassType(%d)", int(p))
}

// ParsePassType reads "longpass" or "shortpass"
func ParsePassType(s string) (PassType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "longpass", "long", "lp":
		return Longpass, nil
	case "shortpass", "short", "sp":
		return Shortpass, nil
	}
	return 0, fmt.Errorf("%w: pass type %q", ErrInvalidProperty, s)
}

// Dichroic is a wavelength-selective splitter with a logistic edge
type Dichroic struct {
	Geometry
	CutoffNm          float64
	TransitionWidthNm float64 // Zero gives a hard edge
	PassType          PassType
}

// NewDichroic creates a dichroic filter
func NewDichroic(g Geometry, cutoffNm, widthNm float64, pass PassType) *Dichroic {
	return &Dichroic{Geometry: g, CutoffNm: cutoffNm, TransitionWidthNm: widthNm, PassType: pass}
}

func (d *Dichroic) Kind() Kind     { return KindDichroic }
func (d *Dichroic) Geom() Geometry { return d.Geometry }
func (d *Dichroic) isElement()     {}

// Reflectance returns the reflected power fraction at the given wavelength
func (d *Dichroic) Reflectance(wavelengthNm float64) float64 {
	x := wavelengthNm - d.CutoffNm
	if d.PassType == Shortpass {
		x = -x
	}
	if d.TransitionWidthNm <= 0 {
		switch {
		case x < 0:
			return 1
		case x > 0:
			return 0
		}
		return 0.5
	}
	return 1 / (1 + math.Exp(x/d.TransitionWidthNm))
}

// Interact splits the ray by wavelength
func (d *Dichroic) Interact(in State, hit geometry.Hit, threshold float64) Result {
	var res Result
	r := d.Reflectance(in.WavelengthNm)

	transmitted := in
	transmitted.Intensity = in.Intensity * (1 - r)
	res.add(transmitted, Transmitted, threshold)
	res.add(reflectState(in, hit, in.Intensity*r), Reflected, threshold)
	return res
}
