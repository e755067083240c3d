// Package plot draws traced ray paths and optical elements to raster and
// vector images.
package plot

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/optics"
	"github.com/df07/go-optical-raytracer/pkg/tracer"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Viewport is the region of the optical bench shown in a plot (mm)
type Viewport struct {
	Bounds rect.Rect
}

// FitViewport returns a viewport around every element and path start point,
// padded by margin on each side. Escaping rays are clipped rather than fitted.
func FitViewport(paths []tracer.RayPath, elements []optics.Element, margin float64) Viewport {
	b := rect.Rect{LLx: math.Inf(1), LLy: math.Inf(1), URx: math.Inf(-1), URy: math.Inf(-1)}
	extend := func(p vec.Vec2) {
		b.LLx = math.Min(b.LLx, p.X)
		b.LLy = math.Min(b.LLy, p.Y)
		b.URx = math.Max(b.URx, p.X)
		b.URy = math.Max(b.URy, p.Y)
	}

	for _, el := range elements {
		extend(el.Geom().Segment.A)
		extend(el.Geom().Segment.B)
	}
	for _, p := range paths {
		if len(p.Points) > 0 {
			extend(p.Points[0])
		}
	}

	if math.IsInf(b.LLx, 0) {
		// Nothing to fit
		b = rect.Rect{LLx: -1, LLy: -1, URx: 1, URy: 1}
	}

	b.LLx -= margin
	b.LLy -= margin
	b.URx += margin
	b.URy += margin
	return Viewport{Bounds: b}
}

// Width returns the horizontal extent of the viewport
func (v Viewport) Width() float64 {
	return v.Bounds.URx - v.Bounds.LLx
}

// Height returns the vertical extent of the viewport
func (v Viewport) Height() float64 {
	return v.Bounds.URy - v.Bounds.LLy
}

// Scale returns the uniform device units per mm that fit the viewport into
// a width x height device area.
func (v Viewport) Scale(width, height float64) float64 {
	sx := width / v.Width()
	sy := height / v.Height()
	return math.Min(sx, sy)
}

// ToDevice maps bench coordinates to a device area with the viewport
// centred and aspect ratio preserved. flipY selects a top-left device origin.
func (v Viewport) ToDevice(width, height float64, flipY bool) matrix.Matrix {
	s := v.Scale(width, height)
	cx := (v.Bounds.LLx + v.Bounds.URx) / 2
	cy := (v.Bounds.LLy + v.Bounds.URy) / 2

	if flipY {
		return matrix.Matrix{s, 0, 0, -s, width/2 - s*cx, height/2 + s*cy}
	}
	return matrix.Matrix{s, 0, 0, s, width/2 - s*cx, height/2 - s*cy}
}

// Outline returns the drawn shape of an element: its segment, plus a short
// tick along the forward normal for kinds whose orientation matters.
func Outline(el optics.Element) path.Path {
	g := el.Geom()
	seg := g.Segment
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{seg.A}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{seg.B}) {
			return
		}
		switch el.Kind() {
		case optics.KindMirror, optics.KindBeamSplitter, optics.KindDichroic:
			mid := seg.Midpoint()
			tick := g.Forward().Mul(seg.Length() / 8)
			if !yield(path.CmdMoveTo, []vec.Vec2{mid}) {
				return
			}
			yield(path.CmdLineTo, []vec.Vec2{mid.Add(tick)})
		}
	}
}

// apply transforms a point by an affine matrix
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Clip trims the segment a-b to the viewport. ok is false if nothing is left.
func (v Viewport) Clip(a, b vec.Vec2) (vec.Vec2, vec.Vec2, bool) {
	// Liang-Barsky
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, a.X - v.Bounds.LLx},
		{d.X, v.Bounds.URx - a.X},
		{-d.Y, a.Y - v.Bounds.LLy},
		{d.Y, v.Bounds.URy - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	return a.Add(d.Mul(t0)), a.Add(d.Mul(t1)), true
}
