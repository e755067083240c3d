package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/df07/go-optical-raytracer/pkg/optics"
	"github.com/df07/go-optical-raytracer/pkg/tracer"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Line widths in pixels
const (
	rayWidth     = 1.0
	elementWidth = 3.0
)

// Background is the colour behind the optical bench
var Background = color.NRGBA{R: 12, G: 12, B: 16, A: 255}

// elementColors maps each element kind to its drawing colour
var elementColors = [optics.NumKinds]color.NRGBA{
	optics.KindRefractive:   {R: 120, G: 180, B: 255, A: 255},
	optics.KindLens:         {R: 90, G: 140, B: 255, A: 255},
	optics.KindMirror:       {R: 200, G: 200, B: 210, A: 255},
	optics.KindBeamSplitter: {R: 160, G: 160, B: 120, A: 255},
	optics.KindDichroic:     {R: 220, G: 120, B: 220, A: 255},
	optics.KindWaveplate:    {R: 120, G: 220, B: 160, A: 255},
}

// ElementColor returns the drawing colour of an element kind
func ElementColor(k optics.Kind) color.NRGBA {
	if k < 0 || int(k) >= optics.NumKinds {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return elementColors[k]
}

// RenderPNG rasterizes paths over the elements into a width x height image.
// Each path is drawn in its own colour and alpha.
func RenderPNG(paths []tracer.RayPath, elements []optics.Element, vp Viewport, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	m := vp.ToDevice(float64(width), float64(height), true)
	r := vector.NewRasterizer(width, height)

	for _, p := range paths {
		r.Reset(width, height)
		if addPath(r, vp, m, p.Path(), rayWidth) {
			r.Draw(img, img.Bounds(), image.NewUniform(p.Color), image.Point{})
		}
	}

	// Elements go on top so they stay visible under dense ray fans
	for _, el := range elements {
		r.Reset(width, height)
		if addPath(r, vp, m, Outline(el), elementWidth) {
			r.Draw(img, img.Bounds(), image.NewUniform(ElementColor(el.Kind())), image.Point{})
		}
	}

	return img
}

// addPath strokes every line of p into r. Curves do not occur in ray paths
// and are ignored.
func addPath(r *vector.Rasterizer, vp Viewport, m matrix.Matrix, p path.Path, width float64) bool {
	drawn := false
	var start, current vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			start, current = pts[0], pts[0]
		case path.CmdLineTo:
			if addSegment(r, vp, m, current, pts[0], width) {
				drawn = true
			}
			current = pts[0]
		case path.CmdClose:
			if addSegment(r, vp, m, current, start, width) {
				drawn = true
			}
			current = start
		}
	}
	return drawn
}

// addSegment adds the clipped segment a-b to r as a filled quad of the given
// pixel width. It reports whether anything was added.
func addSegment(r *vector.Rasterizer, vp Viewport, m matrix.Matrix, a, b vec.Vec2, width float64) bool {
	a, b, ok := vp.Clip(a, b)
	if !ok {
		return false
	}
	p0, p1 := apply(m, a), apply(m, b)

	d := p1.Sub(p0)
	length := d.Length()
	if length < 1e-9 {
		return false
	}
	// Half-width offset perpendicular to the segment
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(width / 2 / length)

	r.MoveTo(float32(p0.X+n.X), float32(p0.Y+n.Y))
	r.LineTo(float32(p1.X+n.X), float32(p1.Y+n.Y))
	r.LineTo(float32(p1.X-n.X), float32(p1.Y-n.Y))
	r.LineTo(float32(p0.X-n.X), float32(p0.Y-n.Y))
	r.ClosePath()
	return true
}

// WritePNG encodes img to the named file
func WritePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}
	return f.Close()
}
