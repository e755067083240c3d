package plot

import (
	stdcolor "image/color"

	"github.com/df07/go-optical-raytracer/pkg/optics"
	"github.com/df07/go-optical-raytracer/pkg/tracer"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes a single-page vector drawing of the bench. Rays keep their
// colour, faded towards the white page as their intensity drops.
func WritePDF(filename string, paths []tracer.RayPath, elements []optics.Element, vp Viewport, widthPt, heightPt float64) error {
	paper := &pdf.Rectangle{
		URx: widthPt,
		URy: heightPt,
	}

	page, err := document.CreateSinglePage(filename, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Work in bench coordinates from here on; PDF's origin is already bottom-left
	m := vp.ToDevice(widthPt, heightPt, false)
	page.Transform(m)
	scale := m[0]

	page.SetLineWidth(0.5 / scale)
	for _, p := range paths {
		if len(p.Points) < 2 {
			continue
		}
		page.SetStrokeColor(rayColor(p.Color))
		strokePath(page, p.Path())
	}

	page.SetLineWidth(2 / scale)
	page.SetStrokeColor(color.DeviceGray(0))
	for _, el := range elements {
		strokePath(page, Outline(el))
	}

	return page.Close()
}

// strokePath replays p as PDF path operators and strokes it
func strokePath(page *document.Page, p path.Path) {
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Stroke()
}

// rayColor composites c over a white page
func rayColor(c stdcolor.NRGBA) color.DeviceRGB {
	a := float64(c.A) / 255
	blend := func(v uint8) float64 {
		return 1 - a*(1-float64(v)/255)
	}
	return color.DeviceRGB{blend(c.R), blend(c.G), blend(c.B)}
}
