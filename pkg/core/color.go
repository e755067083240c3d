package core

import (
	"image/color"
	"math"
)

// WavelengthToColor approximates the perceived colour of monochromatic light.
// Wavelengths outside 380-780 nm map to a neutral grey so they stay visible.
func WavelengthToColor(nm float64) color.NRGBA {
	var r, g, b float64
	switch {
	case nm >= 380 && nm < 440:
		r, g, b = -(nm-440)/(440-380), 0, 1
	case nm >= 440 && nm < 490:
		r, g, b = 0, (nm-440)/(490-440), 1
	case nm >= 490 && nm < 510:
		r, g, b = 0, 1, -(nm-510)/(510-490)
	case nm >= 510 && nm < 580:
		r, g, b = (nm-510)/(580-510), 1, 0
	case nm >= 580 && nm < 645:
		r, g, b = 1, -(nm-645)/(645-580), 0
	case nm >= 645 && nm <= 780:
		r, g, b = 1, 0, 0
	default:
		return color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	}

	// Intensity falls off near the limits of vision
	factor := 1.0
	switch {
	case nm < 420:
		factor = 0.3 + 0.7*(nm-380)/(420-380)
	case nm > 700:
		factor = 0.3 + 0.7*(780-nm)/(780-700)
	}

	const gamma = 0.8
	channel := func(c float64) uint8 {
		if c <= 0 {
			return 0
		}
		return uint8(math.Round(255 * math.Pow(c*factor, gamma)))
	}
	return color.NRGBA{R: channel(r), G: channel(g), B: channel(b), A: 255}
}

// WithIntensity returns c with its alpha scaled by intensity clamped to [0, 1]
func WithIntensity(c color.NRGBA, intensity float64) color.NRGBA {
	if math.IsNaN(intensity) || intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	c.A = uint8(math.Round(255 * intensity))
	return c
}
