// Package surface provides the 2D drawing targets the fireworks system renders onto.
package surface

import (
	"image/color"
	"math"
)

// Surface is a drawing target with a current fill colour.
type Surface interface {
	// Clear resets the full area to transparent.
	Clear()
	// SetFill sets the colour used by subsequent fills. Alpha is honoured.
	SetFill(c color.Color)
	// FillCircle fills a circle centred at (x, y).
	FillCircle(x, y, r float64)
}

// HueColor returns a fully saturated colour for hue (degrees) with the given
// alpha in [0, 1]. Equivalent to hsl(hue, 100%, 50%).
func HueColor(hue, alpha float64) color.NRGBA {
	r, g, b := hsvToRgb(hue, 1, 1)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(alpha) * 255))}
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8(math.Round((r + m) * 255)), uint8(math.Round((g + m) * 255)), uint8(math.Round((b + m) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
