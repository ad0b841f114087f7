package pattern

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a hue/saturation/brightness triple. Hue is in degrees,
// saturation and brightness are percentages 0-100.
type Color struct {
	H, S, V float64
}

// RGB8 is a packed 8-bit RGB value, the element type of the fixture's
// color buffer.
type RGB8 [3]uint8

// RGB converts the color to 8-bit RGB through go-colorful's HSV model.
// Hue is wrapped into [0,360), saturation and brightness are clamped.
func (c Color) RGB() RGB8 {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	col := colorful.Hsv(h, clamp(c.S, 0, 100)/100, clamp(c.V, 0, 100)/100)
	r, g, b := col.RGB255()
	return RGB8{r, g, b}
}

// Blend adds each channel, saturating at 255.
func (c RGB8) Blend(o RGB8) RGB8 {
	return RGB8{addClamped(c[0], o[0]), addClamped(c[1], o[1]), addClamped(c[2], o[2])}
}

func addClamped(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
