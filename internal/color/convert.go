package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSB converts hue, saturation and brightness to an opaque color.
//
// Hue is a fraction of a full turn; only its fractional part is used, so 1.25
// and 0.25 name the same hue. Saturation and brightness are clamped to [0,1].
func HSB(hue, saturation, brightness float64) ColorU8 {
	h := hue - math.Floor(hue)
	c := colorful.Hsv(h*360, clampUnit(saturation), clampUnit(brightness))
	r, g, b := c.Clamped().RGB255()
	return Opaque(r, g, b)
}

// Gray returns the opaque gray of brightness v in [0,1].
func Gray(v float64) ColorU8 {
	l := clampAndRound(v)
	return Opaque(l, l, l)
}

func clampUnit(v float64) float64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

// clampAndRound clamps a value to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float64) uint8 {
	v = clampUnit(v)
	return uint8(v*255.0 + 0.5)
}
