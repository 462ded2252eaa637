// Package color converts escape-time shading parameters into 8-bit colors.
//
// Palettes in the mandel package describe a color by hue, saturation and
// brightness; this package turns those into RGBA bytes and caches a whole
// palette as a lookup table indexed by iteration count.
package color

// ColorU8 represents a color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B, A uint8
}

// Opaque creates a fully opaque color.
func Opaque(r, g, b uint8) ColorU8 {
	return ColorU8{R: r, G: g, B: b, A: 255}
}

// Black is the opaque black used for points that never escaped.
var Black = Opaque(0, 0, 0)
