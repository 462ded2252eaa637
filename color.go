package mandel

import (
	"image/color"

	intcolor "github.com/gogpu/mandel/internal/color"
)

// Palette maps an escape count to a pixel color.
//
// iterations is the value returned by IterationsToEscape and is equal to
// maxIterations for points that never escaped. A Palette must be a pure
// function of its arguments: renderers cache it per pass.
type Palette func(iterations, maxIterations int) color.RGBA

// InSetColor is the color of points that never escaped.
var InSetColor = color.RGBA{A: 255}

// HSBPalette cycles the hue every 256 iterations at full saturation, with a
// brightness of n/(n+8) that rises toward 1 away from the set boundary.
// Points in the set are InSetColor.
func HSBPalette(iterations, maxIterations int) color.RGBA {
	if iterations == maxIterations {
		return InSetColor
	}
	n := float64(iterations)
	return toRGBA(intcolor.HSB(n/256.0, 1, n/(n+8.0)))
}

// ColorFor is the default palette.
func ColorFor(iterations, maxIterations int) color.RGBA {
	return HSBPalette(iterations, maxIterations)
}

// MonochromePalette paints the set black and everything else white.
func MonochromePalette(iterations, maxIterations int) color.RGBA {
	if iterations == maxIterations {
		return InSetColor
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

// GrayscalePalette uses the HSBPalette brightness without hue.
func GrayscalePalette(iterations, maxIterations int) color.RGBA {
	if iterations == maxIterations {
		return InSetColor
	}
	n := float64(iterations)
	return toRGBA(intcolor.Gray(n / (n + 8.0)))
}

// Palettes maps names to the built-in palettes.
var Palettes = map[string]Palette{
	"hsb":        HSBPalette,
	"mono":       MonochromePalette,
	"grayscale":  GrayscalePalette,
	"monochrome": MonochromePalette,
}

// paletteTable precomputes p for every count of a budget.
func paletteTable(p Palette, maxIterations int) *intcolor.Table {
	return intcolor.NewTable(maxIterations, func(n int) intcolor.ColorU8 {
		c := p(n, maxIterations)
		return intcolor.ColorU8{R: c.R, G: c.G, B: c.B, A: c.A}
	})
}

func toRGBA(c intcolor.ColorU8) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
