package mandel

import (
	"bytes"
	"image"
	"image/color"

	intcolor "github.com/gogpu/mandel/internal/color"
)

// Raster is a rectangular RGBA pixel buffer, one byte per channel, rows
// stored top to bottom in a single contiguous slice.
//
// A render pass allocates its own Raster and tiles write into it directly.
// Writes need no locking because no two tiles of a pass share a pixel; a
// Raster must not be written from two passes at once.
type Raster struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewRaster creates a new raster with the given dimensions, initially
// transparent black.
func NewRaster(width, height int) *Raster {
	width = max(width, 0)
	height = max(height, 0)
	return &Raster{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the raster.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the height of the raster.
func (r *Raster) Height() int {
	return r.height
}

// Data returns the raw pixel data (RGBA format).
func (r *Raster) Data() []uint8 {
	return r.data
}

// Set sets the color of a single pixel.
// Out-of-bounds coordinates are ignored.
func (r *Raster) Set(x, y int, c color.RGBA) {
	if !r.FullRegion().Contains(x, y) {
		return
	}
	i := (y*r.width + x) * 4
	r.data[i+0] = c.R
	r.data[i+1] = c.G
	r.data[i+2] = c.B
	r.data[i+3] = c.A
}

// setU8 is Set for the palette lookup table; callers stay in bounds.
func (r *Raster) setU8(x, y int, c intcolor.ColorU8) {
	i := (y*r.width + x) * 4
	r.data[i+0] = c.R
	r.data[i+1] = c.G
	r.data[i+2] = c.B
	r.data[i+3] = c.A
}

// RGBAAt returns the color of a single pixel.
// Out-of-bounds coordinates return transparent black.
func (r *Raster) RGBAAt(x, y int) color.RGBA {
	if !r.FullRegion().Contains(x, y) {
		return color.RGBA{}
	}
	i := (y*r.width + x) * 4
	return color.RGBA{R: r.data[i+0], G: r.data[i+1], B: r.data[i+2], A: r.data[i+3]}
}

// FullRegion returns the pixel region covering the whole raster.
func (r *Raster) FullRegion() PixelRegion {
	return Region(0, 0, r.width, r.height)
}

// Equal reports whether both rasters have the same size and pixels.
func (r *Raster) Equal(other *Raster) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.width == other.width && r.height == other.height &&
		bytes.Equal(r.data, other.data)
}

// Clone returns a deep copy of the raster.
func (r *Raster) Clone() *Raster {
	c := &Raster{width: r.width, height: r.height, data: make([]uint8, len(r.data))}
	copy(c.data, r.data)
	return c
}

// ToImage copies the raster into a new image.RGBA.
func (r *Raster) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	copy(img.Pix, r.data)
	return img
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color {
	return r.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// ColorModel implements the image.Image interface.
// Palettes produce opaque colors, so straight and premultiplied alpha agree.
func (r *Raster) ColorModel() color.Model {
	return color.RGBAModel
}
