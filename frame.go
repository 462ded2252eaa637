package mandel

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Frame is a completed render pass published by an Explorer.
// Each Frame owns its Raster: the explorer keeps its own copy for reuse, so
// editing a published raster does not affect later frames.
type Frame struct {
	// Raster holds the pixels. For reduced frames it is smaller than the
	// display by ReducedScale in each dimension.
	Raster *Raster

	// Viewport is the snapshot the pass rendered.
	Viewport Viewport

	// MaxIterations is the budget the pass used.
	MaxIterations int

	// Reduced reports a reduced-resolution preview.
	Reduced bool

	// Generation increases with every viewport or budget change; a frame
	// is current while its generation matches the Explorer's.
	Generation uint64
}

// Image returns the frame as an image of width x height.
//
// A raster of a different size is scaled with nearest-neighbor sampling,
// which keeps reduced previews blocky and cheap; a raster of the requested
// size is copied as-is.
func (f *Frame) Image(width, height int) *image.RGBA {
	if f.Raster.Width() == width && f.Raster.Height() == height {
		return f.Raster.ToImage()
	}
	return ScaleRaster(f.Raster, width, height, xdraw.NearestNeighbor)
}

// ScaleRaster resamples src to width x height with the given interpolator,
// for example draw.NearestNeighbor or draw.CatmullRom from
// golang.org/x/image/draw.
func ScaleRaster(src *Raster, width, height int, scaler xdraw.Scaler) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
