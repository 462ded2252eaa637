// Package parallel provides the fork/join infrastructure used to render a
// raster in tiles.
//
// A pixel Region is split recursively into quadrants until its area drops to
// a threshold; each terminal region (a tile) is then computed as one unit of
// work on a WorkerPool. Key properties:
//
//   - Regions are half-open on both axes, so sibling quadrants never share a pixel
//   - Terminal tiles cover their parent region exactly once
//   - The driver returns only after every tile finished (fork/join barrier)
//   - Cancellation is checked once per tile, before any pixel is computed
//
// Tiles write into a buffer shared by the whole pass. Nothing in this package
// locks that buffer: correctness relies on the disjointness of the split.
package parallel

import "fmt"

// Region is a rectangular range of pixels, half-open on both axes:
// columns StartX..EndX-1 and rows StartY..EndY-1.
type Region struct {
	StartX, EndX int
	StartY, EndY int
}

// Rect creates a region covering x in [x0, x1) and y in [y0, y1).
func Rect(x0, y0, x1, y1 int) Region {
	return Region{StartX: x0, EndX: x1, StartY: y0, EndY: y1}
}

// Width returns the number of columns in the region.
func (r Region) Width() int {
	return r.EndX - r.StartX
}

// Height returns the number of rows in the region.
func (r Region) Height() int {
	return r.EndY - r.StartY
}

// Area returns the number of pixels in the region.
func (r Region) Area() int {
	return r.Width() * r.Height()
}

// Empty reports whether the region holds no pixels.
func (r Region) Empty() bool {
	return r.EndX <= r.StartX || r.EndY <= r.StartY
}

// Contains returns true if the pixel (x, y) is within the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.StartX && x < r.EndX &&
		y >= r.StartY && y < r.EndY
}

// In reports whether r lies entirely inside outer.
func (r Region) In(outer Region) bool {
	return r.StartX >= outer.StartX && r.EndX <= outer.EndX &&
		r.StartY >= outer.StartY && r.EndY <= outer.EndY
}

// Quadrants splits the region at its horizontal and vertical midpoints.
//
// The order is top-left, top-right, bottom-left, bottom-right. When a side is
// a single pixel wide the quadrants on one side of that split are empty.
func (r Region) Quadrants() [4]Region {
	midX := (r.StartX + r.EndX) / 2
	midY := (r.StartY + r.EndY) / 2

	return [4]Region{
		{StartX: r.StartX, EndX: midX, StartY: r.StartY, EndY: midY},
		{StartX: midX, EndX: r.EndX, StartY: r.StartY, EndY: midY},
		{StartX: r.StartX, EndX: midX, StartY: midY, EndY: r.EndY},
		{StartX: midX, EndX: r.EndX, StartY: midY, EndY: r.EndY},
	}
}

// String renders the region as [x0,x1)x[y0,y1).
func (r Region) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", r.StartX, r.EndX, r.StartY, r.EndY)
}
