// Package mandel renders the Mandelbrot set with parallel escape-time
// iteration.
//
// # Overview
//
// Every pixel of a raster is mapped onto a rectangle of the complex plane
// (a Viewport) and iterated with z ← z² + c until it escapes or the
// iteration budget runs out. The escape count is colored through a Palette.
//
// # Quick Start
//
//	import "github.com/gogpu/mandel"
//
//	r := mandel.NewRenderer()
//	defer r.Close()
//
//	raster, err := r.RenderFull(ctx, mandel.DefaultViewport, 500, 800, 800)
//	if err != nil {
//	    return err
//	}
//	raster.SavePNG("mandel.png")
//
// # Parallelism
//
// A Renderer splits the raster into quadrants recursively until a region
// holds at most the tile threshold of pixels (100 by default). Quadrants
// are processed concurrently and terminal tiles run on a fixed pool of
// worker goroutines with work stealing. Tiles never share pixels, so they
// write into the raster without locking, and the output is identical for
// any threshold or worker count.
//
// # Interactive Use
//
// Explorer holds the state of a viewer: the current Viewport, the budget
// and the last published Frame. Zoom keeps the point under the cursor at the
// center of the new view. Preview renders at a quarter of the display size
// for quick feedback and Refine renders at full size. Any change cancels
// passes still running for the old view; their results are never shown.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left pixel
//   - Columns map MinReal..MaxReal left to right
//   - Rows map MinImag..MaxImag top to bottom
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive render pass
// diagnostics through log/slog.
package mandel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
