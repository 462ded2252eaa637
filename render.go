package mandel

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/mandel/internal/cache"
	intcolor "github.com/gogpu/mandel/internal/color"
	"github.com/gogpu/mandel/internal/parallel"
)

const (
	// DefaultTileThreshold is the largest tile area, in pixels, computed
	// without further subdivision.
	DefaultTileThreshold = 100

	// ReducedScale divides both dimensions for a reduced-resolution pass.
	ReducedScale = 4

	// maxPaletteTable bounds the size of a cached palette table. Larger
	// budgets call the palette for every pixel.
	maxPaletteTable = 1 << 16

	// paletteTables is how many budgets keep a palette table.
	paletteTables = 8
)

// PixelRegion is a rectangular range of raster pixels, half-open on both
// axes.
type PixelRegion = parallel.Region

// Region creates the pixel region x in [x0, x1), y in [y0, y1).
func Region(x0, y0, x1, y1 int) PixelRegion {
	return parallel.Rect(x0, y0, x1, y1)
}

// Request describes one render pass.
type Request struct {
	Viewport      Viewport
	MaxIterations int
	Width, Height int
}

// Validate rejects invalid viewports, dimensions below 2x2 and
// non-positive iteration budgets.
func (q Request) Validate() error {
	if err := q.Viewport.Validate(); err != nil {
		return err
	}
	if err := validateDimensions(q.Width, q.Height); err != nil {
		return err
	}
	return validateBudget(q.MaxIterations)
}

func validateBudget(maxIterations int) error {
	if maxIterations <= 0 {
		return fmt.Errorf("%w: %d (must be positive)", ErrInvalidBudget, maxIterations)
	}
	return nil
}

// Renderer computes escape-time rasters by recursive quadrant subdivision.
//
// Regions larger than the tile threshold split into four quadrants that are
// rendered concurrently; smaller regions are computed directly on a fixed
// pool of worker goroutines. The result does not depend on the threshold or
// the number of workers.
//
// Thread safety: Renderer is safe for concurrent use. Concurrent passes
// share the worker pool but never a raster.
type Renderer struct {
	pool      *parallel.WorkerPool
	threshold int
	palette   Palette
	onTile    func(PixelRegion)
	tables    *cache.Cache[int, *intcolor.Table]
}

// NewRenderer creates a renderer and starts its workers.
// Call Close to stop them.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Renderer{
		pool:      parallel.NewWorkerPool(o.workers),
		threshold: o.threshold,
		palette:   o.palette,
		onTile:    o.onTile,
		tables:    cache.New[int, *intcolor.Table](paletteTables),
	}
}

// Close stops the worker goroutines. Renders started afterwards fail with
// parallel.ErrPoolClosed. Close is safe to call multiple times.
func (r *Renderer) Close() {
	r.pool.Close()
}

// Workers returns the number of worker goroutines.
func (r *Renderer) Workers() int {
	return r.pool.Workers()
}

// TileCount returns how many tiles a width x height pass is split into.
func (r *Renderer) TileCount(width, height int) int {
	return parallel.CountLeaves(Region(0, 0, width, height), r.threshold)
}

// TileThreshold returns the largest tile area computed directly.
func (r *Renderer) TileThreshold() int {
	return r.threshold
}

// Render validates req, allocates a new raster and renders every pixel.
//
// A cancelled context stops the pass between tiles; Render then returns the
// context error and no raster, so a partial image is never handed out.
func (r *Renderer) Render(ctx context.Context, req Request) (*Raster, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dst := NewRaster(req.Width, req.Height)
	if err := r.render(ctx, dst, dst.FullRegion(), req.Viewport, req.MaxIterations); err != nil {
		return nil, err
	}
	return dst, nil
}

// RenderFull renders the viewport at width x height.
func (r *Renderer) RenderFull(ctx context.Context, vp Viewport, maxIterations, width, height int) (*Raster, error) {
	return r.Render(ctx, Request{Viewport: vp, MaxIterations: maxIterations, Width: width, Height: height})
}

// RenderReduced renders the viewport at width/ReducedScale x
// height/ReducedScale for quick feedback while the view is changing.
// width and height are the full display size.
func (r *Renderer) RenderReduced(ctx context.Context, vp Viewport, maxIterations, width, height int) (*Raster, error) {
	w, h := ReducedSize(width, height)
	return r.Render(ctx, Request{Viewport: vp, MaxIterations: maxIterations, Width: w, Height: h})
}

// ReducedSize returns the raster size of a reduced pass for a display of
// width x height.
func ReducedSize(width, height int) (int, int) {
	return width / ReducedScale, height / ReducedScale
}

// RenderRegion renders region of dst in place.
//
// Pixels are mapped through vp using the full size of dst, so rendering a
// raster region by region gives the same pixels as rendering it whole.
// Pixels outside region are not touched. Callers rendering disjoint regions
// of one raster concurrently are safe; overlapping regions are a data race.
func (r *Renderer) RenderRegion(ctx context.Context, dst *Raster, region PixelRegion, vp Viewport, maxIterations int) error {
	if err := vp.Validate(); err != nil {
		return err
	}
	if err := validateDimensions(dst.Width(), dst.Height()); err != nil {
		return err
	}
	if err := validateBudget(maxIterations); err != nil {
		return err
	}
	if region.EndX < region.StartX || region.EndY < region.StartY || !region.In(dst.FullRegion()) {
		return fmt.Errorf("%w: %v outside %dx%d raster", ErrInvalidRegion, region, dst.Width(), dst.Height())
	}
	return r.render(ctx, dst, region, vp, maxIterations)
}

func (r *Renderer) render(ctx context.Context, dst *Raster, region PixelRegion, vp Viewport, maxIterations int) error {
	start := time.Now()
	shade := r.shader(maxIterations)

	err := parallel.ForkJoin(ctx, r.pool, region, r.threshold, func(tile PixelRegion) {
		computeTile(dst, tile, vp, maxIterations, shade)
		if r.onTile != nil {
			r.onTile(tile)
		}
	})
	if err != nil {
		Logger().Debug("render pass aborted",
			"region", region.String(),
			"err", err,
			"elapsed", time.Since(start))
		return err
	}

	if l := Logger(); l.Enabled(ctx, slog.LevelDebug) {
		l.Debug("render pass",
			"width", dst.Width(),
			"height", dst.Height(),
			"region", region.String(),
			"viewport", vp.String(),
			"max_iterations", maxIterations,
			"tiles", parallel.CountLeaves(region, r.threshold),
			"workers", r.pool.Workers(),
			"elapsed", time.Since(start))
	}
	return nil
}

// shader returns the color lookup for a budget. Tables are shared by all
// passes with the same budget. A table is built outside the cache lock, so
// two passes that miss together may both build it; either copy is valid.
func (r *Renderer) shader(maxIterations int) func(int) intcolor.ColorU8 {
	if maxIterations <= maxPaletteTable {
		t, ok := r.tables.Get(maxIterations)
		if !ok {
			t = paletteTable(r.palette, maxIterations)
			r.tables.Set(maxIterations, t)
		}
		return t.At
	}
	p := r.palette
	return func(n int) intcolor.ColorU8 {
		c := p(n, maxIterations)
		return intcolor.ColorU8{R: c.R, G: c.G, B: c.B, A: c.A}
	}
}

// computeTile evaluates every pixel of tile, column by column.
func computeTile(dst *Raster, tile PixelRegion, vp Viewport, maxIterations int, shade func(int) intcolor.ColorU8) {
	w, h := dst.Width(), dst.Height()
	for x := tile.StartX; x < tile.EndX; x++ {
		for y := tile.StartY; y < tile.EndY; y++ {
			c := vp.PixelToComplex(x, y, w, h)
			dst.setU8(x, y, shade(IterationsToEscape(c, maxIterations)))
		}
	}
}
