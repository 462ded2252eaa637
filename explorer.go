package mandel

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gogpu/mandel/internal/cache"
)

const (
	// DefaultZoomFactor is how much one zoom step scales the viewport.
	DefaultZoomFactor = 1.2

	// DefaultFrameCache is how many published frames an Explorer keeps for
	// reuse.
	DefaultFrameCache = 16
)

// frameKey identifies the pixels of a pass for one display size.
type frameKey struct {
	viewport      Viewport
	maxIterations int
	reduced       bool
}

// Explorer is the rendering half of an interactive viewer.
//
// A viewer forwards zoom, pan and budget changes to the Explorer, asks for a
// reduced Preview while the user is still moving and for a full Refine once
// input settles (the delay is the viewer's choice), and displays Frame().
//
// Every change bumps a generation counter and cancels passes started for
// older generations. Each pass renders into its own raster and publishes it
// only if it is still current, so a stale preview can never overwrite a
// newer image and a reduced frame never replaces a full one of the same
// generation.
//
// Recently rendered frames are kept in a small LRU cache, so returning to
// an earlier view, typically after Reset, republishes the old pixels without
// rendering. The cache holds private copies of the rasters it publishes.
//
// Thread safety: Explorer is safe for concurrent use.
type Explorer struct {
	width, height int
	zoomFactor    float64

	renderer     *Renderer
	ownsRenderer bool
	frames       *cache.Cache[frameKey, *Frame] // nil when disabled

	mu            sync.Mutex
	state         *ViewportState
	maxIterations int
	generation    uint64
	genCtx        context.Context
	genCancel     context.CancelFunc

	frame atomic.Pointer[Frame]
}

// NewExplorer creates an explorer for a display of width x height pixels.
func NewExplorer(width, height int, opts ...ExplorerOption) (*Explorer, error) {
	o := defaultExplorerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateDimensions(width, height); err != nil {
		return nil, err
	}
	if err := validateBudget(o.maxIterations); err != nil {
		return nil, err
	}
	if o.zoomFactor <= 0 || math.IsNaN(o.zoomFactor) || math.IsInf(o.zoomFactor, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidZoom, o.zoomFactor)
	}
	state, err := NewViewportState(o.viewport)
	if err != nil {
		return nil, err
	}

	e := &Explorer{
		width:         width,
		height:        height,
		zoomFactor:    o.zoomFactor,
		renderer:      o.renderer,
		state:         state,
		maxIterations: o.maxIterations,
	}
	if e.renderer == nil {
		e.renderer = NewRenderer()
		e.ownsRenderer = true
	}
	if o.frameCache > 0 {
		e.frames = cache.New[frameKey, *Frame](o.frameCache)
	}
	e.genCtx, e.genCancel = context.WithCancel(context.Background())
	return e, nil
}

// Close cancels running passes and stops the renderer if the explorer
// created it.
func (e *Explorer) Close() {
	e.mu.Lock()
	e.genCancel()
	e.mu.Unlock()

	if e.ownsRenderer {
		e.renderer.Close()
	}
}

// Size returns the display dimensions.
func (e *Explorer) Size() (width, height int) {
	return e.width, e.height
}

// Viewport returns a snapshot of the current viewport.
func (e *Explorer) Viewport() Viewport {
	return e.state.Snapshot()
}

// MaxIterations returns the current iteration budget.
func (e *Explorer) MaxIterations() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.maxIterations
}

// Generation returns the current generation.
func (e *Explorer) Generation() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

// SetMaxIterations changes the iteration budget.
func (e *Explorer) SetMaxIterations(n int) error {
	if err := validateBudget(n); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if n != e.maxIterations {
		e.maxIterations = n
		e.advanceLocked()
	}
	return nil
}

// Zoom zooms one step around pixel (x, y): in for a negative direction,
// out otherwise.
func (e *Explorer) Zoom(x, y, direction int) (Viewport, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, err := e.state.ZoomAt(x, y, direction, e.zoomFactor, e.width, e.height)
	if err != nil {
		return v, err
	}
	e.advanceLocked()
	return v, nil
}

// Pan shifts the view by (dx, dy) display pixels.
func (e *Explorer) Pan(dx, dy int) (Viewport, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, err := e.state.Pan(dx, dy, e.width, e.height)
	if err != nil {
		return v, err
	}
	e.advanceLocked()
	return v, nil
}

// Reset restores the initial viewport.
func (e *Explorer) Reset() Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.state.Reset()
	e.advanceLocked()
	return v
}

// advanceLocked starts a new generation and cancels passes of the old one.
// e.mu must be held.
func (e *Explorer) advanceLocked() {
	e.generation++
	e.genCancel()
	e.genCtx, e.genCancel = context.WithCancel(context.Background())
}

// Preview renders the current view at reduced resolution and publishes it.
func (e *Explorer) Preview(ctx context.Context) (*Frame, error) {
	return e.pass(ctx, true)
}

// Refine renders the current view at full resolution and publishes it.
func (e *Explorer) Refine(ctx context.Context) (*Frame, error) {
	return e.pass(ctx, false)
}

// Frame returns the most recently published frame, or nil before the
// first pass completes.
func (e *Explorer) Frame() *Frame {
	return e.frame.Load()
}

func (e *Explorer) pass(ctx context.Context, reduced bool) (*Frame, error) {
	e.mu.Lock()
	vp := e.state.Snapshot()
	maxIterations := e.maxIterations
	gen := e.generation
	genCtx := e.genCtx
	e.mu.Unlock()

	key := frameKey{viewport: vp, maxIterations: maxIterations, reduced: reduced}
	if cached, ok := e.cachedFrame(key); ok {
		f := *cached
		f.Raster = cached.Raster.Clone()
		f.Generation = gen
		if !e.publish(&f) {
			return nil, ErrSuperseded
		}
		Logger().Debug("frame reused", "generation", gen, "reduced", reduced, "viewport", vp.String())
		return &f, nil
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	stop := context.AfterFunc(genCtx, func() { cancel(ErrSuperseded) })
	defer stop()

	var (
		raster *Raster
		err    error
	)
	if reduced {
		raster, err = e.renderer.RenderReduced(ctx, vp, maxIterations, e.width, e.height)
	} else {
		raster, err = e.renderer.RenderFull(ctx, vp, maxIterations, e.width, e.height)
	}
	if err != nil {
		if errors.Is(context.Cause(ctx), ErrSuperseded) {
			Logger().Warn("render pass superseded", "generation", gen, "reduced", reduced)
			return nil, ErrSuperseded
		}
		return nil, err
	}

	f := &Frame{
		Raster:        raster,
		Viewport:      vp,
		MaxIterations: maxIterations,
		Reduced:       reduced,
		Generation:    gen,
	}
	if e.frames != nil {
		kept := *f
		kept.Raster = raster.Clone()
		e.frames.Set(key, &kept)
	}
	if !e.publish(f) {
		Logger().Warn("frame discarded", "generation", gen, "reduced", reduced)
		return nil, ErrSuperseded
	}

	Logger().Info("frame published",
		"generation", gen,
		"reduced", reduced,
		"width", raster.Width(),
		"height", raster.Height(),
		"viewport", vp.String())
	return f, nil
}

func (e *Explorer) cachedFrame(key frameKey) (*Frame, bool) {
	if e.frames == nil {
		return nil, false
	}
	return e.frames.Get(key)
}

// CacheStats reports hits and misses of the frame cache. It is zero when
// the cache is disabled.
func (e *Explorer) CacheStats() cache.Stats {
	if e.frames == nil {
		return cache.Stats{}
	}
	return e.frames.Stats()
}

// ClearCache drops every cached frame, for example after the caller has
// edited a published raster or to release memory. Statistics are kept.
func (e *Explorer) ClearCache() {
	if e.frames != nil {
		e.frames.Clear()
	}
}

// publish swaps f in as the current frame if it is still current and does
// not downgrade a full frame of the same generation to a preview.
func (e *Explorer) publish(f *Frame) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if f.Generation != e.generation {
		return false
	}
	if cur := e.frame.Load(); cur != nil && cur.Generation == f.Generation && !cur.Reduced && f.Reduced {
		return false
	}
	e.frame.Store(f)
	return true
}
