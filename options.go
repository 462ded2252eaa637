package mandel

// RendererOption configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Defaults: GOMAXPROCS workers, 100-pixel tiles, HSB palette
//	r := mandel.NewRenderer()
//
//	// Two workers, larger tiles, black and white output
//	r := mandel.NewRenderer(
//	    mandel.WithWorkers(2),
//	    mandel.WithTileThreshold(1024),
//	    mandel.WithPalette(mandel.MonochromePalette),
//	)
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	workers   int
	threshold int
	palette   Palette
	onTile    func(PixelRegion)
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		workers:   0, // GOMAXPROCS
		threshold: DefaultTileThreshold,
		palette:   HSBPalette,
	}
}

// WithWorkers sets the number of goroutines that compute tiles.
// Zero or a negative value selects GOMAXPROCS.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithTileThreshold sets the largest tile area, in pixels, that is computed
// directly instead of being split into quadrants. Values below 1 are raised
// to 1.
func WithTileThreshold(pixels int) RendererOption {
	return func(o *rendererOptions) {
		o.threshold = max(pixels, 1)
	}
}

// WithPalette sets the palette used to color escape counts.
// A nil palette keeps the default.
func WithPalette(p Palette) RendererOption {
	return func(o *rendererOptions) {
		if p != nil {
			o.palette = p
		}
	}
}

// WithTileHook registers fn to be called after each tile is computed.
//
// fn runs on the worker goroutines, concurrently with other tiles, and
// should be quick. It is useful for progress reporting.
func WithTileHook(fn func(tile PixelRegion)) RendererOption {
	return func(o *rendererOptions) {
		o.onTile = fn
	}
}

// ExplorerOption configures an Explorer during creation.
type ExplorerOption func(*explorerOptions)

// explorerOptions holds optional configuration for Explorer creation.
type explorerOptions struct {
	viewport      Viewport
	maxIterations int
	zoomFactor    float64
	renderer      *Renderer
	frameCache    int
}

// defaultExplorerOptions returns the default explorer options.
func defaultExplorerOptions() explorerOptions {
	return explorerOptions{
		viewport:      DefaultViewport,
		maxIterations: DefaultMaxIterations,
		zoomFactor:    DefaultZoomFactor,
		frameCache:    DefaultFrameCache,
	}
}

// WithViewport sets the initial viewport of an Explorer.
func WithViewport(v Viewport) ExplorerOption {
	return func(o *explorerOptions) {
		o.viewport = v
	}
}

// WithMaxIterations sets the initial iteration budget of an Explorer.
func WithMaxIterations(n int) ExplorerOption {
	return func(o *explorerOptions) {
		o.maxIterations = n
	}
}

// WithZoomFactor sets how much one zoom step scales the viewport.
func WithZoomFactor(f float64) ExplorerOption {
	return func(o *explorerOptions) {
		o.zoomFactor = f
	}
}

// WithRenderer makes an Explorer render with r instead of creating its own.
// The Explorer does not close a renderer it was given.
func WithRenderer(r *Renderer) ExplorerOption {
	return func(o *explorerOptions) {
		o.renderer = r
	}
}

// WithFrameCache sets how many rendered frames an Explorer keeps for reuse.
// Zero or a negative value disables the cache.
func WithFrameCache(frames int) ExplorerOption {
	return func(o *explorerOptions) {
		o.frameCache = frames
	}
}
