// Command mandel renders the Mandelbrot set to an image file.
//
// It plays the part of an interactive viewer without a window: the viewport
// starts at a named landmark, each -zoom flag is applied like a scroll-wheel
// step at a pixel, and the result is rendered either at full resolution or
// as the reduced preview a viewer would show while zooming.
//
//	mandel -region seahorse -iterations 1000 -o seahorse.png
//	mandel -zoom 400,300,-1 -zoom 420,310,-1 -reduced -o preview.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/mandel"
)

type config struct {
	width, height int
	iterations    int
	region        string
	zooms         zoomSteps
	factor        float64
	reduced       bool
	palette       string
	workers       int
	threshold     int
	caption       bool
	output        string
	timeout       time.Duration
	verbose       bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "width", 800, "image width")
	flag.IntVar(&cfg.height, "height", 800, "image height")
	flag.IntVar(&cfg.iterations, "iterations", mandel.DefaultMaxIterations, "maximum iterations per point")
	flag.StringVar(&cfg.region, "region", "full", "start region: "+strings.Join(mandel.LandmarkNames(), ", "))
	flag.Var(&cfg.zooms, "zoom", "zoom step `x,y,dir` (dir < 0 zooms in); repeatable")
	flag.Float64Var(&cfg.factor, "factor", mandel.DefaultZoomFactor, "zoom factor per step")
	flag.BoolVar(&cfg.reduced, "reduced", false, "render the reduced preview, scaled up to the image size")
	flag.StringVar(&cfg.palette, "palette", "hsb", "palette: hsb, mono, grayscale")
	flag.IntVar(&cfg.workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	flag.IntVar(&cfg.threshold, "threshold", mandel.DefaultTileThreshold, "largest tile area in pixels")
	flag.BoolVar(&cfg.caption, "caption", false, "draw the viewport and budget onto the image")
	flag.StringVar(&cfg.output, "o", "mandel.png", "output file (.png, .bmp, .tif)")
	flag.DurationVar(&cfg.timeout, "timeout", 0, "abort rendering after this long (0 = no limit)")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging")
	flag.Parse()

	logger := newLogger(cfg.verbose)
	mandel.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}
}

// newLogger writes human-readable text to a terminal and JSON otherwise.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if term.IsTerminal(int(os.Stderr.Fd())) { //nolint:gosec // fd fits in int
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func run(ctx context.Context, cfg config, logger *slog.Logger) error {
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	start, err := mandel.Landmark(cfg.region)
	if err != nil {
		return err
	}
	palette, ok := mandel.Palettes[cfg.palette]
	if !ok {
		return fmt.Errorf("unknown palette %q", cfg.palette)
	}
	if _, err := mandel.FormatFromPath(cfg.output); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)

	var tilesDone atomic.Int64
	renderer := mandel.NewRenderer(
		mandel.WithWorkers(cfg.workers),
		mandel.WithTileThreshold(cfg.threshold),
		mandel.WithPalette(palette),
		mandel.WithTileHook(func(mandel.PixelRegion) { tilesDone.Add(1) }),
	)
	defer renderer.Close()

	explorer, err := mandel.NewExplorer(cfg.width, cfg.height,
		mandel.WithViewport(start),
		mandel.WithMaxIterations(cfg.iterations),
		mandel.WithZoomFactor(cfg.factor),
		mandel.WithRenderer(renderer),
	)
	if err != nil {
		return err
	}
	defer explorer.Close()

	for _, z := range cfg.zooms {
		v, err := explorer.Zoom(z.x, z.y, z.direction)
		if err != nil {
			return fmt.Errorf("zoom at (%d,%d): %w", z.x, z.y, err)
		}
		logger.Debug("zoomed", "x", z.x, "y", z.y, "direction", z.direction, "viewport", v.String())
	}

	w, h := cfg.width, cfg.height
	if cfg.reduced {
		w, h = mandel.ReducedSize(w, h)
	}
	logger.Info("rendering",
		"size", p.Sprintf("%dx%d", w, h),
		"pixels", p.Sprintf("%d", w*h),
		"tiles", p.Sprintf("%d", renderer.TileCount(w, h)),
		"workers", renderer.Workers(),
		"viewport", explorer.Viewport().String())

	began := time.Now()
	var frame *mandel.Frame
	if cfg.reduced {
		frame, err = explorer.Preview(ctx)
	} else {
		frame, err = explorer.Refine(ctx)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("rendering interrupted after %d tiles: %w", tilesDone.Load(), err)
		}
		return err
	}
	elapsed := time.Since(began)

	img := frame.Image(cfg.width, cfg.height)
	if cfg.caption {
		drawCaption(img, captionText(p, frame, elapsed))
	}

	if err := mandel.SaveImage(cfg.output, img); err != nil {
		return err
	}

	logger.Info("saved",
		"file", cfg.output,
		"tiles", p.Sprintf("%d", tilesDone.Load()),
		"elapsed", elapsed.Round(time.Millisecond).String())
	return nil
}
