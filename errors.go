package mandel

import "errors"

// Errors returned when a render request, viewport or zoom is rejected.
// They are wrapped with the offending values; test with errors.Is.
var (
	// ErrInvalidViewport reports a degenerate or non-finite viewport
	// (MinReal >= MaxReal or MinImag >= MaxImag).
	ErrInvalidViewport = errors.New("mandel: invalid viewport")

	// ErrInvalidDimensions reports an image narrower or shorter than 2 pixels.
	// Mapping pixels onto the plane divides by width-1 and height-1.
	ErrInvalidDimensions = errors.New("mandel: invalid image dimensions")

	// ErrInvalidBudget reports a non-positive iteration budget.
	ErrInvalidBudget = errors.New("mandel: invalid iteration budget")

	// ErrInvalidZoom reports a zoom factor that is not a finite positive number.
	ErrInvalidZoom = errors.New("mandel: invalid zoom factor")

	// ErrInvalidRegion reports a pixel region that is inverted or extends
	// past the target raster.
	ErrInvalidRegion = errors.New("mandel: invalid pixel region")
)

// ErrSuperseded is returned by Explorer passes whose viewport or budget was
// changed before they finished. Their raster is dropped, never published.
var ErrSuperseded = errors.New("mandel: render pass superseded")
