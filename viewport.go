package mandel

import (
	"fmt"
	"math"
)

// Viewport is the rectangle of the complex plane mapped onto the raster.
// The real axis runs left to right across columns, the imaginary axis top
// to bottom across rows.
//
// Viewport is a plain value: render passes take a copy, so a zoom applied
// while a pass is running never changes the pixels of that pass.
type Viewport struct {
	MinReal, MaxReal float64
	MinImag, MaxImag float64
}

// DefaultViewport frames the whole set: [-2, 1] x [-1.5, 1.5].
var DefaultViewport = Viewport{MinReal: -2, MaxReal: 1, MinImag: -1.5, MaxImag: 1.5}

// NewViewport creates a viewport, rejecting degenerate or non-finite bounds
// with ErrInvalidViewport.
func NewViewport(minReal, maxReal, minImag, maxImag float64) (Viewport, error) {
	v := Viewport{MinReal: minReal, MaxReal: maxReal, MinImag: minImag, MaxImag: maxImag}
	if err := v.Validate(); err != nil {
		return Viewport{}, err
	}
	return v, nil
}

// Validate checks MinReal < MaxReal, MinImag < MaxImag and that every bound
// and both ranges are finite.
func (v Viewport) Validate() error {
	for _, f := range [...]float64{v.MinReal, v.MaxReal, v.MinImag, v.MaxImag, v.RealRange(), v.ImagRange()} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non-finite bounds %s", ErrInvalidViewport, v)
		}
	}
	if v.MinReal >= v.MaxReal {
		return fmt.Errorf("%w: real range [%g, %g] is empty", ErrInvalidViewport, v.MinReal, v.MaxReal)
	}
	if v.MinImag >= v.MaxImag {
		return fmt.Errorf("%w: imaginary range [%g, %g] is empty", ErrInvalidViewport, v.MinImag, v.MaxImag)
	}
	return nil
}

// RealRange returns MaxReal - MinReal.
func (v Viewport) RealRange() float64 {
	return v.MaxReal - v.MinReal
}

// ImagRange returns MaxImag - MinImag.
func (v Viewport) ImagRange() float64 {
	return v.MaxImag - v.MinImag
}

// Center returns the midpoint of the viewport.
func (v Viewport) Center() Complex {
	return Complex{
		Real: v.MinReal + v.RealRange()/2,
		Imag: v.MinImag + v.ImagRange()/2,
	}
}

// PixelToComplex maps pixel (x, y) of a width x height image onto the plane.
//
// Column 0 maps to MinReal and column width-1 to MaxReal; rows map the same
// way onto the imaginary axis. width and height must be at least 2.
func (v Viewport) PixelToComplex(x, y, width, height int) Complex {
	return Complex{
		Real: v.MinReal + float64(x)*v.RealRange()/float64(width-1),
		Imag: v.MinImag + float64(y)*v.ImagRange()/float64(height-1),
	}
}

// ZoomAt scales the viewport around the point under pixel (anchorX, anchorY).
//
// A negative direction zooms in (ranges shrink by 1/zoomFactor), anything
// else zooms out (ranges grow by zoomFactor). The new viewport is centered
// on the anchor point.
func (v Viewport) ZoomAt(anchorX, anchorY, direction int, zoomFactor float64, width, height int) (Viewport, error) {
	if err := validateDimensions(width, height); err != nil {
		return Viewport{}, err
	}
	if zoomFactor <= 0 || math.IsNaN(zoomFactor) || math.IsInf(zoomFactor, 0) {
		return Viewport{}, fmt.Errorf("%w: %g", ErrInvalidZoom, zoomFactor)
	}

	anchor := v.PixelToComplex(anchorX, anchorY, width, height)

	factor := zoomFactor
	if direction < 0 {
		factor = 1 / zoomFactor
	}

	realRange := v.RealRange() * factor
	imagRange := v.ImagRange() * factor

	zoomed := Viewport{
		MinReal: anchor.Real - realRange/2,
		MaxReal: anchor.Real + realRange/2,
		MinImag: anchor.Imag - imagRange/2,
		MaxImag: anchor.Imag + imagRange/2,
	}
	if err := zoomed.Validate(); err != nil {
		// Ranges underflowed to zero or overflowed to infinity.
		return Viewport{}, err
	}
	return zoomed, nil
}

// Pan shifts the viewport by (dx, dy) pixels of a width x height image.
// Positive dx moves the view toward larger real values, positive dy toward
// larger imaginary values.
func (v Viewport) Pan(dx, dy, width, height int) (Viewport, error) {
	if err := validateDimensions(width, height); err != nil {
		return Viewport{}, err
	}

	shiftReal := float64(dx) * v.RealRange() / float64(width-1)
	shiftImag := float64(dy) * v.ImagRange() / float64(height-1)

	panned := Viewport{
		MinReal: v.MinReal + shiftReal,
		MaxReal: v.MaxReal + shiftReal,
		MinImag: v.MinImag + shiftImag,
		MaxImag: v.MaxImag + shiftImag,
	}
	if err := panned.Validate(); err != nil {
		return Viewport{}, err
	}
	return panned, nil
}

// String renders the viewport as [minRe, maxRe] x [minIm, maxIm].
func (v Viewport) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", v.MinReal, v.MaxReal, v.MinImag, v.MaxImag)
}

// validateDimensions rejects images with fewer than 2 columns or rows.
func validateDimensions(width, height int) error {
	if width < 2 || height < 2 {
		return fmt.Errorf("%w: %dx%d (minimum 2x2)", ErrInvalidDimensions, width, height)
	}
	return nil
}
