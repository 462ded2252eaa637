package mandel

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-12

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestNewViewport(t *testing.T) {
	tests := []struct {
		name                       string
		minRe, maxRe, minIm, maxIm float64
		wantErr                    bool
	}{
		{"default", -2, 1, -1.5, 1.5, false},
		{"tiny", -0.75, -0.7499999, 0.1, 0.1000001, false},
		{"empty real", 1, 1, -1, 1, true},
		{"inverted real", 1, -2, -1, 1, true},
		{"empty imaginary", -2, 1, 0, 0, true},
		{"inverted imaginary", -2, 1, 1, -1, true},
		{"NaN", math.NaN(), 1, -1, 1, true},
		{"infinite", math.Inf(-1), 1, -1, 1, true},
		{"range overflow", -math.MaxFloat64, math.MaxFloat64, -1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewViewport(tt.minRe, tt.maxRe, tt.minIm, tt.maxIm)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidViewport) {
					t.Errorf("err = %v, want ErrInvalidViewport", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestViewportRanges(t *testing.T) {
	v := DefaultViewport
	if v.RealRange() != 3 {
		t.Errorf("RealRange() = %g, want 3", v.RealRange())
	}
	if v.ImagRange() != 3 {
		t.Errorf("ImagRange() = %g, want 3", v.ImagRange())
	}
	if c := v.Center(); c != C(-0.5, 0) {
		t.Errorf("Center() = %v, want {-0.5,0}", c)
	}
}

// TestPixelToComplexCorners checks the first and last pixels land on the
// viewport edges.
func TestPixelToComplexCorners(t *testing.T) {
	v := DefaultViewport
	const w, h = 800, 600

	tests := []struct {
		x, y int
		want Complex
	}{
		{0, 0, C(v.MinReal, v.MinImag)},
		{w - 1, 0, C(v.MaxReal, v.MinImag)},
		{0, h - 1, C(v.MinReal, v.MaxImag)},
		{w - 1, h - 1, C(v.MaxReal, v.MaxImag)},
	}
	for _, tt := range tests {
		got := v.PixelToComplex(tt.x, tt.y, w, h)
		if !approxEqual(got.Real, tt.want.Real) || !approxEqual(got.Imag, tt.want.Imag) {
			t.Errorf("PixelToComplex(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPixelToComplexMonotonic(t *testing.T) {
	v := SeahorseValley
	prev := v.PixelToComplex(0, 0, 64, 64)
	for x := 1; x < 64; x++ {
		c := v.PixelToComplex(x, 0, 64, 64)
		if c.Real <= prev.Real {
			t.Fatalf("column %d: real %g not after %g", x, c.Real, prev.Real)
		}
		prev = c
	}
}

// TestZoomAtCentersOnAnchor checks the point under the cursor becomes the
// center of the new viewport and the ranges scale by the factor.
func TestZoomAtCentersOnAnchor(t *testing.T) {
	const w, h = 800, 800
	v := DefaultViewport

	tests := []struct {
		name       string
		x, y       int
		direction  int
		rangeScale float64
	}{
		{"in at center", 400, 400, -1, 1 / 1.2},
		{"in at corner", 0, 0, -1, 1 / 1.2},
		{"in off center", 123, 640, -3, 1 / 1.2},
		{"out", 200, 300, 1, 1.2},
		{"zero direction zooms out", 200, 300, 0, 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchor := v.PixelToComplex(tt.x, tt.y, w, h)
			z, err := v.ZoomAt(tt.x, tt.y, tt.direction, 1.2, w, h)
			if err != nil {
				t.Fatalf("ZoomAt: %v", err)
			}

			center := z.Center()
			if !approxEqual(center.Real, anchor.Real) || !approxEqual(center.Imag, anchor.Imag) {
				t.Errorf("center = %v, want anchor %v", center, anchor)
			}
			if !approxEqual(z.RealRange(), v.RealRange()*tt.rangeScale) {
				t.Errorf("RealRange = %g, want %g", z.RealRange(), v.RealRange()*tt.rangeScale)
			}
			if !approxEqual(z.ImagRange(), v.ImagRange()*tt.rangeScale) {
				t.Errorf("ImagRange = %g, want %g", z.ImagRange(), v.ImagRange()*tt.rangeScale)
			}
		})
	}
}

// TestZoomAtCenterPixelKeepsPoint checks that only the center pixel of an
// odd-sized display maps to the same complex point before and after a zoom.
// Any other anchor is moved to the center.
func TestZoomAtCenterPixelKeepsPoint(t *testing.T) {
	const w, h = 801, 801
	const cx, cy = 400, 400
	v := DefaultViewport

	for _, direction := range []int{-1, 1} {
		z, err := v.ZoomAt(cx, cy, direction, 1.2, w, h)
		if err != nil {
			t.Fatalf("ZoomAt: %v", err)
		}
		before := v.PixelToComplex(cx, cy, w, h)
		after := z.PixelToComplex(cx, cy, w, h)
		if !approxEqual(after.Real, before.Real) || !approxEqual(after.Imag, before.Imag) {
			t.Errorf("direction %d: center pixel maps to %v, want %v", direction, after, before)
		}
		if corner := z.PixelToComplex(0, 0, w, h); approxEqual(corner.Real, v.MinReal) {
			t.Errorf("direction %d: corner pixel kept real %g", direction, corner.Real)
		}
	}

	// Off-center anchor: its point moves to the center pixel.
	anchor := v.PixelToComplex(600, 200, w, h)
	z, err := v.ZoomAt(600, 200, -1, 1.2, w, h)
	if err != nil {
		t.Fatalf("ZoomAt: %v", err)
	}
	if got := z.PixelToComplex(cx, cy, w, h); !approxEqual(got.Real, anchor.Real) || !approxEqual(got.Imag, anchor.Imag) {
		t.Errorf("center pixel maps to %v, want anchor %v", got, anchor)
	}
	if got := z.PixelToComplex(600, 200, w, h); approxEqual(got.Real, anchor.Real) {
		t.Errorf("anchor pixel kept real %g after an off-center zoom", got.Real)
	}
}

func TestZoomAtInThenOut(t *testing.T) {
	v := DefaultViewport
	in, err := v.ZoomAt(399, 399, -1, 2, 799, 799)
	if err != nil {
		t.Fatal(err)
	}
	out, err := in.ZoomAt(399, 399, 1, 2, 799, 799)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(out.RealRange(), v.RealRange()) || !approxEqual(out.ImagRange(), v.ImagRange()) {
		t.Errorf("ranges after in+out = %g x %g, want %g x %g",
			out.RealRange(), out.ImagRange(), v.RealRange(), v.ImagRange())
	}
}

func TestZoomAtErrors(t *testing.T) {
	v := DefaultViewport

	for _, f := range []float64{0, -1.2, math.NaN(), math.Inf(1)} {
		if _, err := v.ZoomAt(10, 10, -1, f, 100, 100); !errors.Is(err, ErrInvalidZoom) {
			t.Errorf("factor %g: err = %v, want ErrInvalidZoom", f, err)
		}
	}
	if _, err := v.ZoomAt(0, 0, -1, 1.2, 1, 100); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("width 1: err = %v, want ErrInvalidDimensions", err)
	}
}

// TestZoomAtPrecisionLimit zooms until float64 can no longer separate the
// bounds and checks the failure is reported instead of producing an empty
// viewport.
func TestZoomAtPrecisionLimit(t *testing.T) {
	v := DefaultViewport
	for i := 0; i < 1000; i++ {
		next, err := v.ZoomAt(250, 330, -1, 2, 800, 800)
		if err != nil {
			if !errors.Is(err, ErrInvalidViewport) {
				t.Fatalf("err = %v, want ErrInvalidViewport", err)
			}
			if err := v.Validate(); err != nil {
				t.Fatalf("last good viewport invalid: %v", err)
			}
			return
		}
		v = next
	}
	t.Fatal("zooming in 1000 times never hit the precision limit")
}

func TestPan(t *testing.T) {
	v := DefaultViewport
	p, err := v.Pan(799, -399, 800, 400)
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(p.MinReal, v.MaxReal) || !approxEqual(p.MaxReal, v.MaxReal+v.RealRange()) {
		t.Errorf("real after full-width pan = [%g, %g]", p.MinReal, p.MaxReal)
	}
	if !approxEqual(p.MaxImag, v.MinImag) {
		t.Errorf("MaxImag after full-height pan up = %g, want %g", p.MaxImag, v.MinImag)
	}
	if !approxEqual(p.RealRange(), v.RealRange()) {
		t.Errorf("pan changed range: %g", p.RealRange())
	}

	if _, err := v.Pan(1, 1, 0, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestLandmarks(t *testing.T) {
	names := LandmarkNames()
	if len(names) != len(Landmarks) {
		t.Fatalf("LandmarkNames() has %d names, want %d", len(names), len(Landmarks))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v", names)
		}
	}

	for _, name := range names {
		v, err := Landmark(name)
		if err != nil {
			t.Errorf("Landmark(%q): %v", name, err)
			continue
		}
		if err := v.Validate(); err != nil {
			t.Errorf("landmark %q invalid: %v", name, err)
		}
	}

	if v, _ := Landmark("full"); v != DefaultViewport {
		t.Errorf("full = %v, want DefaultViewport", v)
	}
	if _, err := Landmark("nowhere"); !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("unknown landmark err = %v, want ErrInvalidViewport", err)
	}
}

func TestViewportString(t *testing.T) {
	if got, want := DefaultViewport.String(), "[-2, 1] x [-1.5, 1.5]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
