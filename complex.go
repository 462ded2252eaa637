package mandel

import "strconv"

// Complex is an immutable complex number.
// Every operation returns a new value; the receiver is never modified.
type Complex struct {
	Real, Imag float64
}

// C creates a complex number from its real and imaginary parts.
func C(re, im float64) Complex {
	return Complex{Real: re, Imag: im}
}

// Add returns the component-wise sum c + b.
func (c Complex) Add(b Complex) Complex {
	return Complex{Real: c.Real + b.Real, Imag: c.Imag + b.Imag}
}

// Square returns c², computed as (re² - im², 2·re·im).
func (c Complex) Square() Complex {
	return Complex{
		Real: c.Real*c.Real - c.Imag*c.Imag,
		Imag: 2 * c.Real * c.Imag,
	}
}

// MagnitudeSquared returns re² + im².
func (c Complex) MagnitudeSquared() float64 {
	return c.Real*c.Real + c.Imag*c.Imag
}

// MagnitudeSquaredExceeds reports whether |c|² is strictly greater than
// |threshold|². NaN magnitudes never exceed; infinite ones always do.
func (c Complex) MagnitudeSquaredExceeds(threshold Complex) bool {
	return c.MagnitudeSquared() > threshold.MagnitudeSquared()
}

// Complex128 converts c to the builtin complex type.
func (c Complex) Complex128() complex128 {
	return complex(c.Real, c.Imag)
}

// String renders c as {re,im}.
func (c Complex) String() string {
	return "{" + strconv.FormatFloat(c.Real, 'g', -1, 64) + "," +
		strconv.FormatFloat(c.Imag, 'g', -1, 64) + "}"
}
