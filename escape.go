package mandel

import (
	"context"
	"log/slog"
)

// DefaultMaxIterations is the iteration budget used when none is configured.
const DefaultMaxIterations = 500

// EscapeThreshold bounds the orbit: a point escapes once |z|² exceeds
// |EscapeThreshold|², which for (2,2) is 8 rather than the textbook 4.
// The wider bound shifts the color bands slightly outward but does not
// change which points stay bounded.
var EscapeThreshold = Complex{Real: 2, Imag: 2}

// IterationsToEscape iterates z ← z² + c from z = 0 and returns the index
// of the first iteration whose result exceeds EscapeThreshold.
//
// A point that stays bounded for the whole budget returns maxIterations, so
// the result is always in [0, maxIterations] and equality with the budget
// means "kept in the set". Evaluation stops at the first escape.
func IterationsToEscape(c Complex, maxIterations int) int {
	var z Complex
	for i := 0; i < maxIterations; i++ {
		z = z.Square().Add(c)
		if z.MagnitudeSquaredExceeds(EscapeThreshold) {
			return i
		}
	}
	return maxIterations
}

// InSet reports whether c stays bounded for maxIterations iterations.
func InSet(c Complex, maxIterations int) bool {
	n := IterationsToEscape(c, maxIterations)
	inSet := n == maxIterations

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		if inSet {
			l.Debug("point within set", "c", c, "iterations", maxIterations)
		} else {
			l.Debug("point escaped", "c", c, "iterations", n)
		}
	}
	return inSet
}
