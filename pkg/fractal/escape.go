// Package fractal evaluates the Mandelbrot set and turns it into pixels
// or text.
package fractal

import "math/cmplx"

const (
	// MaxIteration is the iteration cap shared by every renderer.
	MaxIteration = 50
	// Infinity is the magnitude past which an orbit counts as escaped.
	Infinity = 2.0
)

// Evaluate iterates z = z^2 + c from z = 0 and reports the 0-based
// iteration on which |z| first exceeded Infinity.
// escaped is false when the orbit stayed bounded for MaxIteration steps.
func Evaluate(c complex128) (iteration int, escaped bool) {
	var z complex128
	for it := 0; it < MaxIteration; it += 1 {
		z = z*z + c
		if cmplx.Abs(z) > Infinity {
			return it, true
		}
	}
	return MaxIteration, false
}

// Member reports whether c is in the set.
func Member(c complex128) bool {
	_, escaped := Evaluate(c)
	return !escaped
}
