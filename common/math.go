package common

import "math"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// WithinHalfWidth reports whether x lies strictly inside the interval
// (center-halfWidth, center+halfWidth).
func WithinHalfWidth(x, center, halfWidth float64) bool {
	return math.Abs(x-center) < halfWidth
}

// IntervalsOverlap reports whether two open intervals given as center and
// half-width share any point. Touching intervals do not overlap.
func IntervalsOverlap(c1, h1, c2, h2 float64) bool {
	return math.Abs(c1-c2) < h1+h2
}
