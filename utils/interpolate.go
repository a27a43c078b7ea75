// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates a Catmull-Rom spline through four consecutive
// samples at fractional position t between y1 and y2 (0 <= t <= 1).
func CubicInterpolate(y0, y1, y2, y3, t float32) float32 {
	// Hermite form with Catmull-Rom tangents at y1 and y2.
	m1 := 0.5 * (y2 - y0)
	m2 := 0.5 * (y3 - y1)
	d := y1 - y2

	t2 := t * t
	t3 := t2 * t

	return y1 + m1*t + (-3*d-2*m1-m2)*t2 + (2*d+m1+m2)*t3
}
