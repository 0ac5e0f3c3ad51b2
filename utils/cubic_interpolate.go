// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates the Catmull-Rom spline through four consecutive
// points y0..y3 at fraction x in [0, 1] between y1 and y2.
// x = 0 yields y1 exactly and x = 1 yields y2.
func CubicInterpolate(y0, y1, y2, y3, x float32) float32 {
	c3 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	c2 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c1 := -0.5*y0 + 0.5*y2

	return ((c3*x+c2)*x+c1)*x + y1
}
