// SPDX-License-Identifier: EPL-2.0

package utils

// WrapIndex maps any integer x into [0, n) using the Euclidean remainder,
// so negative positions count back from the end. n must be positive.
func WrapIndex(x, n int) int {
	r := x % n
	if r < 0 {
		r += n
	}

	return r
}
