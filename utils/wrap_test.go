// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestWrapIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, n, want int
	}{
		{0, 2048, 0},
		{2047, 2048, 2047},
		{2048, 2048, 0},
		{4097, 2048, 1},
		{-1, 2048, 2047},
		{-2048, 2048, 0},
		{-2049, 2048, 2047},
		{-5, 4, 3},
	}

	for _, tt := range tests {
		if got := WrapIndex(tt.x, tt.n); got != tt.want {
			t.Errorf("WrapIndex(%d, %d) = %d, want %d", tt.x, tt.n, got, tt.want)
		}
	}
}

func TestWrapIndexPeriodic(t *testing.T) {
	t.Parallel()

	for x := -5000; x < 5000; x += 7 {
		if WrapIndex(x, 2048) != WrapIndex(x+2048, 2048) {
			t.Fatalf("WrapIndex not periodic at %d", x)
		}
	}
}
