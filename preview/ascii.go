// SPDX-License-Identifier: EPL-2.0

package preview

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

const (
	dot  = '*'
	axis = '-'
)

// RenderASCII draws points onto a width by height character grid and writes
// it to w, one line per row. The horizontal axis marks y = 0.5. Points
// outside the unit frame are pinned to its edge and NaN points are dropped.
func RenderASCII(w io.Writer, points []Point, width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrBadGrid, width, height)
	}

	grid := make([][]byte, height)
	for r := range grid {
		fill := byte(' ')
		if r == height/2 {
			fill = axis
		}
		grid[r] = bytes.Repeat([]byte{fill}, width)
	}

	for _, p := range points {
		if p.X != p.X || p.Y != p.Y {
			continue
		}

		col := cell(p.X, width)
		row := cell(p.Y, height)
		grid[row][col] = dot
	}

	bw := bufio.NewWriter(w)
	for _, line := range grid {
		bw.Write(line)
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing plot: %w", err)
	}

	return nil
}

func cell(v float32, n int) int {
	c := int(v * float32(n))

	return min(max(c, 0), n-1)
}
