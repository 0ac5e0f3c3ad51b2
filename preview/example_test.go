// SPDX-License-Identifier: EPL-2.0

package preview_test

import (
	"fmt"
	"strings"

	"github.com/ik5/wtgen/preview"
	"github.com/ik5/wtgen/waveform"
	"github.com/ik5/wtgen/wavetable"
)

func ExampleRenderASCII() {
	table := wavetable.Empty()
	_ = table.SetSlot(0, waveform.Sine())

	snap := preview.Take(table)

	var out strings.Builder
	if err := preview.RenderASCII(&out, snap.Plot(0, 64), 35, 7); err != nil {
		fmt.Println(err)
		return
	}

	// dots keep the blank cells visible
	fmt.Print(strings.ReplaceAll(out.String(), " ", "."))
	// Output:
	// ......*******......................
	// ....**.......**....................
	// ..**...........**..................
	// -*---------------*-----------------
	// ..................**...........**..
	// ....................**.......**....
	// ......................*******......
}
