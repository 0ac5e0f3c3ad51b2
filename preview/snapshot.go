// SPDX-License-Identifier: EPL-2.0

package preview

import "github.com/ik5/wtgen/wavetable"

// Snapshot is a frozen copy of a wavetable. Plots and voices read from it
// while the table itself keeps changing.
type Snapshot wavetable.Snapshot

// Take copies t.
func Take(t *wavetable.Wavetable) Snapshot {
	return Snapshot(t.Snapshot())
}
