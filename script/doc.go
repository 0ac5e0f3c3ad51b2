// SPDX-License-Identifier: EPL-2.0

// Package script builds waveforms and wavetables from Lua.
//
// A script defines a global function wave(phase, position). phase runs over
// [0, 1) across one cycle and position over [0, 1) across the table:
//
//	function wave(phase, position)
//	    return math.sin(phase * 2 * math.pi) * (1 - position)
//	        + math.sin(phase * 6 * math.pi) * position
//	end
//
// The standard Lua libraries are available.
package script
