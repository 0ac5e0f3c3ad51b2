// SPDX-License-Identifier: EPL-2.0

// Package preview lets a user look at and listen to a wavetable slot.
//
// Everything works on a Snapshot, a value copy of the table, so a preview
// never observes a half-finished edit:
//
//	snap := preview.Take(table)
//	points := snap.Plot(0, preview.DefaultStep)
//	err := preview.RenderASCII(os.Stdout, points, 80, 16)
//
// A Voice turns one slot into an endless tone at VoiceSampleRate.
// Float32Reader adapts it to backends that pull raw float32 bytes:
//
//	voice := preview.NewVoice(&snap, 0, preview.DefaultFrequency)
//	player := otoCtx.NewPlayer(preview.NewFloat32Reader(voice))
package preview
