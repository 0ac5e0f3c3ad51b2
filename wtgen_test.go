// SPDX-License-Identifier: EPL-2.0

package wtgen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ik5/wtgen"
	"github.com/ik5/wtgen/audio"
	"github.com/ik5/wtgen/formats/wav"
	"github.com/ik5/wtgen/waveform"
	"github.com/ik5/wtgen/wavetable"
)

func TestFormats(t *testing.T) {
	t.Parallel()

	reg := wtgen.Formats()
	for _, ext := range []string{"wav", "WAV", "aif", "aiff", "mp3", "ogg"} {
		_, ok := reg.Get(ext)
		require.True(t, ok, ext)
	}

	_, ok := reg.Get("flac")
	require.False(t, ok)
}

func TestFMSine(t *testing.T) {
	t.Parallel()

	table := wtgen.FMSine()
	sine := waveform.Sine()

	require.Equal(t, "fm_sin", table.Name())
	require.Equal(t, sine, table.Slot(0))
	require.Equal(t, waveform.FM(sine, 0.5, 3, sine), table.Slot(wavetable.Size-1))

	manual := wavetable.Empty()
	require.NoError(t, manual.SetSlot(0, sine))
	require.NoError(t, manual.SetSlot(wavetable.Size-1, waveform.FM(sine, 0.5, 3, sine)))
	manual.MorphLinear()
	manual.SetName("fm_sin")
	require.Equal(t, manual, table)
}

func TestMorphCopiesInputs(t *testing.T) {
	t.Parallel()

	start := waveform.Sine()
	end := waveform.Saw().Scale(-1)
	table := wtgen.Morph(start, end, "flip")

	start.Samples[512] = 0
	require.InDelta(t, 1, table.Slot(0).Samples[512], 1e-6)
	require.InDelta(t, 0, table.Slot(127).Samples[512], 1e-2)
	require.Equal(t, "flip", table.Name())
}

func writeCycle(t *testing.T, path string, w *waveform.Waveform, repeat int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	writer := wav.NewPCM16Writer(f, 44100)
	for range repeat {
		require.NoError(t, writer.Write(w.Render()))
	}
	require.NoError(t, writer.Close())
}

func TestReadCycle(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sine.wav")
	writeCycle(t, path, waveform.Sine(), 2)

	w, err := wtgen.ReadCycle(path, waveform.Size, 0)
	require.NoError(t, err)

	sine := waveform.Sine()
	for i := range waveform.Size {
		require.InDelta(t, sine.Samples[i], w.Samples[i], 1e-4, "index %d", i)
	}

	_, err = wtgen.ReadCycle(path, waveform.Size+1, 0)
	require.ErrorIs(t, err, waveform.ErrShortRead)
}

func TestReadCycleErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := wtgen.ReadCycle(filepath.Join(dir, "cycle.flac"), 0, 0)
	require.ErrorIs(t, err, audio.ErrUnknownFormat)

	_, err = wtgen.ReadCycle(filepath.Join(dir, "missing.wav"), 0, 0)
	require.ErrorIs(t, err, os.ErrNotExist)

	junk := filepath.Join(dir, "junk.wav")
	require.NoError(t, os.WriteFile(junk, []byte("not a riff file at all, sorry"), 0o644))
	_, err = wtgen.ReadCycle(junk, 0, 0)
	require.ErrorIs(t, err, wav.ErrNotWavFile)
}

func TestLoadTable(t *testing.T) {
	t.Parallel()

	table := wtgen.FMSine()
	path, err := table.ExportTo(t.TempDir())
	require.NoError(t, err)

	loaded, err := wtgen.LoadTable(path)
	require.NoError(t, err)
	require.Equal(t, "fm_sin", loaded.Name())

	for _, p := range []int{0, 128, 255} {
		for s := 0; s < waveform.Size; s += 17 {
			require.InDelta(t, table.Slots[p].Samples[s], loaded.Slots[p].Samples[s], 2e-4)
		}
	}
}
