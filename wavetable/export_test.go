// SPDX-License-Identifier: EPL-2.0

package wavetable_test

import (
	"bytes"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	gowav "github.com/go-audio/wav"
	"github.com/stretchr/testify/require"

	"github.com/ik5/wtgen/internal/audiotest"
	"github.com/ik5/wtgen/utils"
	"github.com/ik5/wtgen/waveform"
	"github.com/ik5/wtgen/wavetable"
)

func morphedTable(t *testing.T) *wavetable.Wavetable {
	t.Helper()

	table := wavetable.Empty()
	require.NoError(t, table.SetSlot(0, waveform.Sine()))
	require.NoError(t, table.SetSlot(wavetable.Size-1, fmSine()))
	table.MorphLinear()
	table.SetName("fm_sin")

	return table
}

func decodeAll(t *testing.T, data []byte) []int {
	t.Helper()

	dec := gowav.NewDecoder(bytes.NewReader(data))
	require.True(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	require.Equal(t, 1, buf.Format.NumChannels)
	require.Equal(t, wavetable.SampleRate, buf.Format.SampleRate)
	require.Equal(t, uint16(16), dec.BitDepth)
	require.Equal(t, uint16(1), dec.WavAudioFormat)

	return buf.Data
}

func TestEncode(t *testing.T) {
	t.Parallel()

	table := morphedTable(t)

	var out audiotest.Buffer
	require.NoError(t, table.Encode(&out))

	data := decodeAll(t, out.Bytes())
	require.Len(t, data, wavetable.Size*waveform.Size)
	require.Len(t, out.Bytes(), 44+2*wavetable.Size*waveform.Size)

	for k, got := range data {
		v := table.Slots[k/waveform.Size].Samples[k%waveform.Size]
		want := int(int16(int32(v * 32767)))
		if got != want {
			t.Fatalf("sample %d: got %d, want %d", k, got, want)
		}
	}
}

func TestEncodeWrapsWhereRenderClamps(t *testing.T) {
	t.Parallel()

	loud := waveform.Sine().Scale(1.5)

	table := wavetable.Empty()
	require.NoError(t, table.SetSlot(0, loud))

	var out audiotest.Buffer
	require.NoError(t, table.Encode(&out))
	data := decodeAll(t, out.Bytes())

	// 1.5 * 32767 = 49150.5 truncates to 49150, which is -16386 in 16 bits.
	require.Equal(t, -16386, data[512])
	require.Equal(t, 16386, data[1536])
	require.Equal(t, int(utils.Float32ToInt16Wrap(loud.Samples[100])), data[100])

	rendered := loud.Render()
	require.Equal(t, int16(math.MaxInt16), rendered[512])
	require.Equal(t, int16(math.MinInt16), rendered[1536])
}

func TestEncodeWriterFailure(t *testing.T) {
	t.Parallel()

	table := morphedTable(t)

	for _, budget := range []int{0, 100, 200_000} {
		w := &audiotest.FailingWriter{Budget: budget}
		require.Error(t, table.Encode(w), "budget %d", budget)
	}
}

func TestExportTo(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	table := morphedTable(t)

	path, err := table.ExportTo(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "fm_sin.wav"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var want audiotest.Buffer
	require.NoError(t, table.Encode(&want))
	require.Equal(t, want.Bytes(), data)
}

func TestExportUsesOutputDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.Mkdir(wavetable.OutputDir, 0o755))

	table := wavetable.Empty()
	path, err := table.Export()
	require.NoError(t, err)
	require.Equal(t, "wavetable/untitled.wav", path)

	info, err := os.Stat(filepath.Join(dir, "wavetable", "untitled.wav"))
	require.NoError(t, err)
	require.Equal(t, int64(44+2*wavetable.Size*waveform.Size), info.Size())
}

func TestExportMissingDirectory(t *testing.T) {
	t.Parallel()

	table := wavetable.Empty()
	missing := filepath.Join(t.TempDir(), "nope")

	path, err := table.ExportTo(missing)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Equal(t, filepath.Join(missing, "untitled.wav"), path)
}
