// SPDX-License-Identifier: EPL-2.0

// Command wtgen builds a wavetable and exports it as a WAV file.
//
// Without arguments it writes the sine to FM sine morph to
// wavetable/fm_sin.wav. The end slots can come from audio files, or a Lua
// script can generate every slot:
//
//	wtgen -start pluck.wav -offset 1200 -name pluck_fm
//	wtgen -script bright.lua -name bright -normalize
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ik5/wtgen"
	"github.com/ik5/wtgen/formats/wav"
	"github.com/ik5/wtgen/script"
	"github.com/ik5/wtgen/waveform"
	"github.com/ik5/wtgen/wavetable"
)

var errUsage = errors.New("wtgen takes no positional arguments")

type options struct {
	name      string
	out       string
	amp       float64
	harmonic  int
	start     string
	end       string
	offset    int
	length    int
	script    string
	normalize bool
	render    int
}

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("wtgen", flag.ContinueOnError)

	var opts options
	flagSet.StringVar(&opts.name, "name", wtgen.FMSineName, "wavetable name, used as the file stem")
	flagSet.StringVar(&opts.out, "out", wavetable.OutputDir, "existing directory to write into")
	flagSet.Float64Var(&opts.amp, "amp", 0.5, "FM depth of the default last slot")
	flagSet.IntVar(&opts.harmonic, "harmonic", 3, "FM modulator harmonic of the default last slot")
	flagSet.StringVar(&opts.start, "start", "", "audio file holding the first slot cycle (default sine)")
	flagSet.StringVar(&opts.end, "end", "", "audio file holding the last slot cycle (default FM sine)")
	flagSet.IntVar(&opts.offset, "offset", 0, "frames to skip in -start and -end")
	flagSet.IntVar(&opts.length, "length", 0, "cycle length in frames for -start and -end (0 means 2048)")
	flagSet.StringVar(&opts.script, "script", "", "Lua file defining wave(phase, position), replaces the morph")
	flagSet.BoolVar(&opts.normalize, "normalize", false, "normalize every slot before export")
	flagSet.IntVar(&opts.render, "render", -1, "also write the clamped single-cycle render of this slot")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if flagSet.NArg() > 0 {
		return fmt.Errorf("%w: %q", errUsage, flagSet.Args())
	}

	if opts.render >= wavetable.Size {
		return fmt.Errorf("-render %d: %w", opts.render, wavetable.ErrSlotOutOfRange)
	}

	table, err := build(opts)
	if err != nil {
		return err
	}

	if opts.normalize {
		table.NormalizeAll()
	}

	path, err := table.ExportTo(opts.out)
	if err != nil {
		return err
	}

	log.Printf("wrote %d slots of %d samples to %s", wavetable.Size, waveform.Size, path)

	if opts.render < 0 {
		return nil
	}

	path, err = renderSlot(table, opts.render, opts.out)
	if err != nil {
		return err
	}

	log.Printf("wrote slot %d to %s", opts.render, path)

	return nil
}

func build(opts options) (*wavetable.Wavetable, error) {
	if opts.script != "" {
		log.Printf("generating %s from %s", opts.name, opts.script)

		s, err := script.LoadFile(opts.script)
		if err != nil {
			return nil, err
		}
		defer s.Close()

		return s.Wavetable(opts.name)
	}

	sine := waveform.Sine()

	start, err := cycle(opts.start, opts, sine)
	if err != nil {
		return nil, err
	}

	end, err := cycle(opts.end, opts, waveform.FM(sine, float32(opts.amp), opts.harmonic, sine))
	if err != nil {
		return nil, err
	}

	log.Printf("morphing %s", opts.name)

	return wtgen.Morph(start, end, opts.name), nil
}

func cycle(path string, opts options, fallback *waveform.Waveform) (*waveform.Waveform, error) {
	if path == "" {
		return fallback, nil
	}

	w, err := wtgen.ReadCycle(path, opts.offset, opts.length)
	if err != nil {
		return nil, fmt.Errorf("reading cycle from %s: %w", path, err)
	}

	return w, nil
}

func renderSlot(table *wavetable.Wavetable, slot int, dir string) (path string, err error) {
	path = filepath.Join(dir, table.Name()+"_"+strconv.Itoa(slot)+wavetable.Ext)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating %s: %w", path, err)
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := wav.WriteWAV16(file, wavetable.SampleRate, table.Slot(slot).Render()); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}
