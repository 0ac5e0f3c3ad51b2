// SPDX-License-Identifier: EPL-2.0

// Command wtpreview plots one slot of a wavetable file in the terminal and
// can play it as a steady tone.
//
//	wtpreview -slot 128 wavetable/fm_sin.wav
//	wtpreview -slot 255 -play 2s -freq 220 wavetable/fm_sin.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/ik5/wtgen"
	"github.com/ik5/wtgen/preview"
	"github.com/ik5/wtgen/wavetable"
)

const fallbackWidth = 80

var errUsage = errors.New("usage: wtpreview [flags] FILE")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	flagSet := flag.NewFlagSet("wtpreview", flag.ContinueOnError)

	slot := flagSet.Int("slot", 0, "slot to show, 0 to 255")
	step := flagSet.Int("step", preview.DefaultStep, "plot every step-th sample")
	height := flagSet.Int("height", 16, "plot height in rows")
	width := flagSet.Int("width", 0, "plot width in columns (0 means terminal width)")
	play := flagSet.Duration("play", 0, "play the slot for this long")
	freq := flagSet.Float64("freq", preview.DefaultFrequency, "playback pitch in hertz")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if flagSet.NArg() != 1 {
		return errUsage
	}

	if *slot < 0 || *slot >= wavetable.Size {
		return fmt.Errorf("-slot %d: %w", *slot, wavetable.ErrSlotOutOfRange)
	}
	index := uint8(*slot)

	table, err := wtgen.LoadTable(flagSet.Arg(0))
	if err != nil {
		return err
	}

	snap := preview.Take(table)

	cols := *width
	if cols <= 0 {
		cols = terminalWidth()
	}

	fmt.Fprintf(stdout, "%s slot %d\n", snap.Name, index)

	if err := preview.RenderASCII(stdout, snap.Plot(index, *step), cols, *height); err != nil {
		return err
	}

	if *play <= 0 {
		return nil
	}

	log.Printf("playing slot %d at %.1f Hz for %s", index, *freq, *play)

	return playVoice(preview.NewVoice(&snap, index, float32(*freq)), *play)
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}

	return w
}
