// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package main

import (
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/wtgen/preview"
)

func playVoice(v *preview.Voice, d time.Duration) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   v.SampleRate(),
		ChannelCount: v.Channels(),
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return fmt.Errorf("opening audio output: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(preview.NewFloat32Reader(v))
	defer player.Close()

	player.Play()
	time.Sleep(d)

	if err := player.Err(); err != nil {
		return fmt.Errorf("playback: %w", err)
	}

	return nil
}
