// SPDX-License-Identifier: EPL-2.0

//go:build headless

package main

import (
	"errors"
	"time"

	"github.com/ik5/wtgen/preview"
)

var errNoAudio = errors.New("built without audio output")

func playVoice(*preview.Voice, time.Duration) error {
	return errNoAudio
}
