// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	ErrEmptyCycle = errors.New("cycle has no samples")
	ErrShortRead  = errors.New("source ended before a full cycle was read")
)
