// SPDX-License-Identifier: EPL-2.0

package wavetable

import "errors"

var (
	ErrSlotOutOfRange = errors.New("slot index out of range")
	ErrShortTable     = errors.New("source ended before the table was full")
)
