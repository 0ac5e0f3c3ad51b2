// SPDX-License-Identifier: EPL-2.0

package script

import "errors"

var (
	ErrNoGenerator = errors.New("script does not define a wave function")
	ErrNotNumber   = errors.New("wave function did not return a number")
)
