// SPDX-License-Identifier: EPL-2.0

package preview

import "errors"

var ErrBadGrid = errors.New("plot grid needs at least one row and one column")
