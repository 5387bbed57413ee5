// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrBadOption = errors.New("invalid engine option")
)
