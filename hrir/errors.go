// SPDX-License-Identifier: EPL-2.0

package hrir

import "errors"

var (
	ErrBadSetShape     = errors.New("flat filter data does not match speakers and taps")
	ErrNilDataset      = errors.New("dataset must not be nil")
	ErrBadFilterLength = errors.New("dataset filter length must be positive")
)
