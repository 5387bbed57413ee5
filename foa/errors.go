// SPDX-License-Identifier: EPL-2.0

package foa

import "errors"

var (
	ErrBadMatrixShape = errors.New("decode matrix must be a non-empty multiple of 4 coefficients")
	ErrSpeakerCount   = errors.New("matrix and filter speaker counts must match the decoder")
	ErrFilterLength   = errors.New("filter length must match the decoder tap count")
)
