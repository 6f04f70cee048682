// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrInvalidFormat = errors.New("invalid WAV format")
	ErrPartialFrame  = errors.New("PCM data does not end on a frame boundary")
)
