// SPDX-License-Identifier: EPL-2.0

package filestream

import "errors"

var (
	ErrClosed      = errors.New("file stream closed")
	ErrNotSeekable = errors.New("file does not support seeking")
	ErrInvalidSeek = errors.New("invalid seek")
)
