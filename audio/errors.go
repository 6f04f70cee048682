// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrEngineInit           = errors.New("decoder engine setup failed")
	ErrEngineNotInitialized = errors.New("decoder engine not initialized")
	ErrUnsupportedFormat    = errors.New("unsupported audio format")
	ErrUnsupportedEncoding  = errors.New("unsupported sample encoding")
	ErrInvalidFormat        = errors.New("invalid negotiated format")
	ErrFormatLocked         = errors.New("output format is locked")
	ErrLengthUnknown        = errors.New("stream length unknown")
	ErrNotOpened            = errors.New("decoder not opened")
	ErrAlreadyOpened        = errors.New("handle already opened")
	ErrDecode               = errors.New("decode failed")
	ErrShortBuffer          = errors.New("buffer too small for requested frames")
	ErrSeekOutOfRange       = errors.New("seek frame out of range")
	ErrInexactSeek          = errors.New("seek did not land on requested frame")
)
