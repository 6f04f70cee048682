// SPDX-License-Identifier: EPL-2.0

// Package filestream adapts a file into the read/seek/close source a
// decoding library reads its bytes through.
package filestream

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

type file interface {
	io.Reader
	io.Seeker
	io.Closer
}

// Stream is an io.ReadSeekCloser over one open file.
type Stream struct {
	name   string
	f      file
	closed bool
}

// Open opens path on the host file system.
func Open(path string) (*Stream, error) {
	f, err := os.Open(path) //nolint:gosec // engine-resolved asset path
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return &Stream{name: path, f: f}, nil
}

// OpenFS opens name inside fsys. The file must implement io.Seeker.
func OpenFS(fsys fs.FS, name string) (*Stream, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}

	rs, ok := f.(file)
	if !ok {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", name, ErrNotSeekable)
	}

	return &Stream{name: name, f: rs}, nil
}

// Name is the path the stream was opened with.
func (s *Stream) Name() string { return s.name }

// Read returns io.EOF unwrapped so decoders can compare against it.
func (s *Stream) Read(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}

	n, err := s.f.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("reading %s: %w", s.name, err)
	}

	return n, err
}

func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, ErrClosed
	}

	switch whence {
	case io.SeekStart, io.SeekCurrent, io.SeekEnd:
	default:
		return 0, fmt.Errorf("whence %d: %w", whence, ErrInvalidSeek)
	}

	pos, err := s.f.Seek(offset, whence)
	if err != nil {
		return 0, fmt.Errorf("seeking %s: %w: %w", s.name, ErrInvalidSeek, err)
	}

	return pos, nil
}

// Close releases the file. Calling it again is a no-op.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", s.name, err)
	}

	return nil
}
