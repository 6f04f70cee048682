// SPDX-License-Identifier: EPL-2.0

package session

import (
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/ik5/audiodec/audio"
)

var defaultLogger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "AudioDecoder"})

type options struct {
	logger   *log.Logger
	fsys     fs.FS
	library  audio.Library
	encoding audio.Encoding
}

type Option func(*options)

// WithLogger sets the sink for open, read and seek diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFS resolves paths inside fsys instead of the host file system.
// Files in fsys must implement io.Seeker.
func WithFS(fsys fs.FS) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// WithLibrary bypasses the engine registry and decodes every path with lib.
func WithLibrary(lib audio.Library) Option {
	return func(o *options) {
		o.library = lib
	}
}

// WithEncoding asks the library for enc instead of its native encoding.
func WithEncoding(enc audio.Encoding) Option {
	return func(o *options) {
		o.encoding = enc
	}
}
