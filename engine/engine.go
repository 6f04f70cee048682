// SPDX-License-Identifier: EPL-2.0

// Package engine owns the process-wide state of the decoding libraries:
// whether they are set up, and which library serves which format.
//
// Init is idempotent and safe for concurrent first use. Destroy must only be
// called once no session holds an open handle.
package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/ik5/audiodec/audio"
	"github.com/ik5/audiodec/formats/mp3"
	"github.com/ik5/audiodec/formats/vorbis"
)

// DefaultFormat is used for paths without an extension.
const DefaultFormat = "mp3"

var (
	mtx         sync.Mutex
	initialized bool
	registry    = audio.NewRegistry()
	logger      = log.NewWithOptions(os.Stderr, log.Options{Prefix: "engine"})

	// setup fills the registry during Init.
	setup = registerDefaults
)

func registerDefaults(r *audio.Registry) error {
	r.Register("mp3", mp3.Library{})
	r.Register("ogg", vorbis.Library{})

	return nil
}

// SetLogger replaces the logger used for engine diagnostics.
func SetLogger(l *log.Logger) {
	mtx.Lock()
	defer mtx.Unlock()

	logger = l
}

// Init sets the decoding libraries up. Calling it again after a success is a
// no-op; after a failure it retries.
func Init() error {
	mtx.Lock()
	defer mtx.Unlock()

	if initialized {
		return nil
	}

	if err := setup(registry); err != nil {
		registry.Reset()
		logger.Error("Basic setup goes wrong", "error", err)

		return fmt.Errorf("%w: %w", audio.ErrEngineInit, err)
	}

	initialized = true
	logger.Debug("decoder engine ready", "formats", registry.Formats())

	return nil
}

// Destroy releases the libraries so a later Init starts from scratch.
func Destroy() {
	mtx.Lock()
	defer mtx.Unlock()

	if !initialized {
		return
	}

	registry.Reset()
	initialized = false
	logger.Debug("decoder engine released")
}

func Initialized() bool {
	mtx.Lock()
	defer mtx.Unlock()

	return initialized
}

// Register adds or replaces the library for format after Init.
func Register(format string, lib audio.Library) error {
	mtx.Lock()
	defer mtx.Unlock()

	if !initialized {
		return audio.ErrEngineNotInitialized
	}
	registry.Register(strings.ToLower(format), lib)

	return nil
}

// Lookup returns the library registered for format.
func Lookup(format string) (audio.Library, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if !initialized {
		return nil, audio.ErrEngineNotInitialized
	}

	lib, ok := registry.Get(strings.ToLower(format))
	if !ok {
		return nil, fmt.Errorf("%q: %w", format, audio.ErrUnsupportedFormat)
	}

	return lib, nil
}

// Formats lists the registered format keys.
func Formats() []string {
	mtx.Lock()
	defer mtx.Unlock()

	return registry.Formats()
}

// FormatForPath maps a file name to a format key: its lower-cased
// extension, or DefaultFormat when it has none.
func FormatForPath(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return DefaultFormat
	}

	return strings.ToLower(ext)
}
