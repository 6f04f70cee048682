// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"slices"
	"sync"
)

// Handle is one decode stream allocated by a Library.
type Handle interface {
	// Open installs rs as the byte source of the handle. From this call on
	// the handle owns rs and closes it in Close, even when Open fails.
	Open(rs io.ReadSeekCloser) error
	// Format reports the negotiated output format.
	Format() (Format, error)
	// LockFormat pins the output format. f must equal the negotiated format.
	LockFormat(f Format) error
	// Scan walks the stream so that Length is exact.
	Scan() error
	// Length is the total frame count. Valid after Scan.
	Length() int64
	// Read decodes interleaved PCM into p. Returns io.EOF at end of stream.
	Read(p []byte) (int, error)
	// Seek moves to an absolute frame and returns the frame it landed on.
	Seek(frame int64) (int64, error)
	// Tell returns the decode position in frames.
	Tell() int64
	// Close releases the handle and its byte source. Safe to call twice.
	Close() error
}

// Library allocates decode handles.
type Library interface {
	NewHandle() (Handle, error)
}

// EncodingSelector is implemented by libraries that can negotiate more than
// one output encoding.
type EncodingSelector interface {
	WithEncoding(enc Encoding) Library
}

// Registry for libraries by format key (e.g., "mp3", "ogg").
type Registry struct {
	libs map[string]Library

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		libs: make(map[string]Library),
		mtx:  &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, lib Library) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.libs[format] = lib
}

func (r *Registry) Get(format string) (Library, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	lib, ok := r.libs[format]
	return lib, ok
}

// Formats returns the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.libs))
	for k := range r.libs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// Reset drops every registered library.
func (r *Registry) Reset() {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	clear(r.libs)
}
