// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audiodec/audio"
	"github.com/ik5/audiodec/utils"
)

const (
	channels       = 2 // go-mp3 always decodes to stereo
	bytesPerSample = 2
	bytesPerFrame  = channels * bytesPerSample
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	Seek(int64, int) (int64, error)
	SampleRate() int
	Length() int64
}

var newReader = func(r io.Reader) (mp3Reader, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, err
	}

	return dec, nil
}

// Library binds go-mp3. The zero value decodes to signed 16-bit PCM;
// EncodingFloat32 converts the same samples to 32-bit floats.
type Library struct {
	Encoding audio.Encoding
}

func (l Library) WithEncoding(enc audio.Encoding) audio.Library {
	l.Encoding = enc
	return l
}

func (l Library) NewHandle() (audio.Handle, error) {
	enc := l.Encoding
	switch enc {
	case audio.EncodingNative:
		enc = audio.EncodingSigned16
	case audio.EncodingSigned16, audio.EncodingFloat32:
	default:
		return nil, fmt.Errorf("mp3 cannot decode to %s: %w", enc, audio.ErrUnsupportedEncoding)
	}

	return &handle{encoding: enc, length: -1}, nil
}

type handle struct {
	encoding audio.Encoding
	dec      mp3Reader
	stream   io.Closer
	pos      int64 // byte offset in the 16-bit output of go-mp3
	length   int64 // frames, -1 until scanned
	scratch  []byte
}

func (h *handle) Open(rs io.ReadSeekCloser) error {
	if h.stream != nil {
		return audio.ErrAlreadyOpened
	}
	h.stream = rs

	dec, err := newReader(rs)
	if err != nil {
		return fmt.Errorf("creating mp3 decoder: %w", err)
	}
	h.dec = dec
	h.pos = 0

	return nil
}

func (h *handle) Format() (audio.Format, error) {
	if h.dec == nil {
		return audio.Format{}, audio.ErrNotOpened
	}

	return audio.Format{
		SampleRate: h.dec.SampleRate(),
		Channels:   channels,
		Encoding:   h.encoding,
	}, nil
}

func (h *handle) LockFormat(f audio.Format) error {
	current, err := h.Format()
	if err != nil {
		return err
	}
	if f != current {
		return fmt.Errorf("requested %+v, negotiated %+v: %w", f, current, audio.ErrFormatLocked)
	}

	return nil
}

// Scan relies on go-mp3 walking every frame header when the source can seek.
func (h *handle) Scan() error {
	if h.dec == nil {
		return audio.ErrNotOpened
	}

	n := h.dec.Length()
	if n < 0 {
		return audio.ErrLengthUnknown
	}
	h.length = n / bytesPerFrame

	return nil
}

func (h *handle) Length() int64 { return h.length }

func (h *handle) Read(p []byte) (int, error) {
	if h.dec == nil {
		return 0, audio.ErrNotOpened
	}

	if h.encoding != audio.EncodingFloat32 {
		n, err := h.dec.Read(p)
		h.pos += int64(n)
		return n, err
	}

	// Every 4-byte float comes from a 2-byte sample.
	want := len(p) / 4 * bytesPerSample
	if cap(h.scratch) < want {
		h.scratch = make([]byte, want)
	}

	n, err := h.dec.Read(h.scratch[:want])
	h.pos += int64(n)

	return utils.PCM16ToFloat32(p, h.scratch[:n]), err
}

func (h *handle) Seek(frame int64) (int64, error) {
	if h.dec == nil {
		return -1, audio.ErrNotOpened
	}

	off, err := h.dec.Seek(frame*bytesPerFrame, io.SeekStart)
	if err != nil {
		return -1, fmt.Errorf("seeking mp3 to frame %d: %w", frame, err)
	}
	h.pos = off

	return off / bytesPerFrame, nil
}

func (h *handle) Tell() int64 { return h.pos / bytesPerFrame }

func (h *handle) Close() error {
	h.dec = nil
	h.scratch = nil
	if h.stream == nil {
		return nil
	}

	err := h.stream.Close()
	h.stream = nil
	if err != nil {
		return fmt.Errorf("closing mp3 stream: %w", err)
	}

	return nil
}
