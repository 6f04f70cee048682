// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audiodec/audio"
	"github.com/ik5/audiodec/utils"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	// Read returns the number of float32 values decoded, always a multiple
	// of Channels.
	Read([]float32) (int, error)
	Length() int64
	Position() int64
	SetPosition(int64) error
}

var newReader = func(r io.Reader) (oggReader, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, err
	}

	return dec, nil
}

// Library binds github.com/jfreymuth/oggvorbis. The zero value keeps the
// decoder's native 32-bit float output; EncodingSigned16 converts it.
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
		enc = audio.EncodingFloat32
	case audio.EncodingSigned16, audio.EncodingFloat32:
	default:
		return nil, fmt.Errorf("vorbis cannot decode to %s: %w", enc, audio.ErrUnsupportedEncoding)
	}

	return &handle{encoding: enc, length: -1}, nil
}

type handle struct {
	encoding audio.Encoding
	dec      oggReader
	stream   io.Closer
	channels int
	length   int64
	frameBuf []float32
}

func (h *handle) Open(rs io.ReadSeekCloser) error {
	if h.stream != nil {
		return audio.ErrAlreadyOpened
	}
	h.stream = rs

	dec, err := newReader(rs)
	if err != nil {
		return fmt.Errorf("creating vorbis decoder: %w", err)
	}
	h.dec = dec
	h.channels = dec.Channels()

	return nil
}

func (h *handle) Format() (audio.Format, error) {
	if h.dec == nil {
		return audio.Format{}, audio.ErrNotOpened
	}

	return audio.Format{
		SampleRate: h.dec.SampleRate(),
		Channels:   h.channels,
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

func (h *handle) Scan() error {
	if h.dec == nil {
		return audio.ErrNotOpened
	}

	// oggvorbis reports an unknown length as zero.
	n := h.dec.Length()
	if n <= 0 {
		return audio.ErrLengthUnknown
	}
	h.length = n

	return nil
}

func (h *handle) Length() int64 { return h.length }

func (h *handle) bytesPerSample() int {
	if h.encoding == audio.EncodingSigned16 {
		return 2
	}

	return 4
}

func (h *handle) Read(p []byte) (int, error) {
	if h.dec == nil {
		return 0, audio.ErrNotOpened
	}

	samples := len(p) / h.bytesPerSample()
	if h.channels > 0 {
		samples -= samples % h.channels
	}
	if samples == 0 {
		return 0, nil
	}

	if cap(h.frameBuf) < samples {
		h.frameBuf = make([]float32, samples)
	}
	h.frameBuf = h.frameBuf[:samples]

	n, err := h.dec.Read(h.frameBuf)
	if h.encoding == audio.EncodingSigned16 {
		return utils.Float32ToPCM16(p, h.frameBuf[:n]), err
	}

	return utils.Float32ToPCMFloat32(p, h.frameBuf[:n]), err
}

func (h *handle) Seek(frame int64) (int64, error) {
	if h.dec == nil {
		return -1, audio.ErrNotOpened
	}

	if err := h.dec.SetPosition(frame); err != nil {
		return -1, fmt.Errorf("seeking vorbis to frame %d: %w", frame, err)
	}

	return h.dec.Position(), nil
}

func (h *handle) Tell() int64 {
	if h.dec == nil {
		return 0
	}

	return h.dec.Position()
}

func (h *handle) Close() error {
	h.dec = nil
	h.frameBuf = nil
	if h.stream == nil {
		return nil
	}

	err := h.stream.Close()
	h.stream = nil
	if err != nil {
		return fmt.Errorf("closing vorbis stream: %w", err)
	}

	return nil
}
