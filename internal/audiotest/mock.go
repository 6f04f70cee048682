// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"fmt"
	"io"

	"github.com/ik5/audiodec/audio"
)

// Library is a test audio.Library that hands out a fixed Handle.
type Library struct {
	Handle *Handle
	Err    error // returned by NewHandle when set
	Allocs int   // NewHandle calls
}

func (l *Library) NewHandle() (audio.Handle, error) {
	l.Allocs++
	if l.Err != nil {
		return nil, l.Err
	}

	return l.Handle, nil
}

// Handle is a test audio.Handle that decodes Frames frames of Format.
// Every byte of frame i holds byte(i), so tests can check where a read
// started after a seek.
type Handle struct {
	Fmt    audio.Format
	Frames int64

	OpenErr   error
	FormatErr error
	LockErr   error
	ScanErr   error
	SeekErr   error

	// ReadErr is returned once the position reaches ReadErrAt.
	ReadErr   error
	ReadErrAt int64

	// SeekSkew is added to the landing frame of every seek.
	SeekSkew int64

	// MaxFramesPerRead caps a single Read, like decoders that hand out one
	// codec frame at a time. Zero means no cap.
	MaxFramesPerRead int64

	pos          int64
	stream       io.Closer
	opened       bool
	locked       bool
	scanned      bool
	Closes       int
	StreamClosed bool
}

// NewHandle returns a handle with frames frames of 16-bit audio.
func NewHandle(sampleRate, channels int, frames int64) *Handle {
	return &Handle{
		Fmt:    audio.Format{SampleRate: sampleRate, Channels: channels, Encoding: audio.EncodingSigned16},
		Frames: frames,
	}
}

func (h *Handle) bytesPerFrame() int {
	bps := 1
	if sf, err := h.Fmt.Encoding.SourceFormat(); err == nil {
		bps = sf.BytesPerSample()
	}

	return bps * max(h.Fmt.Channels, 1)
}

func (h *Handle) Open(rs io.ReadSeekCloser) error {
	h.stream = rs
	if h.OpenErr != nil {
		return h.OpenErr
	}
	h.opened = true

	return nil
}

func (h *Handle) Format() (audio.Format, error) {
	if h.FormatErr != nil {
		return audio.Format{}, h.FormatErr
	}

	return h.Fmt, nil
}

func (h *Handle) LockFormat(f audio.Format) error {
	if h.LockErr != nil {
		return h.LockErr
	}
	if f != h.Fmt {
		return audio.ErrFormatLocked
	}
	h.locked = true

	return nil
}

func (h *Handle) Scan() error {
	if h.ScanErr != nil {
		return h.ScanErr
	}
	h.scanned = true

	return nil
}

func (h *Handle) Length() int64 {
	if !h.scanned {
		return -1
	}

	return h.Frames
}

func (h *Handle) Read(p []byte) (int, error) {
	if !h.opened {
		return 0, audio.ErrNotOpened
	}
	if h.ReadErr != nil && h.pos >= h.ReadErrAt {
		return 0, h.ReadErr
	}
	if h.pos >= h.Frames {
		return 0, io.EOF
	}

	bpf := h.bytesPerFrame()
	frames := min(int64(len(p)/bpf), h.Frames-h.pos)
	if h.ReadErr != nil {
		frames = min(frames, h.ReadErrAt-h.pos)
	}
	if h.MaxFramesPerRead > 0 {
		frames = min(frames, h.MaxFramesPerRead)
	}

	for i := range frames {
		for j := range bpf {
			p[int(i)*bpf+j] = byte(h.pos + i)
		}
	}
	h.pos += frames

	return int(frames) * bpf, nil
}

func (h *Handle) Seek(frame int64) (int64, error) {
	if !h.opened {
		return -1, audio.ErrNotOpened
	}
	if h.SeekErr != nil {
		return -1, h.SeekErr
	}
	if frame < 0 || frame > h.Frames {
		return -1, fmt.Errorf("frame %d: %w", frame, audio.ErrSeekOutOfRange)
	}
	h.pos = frame + h.SeekSkew

	return h.pos, nil
}

func (h *Handle) Tell() int64 { return h.pos }

func (h *Handle) Close() error {
	h.Closes++
	h.opened = false
	if h.stream != nil && !h.StreamClosed {
		h.StreamClosed = true
		return h.stream.Close()
	}

	return nil
}

// Locked reports whether LockFormat succeeded.
func (h *Handle) Locked() bool { return h.locked }

// ReadSeekCloser adds a recording Close to an io.ReadSeeker.
type ReadSeekCloser struct {
	io.ReadSeeker
	Closed bool
}

func NopCloser(rs io.ReadSeeker) *ReadSeekCloser {
	return &ReadSeekCloser{ReadSeeker: rs}
}

func (r *ReadSeekCloser) Close() error {
	r.Closed = true
	return nil
}
