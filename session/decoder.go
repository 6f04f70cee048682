// SPDX-License-Identifier: EPL-2.0

package session

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/ik5/audiodec/audio"
	"github.com/ik5/audiodec/engine"
	"github.com/ik5/audiodec/internal/filestream"
)

// Decoder is a decode session over one file at a time. A Decoder is not
// safe for concurrent use; create one per concurrent stream.
type Decoder struct {
	opts options

	handle  audio.Handle
	cleanup runtime.Cleanup
	path    string
	opened  bool

	sampleRate    int
	channels      int
	bytesPerFrame int
	sourceFormat  audio.SourceFormat
	encoding      audio.Encoding
	totalFrames   int64
}

// New returns a closed session and sets the decoder engine up if needed.
// An engine failure is logged here and reported again by Open.
func New(opts ...Option) *Decoder {
	o := options{logger: defaultLogger}
	for _, opt := range opts {
		opt(&o)
	}

	_ = engine.Init()

	return &Decoder{opts: o}
}

func closeLeaked(h audio.Handle) {
	_ = h.Close()
}

// Open decodes path. On failure every resource acquired so far is released
// and the session stays closed. Opening an open session closes it first.
func (d *Decoder) Open(path string) error {
	if d.opened {
		if err := d.Close(); err != nil {
			d.opts.logger.Warn("closing previous stream", "path", d.path, "error", err)
		}
	}

	logger := d.opts.logger.With("path", path, "format", engine.FormatForPath(path))

	if err := engine.Init(); err != nil {
		logger.Error("decoder engine unavailable", "error", err)
		return err
	}

	lib, err := d.library(path)
	if err != nil {
		logger.Error("no decoding library", "error", err)
		return fmt.Errorf("opening %s: %w", path, err)
	}

	h, err := lib.NewHandle()
	if err != nil {
		logger.Error("Basic setup goes wrong", "error", err)
		return fmt.Errorf("allocating decode handle: %w", err)
	}

	ok := false
	defer func() {
		if ok {
			return
		}
		if err := h.Close(); err != nil {
			logger.Debug("releasing handle after failed open", "error", err)
		}
	}()

	stream, err := d.openStream(path)
	if err != nil {
		logger.Error("Trouble opening file", "error", err)
		return err
	}

	// The handle owns stream from here on.
	if err := h.Open(stream); err != nil {
		logger.Error("Trouble opening stream", "error", err)
		return fmt.Errorf("opening %s: %w", path, err)
	}

	format, err := h.Format()
	if err == nil {
		err = format.Validate()
	}
	if err != nil {
		logger.Error("Trouble negotiating format", "error", err)
		return fmt.Errorf("negotiating format of %s: %w", path, err)
	}

	sf, err := format.Encoding.SourceFormat()
	if err != nil {
		logger.Error("Bad encoding", "encoding", format.Encoding)
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := h.LockFormat(format); err != nil {
		logger.Error("Trouble locking format", "error", err)
		return fmt.Errorf("locking format of %s: %w", path, err)
	}

	if err := h.Scan(); err != nil {
		logger.Error("Trouble scanning length", "error", err)
		return fmt.Errorf("scanning %s: %w", path, err)
	}

	d.handle = h
	d.path = path
	d.sampleRate = format.SampleRate
	d.channels = format.Channels
	d.encoding = format.Encoding
	d.sourceFormat = sf
	d.bytesPerFrame = sf.BytesPerSample() * format.Channels
	d.totalFrames = max(h.Length(), 0)
	d.cleanup = runtime.AddCleanup(d, closeLeaked, h)
	d.opened = true
	ok = true

	logger.Debug("opened",
		"rate", d.sampleRate,
		"channels", d.channels,
		"format", d.sourceFormat,
		"frames", d.totalFrames,
	)

	return nil
}

func (d *Decoder) library(path string) (audio.Library, error) {
	lib := d.opts.library
	if lib == nil {
		var err error
		if lib, err = engine.Lookup(engine.FormatForPath(path)); err != nil {
			return nil, err
		}
	}

	if d.opts.encoding == audio.EncodingNative {
		return lib, nil
	}

	sel, ok := lib.(audio.EncodingSelector)
	if !ok {
		return nil, fmt.Errorf("library cannot select %s: %w", d.opts.encoding, audio.ErrUnsupportedEncoding)
	}

	return sel.WithEncoding(d.opts.encoding), nil
}

func (d *Decoder) openStream(path string) (*filestream.Stream, error) {
	if d.opts.fsys != nil {
		return filestream.OpenFS(d.opts.fsys, path)
	}

	return filestream.Open(path)
}

// Read decodes up to frames frames into buf, which must hold at least
// frames*BytesPerFrame bytes. It returns the whole frames produced, fewer
// than asked only at the end of the stream. The end of the stream is
// reported as (0, io.EOF); a decode failure as an error wrapping
// audio.ErrDecode, after the frames decoded before it.
func (d *Decoder) Read(buf []byte, frames int) (int, error) {
	if !d.opened {
		return 0, audio.ErrNotOpened
	}
	if frames <= 0 {
		return 0, nil
	}

	if frames > len(buf)/d.bytesPerFrame {
		return 0, fmt.Errorf("%d frames of %d bytes, have %d bytes: %w", frames, d.bytesPerFrame, len(buf), audio.ErrShortBuffer)
	}
	want := frames * d.bytesPerFrame

	got := 0
	for got < want {
		n, err := d.handle.Read(buf[got:want])
		got += n

		if errors.Is(err, io.EOF) {
			if got == 0 {
				return 0, io.EOF
			}
			break
		}
		if err != nil {
			d.opts.logger.Error("Trouble decoding", "path", d.path, "error", err)
			return got / d.bytesPerFrame, fmt.Errorf("%w: %w", audio.ErrDecode, err)
		}
		if n == 0 {
			break
		}
	}

	return got / d.bytesPerFrame, nil
}

// ReadFull reads exactly frames frames. It returns io.ErrUnexpectedEOF when
// the stream ends part way and io.EOF when nothing was left.
func (d *Decoder) ReadFull(buf []byte, frames int) (int, error) {
	n, err := d.Read(buf, frames)
	if err != nil {
		return n, err
	}

	switch {
	case n == frames:
		return n, nil
	case n == 0:
		return 0, io.EOF
	default:
		return n, io.ErrUnexpectedEOF
	}
}

// Seek moves to an absolute frame. It fails unless the library lands on
// exactly that frame; the session stays usable either way.
func (d *Decoder) Seek(frame int64) error {
	if !d.opened {
		return audio.ErrNotOpened
	}
	if frame < 0 || frame >= d.totalFrames {
		return fmt.Errorf("frame %d of %d: %w", frame, d.totalFrames, audio.ErrSeekOutOfRange)
	}

	got, err := d.handle.Seek(frame)
	if err != nil {
		d.opts.logger.Error("Trouble seeking", "path", d.path, "frame", frame, "error", err)
		return fmt.Errorf("seeking to frame %d: %w", frame, err)
	}
	if got != frame {
		return fmt.Errorf("seek to frame %d landed on %d: %w", frame, got, audio.ErrInexactSeek)
	}

	return nil
}

// Tell returns the decode position in frames, or 0 when closed.
func (d *Decoder) Tell() int64 {
	if !d.opened {
		return 0
	}

	return d.handle.Tell()
}

// Close releases the handle and its file and clears the stream metadata.
// Closing a closed session is a no-op.
func (d *Decoder) Close() error {
	if !d.opened {
		return nil
	}

	d.cleanup.Stop()
	path := d.path
	err := d.handle.Close()

	// Nothing of the closed stream stays visible through the accessors.
	*d = Decoder{opts: d.opts}

	if err != nil {
		d.opts.logger.Warn("Trouble closing", "path", path, "error", err)
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}

func (d *Decoder) IsOpened() bool                   { return d.opened }
func (d *Decoder) Path() string                     { return d.path }
func (d *Decoder) SampleRate() int                  { return d.sampleRate }
func (d *Decoder) Channels() int                    { return d.channels }
func (d *Decoder) BytesPerFrame() int               { return d.bytesPerFrame }
func (d *Decoder) SourceFormat() audio.SourceFormat { return d.sourceFormat }
func (d *Decoder) Encoding() audio.Encoding         { return d.encoding }
func (d *Decoder) TotalFrames() int64               { return d.totalFrames }

// Duration is the playing time of the whole stream.
func (d *Decoder) Duration() time.Duration {
	if d.sampleRate <= 0 {
		return 0
	}

	return time.Duration(d.totalFrames) * time.Second / time.Duration(d.sampleRate)
}
