// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audiodec/utils"
)

const (
	bitDepth  = 16
	formatPCM = 1
)

// Writer streams interleaved little-endian 16-bit PCM into a WAV file.
// The RIFF sizes are patched on Close, so the destination must seek.
type Writer struct {
	enc      *wav.Encoder
	format   *goaudio.Format
	channels int
	ints     []int
	frames   int64
}

func NewWriter(ws io.WriteSeeker, sampleRate, channels int) (*Writer, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%d Hz, %d channels: %w", sampleRate, channels, ErrInvalidFormat)
	}

	return &Writer{
		enc:      wav.NewEncoder(ws, sampleRate, bitDepth, channels, formatPCM),
		format:   &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		channels: channels,
	}, nil
}

// WritePCM16 appends whole frames of 16-bit PCM.
func (w *Writer) WritePCM16(p []byte) error {
	if len(p)%(2*w.channels) != 0 {
		return fmt.Errorf("%d bytes for %d channels: %w", len(p), w.channels, ErrPartialFrame)
	}
	if len(p) == 0 {
		return nil
	}

	n := len(p) / 2
	if cap(w.ints) < n {
		w.ints = make([]int, n)
	}
	w.ints = w.ints[:n]
	utils.PCM16ToInts(w.ints, p)

	buf := &goaudio.IntBuffer{Format: w.format, Data: w.ints, SourceBitDepth: bitDepth}
	if err := w.enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	w.frames += int64(n / w.channels)

	return nil
}

// Frames is the number of frames written so far.
func (w *Writer) Frames() int64 { return w.frames }

// Close finalizes the headers. It does not close the destination.
func (w *Writer) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}

// WriteWAV16 writes pcm, interleaved 16-bit little-endian samples, as a
// complete WAV file.
func WriteWAV16(ws io.WriteSeeker, sampleRate, channels int, pcm []byte) error {
	w, err := NewWriter(ws, sampleRate, channels)
	if err != nil {
		return err
	}

	if err := w.WritePCM16(pcm); err != nil {
		return err
	}

	return w.Close()
}
