// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pcm16(samples ...int16) []byte {
	b := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(s))
	}

	return b
}

func createTemp(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}

func readBack(t *testing.T, path string) *wav.Decoder {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())

	return dec
}

func TestWriter_RoundTrip(t *testing.T) {
	t.Parallel()

	f := createTemp(t)

	w, err := NewWriter(f, 44100, 2)
	require.NoError(t, err)

	require.NoError(t, w.WritePCM16(pcm16(100, -100, 200, -200)))
	require.NoError(t, w.WritePCM16(pcm16(32767, -32768)))
	assert.Equal(t, int64(3), w.Frames())
	require.NoError(t, w.Close())

	dec := readBack(t, f.Name())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)

	assert.Equal(t, uint32(44100), dec.SampleRate)
	assert.Equal(t, uint16(2), dec.NumChans)
	assert.Equal(t, uint16(16), dec.BitDepth)
	assert.Equal(t, []int{100, -100, 200, -200, 32767, -32768}, buf.Data)
}

func TestWriter_PartialFrame(t *testing.T) {
	t.Parallel()

	w, err := NewWriter(createTemp(t), 8000, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, w.WritePCM16(pcm16(1)), ErrPartialFrame)
	assert.Zero(t, w.Frames())
}

func TestNewWriter_InvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := NewWriter(createTemp(t), 0, 2)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewWriter(createTemp(t), 8000, 0)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestWriteWAV16_Mono(t *testing.T) {
	t.Parallel()

	f := createTemp(t)
	require.NoError(t, WriteWAV16(f, 16000, 1, pcm16(12345)))

	dec := readBack(t, f.Name())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)

	assert.Equal(t, uint32(16000), dec.SampleRate)
	assert.Equal(t, []int{12345}, buf.Data)
}
