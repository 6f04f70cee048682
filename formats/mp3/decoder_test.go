// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audiodec/audio"
	"github.com/ik5/audiodec/internal/audiotest"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate int
	samples    []int16 // interleaved stereo PCM
	offset     int     // in samples
	length     int64   // bytes reported by Length
	readErr    error
}

func newMockMP3Reader(sampleRate int, samples []int16) *mockMP3Reader {
	return &mockMP3Reader{
		sampleRate: sampleRate,
		samples:    samples,
		length:     int64(len(samples) * 2),
	}
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }
func (m *mockMP3Reader) Length() int64   { return m.length }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := min(len(buf)/2, len(m.samples)-m.offset)
	for i := range n {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(m.samples[m.offset+i]))
	}
	m.offset += n

	return n * 2, nil
}

func (m *mockMP3Reader) Seek(offset int64, whence int) (int64, error) {
	if whence != io.SeekStart || offset < 0 || offset > int64(len(m.samples)*2) {
		return 0, errors.New("mock: bad seek")
	}
	m.offset = int(offset / 2)

	return offset, nil
}

func openMock(t *testing.T, lib Library, r *mockMP3Reader) audio.Handle {
	t.Helper()

	h, err := lib.NewHandle()
	require.NoError(t, err)

	hh := h.(*handle)
	hh.dec = r
	hh.stream = audiotest.NopCloser(bytes.NewReader(nil))

	return h
}

func openSilent(t *testing.T, frames int) (audio.Handle, *audiotest.ReadSeekCloser) {
	t.Helper()

	h, err := Library{}.NewHandle()
	require.NoError(t, err)

	rs := audiotest.NopCloser(bytes.NewReader(audiotest.SilentMP3(frames)))
	require.NoError(t, h.Open(rs))

	return h, rs
}

func TestLibrary_NewHandle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		enc     audio.Encoding
		want    audio.Encoding
		wantErr bool
	}{
		{audio.EncodingNative, audio.EncodingSigned16, false},
		{audio.EncodingSigned16, audio.EncodingSigned16, false},
		{audio.EncodingFloat32, audio.EncodingFloat32, false},
		{audio.EncodingUnsigned8, 0, true},
		{audio.EncodingSigned32, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.enc.String(), func(t *testing.T) {
			t.Parallel()

			h, err := Library{Encoding: tt.enc}.NewHandle()
			if tt.wantErr {
				assert.ErrorIs(t, err, audio.ErrUnsupportedEncoding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.(*handle).encoding)
		})
	}
}

func TestLibrary_WithEncoding(t *testing.T) {
	t.Parallel()

	lib := Library{}.WithEncoding(audio.EncodingFloat32)
	assert.Equal(t, Library{Encoding: audio.EncodingFloat32}, lib)
}

func TestHandle_InvalidInput(t *testing.T) {
	t.Parallel()

	h, err := Library{}.NewHandle()
	require.NoError(t, err)

	rs := audiotest.NopCloser(bytes.NewReader([]byte("This is not MP3 data")))
	require.Error(t, h.Open(rs))

	require.NoError(t, h.Close())
	assert.True(t, rs.Closed, "Close must release the stream after a failed Open")
}

func TestHandle_NotOpened(t *testing.T) {
	t.Parallel()

	h, err := Library{}.NewHandle()
	require.NoError(t, err)

	_, err = h.Format()
	assert.ErrorIs(t, err, audio.ErrNotOpened)
	assert.ErrorIs(t, h.Scan(), audio.ErrNotOpened)

	_, err = h.Read(make([]byte, 16))
	assert.ErrorIs(t, err, audio.ErrNotOpened)

	_, err = h.Seek(0)
	assert.ErrorIs(t, err, audio.ErrNotOpened)

	assert.Equal(t, int64(-1), h.Length())
	assert.NoError(t, h.Close())
}

func TestHandle_OpenTwice(t *testing.T) {
	t.Parallel()

	h, _ := openSilent(t, 2)
	defer h.Close()

	err := h.Open(audiotest.NopCloser(bytes.NewReader(audiotest.SilentMP3(2))))
	assert.ErrorIs(t, err, audio.ErrAlreadyOpened)
}

func TestHandle_SilentStream(t *testing.T) {
	t.Parallel()

	const frames = 10

	h, rs := openSilent(t, frames)

	format, err := h.Format()
	require.NoError(t, err)
	assert.Equal(t, audio.Format{
		SampleRate: audiotest.SilentMP3SampleRate,
		Channels:   2,
		Encoding:   audio.EncodingSigned16,
	}, format)

	require.NoError(t, h.LockFormat(format))
	require.NoError(t, h.Scan())
	assert.Equal(t, int64(frames*audiotest.SilentMP3FrameSamples), h.Length())
	assert.Zero(t, h.Tell())

	buf := make([]byte, 1024*bytesPerFrame)
	var total int64
	for {
		n, err := h.Read(buf)
		for _, b := range buf[:n] {
			require.Zero(t, b, "silent frames must decode to zero samples")
		}
		total += int64(n / bytesPerFrame)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}

	assert.Equal(t, h.Length(), total)
	assert.Equal(t, total, h.Tell())

	require.NoError(t, h.Close())
	assert.True(t, rs.Closed)
	assert.NoError(t, h.Close())
}

func TestHandle_SeekTell(t *testing.T) {
	t.Parallel()

	h, _ := openSilent(t, 4)
	defer h.Close()

	require.NoError(t, h.Scan())

	for _, frame := range []int64{0, 1500, 1152, 3000, 0} {
		got, err := h.Seek(frame)
		require.NoError(t, err)
		assert.Equal(t, frame, got)
		assert.Equal(t, frame, h.Tell())
	}

	buf := make([]byte, 100*bytesPerFrame)
	n, err := h.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, int64(n/bytesPerFrame), h.Tell())
}

func TestHandle_LockFormatMismatch(t *testing.T) {
	t.Parallel()

	h := openMock(t, Library{}, newMockMP3Reader(22050, make([]int16, 8)))

	err := h.LockFormat(audio.Format{SampleRate: 44100, Channels: 2, Encoding: audio.EncodingSigned16})
	assert.ErrorIs(t, err, audio.ErrFormatLocked)
}

func TestHandle_ScanUnknownLength(t *testing.T) {
	t.Parallel()

	r := newMockMP3Reader(44100, make([]int16, 8))
	r.length = -1
	h := openMock(t, Library{}, r)

	assert.ErrorIs(t, h.Scan(), audio.ErrLengthUnknown)
}

func TestHandle_ReadFloat32(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -32768, -16384}
	h := openMock(t, Library{Encoding: audio.EncodingFloat32}, newMockMP3Reader(44100, samples))

	buf := make([]byte, 2*channels*4)
	n, err := h.Read(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)

	want := []float32{0, 0.5, -1, -0.5}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
		assert.InDelta(t, w, got, 1e-6, "sample %d", i)
	}
	assert.Equal(t, int64(2), h.Tell())
}

func TestHandle_ReadError(t *testing.T) {
	t.Parallel()

	r := newMockMP3Reader(44100, make([]int16, 8))
	r.readErr = io.ErrUnexpectedEOF
	h := openMock(t, Library{}, r)

	_, err := h.Read(make([]byte, 16))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestHandle_SeekError(t *testing.T) {
	t.Parallel()

	h := openMock(t, Library{}, newMockMP3Reader(44100, make([]int16, 8)))

	got, err := h.Seek(100)
	require.Error(t, err)
	assert.Equal(t, int64(-1), got)
}

// BenchmarkHandle_Read benchmarks decoding through the handle
func BenchmarkHandle_Read(b *testing.B) {
	data := audiotest.SilentMP3(40)
	buf := make([]byte, 4096)

	b.ReportAllocs()

	for b.Loop() {
		h, _ := Library{}.NewHandle()
		if err := h.Open(audiotest.NopCloser(bytes.NewReader(data))); err != nil {
			b.Fatal(err)
		}
		for {
			if _, err := h.Read(buf); err != nil {
				break
			}
		}
		_ = h.Close()
	}
}
