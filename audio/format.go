// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// SourceFormat is the PCM layout a session hands to its caller.
type SourceFormat int

const (
	PCM16 SourceFormat = iota + 1
	PCMFloat32
)

func (f SourceFormat) String() string {
	switch f {
	case PCM16:
		return "PCM_16"
	case PCMFloat32:
		return "PCM_FLOAT32"
	default:
		return fmt.Sprintf("SourceFormat(%d)", int(f))
	}
}

// BytesPerSample returns the byte width of one sample, or 0 for unknown formats.
func (f SourceFormat) BytesPerSample() int {
	switch f {
	case PCM16:
		return 2
	case PCMFloat32:
		return 4
	default:
		return 0
	}
}

// Encoding is the sample encoding negotiated with a decoding library.
// The zero value asks the library for its native encoding.
type Encoding int

const (
	EncodingNative Encoding = iota
	EncodingSigned16
	EncodingFloat32
	EncodingUnsigned8
	EncodingSigned32
)

func (e Encoding) String() string {
	switch e {
	case EncodingNative:
		return "native"
	case EncodingSigned16:
		return "s16"
	case EncodingFloat32:
		return "f32"
	case EncodingUnsigned8:
		return "u8"
	case EncodingSigned32:
		return "s32"
	default:
		return fmt.Sprintf("Encoding(0x%x)", int(e))
	}
}

// ParseEncoding maps a short name ("s16", "f32", ...) to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	for _, e := range []Encoding{EncodingNative, EncodingSigned16, EncodingFloat32, EncodingUnsigned8, EncodingSigned32} {
		if e.String() == s {
			return e, nil
		}
	}

	return EncodingNative, fmt.Errorf("%q: %w", s, ErrUnsupportedEncoding)
}

// SourceFormat maps the encoding to the PCM layout delivered to callers.
// Only signed 16-bit and 32-bit float are supported.
func (e Encoding) SourceFormat() (SourceFormat, error) {
	switch e {
	case EncodingSigned16:
		return PCM16, nil
	case EncodingFloat32:
		return PCMFloat32, nil
	default:
		return 0, fmt.Errorf("bad encoding %s: %w", e, ErrUnsupportedEncoding)
	}
}

// Format is the output format negotiated with a library handle.
type Format struct {
	SampleRate int
	Channels   int
	Encoding   Encoding
}

// Validate reports whether the negotiated rate and channel count are usable.
func (f Format) Validate() error {
	if f.SampleRate <= 0 || f.Channels <= 0 {
		return fmt.Errorf("%d Hz, %d channels: %w", f.SampleRate, f.Channels, ErrInvalidFormat)
	}

	return nil
}
