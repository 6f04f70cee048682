// SPDX-License-Identifier: EPL-2.0

// Package mp3 binds github.com/hajimehoshi/go-mp3 as an audio.Library.
//
// # Output Format
//
// go-mp3 decodes every stream to interleaved stereo, signed 16-bit
// little-endian PCM at the source sample rate. The handle reports:
//   - Channels: 2
//   - Encoding: audio.EncodingSigned16, or audio.EncodingFloat32 when the
//     Library asks for it (samples are converted after decoding)
//   - Sample rate: taken from the first frame header
//
// Unsigned 8-bit and signed 32-bit output are refused with
// audio.ErrUnsupportedEncoding.
//
// # Length and Seeking
//
// When the byte source can seek, go-mp3 walks every frame header while the
// decoder is created, so Scan only has to read the result. Positions are
// frame-accurate: a seek lands on the exact PCM frame asked for.
//
//	h, _ := mp3.Library{}.NewHandle()
//	_ = h.Open(stream)
//	_ = h.Scan()
//	_, _ = h.Seek(h.Length() / 2)
//
// Most callers go through session.Decoder instead of using handles directly.
package mp3
