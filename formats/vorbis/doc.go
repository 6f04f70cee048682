// SPDX-License-Identifier: EPL-2.0

// Package vorbis binds github.com/jfreymuth/oggvorbis as an audio.Library.
//
// Vorbis decodes natively to 32-bit floats, so the zero Library reports
// audio.EncodingFloat32. Ask for audio.EncodingSigned16 to get clamped
// 16-bit samples instead:
//
//	lib := vorbis.Library{Encoding: audio.EncodingSigned16}
//
// # Supported Streams
//
//   - Ogg Vorbis (.ogg files)
//   - Mono, stereo and multichannel layouts
//   - Any sample rate the stream declares
//
// Length and seeking rely on the byte source implementing io.Seeker, which
// every stream handed out by session.Decoder does. Positions are counted in
// frames and seeks are sample-accurate.
package vorbis
