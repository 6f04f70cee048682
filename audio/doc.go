// SPDX-License-Identifier: EPL-2.0

// Package audio defines the contract between decoder sessions and the
// decoding libraries behind them.
//
// This package contains:
//   - Library and Handle, the binding a decoding library implements
//   - Format, Encoding and SourceFormat for format negotiation
//   - Registry for looking libraries up by format key
//   - Sentinel errors shared by every binding
//
// # Handles
//
// A Library allocates one Handle per stream. The handle reads its bytes
// through an io.ReadSeekCloser installed with Open and owns it from then on:
//
//	h, _ := lib.NewHandle()
//	_ = h.Open(stream)
//	format, _ := h.Format()
//	_ = h.LockFormat(format)
//	_ = h.Scan()
//	total := h.Length()
//
// Positions and lengths are counted in frames, where one frame holds one
// sample for every channel.
//
// # Encodings
//
// Libraries report the encoding they decode to. Sessions accept only
// EncodingSigned16 (PCM16) and EncodingFloat32 (PCMFloat32):
//
//	sf, err := format.Encoding.SourceFormat()
//	if errors.Is(err, audio.ErrUnsupportedEncoding) {
//	    // refuse the stream
//	}
//	bytesPerFrame := sf.BytesPerSample() * format.Channels
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("mp3", mp3.Library{})
//	lib, _ := registry.Get("mp3")
package audio
