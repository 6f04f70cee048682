// SPDX-License-Identifier: EPL-2.0

// Package audiodec decodes compressed audio files into interleaved PCM
// frames with frame-accurate seeking.
//
// # Supported Formats
//
// Files are matched to a decoding library by extension:
//   - MP3 via formats/mp3 (github.com/hajimehoshi/go-mp3), 16-bit output
//   - Ogg Vorbis via formats/vorbis (github.com/jfreymuth/oggvorbis), float output
//
// Paths without an extension are treated as MP3.
//
// # Quick Start
//
//	dec, err := audiodec.Open("theme.ogg")
//	if err != nil {
//		return err
//	}
//	defer dec.Close()
//
//	buf := make([]byte, 4096*dec.BytesPerFrame())
//	for {
//		n, err := dec.Read(buf, 4096)
//		if errors.Is(err, io.EOF) {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		play(buf[:n*dec.BytesPerFrame()])
//	}
//
// # Sessions
//
// Open returns a session.Decoder. A session holds one open file at a time,
// reports its sample rate, channel count, sample format and total length,
// and seeks by absolute frame index. Sessions are independent; decode
// several files concurrently by giving each goroutine its own session.
//
// The decoding libraries are set up lazily on first use and torn down by
// Shutdown once no session is open.
//
// # Output Encoding
//
// Each library decodes to its native encoding unless asked otherwise:
//
//	dec, err := audiodec.Open("theme.ogg", session.WithEncoding(audio.EncodingSigned16))
//
// # Writing WAV Files
//
// formats/wav turns 16-bit frames back into a WAV file, which is what the
// audiodec decode command does.
package audiodec
