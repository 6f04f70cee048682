// SPDX-License-Identifier: EPL-2.0

// Package wav writes decoded PCM to WAV files using github.com/go-audio/wav.
//
// # Writing WAV Files
//
// Writer accepts the same interleaved little-endian 16-bit bytes a session
// produces for audio.PCM16 streams:
//
//	out, _ := os.Create("output.wav")
//	w, _ := wav.NewWriter(out, dec.SampleRate(), dec.Channels())
//	buf := make([]byte, 4096*dec.BytesPerFrame())
//	for {
//	    n, err := dec.Read(buf, 4096)
//	    _ = w.WritePCM16(buf[:n*dec.BytesPerFrame()])
//	    if err != nil {
//	        break
//	    }
//	}
//	_ = w.Close()
//
// The destination must implement io.Seeker because the RIFF and data chunk
// sizes are written when the Writer is closed.
package wav
