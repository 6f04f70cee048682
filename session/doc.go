// SPDX-License-Identifier: EPL-2.0

// Package session decodes one audio file at a time into interleaved PCM
// frames with random access by frame index.
//
// A Decoder resolves the decoding library from the file extension through
// the engine registry, opens the file through an io.ReadSeekCloser it hands
// to the library, and locks the output format before the first read. A
// failed Open releases everything it acquired.
package session
