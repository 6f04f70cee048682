// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides test doubles for decoding libraries and
// synthetic MP3 streams.
package audiotest
