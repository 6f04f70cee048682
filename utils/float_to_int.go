// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"encoding/binary"
	"math"
)

func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// PCM16ToFloat32 converts little-endian int16 PCM in src to little-endian
// float32 PCM in dst. dst must hold 2*len(src) bytes. A trailing odd byte in
// src is ignored. Returns the number of bytes written to dst.
func PCM16ToFloat32(dst, src []byte) int {
	samples := min(len(src)/2, len(dst)/4)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(src[2*i:]))
		binary.LittleEndian.PutUint32(dst[4*i:], math.Float32bits(Int16ToFloat32(v)))
	}

	return samples * 4
}

// Float32ToPCM16 writes samples as little-endian int16 PCM. Returns the
// number of bytes written to dst.
func Float32ToPCM16(dst []byte, src []float32) int {
	samples := min(len(src), len(dst)/2)
	for i := range samples {
		binary.LittleEndian.PutUint16(dst[2*i:], uint16(Float32ToInt16(src[i])))
	}

	return samples * 2
}

// Float32ToPCMFloat32 writes samples as little-endian float32 PCM. Returns
// the number of bytes written to dst.
func Float32ToPCMFloat32(dst []byte, src []float32) int {
	samples := min(len(src), len(dst)/4)
	for i := range samples {
		binary.LittleEndian.PutUint32(dst[4*i:], math.Float32bits(src[i]))
	}

	return samples * 4
}

// PCM16ToInts widens little-endian int16 PCM into dst. Returns the number of
// samples written.
func PCM16ToInts(dst []int, src []byte) int {
	samples := min(len(src)/2, len(dst))
	for i := range samples {
		dst[i] = int(int16(binary.LittleEndian.Uint16(src[2*i:])))
	}

	return samples
}
