// SPDX-License-Identifier: EPL-2.0

package audiotest

const (
	// SilentMP3SampleRate is the sample rate of SilentMP3 streams.
	SilentMP3SampleRate = 44100
	// SilentMP3FrameSamples is the number of PCM frames one MPEG-1 Layer III
	// frame decodes to.
	SilentMP3FrameSamples = 1152

	// 128 kbit/s at 44.1 kHz without padding: 144 * 128000 / 44100.
	silentFrameSize = 417
)

// silentHeader is MPEG-1 Layer III, no CRC, 128 kbit/s, 44.1 kHz, stereo.
var silentHeader = [4]byte{0xff, 0xfb, 0x90, 0x00}

// SilentMP3 builds an MP3 stream of frames digital-silence frames. The side
// information and main data are all zero, so every granule decodes to zero
// samples without needing a bit reservoir.
func SilentMP3(frames int) []byte {
	data := make([]byte, frames*silentFrameSize)
	for i := range frames {
		copy(data[i*silentFrameSize:], silentHeader[:])
	}

	return data
}
