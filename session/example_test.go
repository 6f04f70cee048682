// SPDX-License-Identifier: EPL-2.0

package session_test

import (
	"errors"
	"fmt"
	"io"
	"testing/fstest"

	"github.com/charmbracelet/log"

	"github.com/ik5/audiodec/internal/audiotest"
	"github.com/ik5/audiodec/session"
)

func Example() {
	fsys := fstest.MapFS{
		"music/intro.mp3": {Data: audiotest.SilentMP3(5)},
	}

	d := session.New(session.WithFS(fsys), session.WithLogger(log.New(io.Discard)))
	if err := d.Open("music/intro.mp3"); err != nil {
		fmt.Println(err)
		return
	}
	defer d.Close()

	fmt.Printf("%d Hz, %d channels, %s\n", d.SampleRate(), d.Channels(), d.SourceFormat())

	if err := d.Seek(2 * 1152); err != nil {
		fmt.Println(err)
		return
	}

	buf := make([]byte, 1024*d.BytesPerFrame())
	var frames int
	for {
		n, err := d.Read(buf, 1024)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Println(err)
			return
		}
		frames += n
	}

	fmt.Printf("read %d of %d frames\n", frames, d.TotalFrames())
	// Output:
	// 44100 Hz, 2 channels, PCM_16
	// read 3456 of 5760 frames
}
