// SPDX-License-Identifier: EPL-2.0

package audiodec

import (
	"github.com/ik5/audiodec/engine"
	"github.com/ik5/audiodec/session"
)

// Open starts a session and opens path in it.
func Open(path string, opts ...session.Option) (*session.Decoder, error) {
	d := session.New(opts...)
	if err := d.Open(path); err != nil {
		return nil, err
	}

	return d, nil
}

// Formats lists the file extensions that can be opened.
func Formats() ([]string, error) {
	if err := engine.Init(); err != nil {
		return nil, err
	}

	return engine.Formats(), nil
}

// Shutdown releases the decoding libraries. Sessions opened afterwards set
// them up again.
func Shutdown() {
	engine.Destroy()
}
