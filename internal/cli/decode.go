// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audiodec/audio"
	"github.com/ik5/audiodec/formats/wav"
	"github.com/ik5/audiodec/session"
)

const chunkFrames = 4096

type decodeOptions struct {
	output string
	start  int64
	frames int64
}

func newDecodeCommand(root *rootOptions) *cobra.Command {
	opts := &decodeOptions{}

	cmd := &cobra.Command{
		Use:   "decode FILE",
		Short: "Decode a file, or a frame range of it, to a 16-bit WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if root.encoding != "" && root.encoding != audio.EncodingSigned16.String() {
				return fmt.Errorf("decode writes %s only: %w", audio.EncodingSigned16, audio.ErrUnsupportedEncoding)
			}

			n, err := decodeToWAV(args[0], opts, session.WithLogger(root.logger), session.WithEncoding(audio.EncodingSigned16))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("wrote %d frames to %s", n, opts.output)))

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "WAV file to write")
	cmd.Flags().Int64Var(&opts.start, "start", 0, "first frame to decode")
	cmd.Flags().Int64Var(&opts.frames, "frames", 0, "number of frames to decode (0 decodes to the end)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func decodeToWAV(path string, opts *decodeOptions, sessOpts ...session.Option) (int64, error) {
	d := session.New(sessOpts...)
	if err := d.Open(path); err != nil {
		return 0, err
	}
	defer d.Close()

	if opts.start > 0 {
		if err := d.Seek(opts.start); err != nil {
			return 0, err
		}
	}

	out, err := os.Create(opts.output)
	if err != nil {
		return 0, fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	w, err := wav.NewWriter(out, d.SampleRate(), d.Channels())
	if err != nil {
		return 0, err
	}

	remaining := opts.frames
	if remaining <= 0 {
		remaining = d.TotalFrames() - opts.start
	}

	buf := make([]byte, chunkFrames*d.BytesPerFrame())
	for remaining > 0 {
		n, err := d.Read(buf, int(min(remaining, chunkFrames)))
		if errors.Is(err, io.EOF) {
			break
		}
		if werr := w.WritePCM16(buf[:n*d.BytesPerFrame()]); werr != nil {
			return w.Frames(), werr
		}
		if err != nil {
			return w.Frames(), err
		}
		remaining -= int64(n)
	}

	if err := w.Close(); err != nil {
		return w.Frames(), err
	}

	return w.Frames(), out.Close()
}
