// SPDX-License-Identifier: EPL-2.0

// Package cli implements the audiodec command line.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ik5/audiodec/audio"
	"github.com/ik5/audiodec/engine"
	"github.com/ik5/audiodec/session"
)

type rootOptions struct {
	verbose  bool
	encoding string

	logger *log.Logger
}

// sessionOptions builds the options every session of this invocation shares.
func (o *rootOptions) sessionOptions() ([]session.Option, error) {
	opts := []session.Option{session.WithLogger(o.logger)}
	if o.encoding == "" {
		return opts, nil
	}

	enc, err := audio.ParseEncoding(o.encoding)
	if err != nil {
		return nil, err
	}

	return append(opts, session.WithEncoding(enc)), nil
}

// NewRootCommand returns the audiodec command tree writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "audiodec",
		Short: "Decode MP3 and Ogg Vorbis files to PCM",
		Long: `audiodec decodes compressed audio files into interleaved PCM frames.

It reports stream properties and writes decoded audio, or any frame range
of it, to 16-bit WAV files.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "audiodec"})
			if opts.verbose {
				opts.logger.SetLevel(log.DebugLevel)
			}
			engine.SetLogger(opts.logger.WithPrefix("engine"))
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log decoder diagnostics")
	cmd.PersistentFlags().StringVarP(&opts.encoding, "encoding", "e", "",
		fmt.Sprintf("output sample encoding (%s or %s, default: the library's own)", audio.EncodingSigned16, audio.EncodingFloat32))

	cmd.AddCommand(
		newInfoCommand(opts),
		newDecodeCommand(opts),
		newFormatsCommand(),
	)

	return cmd
}

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the file extensions that can be decoded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := engine.Init(); err != nil {
				return err
			}
			for _, f := range engine.Formats() {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}

			return nil
		},
	}
}
