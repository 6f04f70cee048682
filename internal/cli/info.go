// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/audiodec/audio"
	"github.com/ik5/audiodec/session"
)

type streamInfo struct {
	path       string
	sampleRate int
	channels   int
	format     audio.SourceFormat
	frames     int64
	duration   time.Duration
	err        error
}

func probe(path string, opts []session.Option) streamInfo {
	d := session.New(opts...)
	if err := d.Open(path); err != nil {
		return streamInfo{path: path, err: err}
	}
	defer d.Close()

	return streamInfo{
		path:       path,
		sampleRate: d.SampleRate(),
		channels:   d.Channels(),
		format:     d.SourceFormat(),
		frames:     d.TotalFrames(),
		duration:   d.Duration(),
	}
}

func (s streamInfo) String() string {
	if s.err != nil {
		return pathStyle.Render(s.path) + " " + errorStyle.Render(s.err.Error())
	}

	return strings.Join([]string{
		pathStyle.Render(s.path),
		field("rate", s.sampleRate),
		field("channels", s.channels),
		field("format", s.format),
		field("frames", s.frames),
		field("duration", s.duration),
	}, "  ")
}

func newInfoCommand(root *rootOptions) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "info FILE...",
		Short: "Print sample rate, channels, format and length of audio files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := root.sessionOptions()
			if err != nil {
				return err
			}

			results := make([]streamInfo, len(args))

			var g errgroup.Group
			g.SetLimit(max(jobs, 1))
			for i, path := range args {
				g.Go(func() error {
					results[i] = probe(path, opts)
					return nil
				})
			}
			_ = g.Wait()

			var errs []error
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r)
				if r.err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", r.path, r.err))
				}
			}

			return errors.Join(errs...)
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "files probed concurrently")

	return cmd
}

func fmtValue(v any) string {
	if d, ok := v.(time.Duration); ok {
		return d.Round(time.Millisecond).String()
	}

	return fmt.Sprint(v)
}
