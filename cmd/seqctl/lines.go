package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/kbukum/rangekit/errors"
	"github.com/kbukum/rangekit/logger"
	"github.com/kbukum/rangekit/observability"
	"github.com/kbukum/rangekit/ranges"
	"github.com/kbukum/rangekit/validation"
)

func newLinesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lines FILE...",
		Short: "Count the lines of each file",
		Long: `Counts lines by mapping every file name to the length of its lazy
line sequence. Files are opened one at a time as the counts are printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			start := time.Now()
			names := ranges.FromSlice(args)
			counts := observability.Instrument(ranges.TransformErr(names, countLines), "seqctl.lines", a.metrics)

			total := 0
			err := ranges.ForEach(cmd.Context(), ranges.Zip(names, counts), func(_ context.Context, p ranges.Pair[string, int]) error {
				total += p.Second
				a.log.Debug("counted", logger.Fields(logger.FieldFile, p.First, logger.FieldCount, p.Second))
				_, err := fmt.Fprintf(w, "%8d %s\n", p.Second, p.First)
				return err
			})
			if err != nil {
				return err
			}
			a.log.Debug("lines counted", logger.DurationFields("lines", time.Since(start)), logger.Fields(logger.FieldCount, total))
			if len(args) > 1 {
				_, err = fmt.Fprintf(w, "%8d total\n", total)
			}
			return err
		},
	}
}

func countLines(ctx context.Context, path string) (int, error) {
	if err := validation.Required(logger.FieldFile, path); err != nil {
		return 0, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, apperrors.NotFound("file " + path).WithCause(err)
		}
		return 0, apperrors.Wrap("lines", err).WithDetail(logger.FieldFile, path)
	}
	defer f.Close()
	n, err := ranges.Distance(ctx, ranges.Lines(f))
	if err != nil {
		return 0, apperrors.Wrap("lines", err).WithDetail(logger.FieldFile, path)
	}
	return n, nil
}
