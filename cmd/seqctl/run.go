package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/rangekit/config"
	apperrors "github.com/kbukum/rangekit/errors"
	"github.com/kbukum/rangekit/internal/steps"
	"github.com/kbukum/rangekit/logger"
	"github.com/kbukum/rangekit/observability"
	"github.com/kbukum/rangekit/ranges"
	"github.com/kbukum/rangekit/validation"
)

type runOptions struct {
	steps string
	group string
	stdin bool
	iota  string
	seed  uint64
}

func newRunCmd(a *app) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run [ints...]",
		Short: "Run a step pipeline over integers",
		Long: `Reads integers from the arguments, from --iota or from standard input,
pipes them through --steps and prints one value (or group) per line.

Nothing is read beyond what the pipeline needs, so unbounded input such as
--iota 1: works as long as a step like take ends it. See "seqctl steps" for
the available steps and groupers.`,
		Example: `  seqctl run 5 3 8 1 --steps "sort|take:2"
  seqctl run --iota 1: --steps "filter:even|transform:square|take:3"
  seqctl run --iota 0:10 --group chunk:4
  seq 1 1000 | seqctl run --stdin --steps "sample:5" --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("steps") {
				opts.steps = a.cfg.Run.Steps
			}
			if !flags.Changed("group") {
				opts.group = a.cfg.Run.Group
			}
			if !flags.Changed("seed") {
				opts.seed = a.cfg.Run.Seed
			}
			return a.runPipeline(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.steps, "steps", "s", "", `pipeline such as "filter:even|take:3" (default: run.steps)`)
	flags.StringVarP(&opts.group, "group", "g", "", `group the output: chunk:N, sliding:N, equal, ... (default: run.group)`)
	flags.BoolVar(&opts.stdin, "stdin", false, "read whitespace separated integers from standard input")
	flags.StringVar(&opts.iota, "iota", "", `integers LO:HI, or LO: for an unbounded count`)
	flags.Uint64Var(&opts.seed, "seed", 0, "seed for sample and shuffle; 0 picks a random seed (default: run.seed)")
	cmd.MarkFlagsMutuallyExclusive("stdin", "iota")
	return cmd
}

func (a *app) runPipeline(ctx context.Context, stdin io.Reader, w io.Writer, args []string, opts runOptions) error {
	v := validation.New()
	v.MaxLength("steps", opts.steps, config.MaxStepsLength)
	v.MaxLength("group", opts.group, config.MaxGroupLength)
	if err := v.Validate(); err != nil {
		return err
	}
	input, err := inputSequence(stdin, args, opts)
	if err != nil {
		return err
	}

	log := a.log.WithFields(logger.Fields(logger.FieldStep, opts.steps, "group", opts.group))
	env := steps.Env{Rand: newRand(opts.seed), Logger: a.log.WithComponent("steps")}
	pipeline, err := steps.Build(steps.Default(), opts.steps, env)
	if err != nil {
		return err
	}
	log.Debug("pipeline built")

	out := observability.Instrument(pipeline(input), "seqctl.run", a.metrics)
	if opts.group == "" {
		return ranges.ForEach(ctx, out, func(_ context.Context, v int) error {
			_, err := fmt.Fprintln(w, v)
			return err
		})
	}

	grouper, err := steps.BuildGroup(steps.Groupers(), opts.group, env)
	if err != nil {
		return err
	}
	return ranges.ForEach(ctx, grouper(out), func(_ context.Context, g []int) error {
		_, err := fmt.Fprintln(w, g)
		return err
	})
}

// inputSequence picks the integer source named by the options.
func inputSequence(stdin io.Reader, args []string, opts runOptions) (*ranges.Sequence[int], error) {
	switch {
	case (opts.stdin || opts.iota != "") && len(args) > 0:
		return nil, apperrors.InvalidArgument("run", "input", "integer arguments cannot be combined with --stdin or --iota")
	case opts.stdin:
		return parseInts(ranges.Lines(stdin)), nil
	case opts.iota != "":
		return parseIota(opts.iota)
	case len(args) == 0:
		return nil, apperrors.InvalidArgument("run", "input", "pass integers, --iota or --stdin")
	default:
		return parseInts(ranges.FromSlice(args)), nil
	}
}

// parseInts splits lines into fields and parses each one lazily.
func parseInts(lines *ranges.Sequence[string]) *ranges.Sequence[int] {
	fields := ranges.FlatMap(lines, func(line string) *ranges.Sequence[string] {
		return ranges.FromSlice(strings.Fields(line))
	})
	return ranges.TransformErr(fields, func(_ context.Context, field string) (int, error) {
		return validation.Int("input", field)
	})
}

func parseIota(expr string) (*ranges.Sequence[int], error) {
	loText, hiText, ok := strings.Cut(expr, ":")
	v := validation.New()
	v.Custom(ok, "iota", "must be LO:HI or LO:")
	lo := v.Int("iota", loText)
	hi := 0
	if strings.TrimSpace(hiText) != "" {
		hi = v.Int("iota", hiText)
		v.Custom(hi >= lo, "iota", "HI must not be less than LO")
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(hiText) == "" {
		return ranges.Ints(lo), nil
	}
	return ranges.Iota(lo, hi), nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}
