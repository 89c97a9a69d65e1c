package steps

import (
	"context"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/kbukum/rangekit/action"
	apperrors "github.com/kbukum/rangekit/errors"
	"github.com/kbukum/rangekit/logger"
	"github.com/kbukum/rangekit/pipe"
	"github.com/kbukum/rangekit/ranges"
	"github.com/kbukum/rangekit/validation"
)

// Predicates usable as PRED arguments.
var predicates = map[string]func(int) bool{
	"even":     func(v int) bool { return v%2 == 0 },
	"odd":      func(v int) bool { return v%2 != 0 },
	"positive": func(v int) bool { return v > 0 },
	"negative": func(v int) bool { return v < 0 },
	"zero":     func(v int) bool { return v == 0 },
	"nonzero":  func(v int) bool { return v != 0 },
}

// Unary operations usable as OP arguments.
var operations = map[string]func(int) int{
	"square": func(v int) int { return v * v },
	"negate": func(v int) int { return -v },
	"abs":    func(v int) int { return max(v, -v) },
	"double": func(v int) int { return 2 * v },
	"inc":    func(v int) int { return v + 1 },
	"dec":    func(v int) int { return v - 1 },
}

// Default returns a registry with all built-in steps.
func Default() *Registry[int] {
	r := NewRegistry[int]()

	for _, def := range []struct {
		name    string
		summary string
		build   func(func(int) bool) pipe.Adaptor[int, int]
	}{
		{"filter", "keep values matching PRED", pipe.Filter[int]},
		{"remove_if", "drop values matching PRED", pipe.RemoveIf[int]},
		{"take_while", "stop at the first value not matching PRED", pipe.TakeWhile[int]},
		{"drop_while", "skip the leading values matching PRED", pipe.DropWhile[int]},
	} {
		r.Register(Definition[int]{Name: def.name, Args: "PRED", Summary: def.summary,
			Factory: func(args []string, _ Env) (pipe.Adaptor[int, int], error) {
				pred, err := lookup(def.name, args, predicates)
				if err != nil {
					return nil, err
				}
				return def.build(pred), nil
			}})
	}

	for _, def := range []struct {
		name    string
		summary string
		min     int
		build   func(int) pipe.Adaptor[int, int]
	}{
		{"take", "first N values", 0, pipe.Take[int]},
		{"take_exactly", "first N values, failing on shorter input", 0, pipe.TakeExactly[int]},
		{"drop", "skip N values", 0, pipe.Drop[int]},
		{"drop_exactly", "skip N values, failing on shorter input", 0, pipe.DropExactly[int]},
		{"stride", "every Nth value", 1, pipe.Stride[int]},
		{"sample", "N values chosen uniformly, in input order", 0, nil},
		{"add", "add N to every value", math.MinInt, nil},
		{"mul", "multiply every value by N", math.MinInt, nil},
		{"replace_all", "replace every value with N", math.MinInt, nil},
		{"intersperse", "insert N between values", math.MinInt, nil},
		{"delimit", "stop before the first N", math.MinInt, nil},
	} {
		r.Register(Definition[int]{Name: def.name, Args: "N", Summary: def.summary,
			Factory: func(args []string, env Env) (pipe.Adaptor[int, int], error) {
				n, err := intArg(def.name, args)
				if err != nil {
					return nil, err
				}
				v := validation.New()
				v.Min(def.name, n, def.min)
				if err := check(v); err != nil {
					return nil, err
				}
				if def.build != nil {
					return def.build(n), nil
				}
				return parametric(def.name, n, env)
			}})
	}

	r.Register(Definition[int]{Name: "transform", Args: "OP", Summary: "apply OP to every value",
		Factory: func(args []string, _ Env) (pipe.Adaptor[int, int], error) {
			op, err := lookup("transform", args, operations)
			if err != nil {
				return nil, err
			}
			return pipe.Transform(op), nil
		}})
	r.Register(Definition[int]{Name: "replace", Args: "OLD,NEW", Summary: "replace OLD with NEW",
		Factory: func(args []string, _ Env) (pipe.Adaptor[int, int], error) {
			ns, err := intArgs("replace", args, 2)
			if err != nil {
				return nil, err
			}
			return pipe.Replace(ns[0], ns[1]), nil
		}})
	r.Register(Definition[int]{Name: "slice", Args: "LO,HI", Summary: "values in [LO, HI); negative bounds count from the end",
		Factory: func(args []string, _ Env) (pipe.Adaptor[int, int], error) {
			ns, err := intArgs("slice", args, 2)
			if err != nil {
				return nil, err
			}
			return pipe.Slice[int](position(ns[0]), position(ns[1])), nil
		}})
	r.Register(Definition[int]{Name: "append", Args: "LO,HI", Summary: "append the integers in [LO, HI)",
		Factory: func(args []string, _ Env) (pipe.Adaptor[int, int], error) {
			ns, err := intArgs("append", args, 2)
			if err != nil {
				return nil, err
			}
			return pipe.Concat(ranges.Iota(ns[0], ns[1])), nil
		}})
	r.Register(Definition[int]{Name: "exclusive_scan", Args: "INIT", Summary: "running sums starting at INIT, excluding the current value",
		Factory: func(args []string, _ Env) (pipe.Adaptor[int, int], error) {
			seed, err := intArg("exclusive_scan", args)
			if err != nil {
				return nil, err
			}
			return pipe.ExclusiveScan(seed, func(acc, v int) int { return acc + v }), nil
		}})
	r.Register(Definition[int]{Name: "log", Args: "LABEL", Summary: "log values at debug level",
		Factory: func(args []string, env Env) (pipe.Adaptor[int, int], error) {
			label := "log"
			if len(args) > 0 && args[0] != "" {
				label = args[0]
			}
			l := env.Logger
			if l == nil {
				l = logger.Get("steps")
			}
			return pipe.Log[int](l, label), nil
		}})

	for _, def := range []struct {
		name    string
		summary string
		adaptor pipe.Adaptor[int, int]
	}{
		{"reverse", "values in reverse order", pipe.Reverse[int]()},
		{"unique", "collapse runs of equal values", pipe.Unique[int]()},
		{"cycle", "repeat the input forever", pipe.Cycle[int]()},
		{"tail", "all but the first value", pipe.Tail[int]()},
		{"partial_sum", "running sums", pipe.PartialSum[int]()},
		{"adjacent_difference", "first value, then differences to the previous one", pipe.AdjacentDifference[int]()},
		{"sort", "sort ascending (reads the whole input)", eager(action.Sorted[int]())},
		{"sort_unique", "sort and drop duplicates (reads the whole input)", eager(action.Sorted[int](), action.Uniqued[int]())},
	} {
		r.Register(Definition[int]{Name: def.name, Summary: def.summary,
			Factory: func(args []string, _ Env) (pipe.Adaptor[int, int], error) {
				if err := noArgs(def.name, args); err != nil {
					return nil, err
				}
				return def.adaptor, nil
			}})
	}

	r.Register(Definition[int]{Name: "shuffle", Summary: "random permutation (reads the whole input)",
		Factory: func(args []string, env Env) (pipe.Adaptor[int, int], error) {
			if err := noArgs("shuffle", args); err != nil {
				return nil, err
			}
			return eager(action.Shuffled[int](env.Rand)), nil
		}})

	return r
}

// Groupers returns a registry with all built-in groupers.
func Groupers() *Registry[[]int] {
	r := NewRegistry[[]int]()
	for _, def := range []struct {
		name    string
		summary string
		build   func(int) pipe.Adaptor[int, []int]
	}{
		{"chunk", "groups of N, the last one possibly shorter", pipe.Chunk[int]},
		{"sliding", "all windows of N consecutive values", pipe.Sliding[int]},
		{"split", "groups separated by the value N", pipe.Split[int]},
	} {
		r.Register(Definition[[]int]{Name: def.name, Args: "N", Summary: def.summary,
			Factory: func(args []string, _ Env) (pipe.Adaptor[int, []int], error) {
				n, err := intArg(def.name, args)
				if err != nil {
					return nil, err
				}
				return def.build(n), nil
			}})
	}
	r.Register(Definition[[]int]{Name: "equal", Summary: "runs of equal values",
		Factory: func(args []string, _ Env) (pipe.Adaptor[int, []int], error) {
			if err := noArgs("equal", args); err != nil {
				return nil, err
			}
			return pipe.GroupBy(func(prev, cur int) bool { return prev == cur }), nil
		}})
	r.Register(Definition[[]int]{Name: "split_when", Args: "PRED", Summary: "groups ended by values matching PRED",
		Factory: func(args []string, _ Env) (pipe.Adaptor[int, []int], error) {
			pred, err := lookup("split_when", args, predicates)
			if err != nil {
				return nil, err
			}
			return pipe.SplitWhen(pred), nil
		}})
	return r
}

func parametric(name string, n int, env Env) (pipe.Adaptor[int, int], error) {
	switch name {
	case "sample":
		return pipe.Sample[int](n, env.Rand), nil
	case "add":
		return pipe.Transform(func(v int) int { return v + n }), nil
	case "mul":
		return pipe.Transform(func(v int) int { return v * n }), nil
	case "replace_all":
		return pipe.ReplaceIf(func(int) bool { return true }, n), nil
	case "intersperse":
		return pipe.Intersperse(n), nil
	case "delimit":
		return pipe.Delimit(n), nil
	}
	return nil, apperrors.NotFound("step " + name)
}

// eager collects the input, applies acts and yields the result.
func eager(acts ...action.Action[int]) pipe.Adaptor[int, int] {
	return func(s *ranges.Sequence[int]) *ranges.Sequence[int] {
		return ranges.FromFunc(func(ctx context.Context) ranges.Iterator[int] {
			xs, err := ranges.Collect(ctx, s)
			if err == nil {
				err = action.Apply(&xs, acts...)
			}
			if err != nil {
				return failed{err: err}
			}
			return ranges.FromSlice(xs).Iter(ctx)
		})
	}
}

type failed struct{ err error }

func (f failed) Next(context.Context) (int, bool, error) { return 0, false, f.err }
func (f failed) Close() error                            { return nil }

// position maps negative values to positions counted from the end.
func position(n int) ranges.Pos {
	if n < 0 {
		return ranges.FromEnd(-n)
	}
	return ranges.FromStart(n)
}

func lookup[V any](step string, args []string, table map[string]V) (V, error) {
	var zero V
	v := validation.New()
	v.Custom(len(args) == 1, step, fmt.Sprintf("takes 1 argument, got %d", len(args)))
	if err := check(v); err != nil {
		return zero, err
	}
	names := slices.Sorted(maps.Keys(table))
	v.OneOf(step, args[0], names)
	v.Required(step, args[0])
	if err := check(v); err != nil {
		return zero, err
	}
	return table[args[0]], nil
}

func intArg(step string, args []string) (int, error) {
	ns, err := intArgs(step, args, 1)
	if err != nil {
		return 0, err
	}
	return ns[0], nil
}

func intArgs(step string, args []string, want int) ([]int, error) {
	v := validation.New()
	v.Custom(len(args) == want, step, fmt.Sprintf("takes %d argument(s), got %d", want, len(args)))
	if err := check(v); err != nil {
		return nil, err
	}
	ns := make([]int, len(args))
	for i, arg := range args {
		ns[i] = v.Int(step, arg)
	}
	if err := check(v); err != nil {
		return nil, err
	}
	return ns, nil
}

func noArgs(step string, args []string) error {
	v := validation.New()
	v.Custom(len(args) == 0, step, "takes no arguments, got "+strings.Join(args, ","))
	return check(v)
}

// check converts the collected errors to an error value, keeping nil untyped.
func check(v *validation.Validator) error {
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}
