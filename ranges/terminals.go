package ranges

import "context"

// Runnable is a fully-configured traversal ready to execute.
type Runnable struct {
	run func(ctx context.Context) error
}

// Run executes the traversal until completion, the first error, or context
// cancellation.
func (r *Runnable) Run(ctx context.Context) error {
	return r.run(ctx)
}

// Drain creates a Runnable that pulls all values and sends each to sink.
func Drain[T any](s *Sequence[T], sink func(context.Context, T) error) *Runnable {
	return &Runnable{
		run: func(ctx context.Context) error {
			iter := s.create(ctx)
			defer iter.Close()
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				val, ok, err := iter.Next(ctx)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				if err := sink(ctx, val); err != nil {
					return err
				}
			}
		},
	}
}

// ForEach pulls all values and calls fn for each. Convenience wrapper around Drain.
func ForEach[T any](ctx context.Context, s *Sequence[T], fn func(context.Context, T) error) error {
	return Drain(s, fn).Run(ctx)
}

// Collect runs the traversal and returns all values as a slice. On error the
// values read so far are returned with it.
func Collect[T any](ctx context.Context, s *Sequence[T]) ([]T, error) {
	var result []T
	if n, ok := s.Size(); ok {
		result = make([]T, 0, n)
	}
	err := ForEach(ctx, s, func(_ context.Context, v T) error {
		result = append(result, v)
		return nil
	})
	return result, err
}

// visit pulls values until fn returns false, the input ends, or an error.
func visit[T any](ctx context.Context, s *Sequence[T], fn func(T) bool) error {
	iter := s.create(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return err
		}
		if !ok || !fn(val) {
			return nil
		}
	}
}
