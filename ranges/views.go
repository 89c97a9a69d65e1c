package ranges

import "context"

// mapped builds a sequence whose elements depend on one input element each,
// so forward and backward traversals can share the same wrapper.
func mapped[T, U any](s *Sequence[T], limit Category, wrap func(Iterator[T]) Iterator[U]) *Sequence[U] {
	out := &Sequence[U]{
		create: func(ctx context.Context) Iterator[U] {
			return wrap(s.create(ctx))
		},
		category: capAt(s.category, limit),
	}
	if out.category >= Bidirectional {
		out.backward = func(ctx context.Context) Iterator[U] {
			return wrap(s.Backward(ctx))
		}
	}
	return out
}

// Filter keeps only values that satisfy the predicate.
func Filter[T any](s *Sequence[T], fn func(T) bool) *Sequence[T] {
	return mapped(s, Bidirectional, func(src Iterator[T]) Iterator[T] {
		return &filterIter[T]{source: src, fn: fn}
	})
}

// RemoveIf drops the values that satisfy the predicate.
func RemoveIf[T any](s *Sequence[T], fn func(T) bool) *Sequence[T] {
	return Filter(s, func(v T) bool { return !fn(v) })
}

// Transform maps each value through fn. Category and size are preserved.
func Transform[T, U any](s *Sequence[T], fn func(T) U) *Sequence[U] {
	if s.randomAccess() {
		return fromIndex(s.size, func(i int) (U, error) {
			v, err := s.at(i)
			if err != nil {
				var zero U
				return zero, err
			}
			return fn(v), nil
		})
	}
	out := mapped(s, RandomAccess, func(src Iterator[T]) Iterator[U] {
		return &transformIter[T, U]{source: src, fn: fn}
	})
	out.size = s.size
	return out
}

// TransformErr maps each value through a fallible fn. The first error stops
// the traversal.
func TransformErr[T, U any](s *Sequence[T], fn func(context.Context, T) (U, error)) *Sequence[U] {
	return mapped(s, Forward, func(src Iterator[T]) Iterator[U] {
		return &mapIter[T, U]{source: src, fn: fn}
	})
}

// Tap calls fn as a side-effect for each value, then passes the value through unchanged.
func Tap[T any](s *Sequence[T], fn func(context.Context, T) error) *Sequence[T] {
	out := mapped(s, Bidirectional, func(src Iterator[T]) Iterator[T] {
		return &tapIter[T]{source: src, fn: fn}
	})
	out.size = s.size
	return out
}

// Replace substitutes every value equal to old with repl.
func Replace[T comparable](s *Sequence[T], old, repl T) *Sequence[T] {
	return ReplaceIf(s, func(v T) bool { return v == old }, repl)
}

// ReplaceIf substitutes every value that satisfies fn with repl.
func ReplaceIf[T any](s *Sequence[T], fn func(T) bool, repl T) *Sequence[T] {
	return Transform(s, func(v T) T {
		if fn(v) {
			return repl
		}
		return v
	})
}

// Unique collapses runs of equal adjacent values to their first element.
func Unique[T comparable](s *Sequence[T]) *Sequence[T] {
	return UniqueFunc(s, func(a, b T) bool { return a == b })
}

// UniqueFunc collapses runs of adjacent values for which eq(first, v) holds
// to the first value of the run.
func UniqueFunc[T any](s *Sequence[T], eq func(a, b T) bool) *Sequence[T] {
	return mapped(s, Forward, func(src Iterator[T]) Iterator[T] {
		return &adjacentIter[T]{source: src, keep: func(first, v T) bool { return !eq(first, v) }, anchorKept: true}
	})
}

// AdjacentFilter yields the first value and then every value v for which
// fn(prev, v) holds, prev being the value just before v in s.
func AdjacentFilter[T any](s *Sequence[T], fn func(prev, cur T) bool) *Sequence[T] {
	return mapped(s, Forward, func(src Iterator[T]) Iterator[T] {
		return &adjacentIter[T]{source: src, keep: fn}
	})
}

// AdjacentRemoveIf removes every value v for which fn(v, next) holds, next
// being the value just after v. The last value is always kept.
func AdjacentRemoveIf[T any](s *Sequence[T], fn func(cur, next T) bool) *Sequence[T] {
	return mapped(s, Forward, func(src Iterator[T]) Iterator[T] {
		return &adjacentRemoveIter[T]{source: src, fn: fn}
	})
}

// --- Iterator implementations ---

type filterIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
}

func (it *filterIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if it.fn(val) {
			return val, true, nil
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

type transformIter[T, U any] struct {
	source Iterator[T]
	fn     func(T) U
}

func (it *transformIter[T, U]) Next(ctx context.Context) (result U, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero U
		return zero, false, err
	}
	return it.fn(val), true, nil
}

func (it *transformIter[T, U]) Close() error { return it.source.Close() }

type mapIter[I, O any] struct {
	source Iterator[I]
	fn     func(context.Context, I) (O, error)
}

func (it *mapIter[I, O]) Next(ctx context.Context) (result O, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	out, err := it.fn(ctx, val)
	if err != nil {
		var zero O
		return zero, false, err
	}
	return out, true, nil
}

func (it *mapIter[I, O]) Close() error { return it.source.Close() }

type tapIter[T any] struct {
	source Iterator[T]
	fn     func(context.Context, T) error
}

func (it *tapIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	if err := it.fn(ctx, val); err != nil {
		var zero T
		return zero, false, err
	}
	return val, true, nil
}

func (it *tapIter[T]) Close() error { return it.source.Close() }

// adjacentIter always yields the first value. Afterwards a value is yielded
// when keep(anchor, v) holds. The anchor is the previous input value, or the
// last yielded one when anchorKept is set.
type adjacentIter[T any] struct {
	source     Iterator[T]
	keep       func(anchor, v T) bool
	anchorKept bool
	anchor     T
	started    bool
}

func (it *adjacentIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if !it.started {
			it.started = true
			it.anchor = val
			return val, true, nil
		}
		keep := it.keep(it.anchor, val)
		if keep || !it.anchorKept {
			it.anchor = val
		}
		if keep {
			return val, true, nil
		}
	}
}

func (it *adjacentIter[T]) Close() error { return it.source.Close() }

type adjacentRemoveIter[T any] struct {
	source  Iterator[T]
	fn      func(cur, next T) bool
	pending T
	has     bool
	done    bool
}

func (it *adjacentRemoveIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	if !it.has {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			it.done = err == nil
			return zero, false, err
		}
		it.pending, it.has = val, true
	}
	for {
		next, ok, err := it.source.Next(ctx)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			it.done = true
			return it.pending, true, nil
		}
		cur := it.pending
		it.pending = next
		if !it.fn(cur, next) {
			return cur, true, nil
		}
	}
}

func (it *adjacentRemoveIter[T]) Close() error { return it.source.Close() }
