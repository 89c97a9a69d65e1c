package ranges

import "context"

// PartialSum yields the running totals of s.
func PartialSum[T Number](s *Sequence[T]) *Sequence[T] {
	return PartialSumFunc(s, func(acc, v T) T { return acc + v })
}

// PartialSumFunc yields x0, op(x0, x1), op(op(x0, x1), x2), ...
func PartialSumFunc[T any](s *Sequence[T], op func(acc, v T) T) *Sequence[T] {
	return scan(s, func(st *scanState[T, T], v T) T {
		if st.started {
			st.acc = op(st.acc, v)
		} else {
			st.acc, st.started = v, true
		}
		return st.acc
	})
}

// InclusiveScan yields op(seed, x0), op(op(seed, x0), x1), ...
func InclusiveScan[T, A any](s *Sequence[T], seed A, op func(acc A, v T) A) *Sequence[A] {
	return scan(s, func(st *scanState[T, A], v T) A {
		if !st.started {
			st.acc, st.started = seed, true
		}
		st.acc = op(st.acc, v)
		return st.acc
	})
}

// ExclusiveScan yields seed, op(seed, x0), ... leaving out the contribution
// of the last value, so it yields as many values as s.
func ExclusiveScan[T, A any](s *Sequence[T], seed A, op func(acc A, v T) A) *Sequence[A] {
	return scan(s, func(st *scanState[T, A], v T) A {
		if !st.started {
			st.acc, st.started = seed, true
		}
		out := st.acc
		st.acc = op(st.acc, v)
		return out
	})
}

// AdjacentDifference yields x0, x1-x0, x2-x1, ...
func AdjacentDifference[T Number](s *Sequence[T]) *Sequence[T] {
	return AdjacentDifferenceFunc(s, func(cur, prev T) T { return cur - prev })
}

// AdjacentDifferenceFunc yields x0, op(x1, x0), op(x2, x1), ...
func AdjacentDifferenceFunc[T any](s *Sequence[T], op func(cur, prev T) T) *Sequence[T] {
	return scan(s, func(st *scanState[T, T], v T) T {
		out := v
		if st.started {
			out = op(v, st.prev)
		}
		st.prev, st.started = v, true
		return out
	})
}

type scanState[T, A any] struct {
	acc     A
	prev    T
	started bool
}

func scan[T, A any](s *Sequence[T], step func(*scanState[T, A], T) A) *Sequence[A] {
	return &Sequence[A]{
		create: func(ctx context.Context) Iterator[A] {
			return &scanIter[T, A]{source: s.create(ctx), step: step}
		},
		size:     s.size,
		category: capAt(s.category, Forward),
	}
}

type scanIter[T, A any] struct {
	source Iterator[T]
	step   func(*scanState[T, A], T) A
	state  scanState[T, A]
}

func (it *scanIter[T, A]) Next(ctx context.Context) (result A, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return result, false, err
	}
	return it.step(&it.state, val), true, nil
}

func (it *scanIter[T, A]) Close() error { return it.source.Close() }
