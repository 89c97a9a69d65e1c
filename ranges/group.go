package ranges

import (
	"context"
	"slices"

	apperrors "github.com/kbukum/rangekit/errors"
)

// Split breaks s into the groups between values equal to d. The delimiters
// are dropped. A leading delimiter yields a leading empty group and adjacent
// delimiters yield empty groups, but a final delimiter does not yield a
// trailing empty group.
func Split[T comparable](s *Sequence[T], d T) *Sequence[[]T] {
	return SplitWhen(s, func(v T) bool { return v == d })
}

// SplitWhen breaks s into groups at every value that satisfies fn, dropping
// those values.
func SplitWhen[T any](s *Sequence[T], fn func(T) bool) *Sequence[[]T] {
	return splitOn(s, func(group []T) (int, bool) {
		last := len(group) - 1
		return last, fn(group[last])
	})
}

// SplitSeq breaks s into groups at every occurrence of the delimiter
// sequence delim. An empty delimiter yields one group per value.
func SplitSeq[T comparable](s *Sequence[T], delim []T) *Sequence[[]T] {
	delim = slices.Clone(delim)
	return splitOn(s, func(group []T) (int, bool) {
		cut := len(group) - len(delim)
		if cut < 0 {
			return 0, false
		}
		if len(delim) == 0 {
			return len(group), true
		}
		return cut, slices.Equal(group[cut:], delim)
	})
}

// splitOn ends a group whenever boundary reports a hit for the values
// gathered so far, keeping only the first keep of them.
func splitOn[T any](s *Sequence[T], boundary func(group []T) (keep int, hit bool)) *Sequence[[]T] {
	return &Sequence[[]T]{
		create: func(ctx context.Context) Iterator[[]T] {
			return &splitIter[T]{source: s.create(ctx), boundary: boundary}
		},
		category: capAt(s.category, Forward),
	}
}

// GroupBy breaks s into maximal runs in which fn holds between every two
// adjacent values.
func GroupBy[T any](s *Sequence[T], fn func(prev, cur T) bool) *Sequence[[]T] {
	return &Sequence[[]T]{
		create: func(ctx context.Context) Iterator[[]T] {
			return &groupByIter[T]{source: s.create(ctx), fn: fn}
		},
		category: capAt(s.category, Forward),
	}
}

// Chunk breaks s into consecutive groups of n values. The final group holds
// the remaining values and may be shorter.
func Chunk[T any](s *Sequence[T], n int) *Sequence[[]T] {
	if err := checkPositive("chunk", "n", n); err != nil {
		return errSeq[[]T](err)
	}
	count := func() int { return ceilDiv(s.size(), n) }
	if s.randomAccess() {
		return fromIndex(count, func(i int) ([]T, error) {
			return window(s, i*n, min((i+1)*n, s.size()))
		})
	}
	out := &Sequence[[]T]{
		create: func(ctx context.Context) Iterator[[]T] {
			return &chunkIter[T]{source: s.create(ctx), size: n, hint: bufferHint(s, n)}
		},
		category: capAt(s.category, Forward),
	}
	if s.size != nil {
		out.size = count
	}
	return out
}

// Sliding yields every window of n consecutive values. A non-empty input
// holding fewer than n values is a contract violation; an empty input yields
// nothing.
func Sliding[T any](s *Sequence[T], n int) *Sequence[[]T] {
	if err := checkPositive("sliding", "n", n); err != nil {
		return errSeq[[]T](err)
	}
	if s.size != nil {
		if got := s.size(); got > 0 && got < n {
			return errSeq[[]T](apperrors.ShortInput("sliding", n, got))
		}
	}
	count := func() int { return max(s.size()-n+1, 0) }
	if s.randomAccess() {
		return fromIndex(count, func(i int) ([]T, error) {
			return window(s, i, i+n)
		})
	}
	out := &Sequence[[]T]{
		create: func(ctx context.Context) Iterator[[]T] {
			return &slidingIter[T]{source: s.create(ctx), n: n, hint: bufferHint(s, n)}
		},
		category: capAt(s.category, Forward),
	}
	if s.size != nil {
		out.size = count
	}
	return out
}

// window copies the values [lo, hi) of a random-access sequence.
func window[T any](s *Sequence[T], lo, hi int) ([]T, error) {
	out := make([]T, 0, hi-lo)
	for i := lo; i < hi; i++ {
		v, err := s.at(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// --- Iterator implementations ---

type splitIter[T any] struct {
	source   Iterator[T]
	boundary func([]T) (int, bool)
	done     bool
}

func (it *splitIter[T]) Next(ctx context.Context) (result []T, ok bool, err error) {
	if it.done {
		return nil, false, nil
	}
	var group []T
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			it.done = true
			if len(group) > 0 {
				return group, true, nil
			}
			return nil, false, nil
		}
		group = append(group, val)
		if keep, hit := it.boundary(group); hit {
			return slices.Clip(group[:keep]), true, nil
		}
	}
}

func (it *splitIter[T]) Close() error { return it.source.Close() }

type groupByIter[T any] struct {
	source  Iterator[T]
	fn      func(prev, cur T) bool
	pending T
	has     bool
	done    bool
}

func (it *groupByIter[T]) Next(ctx context.Context) (result []T, ok bool, err error) {
	if it.done {
		return nil, false, nil
	}
	if !it.has {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			it.done = err == nil
			return nil, false, err
		}
		it.pending, it.has = val, true
	}
	group := []T{it.pending}
	it.has = false
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			it.done = true
			return group, true, nil
		}
		if !it.fn(group[len(group)-1], val) {
			it.pending, it.has = val, true
			return group, true, nil
		}
		group = append(group, val)
	}
}

func (it *groupByIter[T]) Close() error { return it.source.Close() }

type chunkIter[T any] struct {
	source Iterator[T]
	size   int
	hint   int
	done   bool
	err    error
}

func (it *chunkIter[T]) Next(ctx context.Context) (result []T, ok bool, err error) {
	if it.err != nil {
		err, it.err = it.err, nil
		return nil, false, err
	}
	if it.done {
		return nil, false, nil
	}

	batch := make([]T, 0, it.hint)
	for len(batch) < it.size {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			if len(batch) > 0 {
				// Return partial chunk on error; error will surface on next call
				it.err = err
				return batch, true, nil
			}
			return nil, false, err
		}
		if !ok {
			it.done = true
			if len(batch) > 0 {
				return batch, true, nil
			}
			return nil, false, nil
		}
		batch = append(batch, val)
	}
	return batch, true, nil
}

func (it *chunkIter[T]) Close() error { return it.source.Close() }

type slidingIter[T any] struct {
	source Iterator[T]
	n      int
	hint   int
	buf    []T
}

func (it *slidingIter[T]) Next(ctx context.Context) (result []T, ok bool, err error) {
	if it.buf == nil {
		it.buf = make([]T, 0, it.hint)
		for len(it.buf) < it.n {
			val, ok, err := it.source.Next(ctx)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				if len(it.buf) > 0 {
					return nil, false, apperrors.ShortInput("sliding", it.n, len(it.buf))
				}
				return nil, false, nil
			}
			it.buf = append(it.buf, val)
		}
		return slices.Clone(it.buf), true, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return nil, false, err
	}
	copy(it.buf, it.buf[1:])
	it.buf[len(it.buf)-1] = val
	return slices.Clone(it.buf), true, nil
}

func (it *slidingIter[T]) Close() error { return it.source.Close() }
