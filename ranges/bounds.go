package ranges

import (
	"context"

	apperrors "github.com/kbukum/rangekit/errors"
)

// Take yields at most the first n values. Taking more values than the input
// holds yields the whole input.
func Take[T any](s *Sequence[T], n int) *Sequence[T] {
	if err := checkCount("take", "n", n); err != nil {
		return errSeq[T](err)
	}
	if s.randomAccess() {
		return fromIndex(func() int { return min(n, s.size()) }, s.at)
	}
	out := &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &takeIter[T]{source: s.create(ctx), n: n}
		},
		category: capAt(s.category, Forward),
	}
	if s.size != nil {
		out.size = func() int { return min(n, s.size()) }
	}
	return out
}

// TakeExactly yields exactly the first n values. An input holding fewer
// than n values is a contract violation; sized inputs fail before yielding.
func TakeExactly[T any](s *Sequence[T], n int) *Sequence[T] {
	if err := checkCount("take_exactly", "n", n); err != nil {
		return errSeq[T](err)
	}
	if s.size != nil {
		if got := s.size(); got < n {
			return errSeq[T](apperrors.ShortInput("take_exactly", n, got))
		}
		return Take(s, n)
	}
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &takeIter[T]{source: s.create(ctx), n: n, exact: true}
		},
		size:     func() int { return n },
		category: capAt(s.category, Forward),
	}
}

// TakeWhile yields values up to, not including, the first one that fails fn.
func TakeWhile[T any](s *Sequence[T], fn func(T) bool) *Sequence[T] {
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &takeWhileIter[T]{source: s.create(ctx), fn: fn}
		},
		category: capAt(s.category, Forward),
	}
}

// Delimit yields values up to, not including, the first one equal to v.
func Delimit[T comparable](s *Sequence[T], v T) *Sequence[T] {
	return TakeWhile(s, func(x T) bool { return x != v })
}

// Drop skips the first n values. Dropping more values than the input holds
// yields nothing.
func Drop[T any](s *Sequence[T], n int) *Sequence[T] {
	if err := checkCount("drop", "n", n); err != nil {
		return errSeq[T](err)
	}
	if s.randomAccess() {
		return fromIndex(
			func() int { return max(s.size()-n, 0) },
			func(i int) (T, error) { return s.at(i + n) },
		)
	}
	out := &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &dropIter[T]{source: s.create(ctx), n: n}
		},
		category: capAt(s.category, Forward),
	}
	if s.size != nil {
		out.size = func() int { return max(s.size()-n, 0) }
	}
	return out
}

// DropExactly skips exactly the first n values. An input holding fewer than
// n values is a contract violation.
func DropExactly[T any](s *Sequence[T], n int) *Sequence[T] {
	if err := checkCount("drop_exactly", "n", n); err != nil {
		return errSeq[T](err)
	}
	if s.size != nil {
		if got := s.size(); got < n {
			return errSeq[T](apperrors.ShortInput("drop_exactly", n, got))
		}
		return Drop(s, n)
	}
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &dropIter[T]{source: s.create(ctx), n: n, exact: true}
		},
		category: capAt(s.category, Forward),
	}
}

// DropWhile skips values while fn holds and yields the rest.
func DropWhile[T any](s *Sequence[T], fn func(T) bool) *Sequence[T] {
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &dropWhileIter[T]{source: s.create(ctx), fn: fn}
		},
		category: capAt(s.category, Forward),
	}
}

// Tail skips the first value. The tail of an empty sequence is empty.
func Tail[T any](s *Sequence[T]) *Sequence[T] {
	return Drop(s, 1)
}

// Pos is a position inside a sequence counted from its start or its end.
type Pos struct {
	n       int
	fromEnd bool
}

// FromStart is the position n values after the start.
func FromStart(n int) Pos { return Pos{n: n} }

// FromEnd is the position n values before the end.
func FromEnd(n int) Pos { return Pos{n: n, fromEnd: true} }

func (p Pos) resolve(size int) int {
	if p.fromEnd {
		return max(size-p.n, 0)
	}
	return min(p.n, size)
}

// Slice yields the values between positions lo and hi. When hi resolves to a
// position before lo the result is empty. Positions counted from the end need
// the size of s: sized sequences report it, other multi-pass sequences are
// counted by an extra traversal, single-pass ones cannot be sliced that way.
func Slice[T any](s *Sequence[T], lo, hi Pos) *Sequence[T] {
	if lo.n < 0 || hi.n < 0 {
		return errSeq[T](apperrors.InvalidArgument("slice", "pos", "must not be negative"))
	}
	if !lo.fromEnd && !hi.fromEnd {
		return Take(Drop(s, lo.n), max(hi.n-lo.n, 0))
	}
	bounds := func(size int) (int, int) {
		a, b := lo.resolve(size), hi.resolve(size)
		return a, max(a, b)
	}
	if s.randomAccess() {
		return fromIndex(
			func() int { a, b := bounds(s.size()); return b - a },
			func(i int) (T, error) { a, _ := bounds(s.size()); return s.at(a + i) },
		)
	}
	if s.size == nil && !s.multiPass() {
		return errSeq[T](apperrors.CategoryMismatch("slice", s.category.String(), Forward.String()))
	}
	out := &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			size, err := sizeOr(ctx, "slice", s)
			if err != nil {
				return errIter[T]{err: err}
			}
			a, b := bounds(size)
			return &takeIter[T]{source: &dropIter[T]{source: s.create(ctx), n: a}, n: b - a}
		},
		category: capAt(s.category, Forward),
	}
	if s.size != nil {
		out.size = func() int { a, b := bounds(s.size()); return b - a }
	}
	return out
}

// Stride yields every n-th value starting with the first.
func Stride[T any](s *Sequence[T], n int) *Sequence[T] {
	if err := checkPositive("stride", "n", n); err != nil {
		return errSeq[T](err)
	}
	if s.randomAccess() {
		return fromIndex(
			func() int { return ceilDiv(s.size(), n) },
			func(i int) (T, error) { return s.at(i * n) },
		)
	}
	out := &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &strideIter[T]{source: s.create(ctx), n: n}
		},
		category: capAt(s.category, Forward),
	}
	if s.size != nil {
		out.size = func() int { return ceilDiv(s.size(), n) }
	}
	return out
}

// --- Iterator implementations ---

type takeIter[T any] struct {
	source Iterator[T]
	n      int
	taken  int
	exact  bool
}

func (it *takeIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.taken >= it.n {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil {
		return val, false, err
	}
	if !ok {
		want := it.n
		it.n = it.taken
		if it.exact {
			return val, false, apperrors.ShortInput("take_exactly", want, it.taken)
		}
		return val, false, nil
	}
	it.taken++
	return val, true, nil
}

func (it *takeIter[T]) Close() error { return it.source.Close() }

type takeWhileIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
	done   bool
}

func (it *takeWhileIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	var zero T
	if it.done {
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	if !it.fn(val) {
		it.done = true
		return zero, false, nil
	}
	return val, true, nil
}

func (it *takeWhileIter[T]) Close() error { return it.source.Close() }

type dropIter[T any] struct {
	source  Iterator[T]
	n       int
	exact   bool
	dropped bool
}

func (it *dropIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if !it.dropped {
		it.dropped = true
		for i := 0; i < it.n; i++ {
			val, ok, err := it.source.Next(ctx)
			if err != nil {
				return val, false, err
			}
			if !ok {
				if it.exact {
					return val, false, apperrors.ShortInput("drop_exactly", it.n, i)
				}
				return val, false, nil
			}
		}
	}
	return it.source.Next(ctx)
}

func (it *dropIter[T]) Close() error { return it.source.Close() }

type dropWhileIter[T any] struct {
	source  Iterator[T]
	fn      func(T) bool
	dropped bool
}

func (it *dropWhileIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.dropped {
		return it.source.Next(ctx)
	}
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if !it.fn(val) {
			it.dropped = true
			return val, true, nil
		}
	}
}

func (it *dropWhileIter[T]) Close() error { return it.source.Close() }

type strideIter[T any] struct {
	source Iterator[T]
	n      int
	primed bool
}

func (it *strideIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.primed {
		for i := 1; i < it.n; i++ {
			val, ok, err := it.source.Next(ctx)
			if err != nil || !ok {
				return val, false, err
			}
		}
	}
	it.primed = true
	return it.source.Next(ctx)
}

func (it *strideIter[T]) Close() error { return it.source.Close() }
