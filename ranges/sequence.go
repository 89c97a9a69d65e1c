package ranges

import (
	"context"
	"iter"

	apperrors "github.com/kbukum/rangekit/errors"
)

// Sequence is a lazy, immutable description of a traversal.
// No work happens until values are pulled via Iter, Collect, or ForEach.
type Sequence[T any] struct {
	create   func(ctx context.Context) Iterator[T]
	backward func(ctx context.Context) Iterator[T]
	at       func(i int) (T, error)
	size     func() int
	category Category
}

// Iter starts a traversal. The caller must Close() the returned iterator.
func (s *Sequence[T]) Iter(ctx context.Context) Iterator[T] {
	return s.create(ctx)
}

// Backward starts a back-to-front traversal. Sequences below Bidirectional
// yield an iterator that fails with CATEGORY_MISMATCH.
func (s *Sequence[T]) Backward(ctx context.Context) Iterator[T] {
	if s.backward != nil {
		return s.backward(ctx)
	}
	if s.at != nil && s.size != nil {
		return &indexIter[T]{at: s.at, n: s.size(), reverse: true}
	}
	return errIter[T]{err: apperrors.CategoryMismatch("backward", s.category.String(), Bidirectional.String())}
}

// Category reports the traversal capability of the sequence.
func (s *Sequence[T]) Category() Category { return s.category }

// Size reports the number of elements when it is known without traversal.
func (s *Sequence[T]) Size() (int, bool) {
	if s.size == nil {
		return 0, false
	}
	return s.size(), true
}

// At returns the element at index i of a random-access sequence.
func (s *Sequence[T]) At(i int) (T, error) {
	var zero T
	if s.at == nil || s.size == nil {
		return zero, apperrors.CategoryMismatch("at", s.category.String(), RandomAccess.String())
	}
	if n := s.size(); i < 0 || i >= n {
		return zero, apperrors.OutOfRange("at", i, n)
	}
	return s.at(i)
}

// All adapts a traversal to a range-over-func iterator. Iteration stops after
// the first error, which is yielded with a zero value.
func (s *Sequence[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		it := s.create(ctx)
		defer it.Close()
		for {
			v, ok, err := it.Next(ctx)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok || !yield(v, nil) {
				return
			}
		}
	}
}

func (s *Sequence[T]) randomAccess() bool {
	return s.category == RandomAccess && s.at != nil && s.size != nil
}

func (s *Sequence[T]) multiPass() bool { return s.category >= Forward }

func (s *Sequence[T]) bidirectional() bool { return s.category >= Bidirectional }

// fromIndex builds a random-access sequence over an element accessor.
func fromIndex[T any](size func() int, at func(int) (T, error)) *Sequence[T] {
	return &Sequence[T]{
		create: func(_ context.Context) Iterator[T] {
			return &indexIter[T]{at: at, n: size()}
		},
		at:       at,
		size:     size,
		category: RandomAccess,
	}
}

// errSeq is a sequence whose every traversal fails with err.
func errSeq[T any](err error) *Sequence[T] {
	return &Sequence[T]{
		create:   func(context.Context) Iterator[T] { return errIter[T]{err: err} },
		backward: func(context.Context) Iterator[T] { return errIter[T]{err: err} },
		category: Forward,
	}
}

// singlePass guards a factory so that only the first traversal succeeds.
func singlePass[T any](op string, create func(ctx context.Context) Iterator[T]) func(ctx context.Context) Iterator[T] {
	used := false
	return func(ctx context.Context) Iterator[T] {
		if used {
			return errIter[T]{err: apperrors.SinglePassReused(op)}
		}
		used = true
		return create(ctx)
	}
}

// maxBufferHint bounds the initial capacity of a buffer sized from a
// caller's count when the input size is unknown.
const maxBufferHint = 64

// bufferHint is the initial capacity for a buffer of up to n values of s.
func bufferHint[T any](s *Sequence[T], n int) int {
	if s.size != nil {
		return min(n, s.size())
	}
	return min(n, maxBufferHint)
}

// ceilDiv is a/b rounded up for a >= 0 and b > 0, without overflow.
func ceilDiv(a, b int) int {
	if a%b != 0 {
		return a/b + 1
	}
	return a / b
}

// capAt lowers c to at most limit.
func capAt(c, limit Category) Category { return min(c, limit) }

func checkCount(op, arg string, n int) error {
	if n < 0 {
		return apperrors.InvalidArgument(op, arg, "must not be negative")
	}
	return nil
}

func checkPositive(op, arg string, n int) error {
	if n <= 0 {
		return apperrors.InvalidArgument(op, arg, "must be positive")
	}
	return nil
}

// sizeOr returns the known size of s or counts it with a fresh traversal.
// Single-pass sequences without a size cannot be counted.
func sizeOr[T any](ctx context.Context, op string, s *Sequence[T]) (int, error) {
	if n, ok := s.Size(); ok {
		return n, nil
	}
	if !s.multiPass() {
		return 0, apperrors.CategoryMismatch(op, s.category.String(), Forward.String())
	}
	return Distance(ctx, s)
}
