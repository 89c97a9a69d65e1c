package ranges

import (
	"cmp"
	"context"

	apperrors "github.com/kbukum/rangekit/errors"
)

// Accumulate folds s into a single value, starting from init.
func Accumulate[T, A any](ctx context.Context, s *Sequence[T], init A, op func(acc A, v T) A) (A, error) {
	acc := init
	err := visit(ctx, s, func(v T) bool {
		acc = op(acc, v)
		return true
	})
	return acc, err
}

// Sum adds up the values of s.
func Sum[T Number](ctx context.Context, s *Sequence[T]) (T, error) {
	return Accumulate(ctx, s, T(0), func(acc, v T) T { return acc + v })
}

// InnerProduct sums the products of paired values of a and b, starting from
// init. It stops at the end of the shorter input.
func InnerProduct[T Number](ctx context.Context, a, b *Sequence[T], init T) (T, error) {
	return Accumulate(ctx, ZipWith(a, b, func(x, y T) T { return x * y }), init, func(acc, v T) T { return acc + v })
}

// Distance returns the number of values in s. Sized sequences answer without
// a traversal.
func Distance[T any](ctx context.Context, s *Sequence[T]) (int, error) {
	if n, ok := s.Size(); ok {
		return n, nil
	}
	return CountIf(ctx, s, func(T) bool { return true })
}

// Count returns the number of values equal to v.
func Count[T comparable](ctx context.Context, s *Sequence[T], v T) (int, error) {
	return CountIf(ctx, s, func(x T) bool { return x == v })
}

// CountIf returns the number of values that satisfy fn.
func CountIf[T any](ctx context.Context, s *Sequence[T], fn func(T) bool) (int, error) {
	n := 0
	err := visit(ctx, s, func(v T) bool {
		if fn(v) {
			n++
		}
		return true
	})
	return n, err
}

// Find returns the first value equal to v.
func Find[T comparable](ctx context.Context, s *Sequence[T], v T) (T, bool, error) {
	return FindIf(ctx, s, func(x T) bool { return x == v })
}

// FindIf returns the first value that satisfies fn.
func FindIf[T any](ctx context.Context, s *Sequence[T], fn func(T) bool) (T, bool, error) {
	var (
		found T
		ok    bool
	)
	err := visit(ctx, s, func(v T) bool {
		if fn(v) {
			found, ok = v, true
			return false
		}
		return true
	})
	return found, ok, err
}

// Position returns the index of the first value that satisfies fn, or -1.
func Position[T any](ctx context.Context, s *Sequence[T], fn func(T) bool) (int, bool, error) {
	i, pos := 0, -1
	err := visit(ctx, s, func(v T) bool {
		if fn(v) {
			pos = i
			return false
		}
		i++
		return true
	})
	return pos, pos >= 0, err
}

// AnyOf reports whether some value satisfies fn. It is false for an empty input.
func AnyOf[T any](ctx context.Context, s *Sequence[T], fn func(T) bool) (bool, error) {
	_, ok, err := FindIf(ctx, s, fn)
	return ok, err
}

// AllOf reports whether every value satisfies fn. It is true for an empty input.
func AllOf[T any](ctx context.Context, s *Sequence[T], fn func(T) bool) (bool, error) {
	_, ok, err := FindIf(ctx, s, func(v T) bool { return !fn(v) })
	return !ok, err
}

// NoneOf reports whether no value satisfies fn. It is true for an empty input.
func NoneOf[T any](ctx context.Context, s *Sequence[T], fn func(T) bool) (bool, error) {
	ok, err := AnyOf(ctx, s, fn)
	return !ok, err
}

// Min returns the smallest value, the first one among equals.
func Min[T cmp.Ordered](ctx context.Context, s *Sequence[T]) (T, bool, error) {
	return MinFunc(ctx, s, cmp.Compare[T])
}

// MinFunc returns the smallest value according to compare.
func MinFunc[T any](ctx context.Context, s *Sequence[T], compare func(a, b T) int) (T, bool, error) {
	lo, _, ok, err := MinMaxFunc(ctx, s, compare)
	return lo, ok, err
}

// Max returns the largest value, the last one among equals.
func Max[T cmp.Ordered](ctx context.Context, s *Sequence[T]) (T, bool, error) {
	return MaxFunc(ctx, s, cmp.Compare[T])
}

// MaxFunc returns the largest value according to compare.
func MaxFunc[T any](ctx context.Context, s *Sequence[T], compare func(a, b T) int) (T, bool, error) {
	_, hi, ok, err := MinMaxFunc(ctx, s, compare)
	return hi, ok, err
}

// MinMax returns the smallest and largest values in one traversal.
func MinMax[T cmp.Ordered](ctx context.Context, s *Sequence[T]) (lo, hi T, ok bool, err error) {
	return MinMaxFunc(ctx, s, cmp.Compare[T])
}

// MinMaxFunc returns the smallest and largest values according to compare.
func MinMaxFunc[T any](ctx context.Context, s *Sequence[T], compare func(a, b T) int) (lo, hi T, ok bool, err error) {
	err = visit(ctx, s, func(v T) bool {
		if !ok {
			lo, hi, ok = v, v, true
			return true
		}
		if compare(v, lo) < 0 {
			lo = v
		}
		if compare(v, hi) >= 0 {
			hi = v
		}
		return true
	})
	return lo, hi, ok, err
}

// Equal reports whether a and b hold the same values in the same order.
func Equal[T comparable](ctx context.Context, a, b *Sequence[T]) (bool, error) {
	return EqualFunc(ctx, a, b, func(x, y T) bool { return x == y })
}

// EqualFunc reports whether a and b have the same length and eq holds for
// every pair of values.
func EqualFunc[A, B any](ctx context.Context, a *Sequence[A], b *Sequence[B], eq func(A, B) bool) (bool, error) {
	if na, ok := a.Size(); ok {
		if nb, ok := b.Size(); ok && na != nb {
			return false, nil
		}
	}
	_, found, err := MismatchFunc(ctx, a, b, eq)
	return !found, err
}

// Mismatch returns the first index at which a and b differ. An index equal to
// the length of the shorter input is reported when one is a proper prefix of
// the other. found is false when both hold the same values.
func Mismatch[T comparable](ctx context.Context, a, b *Sequence[T]) (int, bool, error) {
	return MismatchFunc(ctx, a, b, func(x, y T) bool { return x == y })
}

// MismatchFunc is Mismatch with a custom equality.
func MismatchFunc[A, B any](ctx context.Context, a *Sequence[A], b *Sequence[B], eq func(A, B) bool) (int, bool, error) {
	ia, ib := a.create(ctx), b.create(ctx)
	defer ia.Close()
	defer ib.Close()
	for i := 0; ; i++ {
		va, okA, err := ia.Next(ctx)
		if err != nil {
			return i, false, err
		}
		vb, okB, err := ib.Next(ctx)
		if err != nil {
			return i, false, err
		}
		switch {
		case !okA && !okB:
			return -1, false, nil
		case okA != okB:
			return i, true, nil
		case !eq(va, vb):
			return i, true, nil
		}
	}
}

// IsSorted reports whether s is in ascending order.
func IsSorted[T cmp.Ordered](ctx context.Context, s *Sequence[T]) (bool, error) {
	return IsSortedFunc(ctx, s, cmp.Compare[T])
}

// IsSortedFunc reports whether s is in ascending order according to compare.
func IsSortedFunc[T any](ctx context.Context, s *Sequence[T], compare func(a, b T) int) (bool, error) {
	var prev T
	started, sorted := false, true
	err := visit(ctx, s, func(v T) bool {
		if started && compare(v, prev) < 0 {
			sorted = false
			return false
		}
		prev, started = v, true
		return true
	})
	return sorted, err
}

// LowerBound returns the index of the first value not less than v in a
// sorted random-access sequence.
func LowerBound[T cmp.Ordered](s *Sequence[T], v T) (int, error) {
	return partitionPoint(s, "lower_bound", func(x T) bool { return x < v })
}

// UpperBound returns the index of the first value greater than v in a sorted
// random-access sequence.
func UpperBound[T cmp.Ordered](s *Sequence[T], v T) (int, error) {
	return partitionPoint(s, "upper_bound", func(x T) bool { return x <= v })
}

// BinarySearch reports whether v is present in a sorted random-access
// sequence.
func BinarySearch[T cmp.Ordered](s *Sequence[T], v T) (bool, error) {
	i, err := LowerBound(s, v)
	if err != nil {
		return false, err
	}
	n, _ := s.Size()
	if i == n {
		return false, nil
	}
	x, err := s.at(i)
	return err == nil && x == v, err
}

// partitionPoint returns the first index for which before no longer holds.
func partitionPoint[T any](s *Sequence[T], op string, before func(T) bool) (int, error) {
	if !s.randomAccess() {
		return 0, apperrors.CategoryMismatch(op, s.category.String(), RandomAccess.String())
	}
	lo, hi := 0, s.size()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		x, err := s.at(mid)
		if err != nil {
			return 0, err
		}
		if before(x) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, nil
}

// Front returns the first value.
func Front[T any](ctx context.Context, s *Sequence[T]) (T, bool, error) {
	return FindIf(ctx, s, func(T) bool { return true })
}

// Back returns the last value. Bidirectional sequences answer from the back;
// others are traversed to the end.
func Back[T any](ctx context.Context, s *Sequence[T]) (T, bool, error) {
	if s.bidirectional() {
		return Front(ctx, Reverse(s))
	}
	var (
		last T
		ok   bool
	)
	err := visit(ctx, s, func(v T) bool {
		last, ok = v, true
		return true
	})
	return last, ok, err
}

// Nth returns the value at index i, or false when s is shorter.
func Nth[T any](ctx context.Context, s *Sequence[T], i int) (T, bool, error) {
	var zero T
	if i < 0 {
		return zero, false, apperrors.InvalidArgument("nth", "i", "must not be negative")
	}
	if s.randomAccess() {
		if i >= s.size() {
			return zero, false, nil
		}
		v, err := s.at(i)
		return v, err == nil, err
	}
	return Front(ctx, Drop(s, i))
}
