package action

import (
	"slices"

	apperrors "github.com/kbukum/rangekit/errors"
)

// Take keeps the first n values. Taking more values than xs holds keeps all.
func Take[T any](xs *[]T, n int) error {
	if n < 0 {
		return apperrors.InvalidArgument("take", "n", "must not be negative")
	}
	*xs = (*xs)[:min(n, len(*xs))]
	return nil
}

// TakeWhile keeps the values before the first one that fails fn.
func TakeWhile[T any](xs *[]T, fn func(T) bool) {
	i := slices.IndexFunc(*xs, func(v T) bool { return !fn(v) })
	if i >= 0 {
		*xs = (*xs)[:i]
	}
}

// Drop removes the first n values. Dropping more values than xs holds
// leaves it empty.
func Drop[T any](xs *[]T, n int) error {
	if n < 0 {
		return apperrors.InvalidArgument("drop", "n", "must not be negative")
	}
	*xs = slices.Delete(*xs, 0, min(n, len(*xs)))
	return nil
}

// DropWhile removes the values before the first one that fails fn.
func DropWhile[T any](xs *[]T, fn func(T) bool) {
	i := slices.IndexFunc(*xs, func(v T) bool { return !fn(v) })
	if i < 0 {
		i = len(*xs)
	}
	*xs = slices.Delete(*xs, 0, i)
}

// Slice keeps xs[lo:hi].
func Slice[T any](xs *[]T, lo, hi int) error {
	if lo < 0 || hi > len(*xs) || lo > hi {
		return apperrors.OutOfRange("slice", outside(lo, hi, len(*xs)), len(*xs))
	}
	*xs = slices.Delete((*xs)[:hi], 0, lo)
	return nil
}

// Stride keeps every n-th value starting with the first.
func Stride[T any](xs *[]T, n int) error {
	if n <= 0 {
		return apperrors.InvalidArgument("stride", "n", "must be positive")
	}
	s := *xs
	k := 0
	for i := 0; i < len(s); i += n {
		s[k] = s[i]
		k++
	}
	clear(s[k:])
	*xs = s[:k]
	return nil
}
