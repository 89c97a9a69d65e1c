package action

import (
	"slices"

	apperrors "github.com/kbukum/rangekit/errors"
)

// Erase removes xs[lo:hi].
func Erase[T any](xs *[]T, lo, hi int) error {
	if lo < 0 || hi > len(*xs) || lo > hi {
		return apperrors.OutOfRange("erase", outside(lo, hi, len(*xs)), len(*xs))
	}
	*xs = slices.Delete(*xs, lo, hi)
	return nil
}

// EraseValue removes every value equal to v.
func EraseValue[T comparable](xs *[]T, v T) {
	RemoveIf(xs, func(x T) bool { return x == v })
}

// RemoveIf removes every value that satisfies fn, keeping the others in order.
func RemoveIf[T any](xs *[]T, fn func(T) bool) {
	*xs = slices.DeleteFunc(*xs, fn)
}

// Insert inserts vals before xs[pos]. pos may equal len(xs).
func Insert[T any](xs *[]T, pos int, vals ...T) error {
	if pos < 0 || pos > len(*xs) {
		return apperrors.OutOfRange("insert", pos, len(*xs))
	}
	*xs = slices.Insert(*xs, pos, vals...)
	return nil
}

// InsertN inserts n copies of v before xs[pos].
func InsertN[T any](xs *[]T, pos, n int, v T) error {
	if n < 0 {
		return apperrors.InvalidArgument("insert_n", "n", "must not be negative")
	}
	vals := make([]T, n)
	for i := range vals {
		vals[i] = v
	}
	return Insert(xs, pos, vals...)
}

// PushBack appends vals.
func PushBack[T any](xs *[]T, vals ...T) {
	*xs = append(*xs, vals...)
}

// PushFront prepends vals.
func PushFront[T any](xs *[]T, vals ...T) {
	*xs = slices.Insert(*xs, 0, vals...)
}

// Rotate moves xs[mid:] in front of xs[:mid], so xs[mid] becomes the first value.
func Rotate[T any](xs *[]T, mid int) error {
	s := *xs
	if mid < 0 || mid > len(s) {
		return apperrors.OutOfRange("rotate", mid, len(s))
	}
	slices.Reverse(s[:mid])
	slices.Reverse(s[mid:])
	slices.Reverse(s)
	return nil
}

// Reverse reverses xs.
func Reverse[T any](xs *[]T) {
	slices.Reverse(*xs)
}

// Transform replaces every value with fn of it.
func Transform[T any](xs *[]T, fn func(T) T) {
	s := *xs
	for i, v := range s {
		s[i] = fn(v)
	}
}

func outside(lo, hi, n int) int {
	if lo < 0 || lo > n {
		return lo
	}
	return hi
}
