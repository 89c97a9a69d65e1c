package action

import (
	"cmp"
	"math/rand/v2"
)

// Action is an in-place operation waiting for its slice.
type Action[T any] func(xs *[]T) error

// Apply runs acts on xs in order and stops at the first error.
func Apply[T any](xs *[]T, acts ...Action[T]) error {
	for _, act := range acts {
		if err := act(xs); err != nil {
			return err
		}
	}
	return nil
}

// Then returns the action running a, then next.
func (a Action[T]) Then(next Action[T]) Action[T] {
	return func(xs *[]T) error {
		if err := a(xs); err != nil {
			return err
		}
		return next(xs)
	}
}

func infallible[T any](fn func(*[]T)) Action[T] {
	return func(xs *[]T) error {
		fn(xs)
		return nil
	}
}

// Sorted is the closure form of Sort.
func Sorted[T cmp.Ordered]() Action[T] { return infallible(Sort[T]) }

// SortedFunc is the closure form of SortFunc.
func SortedFunc[T any](compare func(a, b T) int) Action[T] {
	return infallible(func(xs *[]T) { SortFunc(xs, compare) })
}

// SortedBy is the closure form of SortBy.
func SortedBy[T any, K cmp.Ordered](key func(T) K) Action[T] {
	return infallible(func(xs *[]T) { SortBy(xs, key) })
}

// StableSorted is the closure form of StableSort.
func StableSorted[T cmp.Ordered]() Action[T] { return infallible(StableSort[T]) }

// StableSortedFunc is the closure form of StableSortFunc.
func StableSortedFunc[T any](compare func(a, b T) int) Action[T] {
	return infallible(func(xs *[]T) { StableSortFunc(xs, compare) })
}

// StableSortedBy is the closure form of StableSortBy.
func StableSortedBy[T any, K cmp.Ordered](key func(T) K) Action[T] {
	return infallible(func(xs *[]T) { StableSortBy(xs, key) })
}

// Uniqued is the closure form of Unique.
func Uniqued[T comparable]() Action[T] { return infallible(Unique[T]) }

// UniquedFunc is the closure form of UniqueFunc.
func UniquedFunc[T any](eq func(a, b T) bool) Action[T] {
	return infallible(func(xs *[]T) { UniqueFunc(xs, eq) })
}

// Shuffled is the closure form of Shuffle.
func Shuffled[T any](rng *rand.Rand) Action[T] {
	return func(xs *[]T) error { return Shuffle(xs, rng) }
}

// Erased is the closure form of Erase.
func Erased[T any](lo, hi int) Action[T] {
	return func(xs *[]T) error { return Erase(xs, lo, hi) }
}

// ErasedValue is the closure form of EraseValue.
func ErasedValue[T comparable](v T) Action[T] {
	return infallible(func(xs *[]T) { EraseValue(xs, v) })
}

// RemovedIf is the closure form of RemoveIf.
func RemovedIf[T any](fn func(T) bool) Action[T] {
	return infallible(func(xs *[]T) { RemoveIf(xs, fn) })
}

// Inserted is the closure form of Insert.
func Inserted[T any](pos int, vals ...T) Action[T] {
	return func(xs *[]T) error { return Insert(xs, pos, vals...) }
}

// InsertedN is the closure form of InsertN.
func InsertedN[T any](pos, n int, v T) Action[T] {
	return func(xs *[]T) error { return InsertN(xs, pos, n, v) }
}

// PushedBack is the closure form of PushBack.
func PushedBack[T any](vals ...T) Action[T] {
	return infallible(func(xs *[]T) { PushBack(xs, vals...) })
}

// PushedFront is the closure form of PushFront.
func PushedFront[T any](vals ...T) Action[T] {
	return infallible(func(xs *[]T) { PushFront(xs, vals...) })
}

// Rotated is the closure form of Rotate.
func Rotated[T any](mid int) Action[T] {
	return func(xs *[]T) error { return Rotate(xs, mid) }
}

// Reversed is the closure form of Reverse.
func Reversed[T any]() Action[T] { return infallible(Reverse[T]) }

// Transformed is the closure form of Transform.
func Transformed[T any](fn func(T) T) Action[T] {
	return infallible(func(xs *[]T) { Transform(xs, fn) })
}

// Taken is the closure form of Take.
func Taken[T any](n int) Action[T] {
	return func(xs *[]T) error { return Take(xs, n) }
}

// TakenWhile is the closure form of TakeWhile.
func TakenWhile[T any](fn func(T) bool) Action[T] {
	return infallible(func(xs *[]T) { TakeWhile(xs, fn) })
}

// Dropped is the closure form of Drop.
func Dropped[T any](n int) Action[T] {
	return func(xs *[]T) error { return Drop(xs, n) }
}

// DroppedWhile is the closure form of DropWhile.
func DroppedWhile[T any](fn func(T) bool) Action[T] {
	return infallible(func(xs *[]T) { DropWhile(xs, fn) })
}

// Sliced is the closure form of Slice.
func Sliced[T any](lo, hi int) Action[T] {
	return func(xs *[]T) error { return Slice(xs, lo, hi) }
}

// Strided is the closure form of Stride.
func Strided[T any](n int) Action[T] {
	return func(xs *[]T) error { return Stride(xs, n) }
}
