package pipe

import (
	"cmp"
	"context"
	"math/rand/v2"

	"github.com/kbukum/rangekit/ranges"
)

// Filter is the closure form of ranges.Filter.
func Filter[T any](fn func(T) bool) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.Filter(s, fn) }
}

// RemoveIf is the closure form of ranges.RemoveIf.
func RemoveIf[T any](fn func(T) bool) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.RemoveIf(s, fn) }
}

// Transform is the closure form of ranges.Transform.
func Transform[T, U any](fn func(T) U) Adaptor[T, U] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[U] { return ranges.Transform(s, fn) }
}

// TransformErr is the closure form of ranges.TransformErr.
func TransformErr[T, U any](fn func(context.Context, T) (U, error)) Adaptor[T, U] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[U] { return ranges.TransformErr(s, fn) }
}

// Tap is the closure form of ranges.Tap.
func Tap[T any](fn func(context.Context, T) error) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.Tap(s, fn) }
}

// Replace is the closure form of ranges.Replace.
func Replace[T comparable](old, repl T) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.Replace(s, old, repl) }
}

// ReplaceIf is the closure form of ranges.ReplaceIf.
func ReplaceIf[T any](fn func(T) bool, repl T) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.ReplaceIf(s, fn, repl) }
}

// Unique is the closure form of ranges.Unique.
func Unique[T comparable]() Adaptor[T, T] {
	return ranges.Unique[T]
}

// UniqueFunc is the closure form of ranges.UniqueFunc.
func UniqueFunc[T any](eq func(a, b T) bool) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.UniqueFunc(s, eq) }
}

// AdjacentFilter is the closure form of ranges.AdjacentFilter.
func AdjacentFilter[T any](fn func(prev, cur T) bool) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.AdjacentFilter(s, fn) }
}

// AdjacentRemoveIf is the closure form of ranges.AdjacentRemoveIf.
func AdjacentRemoveIf[T any](fn func(cur, next T) bool) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.AdjacentRemoveIf(s, fn) }
}

// Take is the closure form of ranges.Take.
func Take[T any](n int) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.Take(s, n) }
}

// TakeExactly is the closure form of ranges.TakeExactly.
func TakeExactly[T any](n int) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.TakeExactly(s, n) }
}

// TakeWhile is the closure form of ranges.TakeWhile.
func TakeWhile[T any](fn func(T) bool) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.TakeWhile(s, fn) }
}

// Delimit is the closure form of ranges.Delimit.
func Delimit[T comparable](v T) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.Delimit(s, v) }
}

// Drop is the closure form of ranges.Drop.
func Drop[T any](n int) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.Drop(s, n) }
}

// DropExactly is the closure form of ranges.DropExactly.
func DropExactly[T any](n int) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.DropExactly(s, n) }
}

// DropWhile is the closure form of ranges.DropWhile.
func DropWhile[T any](fn func(T) bool) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.DropWhile(s, fn) }
}

// Tail is the closure form of ranges.Tail.
func Tail[T any]() Adaptor[T, T] {
	return ranges.Tail[T]
}

// Slice is the closure form of ranges.Slice.
func Slice[T any](lo, hi ranges.Pos) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.Slice(s, lo, hi) }
}

// Stride is the closure form of ranges.Stride.
func Stride[T any](n int) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.Stride(s, n) }
}

// Reverse is the closure form of ranges.Reverse.
func Reverse[T any]() Adaptor[T, T] {
	return ranges.Reverse[T]
}

// Cycle is the closure form of ranges.Cycle.
func Cycle[T any]() Adaptor[T, T] {
	return ranges.Cycle[T]
}

// Once is the closure form of ranges.Once.
func Once[T any]() Adaptor[T, T] {
	return ranges.Once[T]
}

// Concat appends others after the input sequence.
func Concat[T any](others ...*ranges.Sequence[T]) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] {
		return ranges.Concat(append([]*ranges.Sequence[T]{s}, others...)...)
	}
}

// Zip pairs the input sequence with b.
func Zip[A, B any](b *ranges.Sequence[B]) Adaptor[A, ranges.Pair[A, B]] {
	return func(s *ranges.Sequence[A]) *ranges.Sequence[ranges.Pair[A, B]] { return ranges.Zip(s, b) }
}

// ZipWith combines the input sequence with b through fn.
func ZipWith[A, B, R any](b *ranges.Sequence[B], fn func(A, B) R) Adaptor[A, R] {
	return func(s *ranges.Sequence[A]) *ranges.Sequence[R] { return ranges.ZipWith(s, b, fn) }
}

// Enumerate is the closure form of ranges.Enumerate.
func Enumerate[T any]() Adaptor[T, ranges.Pair[int, T]] {
	return ranges.Enumerate[T]
}

// CartesianProduct pairs every input value with every value of b.
func CartesianProduct[A, B any](b *ranges.Sequence[B]) Adaptor[A, ranges.Pair[A, B]] {
	return func(s *ranges.Sequence[A]) *ranges.Sequence[ranges.Pair[A, B]] { return ranges.CartesianProduct(s, b) }
}

// FlatMap is the closure form of ranges.FlatMap.
func FlatMap[T, U any](fn func(T) *ranges.Sequence[U]) Adaptor[T, U] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[U] { return ranges.FlatMap(s, fn) }
}

// Flatten is the closure form of ranges.Flatten.
func Flatten[T any]() Adaptor[*ranges.Sequence[T], T] {
	return ranges.Flatten[T]
}

// Join is the closure form of ranges.Join.
func Join[T any]() Adaptor[[]T, T] {
	return ranges.Join[T]
}

// JoinWith is the closure form of ranges.JoinWith.
func JoinWith[T any](sep ...T) Adaptor[[]T, T] {
	return func(s *ranges.Sequence[[]T]) *ranges.Sequence[T] { return ranges.JoinWith(s, sep...) }
}

// Intersperse is the closure form of ranges.Intersperse.
func Intersperse[T any](sep T) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.Intersperse(s, sep) }
}

// Split is the closure form of ranges.Split.
func Split[T comparable](d T) Adaptor[T, []T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[[]T] { return ranges.Split(s, d) }
}

// SplitSeq is the closure form of ranges.SplitSeq.
func SplitSeq[T comparable](delim []T) Adaptor[T, []T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[[]T] { return ranges.SplitSeq(s, delim) }
}

// SplitWhen is the closure form of ranges.SplitWhen.
func SplitWhen[T any](fn func(T) bool) Adaptor[T, []T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[[]T] { return ranges.SplitWhen(s, fn) }
}

// GroupBy is the closure form of ranges.GroupBy.
func GroupBy[T any](fn func(prev, cur T) bool) Adaptor[T, []T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[[]T] { return ranges.GroupBy(s, fn) }
}

// Chunk is the closure form of ranges.Chunk.
func Chunk[T any](n int) Adaptor[T, []T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[[]T] { return ranges.Chunk(s, n) }
}

// Sliding is the closure form of ranges.Sliding.
func Sliding[T any](n int) Adaptor[T, []T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[[]T] { return ranges.Sliding(s, n) }
}

// PartialSum is the closure form of ranges.PartialSum.
func PartialSum[T ranges.Number]() Adaptor[T, T] {
	return ranges.PartialSum[T]
}

// PartialSumFunc is the closure form of ranges.PartialSumFunc.
func PartialSumFunc[T any](op func(acc, v T) T) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.PartialSumFunc(s, op) }
}

// InclusiveScan is the closure form of ranges.InclusiveScan.
func InclusiveScan[T, A any](seed A, op func(acc A, v T) A) Adaptor[T, A] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[A] { return ranges.InclusiveScan(s, seed, op) }
}

// ExclusiveScan is the closure form of ranges.ExclusiveScan.
func ExclusiveScan[T, A any](seed A, op func(acc A, v T) A) Adaptor[T, A] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[A] { return ranges.ExclusiveScan(s, seed, op) }
}

// AdjacentDifference is the closure form of ranges.AdjacentDifference.
func AdjacentDifference[T ranges.Number]() Adaptor[T, T] {
	return ranges.AdjacentDifference[T]
}

// AdjacentDifferenceFunc is the closure form of ranges.AdjacentDifferenceFunc.
func AdjacentDifferenceFunc[T any](op func(cur, prev T) T) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.AdjacentDifferenceFunc(s, op) }
}

// Sample is the closure form of ranges.Sample.
func Sample[T any](k int, rng *rand.Rand) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.Sample(s, k, rng) }
}

// SetDifference removes the values of b from the sorted input.
func SetDifference[T cmp.Ordered](b *ranges.Sequence[T]) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.SetDifference(s, b) }
}

// SetIntersection keeps the values of the sorted input also present in b.
func SetIntersection[T cmp.Ordered](b *ranges.Sequence[T]) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.SetIntersection(s, b) }
}

// SetUnion merges the sorted input with b.
func SetUnion[T cmp.Ordered](b *ranges.Sequence[T]) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.SetUnion(s, b) }
}

// SetSymmetricDifference keeps the values present in exactly one of the
// sorted input and b.
func SetSymmetricDifference[T cmp.Ordered](b *ranges.Sequence[T]) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.SetSymmetricDifference(s, b) }
}

// Observe is the closure form of ranges.Observe.
func Observe[T any](hooks ranges.Hooks[T]) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return ranges.Observe(s, hooks) }
}
