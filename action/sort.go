package action

import (
	"cmp"
	"math/rand/v2"
	"slices"

	apperrors "github.com/kbukum/rangekit/errors"
)

// Sort sorts xs in ascending order.
func Sort[T cmp.Ordered](xs *[]T) {
	slices.Sort(*xs)
}

// SortFunc sorts xs by compare.
func SortFunc[T any](xs *[]T, compare func(a, b T) int) {
	slices.SortFunc(*xs, compare)
}

// SortBy sorts xs by the key of every value.
func SortBy[T any, K cmp.Ordered](xs *[]T, key func(T) K) {
	slices.SortFunc(*xs, byKey(key))
}

// StableSort sorts xs in ascending order keeping equal values in order.
func StableSort[T cmp.Ordered](xs *[]T) {
	slices.SortStableFunc(*xs, cmp.Compare[T])
}

// StableSortFunc sorts xs by compare keeping equal values in order.
func StableSortFunc[T any](xs *[]T, compare func(a, b T) int) {
	slices.SortStableFunc(*xs, compare)
}

// StableSortBy sorts xs by the key of every value keeping values with equal
// keys in order.
func StableSortBy[T any, K cmp.Ordered](xs *[]T, key func(T) K) {
	slices.SortStableFunc(*xs, byKey(key))
}

func byKey[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// Unique collapses runs of equal adjacent values to one.
func Unique[T comparable](xs *[]T) {
	*xs = slices.Compact(*xs)
}

// UniqueFunc collapses runs of adjacent values for which eq holds.
func UniqueFunc[T any](xs *[]T, eq func(a, b T) bool) {
	*xs = slices.CompactFunc(*xs, eq)
}

// Shuffle permutes xs uniformly at random using rng.
func Shuffle[T any](xs *[]T, rng *rand.Rand) error {
	if rng == nil {
		return apperrors.InvalidArgument("shuffle", "rng", "must not be nil")
	}
	s := *xs
	for i := len(s) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
	return nil
}
