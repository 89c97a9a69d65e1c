package action

import (
	"context"

	"github.com/kbukum/rangekit/ranges"
)

// Split breaks xs into the groups between values equal to d, with the same
// rules as ranges.Split.
func Split[T comparable](xs []T, d T) [][]T {
	return groups(ranges.Split(ranges.FromSlice(xs), d))
}

// SplitSeq breaks xs at every occurrence of delim.
func SplitSeq[T comparable](xs, delim []T) [][]T {
	return groups(ranges.SplitSeq(ranges.FromSlice(xs), delim))
}

// SplitWhen breaks xs at every value that satisfies fn.
func SplitWhen[T any](xs []T, fn func(T) bool) [][]T {
	return groups(ranges.SplitWhen(ranges.FromSlice(xs), fn))
}

// Join concatenates groups, placing sep between adjacent groups.
func Join[T any](groups [][]T, sep ...T) []T {
	out, _ := ranges.ToSlice(context.Background(), ranges.JoinWith(ranges.FromSlice(groups), sep...))
	return out
}

// JoinStrings concatenates parts with sep between adjacent parts.
func JoinStrings(parts []string, sep string) string {
	runes := ranges.Transform(ranges.FromSlice(parts), func(s string) []rune { return []rune(s) })
	out, _ := ranges.ToString(context.Background(), ranges.JoinWith(runes, []rune(sep)...))
	return out
}

// groups drains a split of an in-memory slice, which cannot fail.
func groups[T any](s *ranges.Sequence[[]T]) [][]T {
	out, _ := ranges.ToSlice(context.Background(), s)
	return out
}
