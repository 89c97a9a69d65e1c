package ranges

import (
	"context"
	"strings"
)

// ToSlice materializes s into a new slice. Sized inputs are allocated once.
func ToSlice[T any](ctx context.Context, s *Sequence[T]) ([]T, error) {
	out, err := Collect(ctx, s)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// ToMap materializes key/value pairs into a map. When a key occurs more than
// once, the last pair wins.
func ToMap[K comparable, V any](ctx context.Context, s *Sequence[Pair[K, V]]) (map[K]V, error) {
	out := make(map[K]V)
	err := visit(ctx, s, func(p Pair[K, V]) bool {
		out[p.First] = p.Second
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Set is an unordered collection of distinct values.
type Set[T comparable] map[T]struct{}

// Add inserts v and reports whether it was absent.
func (s Set[T]) Add(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values in the set.
func (s Set[T]) Len() int { return len(s) }

// ToSet materializes the distinct values of s.
func ToSet[T comparable](ctx context.Context, s *Sequence[T]) (Set[T], error) {
	out := make(Set[T])
	err := visit(ctx, s, func(v T) bool {
		out.Add(v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToGroups materializes s into groups keyed by key. Values keep their
// traversal order within a group.
func ToGroups[T any, K comparable](ctx context.Context, s *Sequence[T], key func(T) K) (map[K][]T, error) {
	out := make(map[K][]T)
	err := visit(ctx, s, func(v T) bool {
		k := key(v)
		out[k] = append(out[k], v)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToString materializes a sequence of runes into a string.
func ToString(ctx context.Context, s *Sequence[rune]) (string, error) {
	var b strings.Builder
	if n, ok := s.Size(); ok {
		b.Grow(n)
	}
	err := visit(ctx, s, func(r rune) bool {
		b.WriteRune(r)
		return true
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
