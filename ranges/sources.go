package ranges

import (
	"bufio"
	"cmp"
	"context"
	"io"
	"iter"
	"math/bits"
	"regexp"
	"slices"

	apperrors "github.com/kbukum/rangekit/errors"
)

// FromSlice creates a random-access sequence over items.
// The slice is not copied; later writes to it are visible to traversals.
func FromSlice[T any](items []T) *Sequence[T] {
	return fromIndex(
		func() int { return len(items) },
		func(i int) (T, error) { return items[i], nil },
	)
}

// From creates a single-pass sequence from an existing Iterator.
func From[T any](it Iterator[T]) *Sequence[T] {
	return &Sequence[T]{
		create:   singlePass("from", func(context.Context) Iterator[T] { return it }),
		category: SinglePass,
	}
}

// FromFunc creates a forward sequence from a factory that produces an Iterator
// for every traversal.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) *Sequence[T] {
	return &Sequence[T]{create: fn, category: Forward}
}

// FromSeq creates a forward sequence from a range-over-func iterator.
// Every traversal invokes seq again; Close stops an unfinished one.
func FromSeq[T any](seq iter.Seq[T]) *Sequence[T] {
	return &Sequence[T]{
		create:   func(context.Context) Iterator[T] { return newPullIter(seq) },
		category: Forward,
	}
}

// FromChan creates a single-pass sequence that receives from ch until it is
// closed or ctx is done.
func FromChan[T any](ch <-chan T) *Sequence[T] {
	return &Sequence[T]{
		create:   singlePass("from_chan", func(context.Context) Iterator[T] { return &channelIter[T]{ch: ch} }),
		category: SinglePass,
	}
}

// Once downgrades s to a single-pass sequence.
func Once[T any](s *Sequence[T]) *Sequence[T] {
	return &Sequence[T]{
		create: singlePass("once", func(ctx context.Context) Iterator[T] {
			return &onceIter[T]{source: s.create(ctx)}
		}),
		size:     s.size,
		category: SinglePass,
	}
}

// Lines creates a single-pass sequence of the lines of r without their
// line terminators.
func Lines(r io.Reader) *Sequence[string] {
	return &Sequence[string]{
		create: singlePass("lines", func(context.Context) Iterator[string] {
			return &linesIter{scanner: bufio.NewScanner(r)}
		}),
		category: SinglePass,
	}
}

type linesIter struct {
	scanner *bufio.Scanner
}

func (it *linesIter) Next(_ context.Context) (string, bool, error) {
	if it.scanner.Scan() {
		return it.scanner.Text(), true, nil
	}
	if err := it.scanner.Err(); err != nil {
		return "", false, apperrors.Internal("lines", err)
	}
	return "", false, nil
}

func (it *linesIter) Close() error { return nil }

// Iota creates the half-open integer range [lo, hi). An empty range results
// when hi <= lo.
func Iota[T Integer](lo, hi T) *Sequence[T] {
	n := 0
	if hi > lo {
		n = int(hi - lo)
	}
	return fromIndex(
		func() int { return n },
		func(i int) (T, error) { return lo + T(i), nil },
	)
}

// ClosedIota creates the closed integer range [lo, hi].
func ClosedIota[T Integer](lo, hi T) *Sequence[T] {
	n := 0
	if hi >= lo {
		n = int(hi-lo) + 1
	}
	return fromIndex(
		func() int { return n },
		func(i int) (T, error) { return lo + T(i), nil },
	)
}

// Ints creates the infinite sequence lo, lo+1, lo+2, ...
func Ints[T Integer](lo T) *Sequence[T] {
	return &Sequence[T]{
		create: func(context.Context) Iterator[T] {
			next := lo
			return &generateIter[T]{fn: func() T { v := next; next++; return v }, n: -1}
		},
		category: Forward,
	}
}

// Indices creates the sequence 0, 1, ..., n-1.
func Indices(n int) *Sequence[int] {
	return Iota(0, n)
}

// Single creates a sequence holding exactly v.
func Single[T any](v T) *Sequence[T] {
	return RepeatN(v, 1)
}

// Empty creates a sequence with no elements.
func Empty[T any]() *Sequence[T] {
	return FromSlice[T](nil)
}

// Repeat creates the infinite sequence v, v, v, ...
func Repeat[T any](v T) *Sequence[T] {
	return &Sequence[T]{
		create: func(context.Context) Iterator[T] {
			return &generateIter[T]{fn: func() T { return v }, n: -1}
		},
		category: Forward,
	}
}

// RepeatN creates a sequence of n copies of v.
func RepeatN[T any](v T, n int) *Sequence[T] {
	if err := checkCount("repeat_n", "n", n); err != nil {
		return errSeq[T](err)
	}
	return fromIndex(
		func() int { return n },
		func(int) (T, error) { return v, nil },
	)
}

// Generate creates an infinite single-pass sequence of successive fn results.
func Generate[T any](fn func() T) *Sequence[T] {
	return &Sequence[T]{
		create: singlePass("generate", func(context.Context) Iterator[T] {
			return &generateIter[T]{fn: fn, n: -1}
		}),
		category: SinglePass,
	}
}

// GenerateN creates a single-pass sequence of the first n results of fn.
func GenerateN[T any](fn func() T, n int) *Sequence[T] {
	if err := checkCount("generate_n", "n", n); err != nil {
		return errSeq[T](err)
	}
	return &Sequence[T]{
		create: singlePass("generate_n", func(context.Context) Iterator[T] {
			return &generateIter[T]{fn: fn, n: n}
		}),
		size:     func() int { return n },
		category: SinglePass,
	}
}

// generateIter calls fn n times, or forever when n < 0.
type generateIter[T any] struct {
	fn func() T
	n  int
}

func (it *generateIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.n == 0 {
		var zero T
		return zero, false, nil
	}
	if it.n > 0 {
		it.n--
	}
	return it.fn(), true, nil
}

func (it *generateIter[T]) Close() error { return nil }

// LinearDistribute creates n values evenly spaced over [from, to]. The first
// value is from and the last is to; n == 1 yields just from.
func LinearDistribute[T Number](from, to T, n int) *Sequence[T] {
	if err := checkCount("linear_distribute", "n", n); err != nil {
		return errSeq[T](err)
	}
	return fromIndex(
		func() int { return n },
		func(i int) (T, error) {
			if n == 1 {
				return from, nil
			}
			if i == n-1 {
				return to, nil
			}
			return interpolate(from, to, i, n-1), nil
		},
	)
}

// interpolate returns the value i/d of the way from from to to, for 0 <= i <= d.
func interpolate[T Number](from, to T, i, d int) T {
	var one T = 1
	if one/2 != 0 {
		return from + (to-from)*T(i)/T(d)
	}
	// Integers are offset in uint64 so that neither a descending range of an
	// unsigned type nor a span wider than T wraps.
	lo, hi := uint64(from), uint64(to)
	if from > to {
		return T(lo - scale(lo-hi, i, d))
	}
	return T(lo + scale(hi-lo, i, d))
}

// scale returns span*i/d through a 128-bit product. i <= d keeps the quotient
// within 64 bits.
func scale(span uint64, i, d int) uint64 {
	hi, lo := bits.Mul64(span, uint64(i))
	q, _ := bits.Div64(hi, lo, uint64(d))
	return q
}

// Entries creates a random-access sequence of the key/value pairs of m in
// ascending key order. The keys are captured when Entries is called.
func Entries[K cmp.Ordered, V any](m map[K]V) *Sequence[Pair[K, V]] {
	keys := sortedKeys(m)
	return fromIndex(
		func() int { return len(keys) },
		func(i int) (Pair[K, V], error) { return Pair[K, V]{First: keys[i], Second: m[keys[i]]}, nil },
	)
}

// Keys creates a random-access sequence of the keys of m in ascending order.
func Keys[K cmp.Ordered, V any](m map[K]V) *Sequence[K] {
	return FromSlice(sortedKeys(m))
}

// Values creates a random-access sequence of the values of m in ascending
// key order.
func Values[K cmp.Ordered, V any](m map[K]V) *Sequence[V] {
	keys := sortedKeys(m)
	return fromIndex(
		func() int { return len(keys) },
		func(i int) (V, error) { return m[keys[i]], nil },
	)
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Chars creates a random-access sequence of the runes of s.
func Chars(s string) *Sequence[rune] {
	return FromSlice([]rune(s))
}

// Tokenize creates a forward sequence of the tokens of s selected by re.
// A non-negative submatch yields that capture group of every match, 0 being
// the whole match. Submatch -1 yields the text between matches instead: the
// text before each match, then the remainder after the last match if it is
// not empty.
func Tokenize(s string, re *regexp.Regexp, submatch int) *Sequence[string] {
	if re == nil {
		return errSeq[string](apperrors.InvalidArgument("tokenize", "re", "must not be nil"))
	}
	if submatch < -1 || submatch > re.NumSubexp() {
		return errSeq[string](apperrors.InvalidArgument("tokenize", "submatch", "no such capture group"))
	}
	return &Sequence[string]{
		create: func(context.Context) Iterator[string] {
			return &tokenIter{s: s, matches: re.FindAllStringSubmatchIndex(s, -1), submatch: submatch}
		},
		category: Forward,
	}
}

type tokenIter struct {
	s        string
	matches  [][]int
	submatch int
	index    int
	done     bool
}

func (it *tokenIter) Next(_ context.Context) (string, bool, error) {
	if it.submatch < 0 {
		return it.nextBetween()
	}
	for it.index < len(it.matches) {
		m := it.matches[it.index]
		it.index++
		lo, hi := m[2*it.submatch], m[2*it.submatch+1]
		if lo < 0 {
			return "", true, nil
		}
		return it.s[lo:hi], true, nil
	}
	return "", false, nil
}

func (it *tokenIter) nextBetween() (string, bool, error) {
	if it.done {
		return "", false, nil
	}
	start := 0
	if it.index > 0 {
		start = it.matches[it.index-1][1]
	}
	if it.index < len(it.matches) {
		end := it.matches[it.index][0]
		it.index++
		return it.s[start:end], true, nil
	}
	it.done = true
	if start < len(it.s) {
		return it.s[start:], true, nil
	}
	return "", false, nil
}

func (it *tokenIter) Close() error { return nil }
