package ranges

import (
	"context"

	apperrors "github.com/kbukum/rangekit/errors"
)

// Reverse traverses s back to front. It needs a bidirectional input.
func Reverse[T any](s *Sequence[T]) *Sequence[T] {
	if !s.bidirectional() {
		return errSeq[T](apperrors.CategoryMismatch("reverse", s.category.String(), Bidirectional.String()))
	}
	if s.randomAccess() {
		return fromIndex(s.size, func(i int) (T, error) { return s.at(s.size() - 1 - i) })
	}
	return &Sequence[T]{
		create:   s.Backward,
		backward: s.create,
		size:     s.size,
		category: s.category,
	}
}

// Cycle repeats s endlessly. Cycling an empty sequence yields nothing.
func Cycle[T any](s *Sequence[T]) *Sequence[T] {
	if !s.multiPass() {
		return errSeq[T](apperrors.CategoryMismatch("cycle", s.category.String(), Forward.String()))
	}
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &cycleIter[T]{seq: s, current: s.create(ctx)}
		},
		category: Forward,
	}
}

// Concat joins multiple sequences sequentially.
// All values from the first sequence are yielded before the second, etc.
func Concat[T any](seqs ...*Sequence[T]) *Sequence[T] {
	cat := RandomAccess
	sized := true
	for _, s := range seqs {
		cat = min(cat, s.category)
		sized = sized && s.size != nil
	}
	if cat == RandomAccess {
		return fromIndex(
			func() int { return concatSize(seqs) },
			func(i int) (T, error) {
				for _, s := range seqs {
					n := s.size()
					if i < n {
						return s.at(i)
					}
					i -= n
				}
				var zero T
				return zero, apperrors.OutOfRange("concat", i, concatSize(seqs))
			},
		)
	}
	out := &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			iters := make([]Iterator[T], len(seqs))
			for i, s := range seqs {
				iters[i] = s.create(ctx)
			}
			return &concatIter[T]{iters: iters}
		},
		category: capAt(cat, Bidirectional),
	}
	if out.category == Bidirectional {
		out.backward = func(ctx context.Context) Iterator[T] {
			iters := make([]Iterator[T], len(seqs))
			for i, s := range seqs {
				iters[len(seqs)-1-i] = s.Backward(ctx)
			}
			return &concatIter[T]{iters: iters}
		}
	}
	if sized {
		out.size = func() int { return concatSize(seqs) }
	}
	return out
}

func concatSize[T any](seqs []*Sequence[T]) int {
	total := 0
	for _, s := range seqs {
		total += s.size()
	}
	return total
}

// Zip pairs up values of a and b and stops at the end of the shorter input.
func Zip[A, B any](a *Sequence[A], b *Sequence[B]) *Sequence[Pair[A, B]] {
	return ZipWith(a, b, MakePair[A, B])
}

// ZipWith combines values of a and b with fn and stops at the end of the
// shorter input.
func ZipWith[A, B, R any](a *Sequence[A], b *Sequence[B], fn func(A, B) R) *Sequence[R] {
	if a.randomAccess() && b.randomAccess() {
		return fromIndex(
			func() int { return min(a.size(), b.size()) },
			func(i int) (R, error) {
				va, err := a.at(i)
				if err != nil {
					var zero R
					return zero, err
				}
				vb, err := b.at(i)
				if err != nil {
					var zero R
					return zero, err
				}
				return fn(va, vb), nil
			},
		)
	}
	out := &Sequence[R]{
		create: func(ctx context.Context) Iterator[R] {
			return &zipIter[A, B, R]{a: a.create(ctx), b: b.create(ctx), fn: fn}
		},
		category: capAt(min(a.category, b.category), Forward),
	}
	if a.size != nil && b.size != nil {
		out.size = func() int { return min(a.size(), b.size()) }
	}
	return out
}

// Zip3 combines values of three sequences into triples.
func Zip3[A, B, C any](a *Sequence[A], b *Sequence[B], c *Sequence[C]) *Sequence[Triple[A, B, C]] {
	return ZipWith(Zip(a, b), c, func(ab Pair[A, B], v C) Triple[A, B, C] {
		return Triple[A, B, C]{First: ab.First, Second: ab.Second, Third: v}
	})
}

// Enumerate pairs every value with its zero-based index.
func Enumerate[T any](s *Sequence[T]) *Sequence[Pair[int, T]] {
	if s.randomAccess() {
		return fromIndex(s.size, func(i int) (Pair[int, T], error) {
			v, err := s.at(i)
			return Pair[int, T]{First: i, Second: v}, err
		})
	}
	return &Sequence[Pair[int, T]]{
		create: func(ctx context.Context) Iterator[Pair[int, T]] {
			return &enumerateIter[T]{source: s.create(ctx)}
		},
		size:     s.size,
		category: capAt(s.category, Forward),
	}
}

// CartesianProduct yields every pair (x, y) with x from a and y from b, in
// row-major order. b is traversed once per value of a, so it must be
// multi-pass.
func CartesianProduct[A, B any](a *Sequence[A], b *Sequence[B]) *Sequence[Pair[A, B]] {
	if !b.multiPass() {
		return errSeq[Pair[A, B]](apperrors.CategoryMismatch("cartesian_product", b.category.String(), Forward.String()))
	}
	if a.randomAccess() && b.randomAccess() {
		return fromIndex(
			func() int { return a.size() * b.size() },
			func(i int) (Pair[A, B], error) {
				nb := b.size()
				va, err := a.at(i / nb)
				if err != nil {
					return Pair[A, B]{}, err
				}
				vb, err := b.at(i % nb)
				return Pair[A, B]{First: va, Second: vb}, err
			},
		)
	}
	out := &Sequence[Pair[A, B]]{
		create: func(ctx context.Context) Iterator[Pair[A, B]] {
			return &productIter[A, B]{outer: a.create(ctx), inner: b}
		},
		category: capAt(a.category, Forward),
	}
	if a.size != nil && b.size != nil {
		out.size = func() int { return a.size() * b.size() }
	}
	return out
}

// CartesianProduct3 yields every triple of values from a, b and c.
func CartesianProduct3[A, B, C any](a *Sequence[A], b *Sequence[B], c *Sequence[C]) *Sequence[Triple[A, B, C]] {
	return Transform(CartesianProduct(a, CartesianProduct(b, c)), func(p Pair[A, Pair[B, C]]) Triple[A, B, C] {
		return Triple[A, B, C]{First: p.First, Second: p.Second.First, Third: p.Second.Second}
	})
}

// FlatMap maps each value to a sequence and yields the values of those
// sequences in order.
func FlatMap[T, U any](s *Sequence[T], fn func(T) *Sequence[U]) *Sequence[U] {
	return &Sequence[U]{
		create: func(ctx context.Context) Iterator[U] {
			return &flatMapIter[T, U]{source: s.create(ctx), fn: fn}
		},
		category: capAt(s.category, Forward),
	}
}

// Flatten yields the values of every inner sequence in order.
func Flatten[T any](s *Sequence[*Sequence[T]]) *Sequence[T] {
	return FlatMap(s, func(inner *Sequence[T]) *Sequence[T] { return inner })
}

// Join yields the values of every group in order.
func Join[T any](s *Sequence[[]T]) *Sequence[T] {
	return FlatMap(s, FromSlice[T])
}

// JoinWith yields the values of every group with sep between adjacent groups.
func JoinWith[T any](s *Sequence[[]T], sep ...T) *Sequence[T] {
	return FlatMap(Enumerate(s), func(p Pair[int, []T]) *Sequence[T] {
		if p.First == 0 {
			return FromSlice(p.Second)
		}
		return Concat(FromSlice(sep), FromSlice(p.Second))
	})
}

// Intersperse yields sep between every two adjacent values of s.
func Intersperse[T any](s *Sequence[T], sep T) *Sequence[T] {
	out := &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &intersperseIter[T]{source: s.create(ctx), sep: sep}
		},
		category: capAt(s.category, Forward),
	}
	if s.size != nil {
		out.size = func() int { return max(2*s.size()-1, 0) }
	}
	return out
}

// --- Iterator implementations ---

type cycleIter[T any] struct {
	seq     *Sequence[T]
	current Iterator[T]
	yielded bool
}

func (it *cycleIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.current.Next(ctx)
		if err != nil {
			return val, false, err
		}
		if ok {
			it.yielded = true
			return val, true, nil
		}
		if !it.yielded {
			return val, false, nil
		}
		_ = it.current.Close()
		it.current = it.seq.create(ctx)
		it.yielded = false
	}
}

func (it *cycleIter[T]) Close() error { return it.current.Close() }

type concatIter[T any] struct {
	iters []Iterator[T]
	index int
}

func (it *concatIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for it.index < len(it.iters) {
		val, ok, err := it.iters[it.index].Next(ctx)
		if err != nil {
			return val, false, err
		}
		if ok {
			return val, true, nil
		}
		it.index++
	}
	var zero T
	return zero, false, nil
}

func (it *concatIter[T]) Close() error {
	var firstErr error
	for _, iter := range it.iters {
		if err := iter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type zipIter[A, B, R any] struct {
	a  Iterator[A]
	b  Iterator[B]
	fn func(A, B) R
}

func (it *zipIter[A, B, R]) Next(ctx context.Context) (result R, ok bool, err error) {
	va, ok, err := it.a.Next(ctx)
	if err != nil || !ok {
		return result, false, err
	}
	vb, ok, err := it.b.Next(ctx)
	if err != nil || !ok {
		return result, false, err
	}
	return it.fn(va, vb), true, nil
}

func (it *zipIter[A, B, R]) Close() error {
	errA := it.a.Close()
	if errB := it.b.Close(); errA == nil {
		return errB
	}
	return errA
}

type enumerateIter[T any] struct {
	source Iterator[T]
	index  int
}

func (it *enumerateIter[T]) Next(ctx context.Context) (result Pair[int, T], ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return result, false, err
	}
	result = Pair[int, T]{First: it.index, Second: val}
	it.index++
	return result, true, nil
}

func (it *enumerateIter[T]) Close() error { return it.source.Close() }

type productIter[A, B any] struct {
	outer   Iterator[A]
	inner   *Sequence[B]
	current Iterator[B]
	head    A
}

func (it *productIter[A, B]) Next(ctx context.Context) (result Pair[A, B], ok bool, err error) {
	for {
		if it.current != nil {
			vb, ok, err := it.current.Next(ctx)
			if err != nil {
				return result, false, err
			}
			if ok {
				return Pair[A, B]{First: it.head, Second: vb}, true, nil
			}
			_ = it.current.Close()
			it.current = nil
		}
		va, ok, err := it.outer.Next(ctx)
		if err != nil || !ok {
			return result, false, err
		}
		it.head = va
		it.current = it.inner.create(ctx)
	}
}

func (it *productIter[A, B]) Close() error {
	if it.current != nil {
		_ = it.current.Close()
	}
	return it.outer.Close()
}

type flatMapIter[I, O any] struct {
	source  Iterator[I]
	fn      func(I) *Sequence[O]
	current Iterator[O]
}

func (it *flatMapIter[I, O]) Next(ctx context.Context) (result O, ok bool, err error) {
	for {
		if it.current != nil {
			val, ok, err := it.current.Next(ctx)
			if err != nil {
				var zero O
				return zero, false, err
			}
			if ok {
				return val, true, nil
			}
			_ = it.current.Close()
			it.current = nil
		}
		in, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			var zero O
			return zero, false, err
		}
		it.current = it.fn(in).create(ctx)
	}
}

func (it *flatMapIter[I, O]) Close() error {
	if it.current != nil {
		_ = it.current.Close()
	}
	return it.source.Close()
}

type intersperseIter[T any] struct {
	source  Iterator[T]
	sep     T
	pending T
	has     bool
	started bool
}

func (it *intersperseIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.has {
		it.has = false
		return it.pending, true, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, false, err
	}
	if !it.started {
		it.started = true
		return val, true, nil
	}
	it.pending, it.has = val, true
	return it.sep, true, nil
}

func (it *intersperseIter[T]) Close() error { return it.source.Close() }
