package ranges

import (
	"cmp"
	"context"
)

// The set operations merge two inputs sorted by the same order and stay lazy,
// so they work on infinite inputs as long as the output is bounded.

// SetDifference yields the values of a that are not in b.
func SetDifference[T cmp.Ordered](a, b *Sequence[T]) *Sequence[T] {
	return SetDifferenceFunc(a, b, cmp.Compare[T])
}

// SetDifferenceFunc is SetDifference for inputs sorted by compare.
func SetDifferenceFunc[T any](a, b *Sequence[T], compare func(x, y T) int) *Sequence[T] {
	return merge(a, b, compare, setDifference)
}

// SetIntersection yields the values present in both a and b.
func SetIntersection[T cmp.Ordered](a, b *Sequence[T]) *Sequence[T] {
	return SetIntersectionFunc(a, b, cmp.Compare[T])
}

// SetIntersectionFunc is SetIntersection for inputs sorted by compare.
func SetIntersectionFunc[T any](a, b *Sequence[T], compare func(x, y T) int) *Sequence[T] {
	return merge(a, b, compare, setIntersection)
}

// SetUnion yields the values present in a or b. A value present in both is
// taken from a.
func SetUnion[T cmp.Ordered](a, b *Sequence[T]) *Sequence[T] {
	return SetUnionFunc(a, b, cmp.Compare[T])
}

// SetUnionFunc is SetUnion for inputs sorted by compare.
func SetUnionFunc[T any](a, b *Sequence[T], compare func(x, y T) int) *Sequence[T] {
	return merge(a, b, compare, setUnion)
}

// SetSymmetricDifference yields the values present in exactly one of a and b.
func SetSymmetricDifference[T cmp.Ordered](a, b *Sequence[T]) *Sequence[T] {
	return SetSymmetricDifferenceFunc(a, b, cmp.Compare[T])
}

// SetSymmetricDifferenceFunc is SetSymmetricDifference for inputs sorted by compare.
func SetSymmetricDifferenceFunc[T any](a, b *Sequence[T], compare func(x, y T) int) *Sequence[T] {
	return merge(a, b, compare, setSymmetricDifference)
}

type setOp int

const (
	setDifference setOp = iota
	setIntersection
	setUnion
	setSymmetricDifference
)

func merge[T any](a, b *Sequence[T], compare func(x, y T) int, op setOp) *Sequence[T] {
	return &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &mergeIter[T]{
				a:       &peeker[T]{source: a.create(ctx)},
				b:       &peeker[T]{source: b.create(ctx)},
				compare: compare,
				op:      op,
			}
		},
		category: capAt(min(a.category, b.category), Forward),
	}
}

// peeker buffers one value of lookahead.
type peeker[T any] struct {
	source Iterator[T]
	head   T
	has    bool
	done   bool
}

func (p *peeker[T]) peek(ctx context.Context) (T, bool, error) {
	if !p.has && !p.done {
		val, ok, err := p.source.Next(ctx)
		if err != nil {
			return val, false, err
		}
		p.head, p.has, p.done = val, ok, !ok
	}
	return p.head, p.has, nil
}

func (p *peeker[T]) advance() T {
	v := p.head
	p.has = false
	return v
}

type mergeIter[T any] struct {
	a, b    *peeker[T]
	compare func(x, y T) int
	op      setOp
}

func (it *mergeIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		va, okA, err := it.a.peek(ctx)
		if err != nil {
			return result, false, err
		}
		if !okA && (it.op == setDifference || it.op == setIntersection) {
			return result, false, nil
		}
		vb, okB, err := it.b.peek(ctx)
		if err != nil {
			return result, false, err
		}
		switch {
		case !okA && !okB:
			return result, false, nil
		case !okB:
			if it.op == setIntersection {
				return result, false, nil
			}
			return it.a.advance(), true, nil
		case !okA:
			return it.b.advance(), true, nil
		}
		switch c := it.compare(va, vb); {
		case c < 0:
			v := it.a.advance()
			if it.op != setIntersection {
				return v, true, nil
			}
		case c > 0:
			v := it.b.advance()
			if it.op == setUnion || it.op == setSymmetricDifference {
				return v, true, nil
			}
		default:
			v := it.a.advance()
			it.b.advance()
			if it.op == setIntersection || it.op == setUnion {
				return v, true, nil
			}
		}
	}
}

func (it *mergeIter[T]) Close() error {
	errA := it.a.source.Close()
	if errB := it.b.source.Close(); errA == nil {
		return errB
	}
	return errA
}
