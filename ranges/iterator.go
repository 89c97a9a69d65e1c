package ranges

import (
	"context"
	"iter"
)

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Category is the traversal capability level of a sequence.
type Category int

const (
	// SinglePass sequences can be traversed once.
	SinglePass Category = iota
	// Forward sequences can be traversed any number of times from the front.
	Forward
	// Bidirectional sequences can also be traversed from the back.
	Bidirectional
	// RandomAccess sequences are sized and support At(i).
	RandomAccess
)

// String returns the lower-case name of the category.
func (c Category) String() string {
	switch c {
	case SinglePass:
		return "single-pass"
	case Forward:
		return "forward"
	case Bidirectional:
		return "bidirectional"
	case RandomAccess:
		return "random-access"
	default:
		return "unknown"
	}
}

// channelIter reads values from a channel and honours ctx cancellation.
type channelIter[T any] struct {
	ch <-chan T
}

func (it *channelIter[T]) Next(ctx context.Context) (T, bool, error) {
	select {
	case v, open := <-it.ch:
		return v, open, nil
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}

func (it *channelIter[T]) Close() error { return nil }

// errIter fails on the first call to Next.
type errIter[T any] struct {
	err error
}

func (it errIter[T]) Next(context.Context) (T, bool, error) {
	var zero T
	return zero, false, it.err
}

func (it errIter[T]) Close() error { return nil }

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

// indexIter walks [0, n) or (n, 0] through an element accessor.
type indexIter[T any] struct {
	at      func(int) (T, error)
	n       int
	pos     int
	reverse bool
}

func (it *indexIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.pos >= it.n {
		var zero T
		return zero, false, nil
	}
	i := it.pos
	if it.reverse {
		i = it.n - 1 - it.pos
	}
	it.pos++
	v, err := it.at(i)
	if err != nil {
		return v, false, err
	}
	return v, true, nil
}

func (it *indexIter[T]) Close() error { return nil }

// pullIter adapts an iter.Seq through iter.Pull. Close stops the coroutine.
type pullIter[T any] struct {
	next func() (T, bool)
	stop func()
}

func newPullIter[T any](seq iter.Seq[T]) *pullIter[T] {
	next, stop := iter.Pull(seq)
	return &pullIter[T]{next: next, stop: stop}
}

func (it *pullIter[T]) Next(_ context.Context) (T, bool, error) {
	v, ok := it.next()
	return v, ok, nil
}

func (it *pullIter[T]) Close() error {
	it.stop()
	return nil
}

// onceIter hands out its iterator to the first traversal only.
type onceIter[T any] struct {
	source Iterator[T]
}

func (it *onceIter[T]) Next(ctx context.Context) (T, bool, error) {
	return it.source.Next(ctx)
}

func (it *onceIter[T]) Close() error { return it.source.Close() }
