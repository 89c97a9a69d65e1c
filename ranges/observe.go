package ranges

import "context"

// Hooks receive traversal events of an observed sequence. Any hook may be nil.
type Hooks[T any] struct {
	// OnStart runs when a traversal starts; the returned context is passed to
	// the upstream iterator and to the other hooks.
	OnStart func(ctx context.Context) context.Context
	// OnElement runs for every value yielded.
	OnElement func(ctx context.Context, v T)
	// OnEnd runs once per traversal, at exhaustion, at the first error, or on
	// Close of an unfinished traversal.
	OnEnd func(ctx context.Context, count int, err error)
}

// Observe reports the traversals of s to hooks. Values pass through unchanged.
func Observe[T any](s *Sequence[T], hooks Hooks[T]) *Sequence[T] {
	wrap := func(ctx context.Context, open func(context.Context) Iterator[T]) Iterator[T] {
		if hooks.OnStart != nil {
			ctx = hooks.OnStart(ctx)
		}
		return &observeIter[T]{source: open(ctx), hooks: hooks, ctx: ctx}
	}
	out := &Sequence[T]{
		create: func(ctx context.Context) Iterator[T] {
			return wrap(ctx, s.create)
		},
		size:     s.size,
		category: capAt(s.category, Bidirectional),
	}
	if out.category >= Bidirectional {
		out.backward = func(ctx context.Context) Iterator[T] {
			return wrap(ctx, s.Backward)
		}
	}
	return out
}

type observeIter[T any] struct {
	source Iterator[T]
	hooks  Hooks[T]
	ctx    context.Context
	count  int
	ended  bool
}

func (it *observeIter[T]) Next(_ context.Context) (result T, ok bool, err error) {
	if it.ended {
		return result, false, nil
	}
	val, ok, err := it.source.Next(it.ctx)
	if err != nil || !ok {
		it.end(err)
		return val, false, err
	}
	it.count++
	if it.hooks.OnElement != nil {
		it.hooks.OnElement(it.ctx, val)
	}
	return val, true, nil
}

func (it *observeIter[T]) end(err error) {
	if it.ended {
		return
	}
	it.ended = true
	if it.hooks.OnEnd != nil {
		it.hooks.OnEnd(it.ctx, it.count, err)
	}
}

func (it *observeIter[T]) Close() error {
	it.end(nil)
	return it.source.Close()
}
