package pipe

import "github.com/kbukum/rangekit/ranges"

// Adaptor is a view waiting for its input sequence.
type Adaptor[I, O any] func(*ranges.Sequence[I]) *ranges.Sequence[O]

// Apply runs the adaptor on s.
func (a Adaptor[I, O]) Apply(s *ranges.Sequence[I]) *ranges.Sequence[O] {
	return a(s)
}

// Compose returns the adaptor applying f, then g.
func Compose[A, B, C any](f Adaptor[A, B], g Adaptor[B, C]) Adaptor[A, C] {
	return func(s *ranges.Sequence[A]) *ranges.Sequence[C] {
		return g(f(s))
	}
}

// Chain composes same-typed adaptors left to right. An empty chain is the
// identity.
func Chain[T any](steps ...Adaptor[T, T]) Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] {
		for _, step := range steps {
			s = step(s)
		}
		return s
	}
}

// Pipe applies steps to s in order.
func Pipe[T any](s *ranges.Sequence[T], steps ...Adaptor[T, T]) *ranges.Sequence[T] {
	return Chain(steps...)(s)
}

// Pipe2 applies two type-changing steps to s.
func Pipe2[A, B, C any](s *ranges.Sequence[A], f Adaptor[A, B], g Adaptor[B, C]) *ranges.Sequence[C] {
	return g(f(s))
}

// Pipe3 applies three type-changing steps to s.
func Pipe3[A, B, C, D any](s *ranges.Sequence[A], f Adaptor[A, B], g Adaptor[B, C], h Adaptor[C, D]) *ranges.Sequence[D] {
	return h(g(f(s)))
}

// Identity returns its input unchanged.
func Identity[T any]() Adaptor[T, T] {
	return func(s *ranges.Sequence[T]) *ranges.Sequence[T] { return s }
}
