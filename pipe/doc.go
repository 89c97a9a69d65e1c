// Package pipe composes sequence views as reusable closures.
//
// An [Adaptor] is a view that has not been applied to a sequence yet. Every
// view of package ranges has a closure constructor here taking the same
// arguments minus the input sequence:
//
//	evensSquared := pipe.Compose(
//		pipe.Filter(func(n int) bool { return n%2 == 0 }),
//		pipe.Transform(func(n int) int { return n * n }),
//	)
//	out := pipe.Pipe(ranges.Iota(0, 10), evensSquared, pipe.Take[int](3))
//
// Applying a composed closure is the same as applying its parts in order:
// Compose(f, g).Apply(s) equals g(f(s)).
package pipe
