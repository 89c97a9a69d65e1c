// Package ranges provides lazy, composable sequences with traversal categories.
//
// A [Sequence] describes a traversal; nothing happens until values are pulled
// via [Collect], [ToSlice], [ForEach] or an [Iterator] obtained from
// [Sequence.Iter]. Each view pulls from its upstream on demand, one element at
// a time, on the caller's goroutine.
//
// # Categories
//
// Every sequence carries a [Category]:
//
//   - SinglePass: can be traversed once (From, FromChan, Lines, Generate)
//   - Forward: every call to Iter starts a fresh traversal
//   - Bidirectional: can also be traversed back to front (Backward, Reverse)
//   - RandomAccess: sized, with O(1) At(i)
//
// Sizedness is reported separately by [Sequence.Size]. Views derive their
// category from their inputs and never claim more than the input supports:
// Filter of a random-access slice is bidirectional, Zip of a forward and a
// random-access sequence is forward.
//
// # Views
//
//	words := ranges.Split(ranges.Chars(text), ' ')
//	long := ranges.Filter(words, func(w []rune) bool { return len(w) > 3 })
//	firstThree := ranges.Take(long, 3)
//	out, err := ranges.Collect(ctx, firstThree)
//
// Views that need a buffer (GroupBy, Sliding, Chunk, Split, Sample) keep it
// private to one traversal. Groups are delivered as freshly allocated slices.
//
// # Errors
//
// Empty inputs never fail. Broken preconditions such as [TakeExactly] over a
// shorter input surface from Next as *errors.Error with code
// CONTRACT_VIOLATION; missing capabilities surface as CATEGORY_MISMATCH.
//
// # Closures
//
// Package pipe wraps every view as a reusable Adaptor that can be composed and
// applied later, see github.com/kbukum/rangekit/pipe.
package ranges
