package ranges

import (
	"context"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestProperty_TakeDropReconstitutes(t *testing.T) {
	in := []int{4, 8, 15, 16, 23, 42}
	for n := 0; n <= len(in); n++ {
		s := FromSlice(in)
		assertSeq(t, Concat(Take(s, n), Drop(s, n)), in)
		f := Filter(s, func(int) bool { return true })
		assertSeq(t, Concat(Take(f, n), Drop(f, n)), in)
	}
}

func TestProperty_SplitJoinRoundTrip(t *testing.T) {
	for _, text := range []string{"a b c", "hello  world", " lead", "x"} {
		got, err := ToString(context.Background(), JoinWith(Split(Chars(text), ' '), ' '))
		if err != nil || got != text {
			t.Errorf("round trip of %q: got (%q, %v)", text, got, err)
		}
	}
}

func TestProperty_ZipLength(t *testing.T) {
	for a := range 4 {
		for b := range 4 {
			n, err := Distance(context.Background(), Zip(Filter(Iota(0, a), func(int) bool { return true }), Iota(0, b)))
			if err != nil || n != min(a, b) {
				t.Errorf("zip of %d and %d: got (%d, %v), want %d", a, b, n, err, min(a, b))
			}
		}
	}
}

func TestProperty_MaterializePreservesOrder(t *testing.T) {
	assertSeq(t, Iota(0, 5), []int{0, 1, 2, 3, 4})
}

func TestProperty_SampleOrderAndCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	for n := range 8 {
		for k := range 8 {
			got := collect(t, Sample(Iota(0, n), k, rng))
			if len(got) != min(k, n) || !slices.IsSorted(got) {
				t.Errorf("sample(%d of %d): got %v", k, n, got)
			}
		}
	}
}

// quickSort is the lazy, recursive quicksort built only from views.
func quickSort(s *Sequence[int]) *Sequence[int] {
	return FromFunc(func(ctx context.Context) Iterator[int] {
		pivot, ok, err := Front(ctx, s)
		if err != nil {
			return errIter[int]{err: err}
		}
		if !ok {
			return &sliceIter[int]{}
		}
		less := func(n int) bool { return n < pivot }
		tail := Tail(s)
		return Concat(quickSort(Filter(tail, less)), Single(pivot), quickSort(RemoveIf(tail, less))).Iter(ctx)
	})
}

func TestQuickSort(t *testing.T) {
	assertSeq(t, quickSort(FromSlice([]int{5, 3, 9, 1, 3, 7})), []int{1, 3, 3, 5, 7, 9})
	assertSeq(t, quickSort(Empty[int]()), nil)
}
