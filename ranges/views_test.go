package ranges

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestFilter(t *testing.T) {
	s := Filter(Iota(1, 11), isEven)
	assertSeq(t, s, []int{2, 4, 6, 8, 10})
	assertCategory(t, s, Bidirectional)
	if _, ok := s.Size(); ok {
		t.Error("Filter should be unsized")
	}
	assertSeq(t, Reverse(s), []int{10, 8, 6, 4, 2})
}

func TestFilter_None(t *testing.T) {
	assertSeq(t, Filter(FromSlice([]int{1, 3, 5}), isEven), nil)
}

func TestRemoveIf(t *testing.T) {
	assertSeq(t, RemoveIf(Iota(1, 8), isEven), []int{1, 3, 5, 7})
}

func TestTransform(t *testing.T) {
	s := Transform(FromSlice([]int{1, 2, 3}), func(n int) int { return n * n })
	assertSeq(t, s, []int{1, 4, 9})
	assertCategory(t, s, RandomAccess)
	if v, err := s.At(2); err != nil || v != 9 {
		t.Errorf("At(2): got (%d, %v), want (9, nil)", v, err)
	}
}

func TestTransform_TypeConversion(t *testing.T) {
	s := Transform(FromSlice([]int{1, 2}), func(n int) string { return fmt.Sprintf("n%d", n) })
	assertSeq(t, s, []string{"n1", "n2"})
}

func TestTransform_KeepsCategoryOfFilter(t *testing.T) {
	s := Transform(Filter(Iota(0, 6), isEven), func(n int) int { return n + 1 })
	assertCategory(t, s, Bidirectional)
	assertSeq(t, Reverse(s), []int{5, 3, 1})
}

func TestTransformErr(t *testing.T) {
	boom := errors.New("boom")
	s := TransformErr(FromSlice([]int{1, 2, 3, 4}), func(_ context.Context, n int) (int, error) {
		if n == 3 {
			return 0, boom
		}
		return n * 10, nil
	})
	assertCategory(t, s, Forward)
	got, err := Collect(context.Background(), s)
	if !errors.Is(err, boom) {
		t.Fatalf("got error %v, want %v", err, boom)
	}
	if len(got) != 2 || got[0] != 10 || got[1] != 20 {
		t.Errorf("got %v, want [10 20]", got)
	}
}

func TestTap(t *testing.T) {
	var seen []int
	s := Tap(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) error {
		seen = append(seen, n)
		return nil
	})
	assertSeq(t, s, []int{1, 2, 3})
	if len(seen) != 3 {
		t.Errorf("tap saw %v, want 3 values", seen)
	}
}

func TestTap_Error(t *testing.T) {
	boom := errors.New("boom")
	s := Tap(FromSlice([]int{1, 2}), func(context.Context, int) error { return boom })
	assertErr(t, s, boom)
}

func TestReplace(t *testing.T) {
	assertSeq(t, Replace(FromSlice([]int{1, 2, 1, 3}), 1, 9), []int{9, 2, 9, 3})
	assertSeq(t, ReplaceIf(Iota(0, 5), isEven, -1), []int{-1, 1, -1, 3, -1})
}

func TestUnique(t *testing.T) {
	assertSeq(t, Unique(FromSlice([]int{1, 1, 2, 2, 2, 3, 1, 1})), []int{1, 2, 3, 1})
	assertSeq(t, Unique(Empty[int]()), nil)
}

func TestUniqueFunc_ComparesAgainstRunStart(t *testing.T) {
	near := func(a, b int) bool { return b-a <= 1 }
	assertSeq(t, UniqueFunc(FromSlice([]int{1, 2, 3, 4, 10, 11}), near), []int{1, 3, 10})
}

func TestAdjacentFilter(t *testing.T) {
	in := FromSlice([]int{1, 1, 1, 2, 2, 2, 3, 4, 5, 5, 6, 6})
	assertSeq(t, AdjacentFilter(in, func(a, b int) bool { return a != b }), []int{1, 2, 3, 4, 5, 6})
	assertSeq(t, AdjacentFilter(FromSlice([]int{1, 3, 2, 4}), func(a, b int) bool { return a < b }), []int{1, 3, 4})
}

func TestAdjacentRemoveIf(t *testing.T) {
	in := FromSlice([]int{1, 1, 1, 2, 2, 2, 3, 4, 5, 5, 6, 6})
	assertSeq(t, AdjacentRemoveIf(in, func(a, b int) bool { return a == b }), []int{1, 2, 3, 4, 5, 6})
	assertSeq(t, AdjacentRemoveIf(FromSlice([]int{1, 3, 2, 4}), func(a, b int) bool { return a < b }), []int{3, 4})
	assertSeq(t, AdjacentRemoveIf(Empty[int](), func(a, b int) bool { return true }), nil)
}
