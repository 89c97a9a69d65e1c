package ranges

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestTake(t *testing.T) {
	in := Iota(1, 6)
	assertSeq(t, Take(in, 3), []int{1, 2, 3})
	assertSeq(t, Take(in, 10), []int{1, 2, 3, 4, 5})
	assertSeq(t, Take(in, 0), nil)
	assertErr(t, Take(in, -1), errArgument)
	assertSeq(t, Take(Ints(0), 4), []int{0, 1, 2, 3})
	assertCategory(t, Take(in, 3), RandomAccess)
	assertCategory(t, Take(Filter(in, isEven), 1), Forward)
}

func TestTake_SizeOfSizedInput(t *testing.T) {
	s := Take(Once(Iota(0, 10)), 4)
	if n, ok := s.Size(); !ok || n != 4 {
		t.Errorf("Size: got (%d, %v), want (4, true)", n, ok)
	}
}

func TestTakeExactly(t *testing.T) {
	assertSeq(t, TakeExactly(Iota(0, 5), 2), []int{0, 1})

	got, err := Collect(context.Background(), TakeExactly(FromSlice([]int{1, 2}), 3))
	if !errors.Is(err, errContract) {
		t.Fatalf("got error %v, want CONTRACT_VIOLATION", err)
	}
	if len(got) != 0 {
		t.Errorf("sized input should fail before yielding, got %v", got)
	}

	_, err = Collect(context.Background(), TakeExactly(Filter(Iota(0, 5), isEven), 4))
	if !errors.Is(err, errContract) {
		t.Errorf("got error %v, want CONTRACT_VIOLATION", err)
	}
}

func TestTakeWhile(t *testing.T) {
	assertSeq(t, TakeWhile(Ints(1), func(n int) bool { return n < 4 }), []int{1, 2, 3})
	assertSeq(t, TakeWhile(Iota(5, 8), func(n int) bool { return n < 4 }), nil)
}

func TestDelimit(t *testing.T) {
	assertSeq(t, Delimit(Ints(1), 4), []int{1, 2, 3})
	assertSeq(t, Delimit(FromSlice([]int{1, 2}), 9), []int{1, 2})
}

func TestDrop(t *testing.T) {
	in := Iota(1, 6)
	assertSeq(t, Drop(in, 2), []int{3, 4, 5})
	assertSeq(t, Drop(in, 10), nil)
	assertSeq(t, Drop(in, 0), []int{1, 2, 3, 4, 5})
	assertSeq(t, Drop(Filter(in, isEven), 1), []int{4})
	assertErr(t, Drop(in, -2), errArgument)
}

func TestDropExactly(t *testing.T) {
	assertSeq(t, DropExactly(Iota(0, 4), 4), nil)
	assertErr(t, DropExactly(Iota(0, 3), 4), errContract)
	assertErr(t, DropExactly(Filter(Iota(0, 3), isEven), 3), errContract)
}

func TestDropWhile(t *testing.T) {
	assertSeq(t, DropWhile(FromSlice([]int{1, 2, 5, 1}), func(n int) bool { return n < 3 }), []int{5, 1})
}

func TestTail(t *testing.T) {
	assertSeq(t, Tail(FromSlice([]int{1, 2, 3})), []int{2, 3})
	assertSeq(t, Tail(Empty[int]()), nil)
}

func TestSlice(t *testing.T) {
	in := Iota(0, 10)
	assertSeq(t, Slice(in, FromStart(2), FromEnd(2)), []int{2, 3, 4, 5, 6, 7})
	assertSeq(t, Slice(in, FromStart(3), FromStart(5)), []int{3, 4})
	assertSeq(t, Slice(in, FromEnd(3), FromEnd(0)), []int{7, 8, 9})
	assertSeq(t, Slice(in, FromEnd(1), FromEnd(4)), nil)
	assertSeq(t, Slice(in, FromStart(3), FromStart(1)), nil)
	assertSeq(t, Slice(Filter(in, isEven), FromStart(3), FromStart(1)), nil)
	assertErr(t, Slice(in, FromStart(-1), FromStart(1)), errArgument)
}

func TestSlice_CountsForwardInput(t *testing.T) {
	evens := Filter(Iota(0, 10), isEven)
	assertSeq(t, Slice(evens, FromEnd(3), FromEnd(1)), []int{4, 6})
	assertErr(t, Slice(Once(evens), FromEnd(3), FromEnd(1)), errCategory)
}

func TestStride(t *testing.T) {
	s := Stride(Iota(0, 10), 3)
	assertSeq(t, s, []int{0, 3, 6, 9})
	if n, _ := s.Size(); n != 4 {
		t.Errorf("Size: got %d, want 4", n)
	}
	assertSeq(t, Stride(Filter(Iota(0, 10), isEven), 2), []int{0, 4, 8})
	assertErr(t, Stride(Iota(0, 3), 0), errArgument)
	assertSeq(t, Stride(Iota(0, 10), math.MaxInt), []int{0})
	if n, _ := Stride(Iota(0, 10), math.MaxInt).Size(); n != 1 {
		t.Errorf("Size with huge n: got %d, want 1", n)
	}
}
