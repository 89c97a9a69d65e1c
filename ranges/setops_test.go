package ranges

import "testing"

func multiplesOf3() *Sequence[int] { return Transform(Ints(0), func(n int) int { return n * 3 }) }
func squares() *Sequence[int]      { return Transform(Ints(0), func(n int) int { return n * n }) }

func TestSetOps_InfiniteInputs(t *testing.T) {
	assertSeq(t, Take(SetDifference(multiplesOf3(), squares()), 6), []int{3, 6, 12, 15, 18, 21})
	assertSeq(t, Take(SetIntersection(multiplesOf3(), squares()), 6), []int{0, 9, 36, 81, 144, 225})
	assertSeq(t, Take(SetUnion(multiplesOf3(), squares()), 6), []int{0, 1, 3, 4, 6, 9})
	assertSeq(t, Take(SetSymmetricDifference(multiplesOf3(), squares()), 6), []int{1, 3, 4, 6, 12, 15})
}

func TestSetOps_Multisets(t *testing.T) {
	a := FromSlice([]int{1, 2, 2, 5})
	b := FromSlice([]int{2, 3})
	assertSeq(t, SetUnion(a, b), []int{1, 2, 2, 3, 5})
	assertSeq(t, SetIntersection(a, FromSlice([]int{2, 2, 2})), []int{2, 2})
	assertSeq(t, SetDifference(a, b), []int{1, 2, 5})
	assertSeq(t, SetSymmetricDifference(a, b), []int{1, 2, 3, 5})
	assertSeq(t, SetUnion(Empty[int](), b), []int{2, 3})
	assertSeq(t, SetIntersection(Empty[int](), b), nil)
}

func TestSetOps_Func(t *testing.T) {
	desc := func(x, y int) int { return y - x }
	a := FromSlice([]int{9, 7, 5})
	b := FromSlice([]int{8, 7})
	assertSeq(t, SetUnionFunc(a, b, desc), []int{9, 8, 7, 5})
	assertSeq(t, SetDifferenceFunc(a, b, desc), []int{9, 5})
}
