package ranges

import (
	"context"
	"errors"
	"math"
	"regexp"
	"slices"
	"strings"
	"testing"

	apperrors "github.com/kbukum/rangekit/errors"
)

func TestFromSlice(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	assertSeq(t, s, []int{1, 2, 3})
	assertSeq(t, s, []int{1, 2, 3})
	assertCategory(t, s, RandomAccess)
	if n, ok := s.Size(); !ok || n != 3 {
		t.Errorf("Size: got (%d, %v), want (3, true)", n, ok)
	}
	if v, err := s.At(1); err != nil || v != 2 {
		t.Errorf("At(1): got (%d, %v), want (2, nil)", v, err)
	}
	if _, err := s.At(3); !errors.Is(err, apperrors.ErrOutOfRange) {
		t.Errorf("At(3): got %v, want OUT_OF_RANGE", err)
	}
	assertSeq(t, From(s.Backward(context.Background())), []int{3, 2, 1})
}

func TestFromSlice_Empty(t *testing.T) {
	assertSeq(t, FromSlice([]int{}), nil)
	assertSeq(t, Empty[string](), nil)
}

func TestFrom_SinglePass(t *testing.T) {
	s := From[int](&sliceIter[int]{items: []int{10, 20, 30}})
	assertCategory(t, s, SinglePass)
	assertSeq(t, s, []int{10, 20, 30})
	assertErr(t, s, errReused)
}

func TestFromFunc_Restarts(t *testing.T) {
	s := FromFunc(func(context.Context) Iterator[int] {
		return &sliceIter[int]{items: []int{1, 2}}
	})
	assertCategory(t, s, Forward)
	assertSeq(t, s, []int{1, 2})
	assertSeq(t, s, []int{1, 2})
	ctx := context.Background()
	if _, _, err := s.Backward(ctx).Next(ctx); !errors.Is(err, errCategory) {
		t.Errorf("Backward: got %v, want CATEGORY_MISMATCH", err)
	}
}

func TestFromSeq(t *testing.T) {
	s := FromSeq(slices.Values([]string{"a", "b", "c"}))
	assertSeq(t, s, []string{"a", "b", "c"})
	assertSeq(t, s, []string{"a", "b", "c"})
}

func TestFromSeq_InfiniteStoppedByTake(t *testing.T) {
	naturals := func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
	assertSeq(t, Take(FromSeq(naturals), 4), []int{0, 1, 2, 3})
}

func TestFromChan(t *testing.T) {
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)
	s := FromChan(ch)
	assertSeq(t, s, []int{1, 2, 3})
	assertErr(t, s, errReused)
}

func TestFromChan_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Collect(ctx, FromChan(make(chan int)))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestOnce(t *testing.T) {
	s := Once(FromSlice([]int{1, 2}))
	assertCategory(t, s, SinglePass)
	if n, ok := s.Size(); !ok || n != 2 {
		t.Errorf("Size: got (%d, %v), want (2, true)", n, ok)
	}
	assertSeq(t, s, []int{1, 2})
	assertErr(t, s, errReused)
}

func TestLines(t *testing.T) {
	s := Lines(strings.NewReader("alpha\nbeta\n\ngamma"))
	assertSeq(t, s, []string{"alpha", "beta", "", "gamma"})
}

func TestIota(t *testing.T) {
	assertSeq(t, Iota(2, 5), []int{2, 3, 4})
	assertSeq(t, Iota(5, 2), nil)
	assertSeq(t, ClosedIota(1, 3), []int{1, 2, 3})
	assertSeq(t, ClosedIota(3, 1), nil)
	assertSeq(t, Indices(3), []int{0, 1, 2})
	assertSeq(t, Iota[uint8](250, 253), []uint8{250, 251, 252})
}

func TestInts_Restarts(t *testing.T) {
	s := Take(Ints(10), 3)
	assertSeq(t, s, []int{10, 11, 12})
	assertSeq(t, s, []int{10, 11, 12})
	if _, ok := Ints(0).Size(); ok {
		t.Error("Ints should be unsized")
	}
}

func TestSingleAndRepeat(t *testing.T) {
	assertSeq(t, Single("x"), []string{"x"})
	assertSeq(t, Take(Repeat(7), 3), []int{7, 7, 7})
	assertSeq(t, RepeatN("ab", 2), []string{"ab", "ab"})
	assertSeq(t, RepeatN("ab", 0), nil)
	assertErr(t, RepeatN("ab", -1), errArgument)
}

func TestGenerate(t *testing.T) {
	n := 0
	next := func() int { n++; return n }
	s := Generate(next)
	assertCategory(t, s, SinglePass)
	assertSeq(t, Take(s, 3), []int{1, 2, 3})
	assertErr(t, Take(s, 3), errReused)

	sq := 0
	assertSeq(t, GenerateN(func() int { sq++; return sq * sq }, 4), []int{1, 4, 9, 16})
}

func TestLinearDistribute(t *testing.T) {
	assertSeq(t, LinearDistribute(0.0, 1.0, 5), []float64{0, 0.25, 0.5, 0.75, 1})
	assertSeq(t, LinearDistribute(1, 10, 4), []int{1, 4, 7, 10})
	assertSeq(t, LinearDistribute(3, 9, 1), []int{3})
	assertSeq(t, LinearDistribute(3, 9, 0), nil)
}

func TestLinearDistribute_Descending(t *testing.T) {
	assertSeq(t, LinearDistribute[uint](10, 0, 3), []uint{10, 5, 0})
	assertSeq(t, LinearDistribute(10, 0, 4), []int{10, 7, 4, 0})
	assertSeq(t, LinearDistribute(1.0, 0.0, 3), []float64{1, 0.5, 0})
}

func TestLinearDistribute_WideSpan(t *testing.T) {
	assertSeq(t, LinearDistribute[int8](-100, 100, 3), []int8{-100, 0, 100})
	assertSeq(t, LinearDistribute[uint8](0, 255, 4), []uint8{0, 85, 170, 255})
	assertSeq(t, LinearDistribute[int64](math.MinInt64, math.MaxInt64, 3), []int64{math.MinInt64, -1, math.MaxInt64})
	assertSeq(t, LinearDistribute[uint64](math.MaxUint64, 0, 3), []uint64{math.MaxUint64, 1 << 63, 0})
}

func TestEntriesKeysValues(t *testing.T) {
	m := map[string]int{"b": 2, "c": 3, "a": 1}
	assertSeq(t, Entries(m), []Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}})
	assertSeq(t, Keys(m), []string{"a", "b", "c"})
	assertSeq(t, Values(m), []int{1, 2, 3})
}

func TestChars(t *testing.T) {
	assertSeq(t, Chars("héllo"), []rune{'h', 'é', 'l', 'l', 'o'})
}

func TestTokenize(t *testing.T) {
	comma := regexp.MustCompile(`,`)
	assertSeq(t, Tokenize("a,b,,c", comma, -1), []string{"a", "b", "", "c"})
	assertSeq(t, Tokenize("a,b,", comma, -1), []string{"a", "b"})
	assertSeq(t, Tokenize(",a", comma, -1), []string{"", "a"})
	assertSeq(t, Tokenize("abc", comma, -1), []string{"abc"})
	assertSeq(t, Tokenize("", comma, -1), nil)

	kv := regexp.MustCompile(`(\w)=(\d+)`)
	assertSeq(t, Tokenize("x=1 y=22", kv, 0), []string{"x=1", "y=22"})
	assertSeq(t, Tokenize("x=1 y=22", kv, 1), []string{"x", "y"})
	assertSeq(t, Tokenize("x=1 y=22", kv, 2), []string{"1", "22"})
	assertErr(t, Tokenize("x=1", kv, 3), errArgument)
}
