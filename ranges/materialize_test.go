package ranges

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToSlice(t *testing.T) {
	ctx := context.Background()
	got, err := ToSlice(ctx, Iota(0, 5))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if cap(got) != 5 {
		t.Errorf("sized input: got cap %d, want 5", cap(got))
	}
	empty, _ := ToSlice(ctx, Filter(Iota(0, 5), func(int) bool { return false }))
	if empty == nil || len(empty) != 0 {
		t.Errorf("got %#v, want a non-nil empty slice", empty)
	}
}

func TestToMap_LastWins(t *testing.T) {
	pairs := FromSlice([]Pair[string, int]{{"a", 1}, {"b", 2}, {"a", 3}})
	got, err := ToMap(context.Background(), pairs)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]int{"a": 3, "b": 2}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestToMap_FromZip(t *testing.T) {
	got, _ := ToMap(context.Background(), Zip(FromSlice([]string{"x", "y"}), Ints(1)))
	if got["x"] != 1 || got["y"] != 2 || len(got) != 2 {
		t.Errorf("got %v", got)
	}
}

func TestToSet(t *testing.T) {
	set, err := ToSet(context.Background(), FromSlice([]int{3, 1, 3, 2, 1}))
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 3 || !set.Contains(2) || set.Contains(4) {
		t.Errorf("got %v", set)
	}
	if set.Add(2) {
		t.Error("Add of a present value should report false")
	}
}

func TestToGroups(t *testing.T) {
	got, err := ToGroups(context.Background(), FromSlice([]string{"apple", "avocado", "banana", "apricot"}),
		func(s string) byte { return s[0] })
	if err != nil {
		t.Fatal(err)
	}
	want := map[byte][]string{'a': {"apple", "avocado", "apricot"}, 'b': {"banana"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestToString(t *testing.T) {
	got, err := ToString(context.Background(), Reverse(Chars("héllo")))
	if err != nil || got != "olléh" {
		t.Errorf("got (%q, %v), want (%q, nil)", got, err, "olléh")
	}
}

func TestAll(t *testing.T) {
	var got []int
	for v, err := range Iota(0, 10).All(context.Background()) {
		if err != nil {
			t.Fatal(err)
		}
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDrain_Run(t *testing.T) {
	var sum int
	r := Drain(Iota(1, 4), func(_ context.Context, v int) error {
		sum += v
		return nil
	})
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if sum != 6 {
		t.Errorf("got %d, want 6", sum)
	}
}

func TestContext_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEach(ctx, Ints(0), func(context.Context, int) error { return nil })
	if err != context.Canceled {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
