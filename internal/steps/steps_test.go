package steps

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	apperrors "github.com/kbukum/rangekit/errors"
	"github.com/kbukum/rangekit/logger"
	"github.com/kbukum/rangekit/pipe"
	"github.com/kbukum/rangekit/ranges"
)

func testEnv() Env {
	return Env{Rand: rand.New(rand.NewPCG(1, 2)), Logger: logger.NewNop()}
}

func run(t *testing.T, expr string, input *ranges.Sequence[int]) ([]int, error) {
	t.Helper()
	a, err := Build(Default(), expr, testEnv())
	if err != nil {
		return nil, err
	}
	return ranges.Collect(context.Background(), a(input))
}

func TestParse(t *testing.T) {
	tests := []struct {
		expr string
		want []Call
	}{
		{"", nil},
		{"   ", nil},
		{"reverse", []Call{{Name: "reverse"}}},
		{" filter:even | take: 3 ", []Call{{Name: "filter", Args: []string{"even"}}, {Name: "take", Args: []string{"3"}}}},
		{"slice:1,-1", []Call{{Name: "slice", Args: []string{"1", "-1"}}}},
		{"take:", []Call{{Name: "take", Args: []string{""}}}},
	}
	for _, tc := range tests {
		got, err := Parse(tc.expr)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.expr, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tc.expr, diff)
		}
	}
}

func TestParseEmptySegment(t *testing.T) {
	_, err := Parse("take:1||drop:1")
	e, ok := apperrors.AsError(err)
	if !ok || e.Code != apperrors.ErrCodeInvalidArgument {
		t.Fatalf("got %v, want INVALID_ARGUMENT", err)
	}
	if e.Details["position"] != 1 {
		t.Errorf("position = %v, want 1", e.Details["position"])
	}
}

func TestParseRejectsMalformedNames(t *testing.T) {
	for _, expr := range []string{"Take:1", "take 1", "take-while:even", "filter:even|9lives"} {
		_, err := Parse(expr)
		e, ok := apperrors.AsError(err)
		if !ok || e.Code != apperrors.ErrCodeInvalidArgument {
			t.Errorf("Parse(%q) = %v, want INVALID_ARGUMENT", expr, err)
			continue
		}
		if _, ok := e.Details["segment"]; !ok {
			t.Errorf("Parse(%q) details %v lack the segment", expr, e.Details)
		}
	}
}

func TestBuildPipelines(t *testing.T) {
	tests := []struct {
		expr  string
		input *ranges.Sequence[int]
		want  []int
	}{
		{"filter:even|transform:square|take:3", ranges.Ints(1), []int{4, 16, 36}},
		{"", ranges.Iota(0, 3), []int{0, 1, 2}},
		{"remove_if:odd|mul:10", ranges.Iota(0, 6), []int{0, 20, 40}},
		{"take_while:positive", ranges.FromSlice([]int{3, 1, 0, 2}), []int{3, 1}},
		{"drop_while:negative|add:1", ranges.FromSlice([]int{-2, -1, 5, -3}), []int{6, -2}},
		{"drop:2|stride:2", ranges.Iota(0, 9), []int{2, 4, 6, 8}},
		{"reverse|tail", ranges.Iota(0, 4), []int{2, 1, 0}},
		{"unique", ranges.FromSlice([]int{1, 1, 2, 2, 1}), []int{1, 2, 1}},
		{"cycle|take:5", ranges.Iota(0, 2), []int{0, 1, 0, 1, 0}},
		{"partial_sum", ranges.Iota(1, 5), []int{1, 3, 6, 10}},
		{"adjacent_difference", ranges.FromSlice([]int{1, 4, 9}), []int{1, 3, 5}},
		{"exclusive_scan:10", ranges.FromSlice([]int{1, 2, 3}), []int{10, 11, 13}},
		{"replace:2,0", ranges.FromSlice([]int{2, 1, 2}), []int{0, 1, 0}},
		{"replace_all:7|take:2", ranges.Ints(0), []int{7, 7}},
		{"intersperse:0", ranges.Iota(1, 4), []int{1, 0, 2, 0, 3}},
		{"delimit:3", ranges.Ints(0), []int{0, 1, 2}},
		{"slice:1,-1", ranges.Iota(0, 5), []int{1, 2, 3}},
		{"append:7,9", ranges.Iota(0, 2), []int{0, 1, 7, 8}},
		{"sort", ranges.FromSlice([]int{3, 1, 2}), []int{1, 2, 3}},
		{"sort_unique", ranges.FromSlice([]int{3, 1, 3, 2, 1}), []int{1, 2, 3}},
		{"transform:abs|log:values", ranges.FromSlice([]int{-1, 2}), []int{1, 2}},
		{"take_exactly:2", ranges.Iota(0, 5), []int{0, 1}},
		{"drop_exactly:3", ranges.Iota(0, 5), []int{3, 4}},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := run(t, tc.expr, tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildRandomSteps(t *testing.T) {
	got, err := run(t, "sample:3", ranges.Iota(0, 100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %v, want 3 values", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Errorf("sample lost input order: %v", got)
		}
	}

	shuffled, err := run(t, "shuffle|sort", ranges.Iota(0, 20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := make([]int, 20)
	for i := range want {
		want[i] = i
	}
	if diff := cmp.Diff(want, shuffled); diff != "" {
		t.Errorf("shuffle|sort mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		expr string
		code apperrors.ErrorCode
	}{
		{"bogus", apperrors.ErrCodeNotFound},
		{"filter", apperrors.ErrCodeInvalidArgument},
		{"filter:prime", apperrors.ErrCodeInvalidArgument},
		{"transform:cube", apperrors.ErrCodeInvalidArgument},
		{"take:three", apperrors.ErrCodeInvalidArgument},
		{"take:-1", apperrors.ErrCodeInvalidArgument},
		{"stride:0", apperrors.ErrCodeInvalidArgument},
		{"take:1,2", apperrors.ErrCodeInvalidArgument},
		{"reverse:1", apperrors.ErrCodeInvalidArgument},
		{"slice:1", apperrors.ErrCodeInvalidArgument},
		{"|take:1", apperrors.ErrCodeInvalidArgument},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			_, err := Build(Default(), tc.expr, testEnv())
			if got := apperrors.CodeOf(err); got != tc.code {
				t.Errorf("code = %q, want %q (err: %v)", got, tc.code, err)
			}
		})
	}
}

func TestTraversalErrorsSurface(t *testing.T) {
	_, err := run(t, "take_exactly:5", ranges.Iota(0, 2))
	if !errors.Is(err, apperrors.ErrContractViolation) {
		t.Errorf("got %v, want contract violation", err)
	}

	// Upstream failures reach the consumer through eager steps.
	_, err = run(t, "take_exactly:5|sort", ranges.FromSlice([]int{2, 1}))
	if !errors.Is(err, apperrors.ErrContractViolation) {
		t.Errorf("got %v, want contract violation through sort", err)
	}

	a, err := Build(Default(), "shuffle", Env{})
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	_, err = ranges.Collect(context.Background(), a(ranges.Iota(0, 3)))
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("shuffle without rand: got %v, want invalid argument", err)
	}
}

func TestBuildGroup(t *testing.T) {
	tests := []struct {
		expr  string
		input []int
		want  [][]int
	}{
		{"chunk:2", []int{1, 2, 3, 4, 5}, [][]int{{1, 2}, {3, 4}, {5}}},
		{"sliding:3", []int{1, 2, 3, 4}, [][]int{{1, 2, 3}, {2, 3, 4}}},
		{"equal", []int{1, 1, 2, 3, 3}, [][]int{{1, 1}, {2}, {3, 3}}},
		{"split:0", []int{1, 0, 2, 3, 0, 4}, [][]int{{1}, {2, 3}, {4}}},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			a, err := BuildGroup(Groupers(), tc.expr, testEnv())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, err := ranges.Collect(context.Background(), a(ranges.FromSlice(tc.input)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	for _, expr := range []string{"", "chunk:2|equal", "chunk", "window:2"} {
		if _, err := BuildGroup(Groupers(), expr, testEnv()); err == nil {
			t.Errorf("BuildGroup(%q) expected error", expr)
		}
	}
}

func TestRegistryList(t *testing.T) {
	defs := Default().List()
	if len(defs) == 0 {
		t.Fatal("expected registered steps")
	}
	for i := 1; i < len(defs); i++ {
		if defs[i-1].Name >= defs[i].Name {
			t.Errorf("list not sorted: %q before %q", defs[i-1].Name, defs[i].Name)
		}
	}
	for _, def := range defs {
		if def.Summary == "" || def.Factory == nil {
			t.Errorf("step %q lacks summary or factory", def.Name)
		}
	}

	r := NewRegistry[int]()
	r.Register(Definition[int]{Name: "noop", Summary: "nothing", Factory: func([]string, Env) (pipe.Adaptor[int, int], error) {
		return nil, nil
	}})
	if got := len(r.List()); got != 1 {
		t.Errorf("got %d definitions, want 1", got)
	}
}
