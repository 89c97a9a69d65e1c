package ranges

import (
	"cmp"
	"context"
	"math/rand/v2"
	"slices"

	apperrors "github.com/kbukum/rangekit/errors"
)

// Sample yields min(k, len(s)) values of s chosen uniformly at random, in
// their original order. The input is read in a single pass with O(k) memory.
// Every traversal draws a new sample from rng, so the result is single-pass.
func Sample[T any](s *Sequence[T], k int, rng *rand.Rand) *Sequence[T] {
	if err := checkCount("sample", "k", k); err != nil {
		return errSeq[T](err)
	}
	if rng == nil {
		return errSeq[T](apperrors.InvalidArgument("sample", "rng", "must not be nil"))
	}
	out := &Sequence[T]{
		create: singlePass("sample", func(ctx context.Context) Iterator[T] {
			return &sampleIter[T]{source: s.create(ctx), k: k, rng: rng, hint: bufferHint(s, k)}
		}),
		category: SinglePass,
	}
	if s.size != nil {
		out.size = func() int { return min(k, s.size()) }
	}
	return out
}

type sampled[T any] struct {
	index int
	val   T
}

type sampleIter[T any] struct {
	source    Iterator[T]
	k         int
	hint      int
	rng       *rand.Rand
	reservoir []sampled[T]
	filled    bool
	pos       int
}

func (it *sampleIter[T]) fill(ctx context.Context) error {
	it.reservoir = make([]sampled[T], 0, it.hint)
	if it.k == 0 {
		return nil
	}
	for i := 0; ; i++ {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if i < it.k {
			it.reservoir = append(it.reservoir, sampled[T]{index: i, val: val})
			continue
		}
		if j := it.rng.IntN(i + 1); j < it.k {
			it.reservoir[j] = sampled[T]{index: i, val: val}
		}
	}
	slices.SortFunc(it.reservoir, func(a, b sampled[T]) int { return cmp.Compare(a.index, b.index) })
	return nil
}

func (it *sampleIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if !it.filled {
		it.filled = true
		if err := it.fill(ctx); err != nil {
			return result, false, err
		}
	}
	if it.pos >= len(it.reservoir) {
		return result, false, nil
	}
	v := it.reservoir[it.pos].val
	it.pos++
	return v, true, nil
}

func (it *sampleIter[T]) Close() error {
	it.reservoir = nil
	return it.source.Close()
}
