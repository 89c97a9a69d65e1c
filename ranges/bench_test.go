package ranges

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func BenchmarkSumOfSquares(b *testing.B) {
	ctx := context.Background()
	squares := Transform(Iota(0, 1000), func(n int) int { return n * n })
	for b.Loop() {
		if _, err := Sum(ctx, squares); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSumOfSquares_Loop(b *testing.B) {
	for b.Loop() {
		sum := 0
		for n := range 1000 {
			sum += n * n
		}
		_ = sum
	}
}

func BenchmarkQuickSort(b *testing.B) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(1, 1))
	in := make([]int, 256)
	for i := range in {
		in[i] = rng.IntN(len(in))
	}
	for b.Loop() {
		if _, err := Collect(ctx, quickSort(FromSlice(in))); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCountLines(b *testing.B) {
	dir := b.TempDir()
	var files []string
	for i := range 4 {
		name := filepath.Join(dir, fmt.Sprintf("file%d.txt", i))
		if err := os.WriteFile(name, []byte(strings.Repeat("line\n", 1000*(i+1))), 0o600); err != nil {
			b.Fatal(err)
		}
		files = append(files, name)
	}
	ctx := context.Background()
	counts := TransformErr(FromSlice(files), func(ctx context.Context, name string) (int, error) {
		f, err := os.Open(name)
		if err != nil {
			return 0, err
		}
		defer f.Close()
		return Distance(ctx, Lines(f))
	})
	for b.Loop() {
		if _, err := Sum(ctx, counts); err != nil {
			b.Fatal(err)
		}
	}
}
