package memo_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/on-the-ground/memoize_go/memo"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkMemoizedFib20(b *testing.B) {
	var fib func(int) int
	fib = memo.Func(func(n int) int {
		if n <= 1 {
			return n
		}
		return fib(n-1) + fib(n-2)
	})

	for i := 0; i < b.N; i++ {
		_ = fib(20)
	}
}

func BenchmarkMemoizedLevenshtein(b *testing.B) {
	shards := []int{1, 8, 32}
	for _, n := range shards {
		b.Run(fmt.Sprintf("Shards_%d", n), func(b *testing.B) {
			var lev func(string, string) int
			lev = memo.Func2(func(a, b string) int {
				if len(a) == 0 {
					return len(b)
				}
				if len(b) == 0 {
					return len(a)
				}
				if a[0] == b[0] {
					return lev(a[1:], b[1:])
				}
				return 1 + min(
					lev(a[1:], b),
					lev(a, b[1:]),
					lev(a[1:], b[1:]),
				)
			}, memo.NewConfig(n, nil))

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = lev("kitten", "sitting")
			}
		})
	}
}

func BenchmarkBlockingParallelHits(b *testing.B) {
	c := memo.NewBlocking(func(x int) int { return x * x })
	for i := 0; i < 1024; i++ {
		c.Of(i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = c.Of(i & 1023)
			i++
		}
	})
}

func BenchmarkSuspendingHits(b *testing.B) {
	ctx := context.Background()
	c := memo.NewSuspending[int, int](func(_ context.Context, x int) (int, error) {
		return x * x, nil
	})
	for i := 0; i < 1024; i++ {
		_, _ = c.Of(ctx, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Of(ctx, i&1023)
	}
}
