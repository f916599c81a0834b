// Package matrix_test provides benchmarks for the small-matrix kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvgeom/matrix"
)

// benchSizes are the transform sizes the kernels target.
var benchSizes = []int{2, 3, 4}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkF float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := MustDense(b, n, n)
			y := MustDense(b, n, n)
			RandomFill(b, x, 1337)
			RandomFill(b, y, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := MustDense(b, n, n)
			RandomFill(b, x, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, err := matrix.NewIdentity(n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
