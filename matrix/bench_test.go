// SPDX-License-Identifier: MIT

// Package matrix_test provides benchmarks for Dense arithmetic,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var sinkM *matrix.Dense[float64]

// randDense builds an n×n matrix filled from a fixed seed.
func randDense(b *testing.B, n int, seed int64) *matrix.Dense[float64] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}

	return MustNew(b, rows)
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, 1337)
			B := randDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Add(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, 11)
			B := randDense(b, n, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Dot(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Transpose()
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
