// SPDX-License-Identifier: MIT

package compact_test

import (
	"testing"

	"github.com/katalvlaran/twopointers/compact"
	"github.com/katalvlaran/twopointers/seqgen"
)

const benchN = 100000

// benchmarkInPlace restores s from src before every run so each iteration
// sees the same input.
func benchmarkInPlace(b *testing.B, src []int, run func([]int)) {
	s := make([]int, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		copy(s, src)
		b.StartTimer()
		run(s)
	}
}

func BenchmarkCompactDuplicates(b *testing.B) {
	src, err := seqgen.SortedInts(benchN, seqgen.WithRange(0, benchN/10))
	if err != nil {
		b.Fatalf("SortedInts failed: %v", err)
	}
	benchmarkInPlace(b, src, func(s []int) { compact.CompactDuplicates(s) })
}

func BenchmarkRelocateZeros(b *testing.B) {
	src, err := seqgen.Ints(benchN, seqgen.WithRange(0, 3))
	if err != nil {
		b.Fatalf("Ints failed: %v", err)
	}
	benchmarkInPlace(b, src, compact.RelocateZeros[int])
}

func BenchmarkFilterValue(b *testing.B) {
	src, err := seqgen.Ints(benchN, seqgen.WithRange(0, 3))
	if err != nil {
		b.Fatalf("Ints failed: %v", err)
	}
	benchmarkInPlace(b, src, func(s []int) { compact.FilterValue(s, 1) })
}
