// File: benchmark_test.go
// Title: Performance Benchmarks for MathX Functions
// Description: Benchmarks for construction, arithmetic and equality of
//              complex numbers.
// Author: kevmasajedi
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial benchmark implementation

package mathx

import (
	"testing"
)

// Benchmark construction
func BenchmarkFromCartesian(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = FromCartesian(3, 4)
	}
}

func BenchmarkFromPolar(b *testing.B) {
	angle := AngleFromDegrees(53.13)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = FromPolar(5, angle)
	}
}

// Benchmark arithmetic
func BenchmarkAdd(b *testing.B) {
	z1 := FromCartesian(2, 3)
	z2 := FromCartesian(1, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = z1.Add(z2)
	}
}

func BenchmarkMul(b *testing.B) {
	z1 := FromCartesian(2, 3)
	z2 := FromCartesian(1, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = z1.Mul(z2)
	}
}

func BenchmarkPow(b *testing.B) {
	z := FromCartesian(2, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = z.Pow(3)
	}
}

func BenchmarkEqual(b *testing.B) {
	z1 := FromCartesian(1, 1)
	z2 := FromPolar(1.4142135623730951, AngleFromDegrees(45))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = z1.Equal(z2)
	}
}
