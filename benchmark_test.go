// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package spatial

import "testing"

var (
	sinkVector Vector3D
	sinkMatrix Matrix3D
)

func BenchmarkVector3D_Normalize(b *testing.B) {
	v := NewVector3D(1, 2, 3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkVector = v.Normalize()
	}
}

func BenchmarkMatrix3D_MulVector(b *testing.B) {
	m := seq()
	v := NewVector3D(1, 2, 3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkVector = m.MulVector(v)
	}
}

func BenchmarkMatrix3D_Mul(b *testing.B) {
	m := seq()
	n := seq().Transpose()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMatrix = m.Mul(n)
	}
}

func BenchmarkMatrix3D_Transpose(b *testing.B) {
	m := seq()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkMatrix = m.Transpose()
	}
}

func TestZeroAllocations(t *testing.T) {
	m := seq()
	v := NewVector3D(1, 2, 3)
	allocs := testing.AllocsPerRun(100, func() {
		sinkMatrix = m.Mul(m).Transpose().Scale(2).Div(3)
		sinkVector = m.MulVector(v).Normalize()
	})
	if allocs != 0 {
		t.Errorf("allocations per run = %v, want 0", allocs)
	}
}
