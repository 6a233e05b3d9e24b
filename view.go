// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package spatial

import "unsafe"

// A Matrix3D storage column and a Vector3D must share size and alignment so
// that one can be read as the other. The array lengths below underflow, and
// the package fails to compile, if the sizes or alignments diverge.
var (
	_ [unsafe.Sizeof(Vector3D{}) - unsafe.Sizeof([3]float32{})]struct{}
	_ [unsafe.Sizeof([3]float32{}) - unsafe.Sizeof(Vector3D{})]struct{}
	_ [unsafe.Alignof(Vector3D{}) - unsafe.Alignof([3]float32{})]struct{}
	_ [unsafe.Alignof([3]float32{}) - unsafe.Alignof(Vector3D{})]struct{}
	_ [unsafe.Offsetof(Vector3D{}.Z) - 2*unsafe.Sizeof(float32(0))]struct{}
)

// column reinterprets stored column j as a Vector3D. j must be in [0, 3).
func (m *Matrix3D) column(j int) *Vector3D {
	return (*Vector3D)(unsafe.Pointer(&m.cols[j]))
}

// Column returns a copy of column j, that is (m(0,j), m(1,j), m(2,j)).
// The boolean is false if j is outside [0, 3).
func (m Matrix3D) Column(j int) (Vector3D, bool) {
	if !inRange(j) {
		return Vector3D{}, false
	}
	return *m.column(j), true
}

// ColumnView returns column j as a *Vector3D that aliases the matrix
// storage, or nil if j is outside [0, 3). Writes through the returned
// pointer change m: setting view.Y changes m.Get(1, j).
//
// The view is valid for as long as m is. It must not be written while m is
// being modified through another path on a different goroutine.
func (m *Matrix3D) ColumnView(j int) *Vector3D {
	if !inRange(j) {
		return nil
	}
	return m.column(j)
}
