// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package spatial

import "log/slog"

// Matrix3D is a 3x3 float32 matrix.
//
// Elements are stored column-major: the element at row i, column j lives at
// cols[j][i]. Constructors and accessors take row/column indices in the
// usual mathematical order, so the storage order is only visible through
// Column and ColumnView, which expose one contiguous stored column.
//
//	| n00 n01 n02 |
//	| n10 n11 n12 |
//	| n20 n21 n22 |
//
// Matrix3D values are comparable with ==, which is exact elementwise
// equality.
type Matrix3D struct {
	cols [3][3]float32
}

// NewMatrix3D creates a matrix from nine elements given in row-major order,
// so that Get(r, c) returns n<r><c>.
func NewMatrix3D(
	n00, n01, n02,
	n10, n11, n12,
	n20, n21, n22 float32,
) Matrix3D {
	return Matrix3D{cols: [3][3]float32{
		{n00, n10, n20},
		{n01, n11, n21},
		{n02, n12, n22},
	}}
}

// NewMatrix3DFromVectors creates a matrix whose rows are the given vectors.
func NewMatrix3DFromVectors(row1, row2, row3 Vector3D) Matrix3D {
	return Matrix3D{cols: [3][3]float32{
		{row1.X, row2.X, row3.X},
		{row1.Y, row2.Y, row3.Y},
		{row1.Z, row2.Z, row3.Z},
	}}
}

// NewMatrix3DFromRows creates a matrix from a slice of rows, so that
// Get(i, j) returns rows[i][j].
//
// It returns a *ShapeError (matching ErrShape) unless len(rows) is exactly 3.
func NewMatrix3DFromRows(rows [][3]float32) (Matrix3D, error) {
	if len(rows) != 3 {
		Logger().Debug("spatial: rejected matrix rows",
			slog.Int("rows", len(rows)))
		return Matrix3D{}, &ShapeError{Rows: len(rows)}
	}
	var m Matrix3D
	for i, row := range rows {
		for j, n := range row {
			m.cols[j][i] = n
		}
	}
	return m, nil
}

// Identity3D returns the 3x3 identity matrix.
func Identity3D() Matrix3D {
	return NewMatrix3D(
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	)
}

// Get returns the element at row i, column j.
// The boolean is false if either index is outside [0, 3).
func (m Matrix3D) Get(i, j int) (float32, bool) {
	if !inRange(i) || !inRange(j) {
		return 0, false
	}
	return m.cols[j][i], true
}

// Ptr returns a pointer to the element at row i, column j, or nil if either
// index is outside [0, 3).
func (m *Matrix3D) Ptr(i, j int) *float32 {
	if !inRange(i) || !inRange(j) {
		return nil
	}
	return &m.cols[j][i]
}

// Row returns a copy of row i.
func (m Matrix3D) Row(i int) (Vector3D, bool) {
	if !inRange(i) {
		return Vector3D{}, false
	}
	return Vector3D{X: m.cols[0][i], Y: m.cols[1][i], Z: m.cols[2][i]}, true
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix3D) Transpose() Matrix3D {
	var t Matrix3D
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.cols[i][j] = m.cols[j][i]
		}
	}
	return t
}

// TransposeInPlace swaps the rows and columns of m and returns m for
// chaining.
func (m *Matrix3D) TransposeInPlace() *Matrix3D {
	*m = m.Transpose()
	return m
}

// MulVector returns the matrix-vector product m * v, where component i of
// the result is the dot product of row i with v.
func (m Matrix3D) MulVector(v Vector3D) Vector3D {
	var out Vector3D
	for i := 0; i < 3; i++ {
		row, _ := m.Row(i)
		*out.Ptr(i) = row.Dot(v)
	}
	return out
}

// Mul returns the matrix product m * n.
func (m Matrix3D) Mul(n Matrix3D) Matrix3D {
	var p Matrix3D
	for i := 0; i < 3; i++ {
		row, _ := m.Row(i)
		for j := 0; j < 3; j++ {
			col := n.column(j)
			p.cols[j][i] = row.Dot(*col)
		}
	}
	return p
}

// MulInPlace replaces m with the matrix product m * n.
func (m *Matrix3D) MulInPlace(n Matrix3D) {
	*m = m.Mul(n)
}

// Add returns the elementwise sum of two matrices.
func (m Matrix3D) Add(n Matrix3D) Matrix3D {
	m.AddInPlace(n)
	return m
}

// AddInPlace adds n to m elementwise.
func (m *Matrix3D) AddInPlace(n Matrix3D) {
	for j := range m.cols {
		m.column(j).AddInPlace(*n.column(j))
	}
}

// Sub returns the elementwise difference of two matrices.
func (m Matrix3D) Sub(n Matrix3D) Matrix3D {
	m.SubInPlace(n)
	return m
}

// SubInPlace subtracts n from m elementwise.
func (m *Matrix3D) SubInPlace(n Matrix3D) {
	for j := range m.cols {
		m.column(j).SubInPlace(*n.column(j))
	}
}

// Scale returns the matrix with every element multiplied by s.
func (m Matrix3D) Scale(s float32) Matrix3D {
	m.ScaleInPlace(s)
	return m
}

// ScaleInPlace multiplies every element of m by s.
func (m *Matrix3D) ScaleInPlace(s float32) {
	for j := range m.cols {
		m.column(j).MulInPlace(s)
	}
}

// Div returns the matrix with every element divided by s.
// Like Vector3D.Div, the reciprocal is computed once and multiplied in.
func (m Matrix3D) Div(s float32) Matrix3D {
	m.DivInPlace(s)
	return m
}

// DivInPlace divides every element of m by s.
func (m *Matrix3D) DivInPlace(s float32) {
	inv := 1 / s
	m.ScaleInPlace(inv)
}

// Equal reports whether two matrices are exactly equal elementwise.
func (m Matrix3D) Equal(n Matrix3D) bool {
	return m == n
}

// Approx returns true if every element of m is within epsilon of the
// corresponding element of n.
func (m Matrix3D) Approx(n Matrix3D, epsilon float32) bool {
	for j := range m.cols {
		if !m.column(j).Approx(*n.column(j), epsilon) {
			return false
		}
	}
	return true
}

func inRange(i int) bool {
	return i >= 0 && i < 3
}
