// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package spatial

import (
	"errors"
	"strconv"
)

// ErrShape is returned when a matrix is built from input that does not
// describe exactly three rows.
var ErrShape = errors.New("spatial: matrix shape mismatch")

// ShapeError is returned by NewMatrix3DFromRows when the number of rows is
// not 3. It matches ErrShape under errors.Is.
type ShapeError struct {
	Rows int
}

func (e *ShapeError) Error() string {
	return "spatial: expected exactly 3 rows, got " + strconv.Itoa(e.Rows)
}

// Unwrap returns ErrShape.
func (e *ShapeError) Unwrap() error {
	return ErrShape
}
