// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package spatial provides float32 3D vector and 3x3 matrix value types for
// transforms, projections and physics.
//
// # Overview
//
// Vector3D and Matrix3D are plain values: they are copied on assignment,
// never allocate, and are safe to share between goroutines as long as no
// goroutine mutates a shared value.
//
//	m := spatial.NewMatrix3D(
//	    1, 2, 3,
//	    4, 5, 6,
//	    7, 8, 9,
//	)
//	v := m.MulVector(spatial.NewVector3D(1, 2, 3)) // (14, 32, 50)
//
// # Operations
//
// Arithmetic is expressed as named methods. Every mutating method has a
// value-returning counterpart:
//
//	v.Add(w)      v.AddInPlace(w)
//	v.Mul(s)      v.MulInPlace(s)
//	m.Mul(n)      m.MulInPlace(n)
//	m.Transpose() m.TransposeInPlace()
//
// Division by a scalar computes the reciprocal once and multiplies, so
// v.Div(s) equals v.Mul(1/s) bit for bit.
//
// # Indexing
//
// Out-of-range indices never panic. Value accessors return a false boolean
// and pointer accessors return nil:
//
//	x, ok := v.Get(0)
//	p := m.Ptr(1, 2) // nil if out of range
//
// # Storage
//
// Matrix3D stores elements column-major. Each stored column has the exact
// memory layout of a Vector3D, so ColumnView returns a *Vector3D aliasing
// the matrix without copying. Writes through the view are visible in the
// matrix.
//
// # Floating point
//
// Equality is exact. NaN and Inf propagate per IEEE-754; Normalize of the
// zero vector yields NaN components rather than an error.
//
// # Logging
//
// The package is silent by default. SetLogger enables debug records for
// numeric edge cases.
package spatial
