// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package spatial

import (
	"log/slog"
	"math"
)

// Vector3D is a 3-component float32 vector.
//
// The struct is laid out as three contiguous float32 values with no padding,
// which lets a Matrix3D expose its storage columns as *Vector3D without
// copying (see Matrix3D.ColumnView).
//
// Vector3D values are comparable with ==, which is exact componentwise
// equality (NaN is never equal to itself).
type Vector3D struct {
	X, Y, Z float32
}

// NewVector3D creates a Vector3D from its components.
func NewVector3D(x, y, z float32) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// Get returns component i (0=X, 1=Y, 2=Z).
// The boolean is false for any other index.
func (v Vector3D) Get(i int) (float32, bool) {
	switch i {
	case 0:
		return v.X, true
	case 1:
		return v.Y, true
	case 2:
		return v.Z, true
	}
	return 0, false
}

// Ptr returns a pointer to component i (0=X, 1=Y, 2=Z), or nil if i is out
// of range.
func (v *Vector3D) Ptr(i int) *float32 {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	}
	return nil
}

// Dot returns the dot product of two vectors.
func (v Vector3D) Dot(w Vector3D) float32 {
	// Explicit conversions round each product and keep the compiler from
	// fusing the sum into FMA instructions.
	return float32(v.X*w.X) + float32(v.Y*w.Y) + float32(v.Z*w.Z)
}

// Magnitude returns the Euclidean length of the vector.
// The zero vector has magnitude 0.
func (v Vector3D) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns v divided by its magnitude.
//
// The zero vector is not special-cased: dividing by a zero magnitude yields
// NaN components, following IEEE-754. Callers that need a finite result
// must check the magnitude first.
func (v Vector3D) Normalize() Vector3D {
	m := v.Magnitude()
	if m == 0 {
		Logger().Debug("spatial: normalizing zero-length vector",
			slog.Any("vector", v))
	}
	return v.Div(m)
}

// Add returns the componentwise sum of two vectors.
func (v Vector3D) Add(w Vector3D) Vector3D {
	return Vector3D{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// AddInPlace adds w to v.
func (v *Vector3D) AddInPlace(w Vector3D) {
	v.X += w.X
	v.Y += w.Y
	v.Z += w.Z
}

// Sub returns the componentwise difference of two vectors.
func (v Vector3D) Sub(w Vector3D) Vector3D {
	return Vector3D{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// SubInPlace subtracts w from v.
func (v *Vector3D) SubInPlace(w Vector3D) {
	v.X -= w.X
	v.Y -= w.Y
	v.Z -= w.Z
}

// AddScalar returns v with s added to every component.
func (v Vector3D) AddScalar(s float32) Vector3D {
	return Vector3D{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

// AddScalarInPlace adds s to every component of v.
func (v *Vector3D) AddScalarInPlace(s float32) {
	v.X += s
	v.Y += s
	v.Z += s
}

// SubScalar returns v with s subtracted from every component.
func (v Vector3D) SubScalar(s float32) Vector3D {
	return Vector3D{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

// SubScalarInPlace subtracts s from every component of v.
func (v *Vector3D) SubScalarInPlace(s float32) {
	v.X -= s
	v.Y -= s
	v.Z -= s
}

// Mul returns the vector scaled by s.
func (v Vector3D) Mul(s float32) Vector3D {
	return Vector3D{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// MulInPlace scales v by s.
func (v *Vector3D) MulInPlace(s float32) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// Div returns the vector divided by s.
// The reciprocal of s is computed once and multiplied into each component,
// so the result can differ from three separate divisions in the last bit.
func (v Vector3D) Div(s float32) Vector3D {
	inv := 1 / s
	return v.Mul(inv)
}

// DivInPlace divides v by s using the same reciprocal strategy as Div.
func (v *Vector3D) DivInPlace(s float32) {
	inv := 1 / s
	v.MulInPlace(inv)
}

// Neg returns the negation of the vector.
func (v Vector3D) Neg() Vector3D {
	return Vector3D{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Equal reports whether two vectors are exactly equal componentwise.
func (v Vector3D) Equal(w Vector3D) bool {
	return v == w
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vector3D) Approx(w Vector3D, epsilon float32) bool {
	return abs32(v.X-w.X) < epsilon &&
		abs32(v.Y-w.Y) < epsilon &&
		abs32(v.Z-w.Z) < epsilon
}

// IsZero returns true if the vector is the zero vector.
func (v Vector3D) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func abs32(f float32) float32 {
	return math.Float32frombits(math.Float32bits(f) &^ (1 << 31))
}
