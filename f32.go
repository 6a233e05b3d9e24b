// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package spatial

import "golang.org/x/image/math/f32"

// F32 returns v as an f32.Vec3.
func (v Vector3D) F32() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

// Vector3DFromF32 converts an f32.Vec3 to a Vector3D.
func Vector3DFromF32(a f32.Vec3) Vector3D {
	return Vector3D{X: a[0], Y: a[1], Z: a[2]}
}

// F32 returns m as an f32.Mat3. f32.Mat3 is row-major, so element (r, c)
// lands at index 3*r+c.
func (m Matrix3D) F32() f32.Mat3 {
	var a f32.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			a[3*r+c] = m.cols[c][r]
		}
	}
	return a
}

// Matrix3DFromF32 converts a row-major f32.Mat3 to a Matrix3D.
func Matrix3DFromF32(a f32.Mat3) Matrix3D {
	return NewMatrix3D(
		a[0], a[1], a[2],
		a[3], a[4], a[5],
		a[6], a[7], a[8],
	)
}
