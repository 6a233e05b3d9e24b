// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu describes spatial vectors and matrices to GPU pipelines.
//
// A spatial.Vector3D is three packed float32 values, the same bytes as a
// WGSL vec3<f32> vertex attribute. A spatial.Matrix3D stores its columns
// contiguously, so a slice of matrices can be bound as a per-instance
// vertex buffer with one vec3<f32> attribute per column and reassembled in
// the shader with mat3x3<f32>(c0, c1, c2), which WGSL also treats as
// columns.
//
// Usage:
//
//	layouts := gpu.TransformLayouts()
//	spirv, err := gpu.CompileTransformShader()
//
// The layouts plug into a gputypes-based render pipeline descriptor; this
// package never creates devices or buffers itself.
package gpu

import (
	"unsafe"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/spatial"
)

// Byte strides of the spatial types in a vertex buffer.
const (
	VectorStride = uint64(unsafe.Sizeof(spatial.Vector3D{}))
	MatrixStride = uint64(unsafe.Sizeof(spatial.Matrix3D{}))
)

// Shader locations used by TransformLayouts and the transform shader.
const (
	PositionLocation uint32 = 0
	MatrixLocation   uint32 = 1
)

// VectorAttribute returns the attribute describing a Vector3D at the given
// byte offset and shader location.
func VectorAttribute(offset uint64, location uint32) gputypes.VertexAttribute {
	return gputypes.VertexAttribute{
		Format:         gputypes.VertexFormatFloat32x3,
		Offset:         offset,
		ShaderLocation: location,
	}
}

// VectorLayout returns a per-vertex buffer layout for a tightly packed
// []spatial.Vector3D bound at the given shader location.
func VectorLayout(location uint32) gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VectorStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes:  []gputypes.VertexAttribute{VectorAttribute(0, location)},
	}
}

// MatrixInstanceLayout returns a per-instance buffer layout for a tightly
// packed []spatial.Matrix3D. Column j is bound at firstLocation+j.
func MatrixInstanceLayout(firstLocation uint32) gputypes.VertexBufferLayout {
	attrs := make([]gputypes.VertexAttribute, 3)
	for j := range attrs {
		attrs[j] = VectorAttribute(uint64(j)*VectorStride, firstLocation+uint32(j))
	}
	return gputypes.VertexBufferLayout{
		ArrayStride: MatrixStride,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes:  attrs,
	}
}

// TransformLayouts returns the two vertex buffer layouts expected by the
// transform shader: positions per vertex, matrices per instance.
func TransformLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		VectorLayout(PositionLocation),
		MatrixInstanceLayout(MatrixLocation),
	}
}
