// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/gogpu/naga"

	"github.com/gogpu/spatial"
)

// Entry points of the transform shader.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

//go:embed shaders/transform.wgsl
var transformShaderWGSL string

// TransformShaderSource returns the WGSL source of the transform shader.
// The vertex stage computes m * position with the same row-by-vector
// product as spatial.Matrix3D.MulVector.
func TransformShaderSource() string {
	return transformShaderWGSL
}

// CompileTransformShader compiles the transform shader to SPIR-V words.
func CompileTransformShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(transformShaderWGSL)
	if err != nil {
		spatial.Logger().Warn("transform shader compilation failed", slog.Any("err", err))
		return nil, fmt.Errorf("compile transform shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("compile transform shader: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	spatial.Logger().Debug("transform shader compiled", slog.Int("words", len(words)))
	return words, nil
}
