// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	_ "embed"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/gogpu/canvas"
)

//go:embed shaders/stroke.wgsl
var strokeShaderSource string

// StrokeVertexStride is the byte stride per vertex: 4 x float32 (x, y, u, v).
const StrokeVertexStride = 16

// StrokeUniformSize is the byte size of the stroke uniform buffer.
// Layout: view size (vec2<f32>) + stroke mult (f32) + padding (f32) +
// color (vec4<f32>) = 32 bytes.
const StrokeUniformSize = 32

// errBadSPIRV is returned when the compiler output is not whole words.
var errBadSPIRV = errors.New("render: SPIR-V length is not a multiple of 4")

// StrokeShaderSource returns the WGSL source of the stroke shader.
// Entry points are vs_main and fs_main.
func StrokeShaderSource() string {
	return strokeShaderSource
}

// CompileStrokeShader compiles the stroke shader to SPIR-V words.
func CompileStrokeShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(strokeShaderSource)
	if err != nil {
		return nil, fmt.Errorf("render: compile stroke shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, errBadSPIRV
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return spirvCode, nil
}

// StrokeVertexLayout returns the vertex buffer layout matching
// EncodeVertices: float32x2 position at location(0) and float32x2 uv at
// location(1).
func StrokeVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: StrokeVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{
					Format:         gputypes.VertexFormatFloat32x2,
					Offset:         0,
					ShaderLocation: 0,
				},
				{
					Format:         gputypes.VertexFormatFloat32x2,
					Offset:         8,
					ShaderLocation: 1,
				},
			},
		},
	}
}

// StrokePrimitiveState returns the primitive state for drawing strokes:
// one triangle strip per range, both windings visible.
func StrokePrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleStrip,
		CullMode: gputypes.CullModeNone,
	}
}

// EncodeVertices appends verts to dst in the StrokeVertexLayout format.
func EncodeVertices(dst []byte, verts []canvas.Vertex) []byte {
	if n := len(verts) * StrokeVertexStride; cap(dst)-len(dst) < n {
		grown := make([]byte, len(dst), len(dst)+n)
		copy(grown, dst)
		dst = grown
	}
	for _, v := range verts {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.X))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.Y))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.U))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.V))
	}
	return dst
}

// StrokeUniforms is the uniform block of the stroke shader.
type StrokeUniforms struct {
	// ViewSize is the viewport size in canvas units.
	ViewSize [2]float32

	// StrokeMult scales the U gradient so coverage reaches 1 a fringe
	// width inside the stroke edge.
	StrokeMult float32

	// Color is the straight alpha RGBA stroke color in [0, 1].
	Color [4]float32
}

// NewStrokeUniforms builds the uniforms for a stroke of the given half
// width and fringe drawn over viewport.
func NewStrokeUniforms(viewport image.Point, halfWidth, fringe float32, c color.Color) StrokeUniforms {
	mult := float32(1)
	if fringe > 0 {
		mult = (halfWidth + fringe*0.5) / fringe
	}

	var rgba [4]float32
	if c != nil {
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		rgba = [4]float32{
			float32(nc.R) / 255,
			float32(nc.G) / 255,
			float32(nc.B) / 255,
			float32(nc.A) / 255,
		}
	}

	return StrokeUniforms{
		ViewSize:   [2]float32{float32(viewport.X), float32(viewport.Y)},
		StrokeMult: mult,
		Color:      rgba,
	}
}

// Bytes encodes the uniforms in the StrokeUniformSize layout.
func (u StrokeUniforms) Bytes() []byte {
	words := [8]float32{
		u.ViewSize[0], u.ViewSize[1],
		u.StrokeMult, 0,
		u.Color[0], u.Color[1], u.Color[2], u.Color[3],
	}
	buf := make([]byte, 0, StrokeUniformSize)
	for _, w := range words {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(w))
	}
	return buf
}
