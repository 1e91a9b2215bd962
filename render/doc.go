// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws stroke vertices produced by a canvas.Canvas.
//
// The canvas only emits triangle strips; turning them into pixels is the
// job of a Renderer. This package provides a CPU renderer for tests and
// tooling, plus the pieces a GPU host needs to draw the same strips itself.
//
// # Core Types
//
//   - Batch: the vertices and strip ranges of one stroke, with a color
//   - RenderTarget: where rendering output goes
//   - Renderer: draws batches to a target
//
// # Software Rendering
//
//	c := canvas.New()
//	c.MoveTo(10, 10)
//	c.LineTo(90, 90)
//	if err := c.Stroke(); err != nil {
//	    return err
//	}
//
//	target := render.NewPixmapTarget(100, 100)
//	r := render.NewSoftwareRenderer()
//	err := r.Render(target, image.Pt(100, 100), render.NewBatch(c, color.Black))
//
// # GPU Integration
//
// The package never creates a GPU device. A host that owns one builds its
// stroke pipeline from StrokeVertexLayout, StrokePrimitiveState and the
// SPIR-V returned by CompileStrokeShader, uploads EncodeVertices output as
// the vertex buffer and StrokeUniforms.Bytes as the uniform buffer, then
// issues one draw per strip range.
//
// # Thread Safety
//
// Renderers are NOT thread-safe. Each renderer should be used from a single
// goroutine, or external synchronization must be used.
package render
