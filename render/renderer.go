// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"slices"

	"github.com/gogpu/canvas"
)

// Batch is one stroke ready for drawing: a vertex buffer, the triangle
// strip ranges inside it and the color to fill them with.
type Batch struct {
	Vertices []canvas.Vertex
	Ranges   []canvas.VertexRange
	Color    color.Color
}

// NewBatch copies the current stroke output of c into a Batch.
// Paths that produced no stroke are left out. The batch is empty if c has
// not been stroked.
func NewBatch(c *canvas.Canvas, col color.Color) Batch {
	b := Batch{
		Vertices: slices.Clone(c.Vertices()),
		Color:    col,
	}
	for _, p := range c.Paths() {
		if !p.Stroke.Empty() {
			b.Ranges = append(b.Ranges, p.Stroke)
		}
	}
	return b
}

// Empty reports whether the batch has nothing to draw.
func (b Batch) Empty() bool {
	return len(b.Ranges) == 0 || len(b.Vertices) == 0
}

// Renderer draws stroke batches to a render target.
//
// The viewport is the size, in canvas units, of the area mapped onto the
// whole target. Renderers are stateless between Render calls, allowing the
// same renderer to be used with different targets.
//
// Thread Safety: Renderers are NOT thread-safe. Each renderer should be used
// from a single goroutine, or external synchronization must be used.
type Renderer interface {
	// Render draws the batches to the target in order.
	//
	// Returns an error if rendering fails (e.g., incompatible target format
	// or a strip range outside its vertex buffer).
	Render(target RenderTarget, viewport image.Point, batches ...Batch) error

	// Flush ensures all pending rendering operations are complete.
	//
	// For CPU renderers, this is typically a no-op as operations are
	// synchronous.
	Flush() error
}

// RendererCapabilities describes the features supported by a renderer.
type RendererCapabilities struct {
	// IsGPU indicates if this is a GPU-accelerated renderer.
	IsGPU bool

	// SupportsAntialiasing indicates if anti-aliased rendering is supported.
	SupportsAntialiasing bool

	// UsesFringe indicates if the renderer reads the vertex UV gradient.
	UsesFringe bool
}

// CapableRenderer is an optional interface for renderers that can
// report their capabilities.
type CapableRenderer interface {
	Renderer

	// Capabilities returns the renderer's capabilities.
	Capabilities() RendererCapabilities
}
