// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/canvas"
	"github.com/gogpu/gputypes"
)

// Errors returned by SoftwareRenderer.
var (
	// ErrNilTarget is returned when Render is called without a target.
	ErrNilTarget = errors.New("render: nil target")

	// ErrUnsupportedTarget is returned for targets without CPU pixels or with
	// a pixel format other than RGBA8.
	ErrUnsupportedTarget = errors.New("render: target does not support CPU rendering")

	// ErrInvalidRange is returned when a strip range lies outside its batch.
	ErrInvalidRange = errors.New("render: strip range out of bounds")
)

// SoftwareRenderer is a CPU-based renderer built on golang.org/x/image/vector.
//
// Each strip range is split into its triangles, every triangle is wound the
// same way and all triangles of a batch are accumulated in one rasterizer,
// so overlapping strip triangles never cancel. The rasterizer computes
// coverage itself; the fringe gradient in the vertex UVs is ignored.
//
// Example:
//
//	renderer := render.NewSoftwareRenderer()
//	target := render.NewPixmapTarget(800, 600)
//	renderer.Render(target, image.Pt(800, 600), render.NewBatch(c, color.Black))
//	img := target.Image()
type SoftwareRenderer struct {
	// rasterizer is reused across batches and calls.
	rasterizer *vector.Rasterizer
}

// NewSoftwareRenderer creates a new CPU-based software renderer.
func NewSoftwareRenderer() *SoftwareRenderer {
	return &SoftwareRenderer{}
}

// Render draws the batches to the target.
//
// Returns an error if the target is missing, is not CPU accessible RGBA, or
// a batch holds a range outside its vertices. Batches before a failing one
// have already been drawn.
func (r *SoftwareRenderer) Render(target RenderTarget, viewport image.Point, batches ...Batch) error {
	if target == nil {
		return ErrNilTarget
	}

	dst, err := targetImage(target)
	if err != nil {
		return err
	}

	width, height := target.Width(), target.Height()
	sx, sy := float32(1), float32(1)
	if viewport.X > 0 {
		sx = float32(width) / float32(viewport.X)
	}
	if viewport.Y > 0 {
		sy = float32(height) / float32(viewport.Y)
	}

	log := canvas.Logger()
	for i, b := range batches {
		if b.Empty() {
			continue
		}
		if err := validateRanges(b); err != nil {
			return fmt.Errorf("render: batch %d: %w", i, err)
		}

		r.ensureRasterizer(width, height)
		triangles := r.addBatch(b, sx, sy)

		col := b.Color
		if col == nil {
			col = color.Black
		}
		r.rasterizer.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})

		log.Debug("render: batch drawn", "batch", i, "ranges", len(b.Ranges), "triangles", triangles)
	}

	return nil
}

// Flush ensures all rendering is complete.
// For the software renderer, this is a no-op as operations are synchronous.
func (r *SoftwareRenderer) Flush() error {
	return nil
}

// Capabilities returns the renderer's capabilities.
func (r *SoftwareRenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:                false,
		SupportsAntialiasing: true,
		UsesFringe:           false,
	}
}

// ensureRasterizer prepares a cleared rasterizer of the target size.
func (r *SoftwareRenderer) ensureRasterizer(width, height int) {
	if r.rasterizer == nil {
		r.rasterizer = vector.NewRasterizer(width, height)
		r.rasterizer.DrawOp = draw.Over
		return
	}
	r.rasterizer.Reset(width, height)
	r.rasterizer.DrawOp = draw.Over
}

// addBatch adds every strip triangle of b and returns the triangle count.
func (r *SoftwareRenderer) addBatch(b Batch, sx, sy float32) int {
	n := 0
	for _, rng := range b.Ranges {
		strip := b.Vertices[rng.First : rng.First+rng.Count]
		for i := 0; i+2 < len(strip); i++ {
			r.addTriangle(strip[i], strip[i+1], strip[i+2], sx, sy)
			n++
		}
	}
	return n
}

// addTriangle adds one counter-clockwise triangle to the rasterizer.
// Triangle strips alternate winding, so clockwise input is flipped.
func (r *SoftwareRenderer) addTriangle(a, b, c canvas.Vertex, sx, sy float32) {
	ax, ay := a.X*sx, a.Y*sy
	bx, by := b.X*sx, b.Y*sy
	cx, cy := c.X*sx, c.Y*sy

	if (bx-ax)*(cy-ay)-(by-ay)*(cx-ax) < 0 {
		bx, by, cx, cy = cx, cy, bx, by
	}

	r.rasterizer.MoveTo(ax, ay)
	r.rasterizer.LineTo(bx, by)
	r.rasterizer.LineTo(cx, cy)
	r.rasterizer.ClosePath()
}

// targetImage exposes the target pixels as an *image.RGBA without copying.
func targetImage(target RenderTarget) (*image.RGBA, error) {
	if pt, ok := target.(*PixmapTarget); ok {
		return pt.Image(), nil
	}

	pixels := target.Pixels()
	if pixels == nil || target.Format() != gputypes.TextureFormatRGBA8Unorm {
		return nil, ErrUnsupportedTarget
	}

	width, height, stride := target.Width(), target.Height(), target.Stride()
	if stride < width*4 || len(pixels) < stride*(height-1)+width*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d with stride %d",
			ErrUnsupportedTarget, len(pixels), width, height, stride)
	}

	return &image.RGBA{
		Pix:    pixels,
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// validateRanges checks that every range of b fits inside b.Vertices.
func validateRanges(b Batch) error {
	for _, rng := range b.Ranges {
		if rng.First < 0 || rng.Count < 0 || rng.First+rng.Count > len(b.Vertices) {
			return fmt.Errorf("%w: [%d, %d) of %d vertices",
				ErrInvalidRange, rng.First, rng.First+rng.Count, len(b.Vertices))
		}
	}
	return nil
}

// Ensure SoftwareRenderer implements CapableRenderer.
var _ CapableRenderer = (*SoftwareRenderer)(nil)
