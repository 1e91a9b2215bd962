// Package stroke turns flattened paths into triangle-strip stroke outlines.
//
// # Algorithm Overview
//
// Stroking runs in two passes over a [path.Cache] that has already been
// flattened:
//
//  1. CalculateJoins walks every edge pair of every path and stores the
//     miter offset direction on the shared point, classifying the join as
//     a plain corner, a bevel or an inner bevel.
//  2. ExpandStroke emits two vertices per visited point, one on each side
//     of the path, offset along the miter direction. Closed paths repeat
//     their first two vertices to close the seam; open paths get a butt cap
//     at each end.
//
// The output alternates outer and inner vertices and can be drawn as a
// triangle strip per path.
//
// # Antialiasing
//
// A positive fringe width widens the stroke by half the fringe and sets the
// U coordinate to 0 on the outer side and 1 on the inner side. Butt caps add
// an extra pair of vertices with V = 0 so the renderer can fade the ends.
// With a zero fringe U is a constant 0.5.
//
// # Limitations
//
// Only miter joins and butt caps are emitted. Round and square caps, and
// any join classified as a bevel, fail with [path.ErrUnimplemented] instead
// of producing approximate geometry.
package stroke
