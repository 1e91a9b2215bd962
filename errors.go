package canvas

import "github.com/gogpu/canvas/internal/path"

// ErrUnimplemented is matched by every error returned for geometry the
// stroker cannot produce yet: bezier segments, round or square caps and
// bevel joins.
//
// Use errors.Is(err, canvas.ErrUnimplemented) to detect it and errors.As
// with *UnimplementedError to learn which operation was rejected.
var ErrUnimplemented = path.ErrUnimplemented

// UnimplementedError names the unsupported operation that stopped a stroke.
type UnimplementedError = path.UnimplementedError
