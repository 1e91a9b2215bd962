package path

import "errors"

// ErrUnimplemented reports a drawing operation the stroker does not support.
// Callers must not substitute approximate geometry when they see it.
var ErrUnimplemented = errors.New("canvas: unimplemented operation")

// UnimplementedError names the unsupported operation.
// It matches ErrUnimplemented with errors.Is.
type UnimplementedError struct {
	Op string
}

func (e *UnimplementedError) Error() string {
	return "canvas: " + e.Op + " is not implemented"
}

// Is reports whether target is ErrUnimplemented.
func (e *UnimplementedError) Is(target error) bool {
	return target == ErrUnimplemented
}
