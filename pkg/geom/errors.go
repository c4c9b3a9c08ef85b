package geom

import "fmt"

// PreconditionError is panicked by constructors when their geometric
// invariant cannot be satisfied: a degenerate triangle passed to
// PlaneOfTriangle (and so to Intersects), a zero-length line direction or
// plane normal, or a range whose min exceeds its max. These are
// programmer errors — the caller is responsible for filtering degenerate
// input before it reaches the predicate — so they fail fast instead of
// being reported as recoverable errors.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("geom: %s: %s", e.Op, e.Msg)
}

func failPrecondition(op, msg string) {
	panic(&PreconditionError{Op: op, Msg: msg})
}
