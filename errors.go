package strview

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("position out of range")

// OutOfRangeError reports a bounds failure on a checked path (At, Substr,
// Copy and the range Compare variants). It carries the violating call so
// callers can identify it, and unwraps to ErrOutOfRange.
type OutOfRangeError struct {
	Op   string
	Pos  int
	Size int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("strview: %s: position %d out of range for length %d", e.Op, e.Pos, e.Size)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

func outOfRange(op string, pos, size int) error {
	return &OutOfRangeError{Op: op, Pos: pos, Size: size}
}
