package buffer

import (
	"errors"
	"fmt"
)

// Errors returned by buffer operations.
var (
	// ErrOutOfRange indicates a position outside the live bytes.
	ErrOutOfRange = errors.New("position out of range")

	// ErrEmpty indicates front/back access on an empty buffer.
	ErrEmpty = errors.New("buffer is empty")
)

// RangeError reports the offending position of a failed operation.
type RangeError struct {
	Op   string
	Pos  int
	Size int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: position %d out of range for size %d", e.Op, e.Pos, e.Size)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

func rangeError(op string, pos, size int) error {
	return &RangeError{Op: op, Pos: pos, Size: size}
}
