package crc

import (
	"errors"
	"fmt"
)

// ErrMismatch indicates that a CRC carried by a frame differs from the computed value.
var ErrMismatch = errors.New("crc mismatch")

// MismatchError carries the computed and on-wire CRC values as upper-case hex.
type MismatchError struct {
	Expected string // computed over the frame
	Actual   string // carried by the frame
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, actual %s", ErrMismatch, e.Expected, e.Actual)
}

// Is reports whether target is ErrMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}
