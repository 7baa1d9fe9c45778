package mathutil

import "errors"

var (
	// ErrDivisionByZero indicates a divide call with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNotFinite indicates a NaN or infinite operand, which has no decimal representation.
	ErrNotFinite = errors.New("operand is not a finite number")
)
