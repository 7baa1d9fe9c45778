package kernel

import (
	"errors"
	"fmt"
)

var (
	// ErrInputTooShort indicates that the live region of a Reader holds fewer bytes than requested.
	ErrInputTooShort = errors.New("input data is too short")

	// ErrValidationFailed indicates cursor overlap, bad indices, invalid lengths or an unusable scale factor.
	ErrValidationFailed = errors.New("validation failed")

	// ErrCompareFailed indicates that a compare mode field does not match its target bytes.
	ErrCompareFailed = errors.New("compare failed")

	// ErrRequiredMissing indicates that a required encoding parameter has no value and no default.
	ErrRequiredMissing = errors.New("required parameter missing")

	// ErrPlaceholderNotFound indicates a backfill for a tag that has no pending placeholder.
	ErrPlaceholderNotFound = errors.New("placeholder not found")

	// ErrNoDecodeMode indicates a decoding definition with neither compare target, field type nor enum table.
	ErrNoDecodeMode = errors.New("decoding definition requires one of compare, translate or enum mode")
)

// InputTooShortError carries the requested and available byte counts of a short read.
type InputTooShortError struct {
	Needed    int
	Available int
}

// Error implements the error interface.
func (e *InputTooShortError) Error() string {
	return fmt.Sprintf("%s: needed at least %d bytes, but only %d remain", ErrInputTooShort, e.Needed, e.Available)
}

// Is reports whether target is ErrInputTooShort.
func (e *InputTooShortError) Is(target error) bool {
	return target == ErrInputTooShort
}
