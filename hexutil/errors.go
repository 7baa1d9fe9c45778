package hexutil

import "errors"

var (
	// ErrHexParse indicates that a string contains characters that are not valid hex digits.
	ErrHexParse = errors.New("invalid hex string")

	// ErrInvalidLength indicates that a byte slice does not match the fixed width of the target number type.
	ErrInvalidLength = errors.New("invalid byte length for number conversion")

	// ErrInvalidFloatLength indicates that a float conversion received neither 4 nor 8 bytes.
	ErrInvalidFloatLength = errors.New("invalid byte length for float/double conversion, expected 4 or 8")

	// ErrBinaryLength indicates that a requested bit length is not positive.
	ErrBinaryLength = errors.New("expected bit length must be positive")

	// ErrBinaryParse indicates that a binary string contains characters other than '0' and '1'
	// or does not fit the target type.
	ErrBinaryParse = errors.New("invalid binary string")

	// ErrInvalidRange indicates inverted or out-of-range slice indices.
	ErrInvalidRange = errors.New("invalid slice range")

	// ErrNotASCII indicates that the input is not ASCII (or ASCII encoded as hex).
	ErrNotASCII = errors.New("input is not valid ASCII")

	// ErrNotBCD indicates that the input is not a BCD string.
	ErrNotBCD = errors.New("input is not valid BCD")

	// ErrNotMachineCode indicates that the input is neither hex, BCD nor ASCII hex.
	ErrNotMachineCode = errors.New("input is not valid machine code")

	// ErrInvalidInput indicates an invalid argument such as an empty buffer or a bad padding value.
	ErrInvalidInput = errors.New("invalid input")
)
