package hexutil

import (
	"encoding/hex"
	"fmt"
)

// IsBCD reports whether s consists only of decimal digits after trimming and prefix removal.
func IsBCD(s string) bool {
	for _, c := range cleanHex(s) {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

// IsHex reports whether s is a valid hex string.
func IsHex(s string) bool {
	_, err := hex.DecodeString(cleanAndPadHex(s))
	return err == nil
}

// IsASCIIHex reports whether s is a hex string whose bytes are all ASCII.
func IsASCIIHex(s string) bool {
	b, err := hex.DecodeString(cleanAndPadHex(s))
	if err != nil {
		return false
	}

	return IsASCII(b)
}

// IsMachineCode reports whether s is a hex, BCD or ASCII hex string.
// Hex is a superset of the other two, so this is the hex check.
func IsMachineCode(s string) bool {
	return IsHex(s)
}

// EnsureBCD returns ErrNotBCD when s is not BCD.
func EnsureBCD(s string) error {
	if !IsBCD(s) {
		return fmt.Errorf("%w: %q", ErrNotBCD, s)
	}

	return nil
}

// EnsureASCIIHex returns ErrNotASCII when s is not ASCII hex.
func EnsureASCIIHex(s string) error {
	if !IsASCIIHex(s) {
		return fmt.Errorf("%w: %q", ErrNotASCII, s)
	}

	return nil
}

// EnsureMachineCode returns ErrNotMachineCode when s is not machine code.
func EnsureMachineCode(s string) error {
	if !IsMachineCode(s) {
		return fmt.Errorf("%w: %q", ErrNotMachineCode, s)
	}

	return nil
}

// ASCIIToString decodes an ASCII hex string, e.g. "414243" becomes "ABC".
func ASCIIToString(s string) (string, error) {
	v := cleanAndPadHex(s)
	if v == "" {
		return "", nil
	}
	if err := EnsureASCIIHex(v); err != nil {
		return "", err
	}

	b, _ := hex.DecodeString(v)

	return string(b), nil
}

// StringToASCII encodes an ASCII string into upper-case hex.
func StringToASCII(s string) (string, error) {
	if !IsASCII([]byte(s)) {
		return "", fmt.Errorf("%w: input contains non-ASCII characters", ErrNotASCII)
	}

	return BytesToHex([]byte(s)), nil
}

// IsASCII reports whether every byte of b is below 0x80.
func IsASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}

	return true
}
