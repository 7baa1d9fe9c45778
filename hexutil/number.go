package hexutil

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Integer is the set of fixed-width integer types supported by the number conversions.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// widthOf returns the native byte width of T and whether T is signed.
func widthOf[T Integer]() (int, bool) {
	var zero T
	minusOne := zero - 1

	return binary.Size(zero), minusOne < zero
}

// BytesToInt converts big-endian bytes into T. The length of b must equal the width of T.
func BytesToInt[T Integer](b []byte) (T, error) {
	size, _ := widthOf[T]()
	if len(b) != size {
		return 0, fmt.Errorf("%w: %T expects %d bytes, got %d", ErrInvalidLength, T(0), size, len(b))
	}

	var u uint64
	for _, v := range b {
		u = u<<8 | uint64(v)
	}

	return T(u), nil
}

// HexToInt decodes a hex string and converts its big-endian bytes into T.
func HexToInt[T Integer](s string) (T, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return 0, err
	}

	return BytesToInt[T](b)
}

// IntToBytes returns the big-endian bytes of n in its native width.
func IntToBytes[T Integer](n T) []byte {
	size, _ := widthOf[T]()
	out := make([]byte, size)
	u := uint64(n) //nolint:gosec
	for i := size - 1; i >= 0; i-- {
		out[i] = byte(u)
		u >>= 8
	}

	return out
}

// IntToHex formats n as upper-case big-endian hex with byteLen bytes.
//
// When byteLen is shorter than the native width the low-order bytes are kept.
// When it is longer the value is sign-extended with 'F' for negative signed
// numbers and zero-extended otherwise.
func IntToHex[T Integer](n T, byteLen int) string {
	size, signed := widthOf[T]()
	native := BytesToHex(IntToBytes(n))

	want := byteLen * 2
	switch {
	case want < len(native):
		return native[len(native)-want:]
	case want == len(native):
		return native
	}

	fill := "0"
	if signed && n < 0 {
		fill = "F"
	}

	return strings.Repeat(fill, want-size*2) + native
}

// BytesToF32 converts 4 big-endian bytes into an IEEE-754 float32.
func BytesToF32(b []byte) (float32, error) {
	if len(b) != 4 {
		return 0, fmt.Errorf("%w: float32 expects 4 bytes, got %d", ErrInvalidLength, len(b))
	}

	return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
}

// BytesToF64 converts 8 big-endian bytes into an IEEE-754 float64.
func BytesToF64(b []byte) (float64, error) {
	if len(b) != 8 {
		return 0, fmt.Errorf("%w: float64 expects 8 bytes, got %d", ErrInvalidLength, len(b))
	}

	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

// HexToF32 decodes a 4-byte hex string into a float32.
func HexToF32(s string) (float32, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return 0, err
	}

	return BytesToF32(b)
}

// HexToF64 decodes an 8-byte hex string into a float64.
func HexToF64(s string) (float64, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return 0, err
	}

	return BytesToF64(b)
}

// BytesToF32OrF64 decodes 4 bytes as float32 or 8 bytes as float64, widening the result to float64.
func BytesToF32OrF64(b []byte) (float64, error) {
	switch len(b) {
	case 4:
		v, _ := BytesToF32(b)
		return float64(v), nil
	case 8:
		return BytesToF64(b)
	default:
		return 0, fmt.Errorf("%w: got %d", ErrInvalidFloatLength, len(b))
	}
}

// HexToF32OrF64 is the hex string form of BytesToF32OrF64.
func HexToF32OrF64(s string) (float64, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return 0, err
	}

	return BytesToF32OrF64(b)
}

// F32ToBytes returns the big-endian IEEE-754 bytes of v.
func F32ToBytes(v float32) []byte {
	return binary.BigEndian.AppendUint32(nil, math.Float32bits(v))
}

// F64ToBytes returns the big-endian IEEE-754 bytes of v.
func F64ToBytes(v float64) []byte {
	return binary.BigEndian.AppendUint64(nil, math.Float64bits(v))
}

// F32ToHex returns the upper-case hex of the big-endian IEEE-754 bytes of v.
func F32ToHex(v float32) string {
	return BytesToHex(F32ToBytes(v))
}

// F64ToHex returns the upper-case hex of the big-endian IEEE-754 bytes of v.
func F64ToHex(v float64) string {
	return BytesToHex(F64ToBytes(v))
}

// F64ToHexByLen encodes v as float32 (byteLen 4) or float64 (byteLen 8).
func F64ToHexByLen(v float64, byteLen int) (string, error) {
	switch byteLen {
	case 4:
		return F32ToHex(float32(v)), nil
	case 8:
		return F64ToHex(v), nil
	default:
		return "", fmt.Errorf("%w: got %d", ErrInvalidFloatLength, byteLen)
	}
}

// IntToBinary formats the native bit pattern of n as a binary string of bitLen bits.
//
// Shorter targets keep the low-order bits, longer targets are zero-extended.
func IntToBinary[T Integer](n T, bitLen int) (string, error) {
	if bitLen <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrBinaryLength, bitLen)
	}

	size, _ := widthOf[T]()
	nativeBits := size * 8
	u := uint64(n) //nolint:gosec
	if nativeBits < 64 {
		u &= 1<<nativeBits - 1
	}

	native := fmt.Sprintf("%0*b", nativeBits, u)
	if bitLen <= nativeBits {
		return native[nativeBits-bitLen:], nil
	}

	return strings.Repeat("0", bitLen-nativeBits) + native, nil
}

// BinaryToInt parses a binary string into T, reinterpreting the bit pattern for signed types.
func BinaryToInt[T Integer](s string) (T, error) {
	size, _ := widthOf[T]()
	u, err := strconv.ParseUint(s, 2, size*8)
	if err != nil {
		return 0, fmt.Errorf("%w: %T: %s", ErrBinaryParse, T(0), err.Error())
	}

	return T(u), nil
}

// BinaryToBits converts a binary string into a slice of bits, most significant first.
func BinaryToBits(s string) ([]bool, error) {
	bits := make([]bool, 0, len(s))
	for i, c := range s {
		switch c {
		case '1':
			bits = append(bits, true)
		case '0':
			bits = append(bits, false)
		default:
			return nil, fmt.Errorf("%w: invalid character %q at %d", ErrBinaryParse, c, i)
		}
	}

	return bits, nil
}
