package hexutil

import (
	"bytes"
	"fmt"
)

// PKCS7 selects the PKCS#7 pad value, i.e. the number of bytes being added.
const PKCS7 = -1

// PadBytesToBlockSize pads data up to the next multiple of blockSize.
//
// A buffer that already is exactly one block is returned unchanged, a longer buffer
// that is a multiple of blockSize gets a full extra block. padByte is either a byte
// value in [0, 255] or PKCS7.
func PadBytesToBlockSize(data []byte, blockSize int, padByte int) ([]byte, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: block size must be positive, got %d", ErrInvalidInput, blockSize)
	}

	n := len(data)
	var shortBy int
	switch {
	case n == blockSize:
		shortBy = 0
	case n < blockSize:
		shortBy = blockSize - n
	case n%blockSize == 0:
		shortBy = blockSize
	default:
		shortBy = blockSize - n%blockSize
	}

	return pad(data, shortBy, true, padByte)
}

// PadBytesToLength pads data up to totalLength bytes, appending on the tail when
// appendOnTail is true and prepending otherwise.
func PadBytesToLength(data []byte, totalLength int, appendOnTail bool, padByte int) ([]byte, error) {
	if len(data) > totalLength {
		return nil, fmt.Errorf("%w: data length %d exceeds total length %d", ErrInvalidInput, len(data), totalLength)
	}

	return pad(data, totalLength-len(data), appendOnTail, padByte)
}

// PadHexToBlockSize is the hex form of PadBytesToBlockSize. An empty padHex selects PKCS#7.
func PadHexToBlockSize(s string, blockSize int, padHex string) (string, error) {
	data, err := HexToBytes(s)
	if err != nil {
		return "", err
	}
	padByte, err := parsePadHex(padHex)
	if err != nil {
		return "", err
	}

	out, err := PadBytesToBlockSize(data, blockSize, padByte)
	if err != nil {
		return "", err
	}

	return BytesToHex(out), nil
}

// PadHexToLength is the hex form of PadBytesToLength. An empty padHex selects PKCS#7.
func PadHexToLength(s string, totalLength int, appendOnTail bool, padHex string) (string, error) {
	data, err := HexToBytes(s)
	if err != nil {
		return "", err
	}
	padByte, err := parsePadHex(padHex)
	if err != nil {
		return "", err
	}

	out, err := PadBytesToLength(data, totalLength, appendOnTail, padByte)
	if err != nil {
		return "", err
	}

	return BytesToHex(out), nil
}

func pad(data []byte, shortBy int, onTail bool, padByte int) ([]byte, error) {
	if shortBy == 0 {
		return bytes.Clone(data), nil
	}

	var v byte
	switch {
	case padByte == PKCS7:
		if shortBy > 0xFF {
			return nil, fmt.Errorf("%w: PKCS#7 padding length %d exceeds 255", ErrInvalidInput, shortBy)
		}
		v = byte(shortBy)
	case padByte < 0 || padByte > 0xFF:
		return nil, fmt.Errorf("%w: pad byte %d out of range", ErrInvalidInput, padByte)
	default:
		v = byte(padByte)
	}

	filler := bytes.Repeat([]byte{v}, shortBy)
	out := make([]byte, 0, len(data)+shortBy)
	if onTail {
		out = append(out, data...)
		return append(out, filler...), nil
	}
	out = append(out, filler...)

	return append(out, data...), nil
}

func parsePadHex(s string) (int, error) {
	if cleanHex(s) == "" {
		return PKCS7, nil
	}

	b, err := HexToBytes(s)
	if err != nil {
		return 0, err
	}
	if len(b) != 1 {
		return 0, fmt.Errorf("%w: padding hex %q must be exactly one byte", ErrInvalidInput, s)
	}

	return int(b[0]), nil
}
