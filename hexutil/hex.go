package hexutil

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/arloliu/go-meterkit/internal/util"
)

// HexToBytes decodes a hex string into bytes.
//
// The input is trimmed, an optional "0x" or "0X" prefix is stripped and an odd-length
// string is left-padded with '0' before decoding.
func HexToBytes(s string) ([]byte, error) {
	b, err := hex.DecodeString(cleanAndPadHex(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s", ErrHexParse, s, err.Error())
	}

	return b, nil
}

// BytesToHex encodes bytes into an upper-case hex string.
func BytesToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// HexToBytesSwap decodes a hex string and reverses the resulting bytes.
func HexToBytesSwap(s string) ([]byte, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return nil, err
	}
	util.ReverseInPlace(b)

	return b, nil
}

// BytesToHexSwap reverses a copy of b and encodes it into an upper-case hex string.
func BytesToHexSwap(b []byte) string {
	return BytesToHex(SwapBytes(b))
}

// SwapHex reverses the byte order of a hex string, e.g. "123456" becomes "563412".
func SwapHex(s string) (string, error) {
	b, err := HexToBytesSwap(s)
	if err != nil {
		return "", err
	}

	return BytesToHex(b), nil
}

// SwapBytes returns a reversed copy of b.
func SwapBytes(b []byte) []byte {
	out := util.CloneSlice(b, 0)
	util.ReverseInPlace(out)

	return out
}

// CutBytes returns a copy of data[start:end] with Python-like index semantics.
//
// Negative indices count from the end of data, out-of-range indices are clamped
// and an end index of 0 means "up to the end". CutBytes(data, 0, 0) returns a copy
// of the whole buffer. An empty slice is returned when the resolved range is inverted.
func CutBytes(data []byte, start, end int) []byte {
	total := len(data)
	if start == 0 && end == 0 {
		return util.CloneSlice(data, 0)
	}

	var finalStart, finalEnd int
	if start < 0 {
		finalStart = max(total+start, 0)
	} else {
		finalStart = min(start, total)
	}

	switch {
	case end < 0:
		finalEnd = max(total+end, 0)
	case end == 0:
		finalEnd = total
	default:
		finalEnd = min(end, total)
	}

	if finalStart >= finalEnd {
		return []byte{}
	}

	return util.CloneSlice(data[finalStart:finalEnd], 0)
}

// CutHex applies CutBytes to the bytes of a hex string.
func CutHex(s string, start, end int) (string, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return "", err
	}

	return BytesToHex(CutBytes(b, start, end)), nil
}

// ReplaceBytes replaces the byte range [start, end) of src with repl and returns the new slice.
//
// A non-positive end counts from the end of src. src and repl must not be empty,
// start must not be negative and the resolved range must not be inverted.
func ReplaceBytes(src []byte, start, end int, repl []byte) ([]byte, error) {
	if len(src) == 0 || len(repl) == 0 {
		return nil, fmt.Errorf("%w: replace requires non-empty source and replacement", ErrInvalidInput)
	}
	if start < 0 {
		return nil, fmt.Errorf("%w: start %d is negative", ErrInvalidRange, start)
	}

	total := len(src)
	if end > 0 && (start > end || end > total) {
		return nil, fmt.Errorf("%w: start %d, end %d, length %d", ErrInvalidRange, start, end, total)
	}

	finalStart := min(start, total)
	finalEnd := max(total+end, 0)
	if end > 0 {
		finalEnd = min(end, total)
	}
	if finalStart > finalEnd {
		return nil, fmt.Errorf("%w: start %d resolves after end %d", ErrInvalidRange, finalStart, finalEnd)
	}

	out := make([]byte, 0, total-(finalEnd-finalStart)+len(repl))
	out = append(out, src[:finalStart]...)
	out = append(out, repl...)
	out = append(out, src[finalEnd:]...)

	return out, nil
}

// ReplaceHex applies ReplaceBytes to hex strings.
func ReplaceHex(src string, start, end int, repl string) (string, error) {
	srcBytes, err := HexToBytes(src)
	if err != nil {
		return "", err
	}
	replBytes, err := HexToBytes(repl)
	if err != nil {
		return "", err
	}

	out, err := ReplaceBytes(srcBytes, start, end, replBytes)
	if err != nil {
		return "", err
	}

	return BytesToHex(out), nil
}

func cleanHex(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}

	return s
}

func cleanAndPadHex(s string) string {
	s = cleanHex(s)
	if len(s)%2 != 0 {
		return "0" + s
	}

	return s
}
