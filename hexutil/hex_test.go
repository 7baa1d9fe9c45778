package hexutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexToBytes(t *testing.T) {
	tests := []struct {
		description string
		input       string
		expected    []byte
		expectedErr error
	}{
		{description: "plain", input: "0102ABcd", expected: []byte{0x01, 0x02, 0xAB, 0xCD}},
		{description: "prefix and spaces", input: "  0x0102 ", expected: []byte{0x01, 0x02}},
		{description: "upper prefix", input: "0XFF", expected: []byte{0xFF}},
		{description: "odd length", input: "123", expected: []byte{0x01, 0x23}},
		{description: "invalid char", input: "12G4", expectedErr: ErrHexParse},
	}

	require := require.New(t)
	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		b, err := HexToBytes(test.input)
		if test.expectedErr != nil {
			require.ErrorIs(err, test.expectedErr)
			continue
		}
		require.NoError(err)
		require.Equal(test.expected, b)
	}
}

func TestHexRoundTrip(t *testing.T) {
	require := require.New(t)

	for _, b := range [][]byte{{0x00}, {0xAB, 0xCD, 0xEF}, {0x00, 0x01, 0x7F, 0x80, 0xFF}} {
		s := BytesToHex(b)
		require.Equal(0, len(s)%2)
		out, err := HexToBytes(s)
		require.NoError(err)
		require.Equal(b, out)
	}

	require.Equal("ABCDEF", BytesToHex([]byte{0xab, 0xcd, 0xef}))

	empty, err := HexToBytes("")
	require.NoError(err)
	require.Empty(empty)
}

func TestSwap(t *testing.T) {
	require := require.New(t)

	s, err := SwapHex("123456")
	require.NoError(err)
	require.Equal("563412", s)

	b, err := HexToBytesSwap("0102")
	require.NoError(err)
	require.Equal([]byte{0x02, 0x01}, b)

	src := []byte{1, 2, 3}
	require.Equal("030201", BytesToHexSwap(src))
	require.Equal([]byte{1, 2, 3}, src, "source must not be modified")
	require.Equal([]byte{3, 2, 1}, SwapBytes(src))

	_, err = SwapHex("zz")
	require.ErrorIs(err, ErrHexParse)
}

func TestCutBytes(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5}
	tests := []struct {
		description string
		start, end  int
		expected    []byte
	}{
		{description: "identity", start: 0, end: 0, expected: []byte{0, 1, 2, 3, 4, 5}},
		{description: "middle", start: 1, end: 3, expected: []byte{1, 2}},
		{description: "zero end means tail", start: 4, end: 0, expected: []byte{4, 5}},
		{description: "negative end", start: 0, end: -2, expected: []byte{0, 1, 2, 3}},
		{description: "negative start", start: -2, end: 0, expected: []byte{4, 5}},
		{description: "clamped end", start: 3, end: 100, expected: []byte{3, 4, 5}},
		{description: "clamped negative start", start: -100, end: 2, expected: []byte{0, 1}},
		{description: "inverted", start: 4, end: 2, expected: []byte{}},
		{description: "start beyond length", start: 10, end: 12, expected: []byte{}},
	}

	require := require.New(t)
	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		require.Equal(test.expected, CutBytes(data, test.start, test.end))
	}

	s, err := CutHex("00112233", 1, -1)
	require.NoError(err)
	require.Equal("1122", s)
}

func TestReplaceBytes(t *testing.T) {
	tests := []struct {
		description string
		src         []byte
		start, end  int
		repl        []byte
		expected    []byte
		expectedErr error
	}{
		{description: "replace middle", src: []byte{1, 2, 3, 4}, start: 1, end: 3, repl: []byte{9}, expected: []byte{1, 9, 4}},
		{description: "insert", src: []byte{1, 2}, start: 1, end: 1, repl: []byte{7, 7}, expected: []byte{1, 7, 7, 2}},
		{description: "negative end", src: []byte{1, 2, 3, 4}, start: 0, end: -1, repl: []byte{0}, expected: []byte{0, 4}},
		{description: "zero end replaces tail", src: []byte{1, 2, 3}, start: 1, end: 0, repl: []byte{5}, expected: []byte{1, 5}},
		{description: "empty source", src: []byte{}, start: 0, end: 0, repl: []byte{1}, expectedErr: ErrInvalidInput},
		{description: "empty replacement", src: []byte{1}, start: 0, end: 1, repl: nil, expectedErr: ErrInvalidInput},
		{description: "inverted", src: []byte{1, 2, 3}, start: 2, end: 1, repl: []byte{1}, expectedErr: ErrInvalidRange},
		{description: "end beyond length", src: []byte{1, 2, 3}, start: 0, end: 4, repl: []byte{1}, expectedErr: ErrInvalidRange},
		{description: "negative start", src: []byte{1, 2, 3}, start: -1, end: 2, repl: []byte{1}, expectedErr: ErrInvalidRange},
	}

	require := require.New(t)
	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		out, err := ReplaceBytes(test.src, test.start, test.end, test.repl)
		if test.expectedErr != nil {
			require.ErrorIs(err, test.expectedErr)
			continue
		}
		require.NoError(err)
		require.Equal(test.expected, out)
	}

	s, err := ReplaceHex("AABBCC", 1, 2, "0102")
	require.NoError(err)
	require.Equal("AA0102CC", s)
}
