package kernel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-meterkit/hexutil"
)

func TestFieldTypeDecode(t *testing.T) {
	tests := []struct {
		description string
		fieldType   FieldType
		input       []byte
		expected    string
		expectedErr error
	}{
		{description: "empty", fieldType: Empty(), input: []byte{1, 2}, expected: ""},
		{description: "string or bcd", fieldType: StringOrBCD(), input: []byte{0x20, 0x24, 0xAB}, expected: "2024AB"},
		{description: "u16 unscaled", fieldType: Uint16(1), input: []byte{0x01, 0x02}, expected: "258"},
		{description: "u32 scaled", fieldType: Uint32(0.01), input: []byte{0x00, 0x00, 0x30, 0x39}, expected: "123.45"},
		{description: "u8 scale 10", fieldType: Uint8(10), input: []byte{0x07}, expected: "70"},
		{description: "i16 negative", fieldType: Int16(1), input: []byte{0xFF, 0xFE}, expected: "-2"},
		{description: "i32 negative scaled", fieldType: Int32(0.1), input: []byte{0xFF, 0xFF, 0xFF, 0xF6}, expected: "-1"},
		{description: "u64 max", fieldType: Uint64(1), input: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, expected: "18446744073709551615"},
		{description: "i8", fieldType: Int8(1), input: []byte{0x80}, expected: "-128"},
		{description: "float", fieldType: Float(), input: []byte{0x3F, 0xC0, 0x00, 0x00}, expected: "1.5"},
		{description: "double", fieldType: Double(), input: hexutil.F64ToBytes(0.1), expected: "0.1"},
		{description: "ascii", fieldType: ASCII(), input: []byte("V1.2"), expected: "V1.2"},
		{description: "wrong int length", fieldType: Uint16(1), input: []byte{1}, expectedErr: ErrValidationFailed},
		{description: "zero scale", fieldType: Uint16(0), input: []byte{0, 1}, expectedErr: ErrValidationFailed},
		{description: "wrong float length", fieldType: Float(), input: []byte{1, 2}, expectedErr: ErrValidationFailed},
		{description: "non ascii", fieldType: ASCII(), input: []byte{0xC3, 0xA9}, expectedErr: hexutil.ErrNotASCII},
	}

	require := require.New(t)
	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		s, err := test.fieldType.Decode(test.input)
		if test.expectedErr != nil {
			require.ErrorIs(err, test.expectedErr)
			continue
		}
		require.NoError(err)
		require.Equal(test.expected, s)
	}
}

func TestFieldTypeEncode(t *testing.T) {
	tests := []struct {
		description string
		fieldType   FieldType
		input       string
		expected    []byte
		expectedErr error
	}{
		{description: "empty", fieldType: Empty(), input: "anything", expected: []byte{}},
		{description: "string or bcd", fieldType: StringOrBCD(), input: "0x2024", expected: []byte{0x20, 0x24}},
		{description: "u32 scaled", fieldType: Uint32(0.01), input: "123.45", expected: []byte{0x00, 0x00, 0x30, 0x39}},
		{description: "u16 unscaled truncates", fieldType: Uint16(1), input: "258.9", expected: []byte{0x01, 0x02}},
		{description: "u8 saturates", fieldType: Uint8(1), input: "300", expected: []byte{0xFF}},
		{description: "u8 negative saturates to zero", fieldType: Uint8(1), input: "-5", expected: []byte{0x00}},
		{description: "i16 negative", fieldType: Int16(1), input: "-2", expected: []byte{0xFF, 0xFE}},
		{description: "i8 saturates low", fieldType: Int8(1), input: "-1000", expected: []byte{0x80}},
		{description: "scale 10", fieldType: Uint16(10), input: "70", expected: []byte{0x00, 0x07}},
		{description: "float", fieldType: Float(), input: "1.5", expected: []byte{0x3F, 0xC0, 0x00, 0x00}},
		{description: "double", fieldType: Double(), input: "1.5", expected: []byte{0x3F, 0xF8, 0, 0, 0, 0, 0, 0}},
		{description: "ascii", fieldType: ASCII(), input: "AB", expected: []byte{0x41, 0x42}},
		{description: "bad number", fieldType: Uint16(1), input: "abc", expectedErr: ErrValidationFailed},
		{description: "zero scale", fieldType: Uint16(0), input: "1", expectedErr: ErrValidationFailed},
		{description: "bad hex", fieldType: StringOrBCD(), input: "XYZ", expectedErr: hexutil.ErrHexParse},
		{description: "non ascii", fieldType: ASCII(), input: "é", expectedErr: hexutil.ErrNotASCII},
	}

	require := require.New(t)
	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		b, err := test.fieldType.Encode(test.input)
		if test.expectedErr != nil {
			require.ErrorIs(err, test.expectedErr)
			continue
		}
		require.NoError(err)
		require.Equal(test.expected, b)
	}
}

func TestFieldTypeRoundTrip(t *testing.T) {
	tests := []struct {
		fieldType FieldType
		value     string
	}{
		{fieldType: Uint32(0.01), value: "123.45"},
		{fieldType: Int32(0.001), value: "-12.345"},
		{fieldType: Uint16(1), value: "65535"},
		{fieldType: Int64(1), value: "-9000000000"},
		{fieldType: Float(), value: "3.25"},
		{fieldType: Double(), value: "-0.000123"},
		{fieldType: ASCII(), value: "METER-01"},
		{fieldType: StringOrBCD(), value: "20240131"},
	}

	require := require.New(t)
	for i, test := range tests {
		t.Logf("Test #%d: %s %s", i, test.fieldType, test.value)
		b, err := test.fieldType.Encode(test.value)
		require.NoError(err)
		s, err := test.fieldType.Decode(b)
		require.NoError(err)
		require.Equal(test.value, s)
	}
}

func TestFieldTypeEquality(t *testing.T) {
	require := require.New(t)

	require.True(Uint16(1).Equal(Uint16(0.01)))
	require.False(Uint16(1).SameAs(Uint16(0.01)))
	require.True(Uint16(0.01).SameAs(Uint16(0.01)))
	require.False(Uint16(1).Equal(Int16(1)))
	require.Equal(Empty(), FieldType{})
	require.True(FieldType{}.IsEmpty())

	require.Equal(2, Int16(1).Size())
	require.Equal(0, ASCII().Size())
	require.True(Double().IsNumeric())
	require.False(Double().IsInteger())
	require.Equal("U16(0.01)", Uint16(0.01).String())
	require.Equal("Ascii", ASCII().String())
}
