package kernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldConvertDecoder(t *testing.T) {
	require := require.New(t)

	d := FieldConvertDecoder{Title: "reading", FieldType: Uint16(0.1), Symbol: SymbolCubicMeter, Swap: true}
	f, err := d.Translate([]byte{0x39, 0x30})
	require.NoError(err)
	require.Equal("1234.5 m³", f.Value())
	require.Equal("3930", f.Hex(), "raw bytes are kept in wire order")
	require.Equal("reading", f.Title())

	d = FieldConvertDecoder{Title: "version", FieldType: StringOrBCD(), Swap: true}
	f, err = d.Translate([]byte{0x01})
	require.NoError(err)
	require.Equal("01", f.Value())

	_, err = FieldConvertDecoder{Title: "bad", FieldType: Uint32(1)}.Translate([]byte{1})
	require.ErrorIs(err, ErrValidationFailed)
	require.Contains(err.Error(), `"bad"`)
}

func TestFieldCompareDecoder(t *testing.T) {
	require := require.New(t)

	d := FieldCompareDecoder{Title: "head", Target: []byte{0xAA, 0x55}}
	f, err := d.Translate([]byte{0xAA, 0x55})
	require.NoError(err)
	require.Equal("AA55", f.Value())

	_, err = d.Translate([]byte{0xAA, 0x56})
	require.ErrorIs(err, ErrCompareFailed)

	d = FieldCompareDecoder{Title: "head", Target: []byte{0xAA, 0x55}, Swap: true}
	f, err = d.Translate([]byte{0x55, 0xAA})
	require.NoError(err)
	require.Equal("AA55", f.Value())
	require.Equal("55AA", f.Hex())
}

func TestFieldEnumDecoder(t *testing.T) {
	tests := []struct {
		description string
		decoder     FieldEnumDecoder
		input       []byte
		expected    string
		expectedErr error
	}{
		{
			description: "u8 known",
			decoder:     FieldEnumDecoder{Title: "valve", Kind: EnumUint8, Values: []EnumEntry{{Uint8Key(1), "Open"}, {Uint8Key(2), "Closed"}}},
			input:       []byte{0x02},
			expected:    "Closed",
		},
		{
			description: "u8 unknown falls back",
			decoder:     FieldEnumDecoder{Title: "valve", Kind: EnumUint8, Values: []EnumEntry{{Uint8Key(1), "Open"}, {Uint8Key(2), "Closed"}}},
			input:       []byte{0x03},
			expected:    "3",
		},
		{
			description: "u8 unknown strict",
			decoder:     FieldEnumDecoder{Title: "valve", Kind: EnumUint8, Values: []EnumEntry{{Uint8Key(1), "Open"}}, Strict: true},
			input:       []byte{0x03},
			expectedErr: ErrValidationFailed,
		},
		{
			description: "u16 little endian",
			decoder:     FieldEnumDecoder{Title: "state", Kind: EnumUint16, Values: []EnumEntry{{Uint16Key(0x0102), "ok"}}, Swap: true},
			input:       []byte{0x02, 0x01},
			expected:    "ok",
		},
		{
			description: "i16 negative fallback",
			decoder:     FieldEnumDecoder{Title: "temp", Kind: EnumInt16},
			input:       []byte{0xFF, 0xFF},
			expected:    "-1",
		},
		{
			description: "i8 key",
			decoder:     FieldEnumDecoder{Title: "signal", Kind: EnumInt8, Values: []EnumEntry{{Int8Key(-1), "none"}}},
			input:       []byte{0xFF},
			expected:    "none",
		},
		{
			description: "hex key",
			decoder:     FieldEnumDecoder{Title: "alarm", Kind: EnumHex, Values: []EnumEntry{{HexKey("0x0a0b"), "low battery"}}},
			input:       []byte{0x0A, 0x0B},
			expected:    "low battery",
		},
		{
			description: "hex fallback swapped",
			decoder:     FieldEnumDecoder{Title: "alarm", Kind: EnumHex, Swap: true},
			input:       []byte{0x0A, 0x0B},
			expected:    "0B0A",
		},
		{
			description: "wrong width",
			decoder:     FieldEnumDecoder{Title: "state", Kind: EnumUint32},
			input:       []byte{0x01},
			expectedErr: ErrValidationFailed,
		},
		{
			description: "table key of another kind",
			decoder:     FieldEnumDecoder{Title: "valve", Kind: EnumUint16, Values: []EnumEntry{{Uint8Key(1), "Open"}}},
			input:       []byte{0x00, 0x01},
			expectedErr: ErrValidationFailed,
		},
	}

	require := require.New(t)
	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		f, err := test.decoder.Translate(test.input)
		if test.expectedErr != nil {
			require.ErrorIs(err, test.expectedErr)
			continue
		}
		require.NoError(err)
		require.Equal(test.expected, f.Value())
	}
}

func TestEnumKey(t *testing.T) {
	require := require.New(t)

	require.Equal("18446744073709551615", Uint64Key(^uint64(0)).String())
	require.Equal("-9", Int64Key(-9).String())
	require.Equal("0A", HexKey("a").String())
	require.Equal(EnumInt32, Int32Key(1).Kind())
	require.NotEqual(Uint8Key(1), Int8Key(1))

	key, err := EnumInt32.Parse([]byte{0xFF, 0xFF, 0xFF, 0xFE}, false)
	require.NoError(err)
	require.Equal(Int32Key(-2), key)

	key, err = EnumUint32.Parse([]byte{0x01, 0x00, 0x00, 0x00}, true)
	require.NoError(err)
	require.Equal(Uint32Key(1), key)
}

func TestDecodingFilter(t *testing.T) {
	require := require.New(t)

	filter, err := NewDecodingFilterFromHex("FFFF", "invalid")
	require.NoError(err)
	require.True(filter.Matches([]byte{0xFF, 0xFF}))
	require.False(filter.Matches([]byte{0xFF}))
	require.True(filter.MatchesHex("ffff"))
	require.False(filter.MatchesHex("zz"))
	require.Equal("invalid", filter.Value())

	tr := filter.Wrap("pressure", FieldConvertDecoder{Title: "pressure", FieldType: Uint16(1)}.Translate)
	f, err := tr([]byte{0xFF, 0xFF})
	require.NoError(err)
	require.Equal("invalid", f.Value())

	f, err = tr([]byte{0x00, 0x10})
	require.NoError(err)
	require.Equal("16", f.Value())
}

func TestSymbol(t *testing.T) {
	require := require.New(t)

	require.Equal("", SymbolNone.Tag())
	require.Equal("m³/h", SymbolCubicMeterPerHour.Tag())
	require.Equal("℃", SymbolCelsius.String())
	require.Equal("元", SymbolYuan.Tag())
	require.Equal("", Symbol(200).Tag())
}
