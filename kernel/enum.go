package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/go-meterkit/hexutil"
)

// EnumKind is the wire representation of an enum key.
type EnumKind uint8

const (
	EnumUint8 EnumKind = iota
	EnumInt8
	EnumUint16
	EnumInt16
	EnumUint32
	EnumInt32
	EnumUint64
	EnumInt64
	// EnumHex keys are the upper-case hex of a variable number of bytes.
	EnumHex
)

// Size returns the byte width of the kind, 0 for EnumHex.
func (k EnumKind) Size() int {
	switch k {
	case EnumUint8, EnumInt8:
		return 1
	case EnumUint16, EnumInt16:
		return 2
	case EnumUint32, EnumInt32:
		return 4
	case EnumUint64, EnumInt64:
		return 8
	default:
		return 0
	}
}

func (k EnumKind) signed() bool {
	return k == EnumInt8 || k == EnumInt16 || k == EnumInt32 || k == EnumInt64
}

// String returns the name of the kind.
func (k EnumKind) String() string {
	switch k {
	case EnumUint8:
		return "u8"
	case EnumInt8:
		return "i8"
	case EnumUint16:
		return "u16"
	case EnumInt16:
		return "i16"
	case EnumUint32:
		return "u32"
	case EnumInt32:
		return "i32"
	case EnumUint64:
		return "u64"
	case EnumInt64:
		return "i64"
	case EnumHex:
		return "hex"
	default:
		return "unknown"
	}
}

// Parse converts wire bytes into a key. Multi-byte keys are read little-endian when swap is set.
func (k EnumKind) Parse(b []byte, swap bool) (EnumKey, error) {
	input := swapped(b, swap)
	if k == EnumHex {
		return EnumKey{kind: EnumHex, hex: hexutil.BytesToHex(input)}, nil
	}

	size := k.Size()
	if size == 0 {
		return EnumKey{}, fmt.Errorf("%w: unknown enum kind %d", ErrValidationFailed, k)
	}
	if len(input) != size {
		return EnumKey{}, fmt.Errorf("%w: invalid byte length for %s, expected %d, got %d",
			ErrValidationFailed, k, size, len(input))
	}

	var bits uint64
	for _, v := range input {
		bits = bits<<8 | uint64(v)
	}
	if k.signed() {
		shift := 64 - size*8
		bits = uint64(int64(bits<<shift) >> shift) //nolint:gosec
	}

	return EnumKey{kind: k, bits: bits}, nil
}

// EnumKey is a comparable enum table key of one EnumKind.
type EnumKey struct {
	kind EnumKind
	bits uint64
	hex  string
}

// Uint8Key returns an EnumUint8 key.
func Uint8Key(v uint8) EnumKey { return EnumKey{kind: EnumUint8, bits: uint64(v)} }

// Int8Key returns an EnumInt8 key.
func Int8Key(v int8) EnumKey { return EnumKey{kind: EnumInt8, bits: uint64(int64(v))} } //nolint:gosec

// Uint16Key returns an EnumUint16 key.
func Uint16Key(v uint16) EnumKey { return EnumKey{kind: EnumUint16, bits: uint64(v)} }

// Int16Key returns an EnumInt16 key.
func Int16Key(v int16) EnumKey { return EnumKey{kind: EnumInt16, bits: uint64(int64(v))} } //nolint:gosec

// Uint32Key returns an EnumUint32 key.
func Uint32Key(v uint32) EnumKey { return EnumKey{kind: EnumUint32, bits: uint64(v)} }

// Int32Key returns an EnumInt32 key.
func Int32Key(v int32) EnumKey { return EnumKey{kind: EnumInt32, bits: uint64(int64(v))} } //nolint:gosec

// Uint64Key returns an EnumUint64 key.
func Uint64Key(v uint64) EnumKey { return EnumKey{kind: EnumUint64, bits: v} }

// Int64Key returns an EnumInt64 key.
func Int64Key(v int64) EnumKey { return EnumKey{kind: EnumInt64, bits: uint64(v)} } //nolint:gosec

// HexKey returns an EnumHex key. The hex is normalized to upper-case without prefix.
func HexKey(hex string) EnumKey {
	s := strings.TrimSpace(hex)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}

	return EnumKey{kind: EnumHex, hex: strings.ToUpper(s)}
}

// Kind returns the kind of the key.
func (k EnumKey) Kind() EnumKind { return k.kind }

// String returns the decimal form of an integer key or the hex of an EnumHex key.
func (k EnumKey) String() string {
	switch {
	case k.kind == EnumHex:
		return k.hex
	case k.kind.signed():
		return strconv.FormatInt(int64(k.bits), 10) //nolint:gosec
	default:
		return strconv.FormatUint(k.bits, 10)
	}
}

// EnumEntry is one row of an enum table.
type EnumEntry struct {
	Key   EnumKey
	Label string
}

// FieldEnumDecoder looks a field up in an enum table.
//
// An unknown key is reported as its string form unless Strict is set,
// in which case it fails with ErrValidationFailed.
type FieldEnumDecoder struct {
	Title  string
	Kind   EnumKind
	Values []EnumEntry
	Swap   bool
	Strict bool
}

// Translate implements FieldTranslator.
// Every table key must be of Kind.
func (d FieldEnumDecoder) Translate(b []byte) (Rawfield, error) {
	for _, e := range d.Values {
		if e.Key.Kind() != d.Kind {
			return Rawfield{}, fmt.Errorf("%w: field %q: %s key %s in a %s table",
				ErrValidationFailed, d.Title, e.Key.Kind(), e.Key, d.Kind)
		}
	}

	key, err := d.Kind.Parse(b, d.Swap)
	if err != nil {
		return Rawfield{}, fmt.Errorf("field %q: %w", d.Title, err)
	}

	for _, e := range d.Values {
		if e.Key == key {
			return NewRawfield(b, d.Title, e.Label), nil
		}
	}

	if d.Strict {
		return Rawfield{}, fmt.Errorf("%w: field %q: unknown enum value %s", ErrValidationFailed, d.Title, key)
	}

	return NewRawfield(b, d.Title, key.String()), nil
}
