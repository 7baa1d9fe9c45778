package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/go-meterkit/hexutil"
	"github.com/arloliu/go-meterkit/mathutil"
)

// FieldKind is the primitive wire representation of a field.
type FieldKind uint8

const (
	KindEmpty FieldKind = iota
	KindStringOrBCD
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat
	KindDouble
	KindASCII
)

var kindNames = [...]string{
	KindEmpty:       "Empty",
	KindStringOrBCD: "StringOrBCD",
	KindUint8:       "U8",
	KindUint16:      "U16",
	KindUint32:      "U32",
	KindUint64:      "U64",
	KindInt8:        "I8",
	KindInt16:       "I16",
	KindInt32:       "I32",
	KindInt64:       "I64",
	KindFloat:       "Float",
	KindDouble:      "Double",
	KindASCII:       "Ascii",
}

// String returns the name of the kind.
func (k FieldKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Unknown"
}

// scalePrecision is the number of decimal places kept when a scale factor is applied or removed.
const scalePrecision = 6

// FieldType describes how a field is represented on the wire and how it converts to and from
// its string form. Integer kinds carry a scale factor: the real value is the raw integer
// multiplied by the scale, and a scale of 1 leaves the integer untouched.
//
// The zero value is the Empty type. Go's == compares kind and scale, Equal compares the
// kind only.
type FieldType struct {
	kind  FieldKind
	scale float64
}

// Empty returns the type of a field without a value.
func Empty() FieldType { return FieldType{kind: KindEmpty} }

// StringOrBCD returns the type of a field presented as the hex of its raw bytes.
func StringOrBCD() FieldType { return FieldType{kind: KindStringOrBCD} }

// Uint8 returns a 1-byte unsigned integer type with the given scale.
func Uint8(scale float64) FieldType { return FieldType{kind: KindUint8, scale: scale} }

// Uint16 returns a 2-byte unsigned integer type with the given scale.
func Uint16(scale float64) FieldType { return FieldType{kind: KindUint16, scale: scale} }

// Uint32 returns a 4-byte unsigned integer type with the given scale.
func Uint32(scale float64) FieldType { return FieldType{kind: KindUint32, scale: scale} }

// Uint64 returns an 8-byte unsigned integer type with the given scale.
func Uint64(scale float64) FieldType { return FieldType{kind: KindUint64, scale: scale} }

// Int8 returns a 1-byte signed integer type with the given scale.
func Int8(scale float64) FieldType { return FieldType{kind: KindInt8, scale: scale} }

// Int16 returns a 2-byte signed integer type with the given scale.
func Int16(scale float64) FieldType { return FieldType{kind: KindInt16, scale: scale} }

// Int32 returns a 4-byte signed integer type with the given scale.
func Int32(scale float64) FieldType { return FieldType{kind: KindInt32, scale: scale} }

// Int64 returns an 8-byte signed integer type with the given scale.
func Int64(scale float64) FieldType { return FieldType{kind: KindInt64, scale: scale} }

// Float returns the 4-byte IEEE-754 type.
func Float() FieldType { return FieldType{kind: KindFloat} }

// Double returns the 8-byte IEEE-754 type.
func Double() FieldType { return FieldType{kind: KindDouble} }

// ASCII returns the type of a field carrying ASCII text.
func ASCII() FieldType { return FieldType{kind: KindASCII} }

// Kind returns the wire representation.
func (t FieldType) Kind() FieldKind { return t.kind }

// Scale returns the scale factor of an integer type, 0 for the other kinds.
func (t FieldType) Scale() float64 { return t.scale }

// Size returns the fixed byte width of the type, or 0 when the width is variable.
func (t FieldType) Size() int {
	switch t.kind {
	case KindUint8, KindInt8:
		return 1
	case KindUint16, KindInt16:
		return 2
	case KindUint32, KindInt32, KindFloat:
		return 4
	case KindUint64, KindInt64, KindDouble:
		return 8
	default:
		return 0
	}
}

// IsEmpty reports whether t is the Empty type.
func (t FieldType) IsEmpty() bool { return t.kind == KindEmpty }

// IsInteger reports whether t is one of the scaled integer kinds.
func (t FieldType) IsInteger() bool { return t.kind >= KindUint8 && t.kind <= KindInt64 }

// IsNumeric reports whether t is an integer or floating point kind.
func (t FieldType) IsNumeric() bool { return t.IsInteger() || t.kind == KindFloat || t.kind == KindDouble }

// Equal reports whether t and other have the same kind. The scale is not compared.
func (t FieldType) Equal(other FieldType) bool { return t.kind == other.kind }

// SameAs reports whether t and other have the same kind and the same scale.
func (t FieldType) SameAs(other FieldType) bool { return t == other }

// String returns a readable form such as "U16(0.01)".
func (t FieldType) String() string {
	if t.IsInteger() {
		return fmt.Sprintf("%s(%s)", t.kind, strconv.FormatFloat(t.scale, 'f', -1, 64))
	}

	return t.kind.String()
}

// Decode converts big-endian wire bytes into the string form of the value.
func (t FieldType) Decode(b []byte) (string, error) {
	switch t.kind {
	case KindEmpty:
		return "", nil
	case KindStringOrBCD:
		return hexutil.BytesToHex(b), nil
	case KindUint8:
		return decodeInt[uint8](b, t.scale)
	case KindUint16:
		return decodeInt[uint16](b, t.scale)
	case KindUint32:
		return decodeInt[uint32](b, t.scale)
	case KindUint64:
		return decodeInt[uint64](b, t.scale)
	case KindInt8:
		return decodeInt[int8](b, t.scale)
	case KindInt16:
		return decodeInt[int16](b, t.scale)
	case KindInt32:
		return decodeInt[int32](b, t.scale)
	case KindInt64:
		return decodeInt[int64](b, t.scale)
	case KindFloat:
		v, err := hexutil.BytesToF32(b)
		if err != nil {
			return "", fmt.Errorf("%w: Float: %w", ErrValidationFailed, err)
		}

		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case KindDouble:
		v, err := hexutil.BytesToF64(b)
		if err != nil {
			return "", fmt.Errorf("%w: Double: %w", ErrValidationFailed, err)
		}

		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case KindASCII:
		if !hexutil.IsASCII(b) {
			return "", fmt.Errorf("%w: input bytes %X", hexutil.ErrNotASCII, b)
		}

		return string(b), nil
	default:
		return "", fmt.Errorf("%w: unknown field kind %d", ErrValidationFailed, t.kind)
	}
}

// Encode converts the string form of a value into big-endian wire bytes.
func (t FieldType) Encode(input string) ([]byte, error) {
	switch t.kind {
	case KindEmpty:
		return []byte{}, nil
	case KindStringOrBCD:
		return hexutil.HexToBytes(input)
	case KindUint8:
		return encodeInt[uint8](input, t.scale, 0, math.MaxUint8)
	case KindUint16:
		return encodeInt[uint16](input, t.scale, 0, math.MaxUint16)
	case KindUint32:
		return encodeInt[uint32](input, t.scale, 0, math.MaxUint32)
	case KindUint64:
		return encodeInt[uint64](input, t.scale, 0, math.MaxUint64)
	case KindInt8:
		return encodeInt[int8](input, t.scale, math.MinInt8, math.MaxInt8)
	case KindInt16:
		return encodeInt[int16](input, t.scale, math.MinInt16, math.MaxInt16)
	case KindInt32:
		return encodeInt[int32](input, t.scale, math.MinInt32, math.MaxInt32)
	case KindInt64:
		return encodeInt[int64](input, t.scale, math.MinInt64, math.MaxInt64)
	case KindFloat:
		v, err := strconv.ParseFloat(strings.TrimSpace(input), 32)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse %q as float32", ErrValidationFailed, input)
		}

		return hexutil.F32ToBytes(float32(v)), nil
	case KindDouble:
		v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse %q as float64", ErrValidationFailed, input)
		}

		return hexutil.F64ToBytes(v), nil
	case KindASCII:
		if !hexutil.IsASCII([]byte(input)) {
			return nil, fmt.Errorf("%w: input contains non-ASCII characters", hexutil.ErrNotASCII)
		}

		return []byte(input), nil
	default:
		return nil, fmt.Errorf("%w: unknown field kind %d", ErrValidationFailed, t.kind)
	}
}

func decodeInt[T hexutil.Integer](b []byte, scale float64) (string, error) {
	v, err := hexutil.BytesToInt[T](b)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	switch scale {
	case 0:
		return "", fmt.Errorf("%w: scale factor cannot be zero", ErrValidationFailed)
	case 1:
		return fmt.Sprintf("%d", v), nil
	}

	scaled, err := mathutil.Multiply(scalePrecision, mathutil.HalfUp, float64(v), scale)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	return strconv.FormatFloat(scaled, 'f', -1, 64), nil
}

func encodeInt[T hexutil.Integer](input string, scale float64, lo, hi T) ([]byte, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %q as a number", ErrValidationFailed, input)
	}

	switch scale {
	case 0:
		return nil, fmt.Errorf("%w: scale factor cannot be zero", ErrValidationFailed)
	case 1:
	default:
		v, err = mathutil.Divide(v, scale, scalePrecision, mathutil.HalfUp)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
		}
	}

	return hexutil.IntToBytes(saturate(v, lo, hi)), nil
}

// saturate truncates v toward zero and clamps it into [lo, hi]. NaN becomes 0.
func saturate[T hexutil.Integer](v float64, lo, hi T) T {
	switch {
	case math.IsNaN(v):
		return 0
	case v <= float64(lo):
		return lo
	case v >= float64(hi):
		return hi
	}

	return T(v)
}
