package kernel

import (
	"fmt"
	"math"

	"github.com/arloliu/go-meterkit/hexutil"
	"github.com/arloliu/go-meterkit/internal/util"
)

// AutoEncodingParam describes how one outbound field is encoded from a parameter map.
type AutoEncodingParam interface {
	// Code is the key of the field in the parameter map.
	Code() string
	Title() string
	// ByteLength is the field width; 0 keeps the encoded length.
	ByteLength() int
	FieldType() FieldType
	DefaultValue() string
	DefaultHex() string
	// Swap reports whether the field is little-endian on the wire.
	Swap() bool
	Required() bool
}

// Input field types reported by InputFieldType.
const (
	InputString = "string"
	InputFloat  = "float"
	InputInt    = "int"
)

// InputFieldType returns the kind of input a form should offer for p.
func InputFieldType(p AutoEncodingParam) string {
	switch p.FieldType().Kind() {
	case KindStringOrBCD, KindASCII:
		return InputString
	case KindFloat, KindDouble:
		return InputFloat
	default:
		return InputInt
	}
}

// ToBytes encodes input for p.
//
// An empty input falls back to the default hex, then to the default value, and fails with
// ErrRequiredMissing for a required field without defaults. The result is fitted to the
// declared length by keeping the low-order bytes or zero-padding the high-order side,
// then reversed when p is little-endian.
func ToBytes(p AutoEncodingParam, input string) ([]byte, error) {
	var (
		b   []byte
		err error
	)

	switch {
	case input != "":
		b, err = p.FieldType().Encode(input)
	case p.DefaultHex() != "":
		b, err = hexutil.HexToBytes(p.DefaultHex())
	case p.DefaultValue() != "":
		b, err = p.FieldType().Encode(p.DefaultValue())
	case p.Required():
		return nil, fmt.Errorf("%w: field %q is required but no value provided", ErrRequiredMissing, p.Code())
	default:
		b = []byte{}
	}
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", p.Code(), err)
	}

	if want := p.ByteLength(); want > 0 && len(b) != want {
		if len(b) > want {
			b = b[len(b)-want:]
		} else {
			b = append(make([]byte, want-len(b)), b...)
		}
	}

	return util.Reversed(b, p.Swap()), nil
}

// AutoEncoding is an ordered set of encoding definitions, typically one per protocol command.
type AutoEncoding interface {
	Variants() []AutoEncodingParam
}

// AutoEncode writes every definition of set whose code is present in params.
// A missing required code fails with ErrRequiredMissing, a missing optional code is skipped.
// It returns the number of bytes written.
func AutoEncode(set AutoEncoding, params map[string]string, w *Writer) (uint16, error) {
	length := 0
	for _, p := range set.Variants() {
		input, ok := params[p.Code()]
		if !ok {
			if p.Required() {
				return 0, fmt.Errorf("%w: parameter %q not found in input params", ErrRequiredMissing, p.Code())
			}

			continue
		}

		b, err := ToBytes(p, input)
		if err != nil {
			return 0, err
		}
		w.WriteBytes(p.Title(), b, input)
		length += len(b)
	}

	if length > math.MaxUint16 {
		return 0, fmt.Errorf("%w: encoded length %d exceeds 65535", ErrValidationFailed, length)
	}

	return uint16(length), nil
}

// EncodingSet is a slice based AutoEncoding.
type EncodingSet []AutoEncodingParam

// Variants implements AutoEncoding.
func (s EncodingSet) Variants() []AutoEncodingParam { return s }

// EncodeDef is a plain AutoEncodingParam. Fields are required unless Optional is set.
type EncodeDef struct {
	Key      string
	Name     string
	Len      int
	Type     FieldType
	Default  string
	HexValue string // default hex, preferred over Default
	LE       bool
	Optional bool
	Cmd      string
}

var _ AutoEncodingParam = EncodeDef{}

func (d EncodeDef) Code() string         { return d.Key }
func (d EncodeDef) Title() string        { return d.Name }
func (d EncodeDef) ByteLength() int      { return d.Len }
func (d EncodeDef) FieldType() FieldType { return d.Type }
func (d EncodeDef) DefaultValue() string { return d.Default }
func (d EncodeDef) DefaultHex() string   { return d.HexValue }
func (d EncodeDef) Swap() bool           { return d.LE }
func (d EncodeDef) Required() bool       { return !d.Optional }

// CmdCode returns the command the field belongs to.
func (d EncodeDef) CmdCode() string { return d.Cmd }
