package kernel

import (
	"bytes"
	"fmt"

	"github.com/arloliu/go-meterkit/hexutil"
	"github.com/arloliu/go-meterkit/internal/util"
)

// Translator converts a raw byte slice into a named field. The slice must not be retained.
type Translator func(b []byte) (Rawfield, error)

// FieldTranslator is implemented by the single-field decoders.
type FieldTranslator interface {
	Translate(b []byte) (Rawfield, error)
}

// TranslatorOf adapts a FieldTranslator to a Translator.
func TranslatorOf(ft FieldTranslator) Translator {
	return ft.Translate
}

// FieldConvertDecoder decodes a field with a FieldType and appends an optional unit symbol.
type FieldConvertDecoder struct {
	Title     string
	FieldType FieldType
	Symbol    Symbol
	Swap      bool // little-endian on the wire
}

// Translate implements FieldTranslator.
func (d FieldConvertDecoder) Translate(b []byte) (Rawfield, error) {
	value, err := d.FieldType.Decode(swapped(b, d.Swap))
	if err != nil {
		return Rawfield{}, fmt.Errorf("field %q: %w", d.Title, err)
	}
	if d.Symbol != SymbolNone {
		value += " " + d.Symbol.Tag()
	}

	return NewRawfield(b, d.Title, value), nil
}

// FieldCompareDecoder requires the field to equal a fixed byte pattern, e.g. a frame head.
type FieldCompareDecoder struct {
	Title  string
	Target []byte
	Swap   bool
}

// Translate implements FieldTranslator. The value is the hex of the compared, possibly swapped, bytes.
func (d FieldCompareDecoder) Translate(b []byte) (Rawfield, error) {
	input := swapped(b, d.Swap)
	if !bytes.Equal(input, d.Target) {
		return Rawfield{}, fmt.Errorf("%w: field %q: got %X, expected %X", ErrCompareFailed, d.Title, input, d.Target)
	}

	return NewRawfield(b, d.Title, hexutil.BytesToHex(input)), nil
}

// swapped returns a copy of b, reversed when swap is set and b has more than one byte.
func swapped(b []byte, swap bool) []byte {
	return util.Reversed(b, swap && len(b) > 1)
}
