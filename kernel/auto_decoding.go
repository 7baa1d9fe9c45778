package kernel

import "fmt"

// AutoDecodingParam describes how one inbound field is decoded.
//
// Exactly one mode is expected to be configured: a non-empty compare target (compare mode),
// a non-Empty field type (translate mode) or a non-empty enum table (enum mode). When several
// are configured they are tried in that order.
type AutoDecodingParam interface {
	// ByteLength is the field width; 0 takes the rest of the live region.
	ByteLength() int
	Title() string
	// Swap reports whether the field is little-endian on the wire.
	Swap() bool
	Symbol() Symbol
	FieldType() FieldType
	CompareTarget() []byte
	EnumKind() EnumKind
	EnumValues() []EnumEntry
}

// IsCompareMode reports whether p has a compare target.
func IsCompareMode(p AutoDecodingParam) bool { return len(p.CompareTarget()) > 0 }

// IsTranslateMode reports whether p has a non-Empty field type.
func IsTranslateMode(p AutoDecodingParam) bool { return !p.FieldType().IsEmpty() }

// IsEnumMode reports whether p has an enum table.
func IsEnumMode(p AutoDecodingParam) bool { return len(p.EnumValues()) > 0 }

// Translate decodes b with the mode configured on p.
func Translate(p AutoDecodingParam, b []byte) (Rawfield, error) {
	switch {
	case IsCompareMode(p):
		return FieldCompareDecoder{Title: p.Title(), Target: p.CompareTarget(), Swap: p.Swap()}.Translate(b)
	case IsTranslateMode(p):
		return FieldConvertDecoder{Title: p.Title(), FieldType: p.FieldType(), Symbol: p.Symbol(), Swap: p.Swap()}.Translate(b)
	case IsEnumMode(p):
		return FieldEnumDecoder{Title: p.Title(), Kind: p.EnumKind(), Values: p.EnumValues(), Swap: p.Swap()}.Translate(b)
	default:
		return Rawfield{}, fmt.Errorf("%w: field %q", ErrNoDecodeMode, p.Title())
	}
}

// TranslatorFor returns a Translator bound to p.
func TranslatorFor(p AutoDecodingParam) Translator {
	return func(b []byte) (Rawfield, error) { return Translate(p, b) }
}

// AutoDecoding is an ordered set of decoding definitions, typically one per protocol message.
type AutoDecoding interface {
	Variants() []AutoDecodingParam
}

// AutoDecode reads every definition of set from the head of r in order.
// It stops at the first failure; fields decoded before it stay recorded in r.
func AutoDecode(set AutoDecoding, r *Reader) error {
	for _, p := range set.Variants() {
		var err error
		if n := p.ByteLength(); n > 0 {
			err = r.ReadAndTranslateHead(n, TranslatorFor(p))
		} else {
			err = r.ReadAndTranslateRemaining(TranslatorFor(p))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// DecodingSet is a slice based AutoDecoding.
type DecodingSet []AutoDecodingParam

// Variants implements AutoDecoding.
func (s DecodingSet) Variants() []AutoDecodingParam { return s }

// DecodeDef is a plain AutoDecodingParam. Set one of Type, Target or Table.
// The enum kind is taken from the keys of Table.
type DecodeDef struct {
	Name   string
	Len    int
	LE     bool
	Unit   Symbol
	Type   FieldType
	Target []byte
	Table  []EnumEntry
}

var _ AutoDecodingParam = DecodeDef{}

func (d DecodeDef) ByteLength() int         { return d.Len }
func (d DecodeDef) Title() string           { return d.Name }
func (d DecodeDef) Swap() bool              { return d.LE }
func (d DecodeDef) Symbol() Symbol          { return d.Unit }
func (d DecodeDef) FieldType() FieldType    { return d.Type }
func (d DecodeDef) CompareTarget() []byte   { return d.Target }
func (d DecodeDef) EnumValues() []EnumEntry { return d.Table }

// EnumKind returns the kind of the first Table key, EnumUint8 for an empty table.
func (d DecodeDef) EnumKind() EnumKind {
	if len(d.Table) == 0 {
		return EnumUint8
	}

	return d.Table[0].Key.Kind()
}
