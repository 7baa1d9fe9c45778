package kernel

import (
	"github.com/arloliu/go-meterkit/hexutil"
	"github.com/arloliu/go-meterkit/internal/translit"
	"github.com/arloliu/go-meterkit/internal/util"
)

// Rawfield is one decoded or encoded field occurrence: its raw bytes, a human title,
// the upper-case hex of the bytes and the string value.
//
// A Rawfield is immutable once built; the byte accessors return copies.
type Rawfield struct {
	bytes []byte
	title string
	hex   string
	value string
}

// NewRawfield creates a Rawfield from raw bytes. The bytes are copied and the hex is derived.
func NewRawfield(b []byte, title, value string) Rawfield {
	return Rawfield{
		bytes: util.CloneSlice(b, 0),
		title: title,
		hex:   hexutil.BytesToHex(b),
		value: value,
	}
}

// NewRawfieldFromHex creates a Rawfield from a hex string.
func NewRawfieldFromHex(hex, title, value string) (Rawfield, error) {
	b, err := hexutil.HexToBytes(hex)
	if err != nil {
		return Rawfield{}, err
	}

	return NewRawfield(b, title, value), nil
}

// Bytes returns a copy of the raw bytes.
func (f Rawfield) Bytes() []byte { return util.CloneSlice(f.bytes, 0) }

// Len returns the number of raw bytes.
func (f Rawfield) Len() int { return len(f.bytes) }

// Title returns the human readable title.
func (f Rawfield) Title() string { return f.title }

// Hex returns the upper-case hex of the raw bytes.
func (f Rawfield) Hex() string { return f.hex }

// Value returns the decoded or encoded value.
func (f Rawfield) Value() string { return f.value }

// ToReportField projects the field for external consumers. The code is the pinyin form of the title.
func (f Rawfield) ToReportField() ReportField {
	return ReportField{
		Name:  f.title,
		Code:  translit.Code(f.title),
		Value: f.value,
	}
}

// ReportField is the externally facing view of a Rawfield.
type ReportField struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	Value string `json:"value"`
	Alert bool   `json:"alert"`
}

// NewReportField creates a ReportField without alert.
func NewReportField(name, code, value string) ReportField {
	return ReportField{Name: name, Code: code, Value: value}
}

// ToReportFields projects every field in order.
func ToReportFields(fields []Rawfield) []ReportField {
	out := make([]ReportField, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.ToReportField())
	}

	return out
}
