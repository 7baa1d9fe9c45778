package kernel

import (
	"fmt"
	"slices"
	"sort"

	"github.com/arloliu/go-meterkit/crc"
	"github.com/arloliu/go-meterkit/hexutil"
	"github.com/arloliu/go-meterkit/internal/util"
)

// Writer builds an outbound frame field by field.
//
// The buffer only grows. Placeholders reserve zero-filled ranges that are overwritten
// exactly once by RewritePlaceholder or WriteCRC; the backfilled field is inserted at the
// position the placeholder was created, so the field list mirrors the wire order.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	buf          []byte
	fields       []Rawfield
	placeholders map[string]PlaceHolder
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer {
	return &Writer{placeholders: make(map[string]PlaceHolder)}
}

// Len returns the current buffer length.
func (w *Writer) Len() int { return len(w.buf) }

// Capacity returns the capacity of the underlying buffer.
func (w *Writer) Capacity() int { return cap(w.buf) }

// Buffer returns a copy of the frame bytes.
func (w *Writer) Buffer() []byte { return util.CloneSlice(w.buf, 0) }

// FullHex returns the upper-case hex of the frame.
func (w *Writer) FullHex() string { return hexutil.BytesToHex(w.buf) }

// Fields returns the recorded fields in wire order.
func (w *Writer) Fields() []Rawfield { return util.CloneSlice(w.fields, 0) }

// ReportFields projects the recorded fields.
func (w *Writer) ReportFields() []ReportField { return ToReportFields(w.fields) }

// PlaceholderTags returns the tags of the pending placeholders, sorted.
func (w *Writer) PlaceholderTags() []string {
	tags := make([]string, 0, len(w.placeholders))
	for tag := range w.placeholders {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return tags
}

// Placeholder returns the pending placeholder of tag.
func (w *Writer) Placeholder(tag string) (PlaceHolder, bool) {
	p, ok := w.placeholders[tag]
	return p, ok
}

// Write appends the field produced by build.
func (w *Writer) Write(build func() (Rawfield, error)) error {
	f, err := build()
	if err != nil {
		return err
	}
	w.buf = append(w.buf, f.bytes...)
	w.fields = append(w.fields, f)

	return nil
}

// WriteBytes appends raw bytes with an explicit display value.
func (w *Writer) WriteBytes(title string, data []byte, value string) {
	w.buf = append(w.buf, data...)
	w.fields = append(w.fields, NewRawfield(data, title, value))
}

// WriteField encodes value with ft and appends it.
func (w *Writer) WriteField(title string, ft FieldType, value string) error {
	return w.Write(func() (Rawfield, error) {
		b, err := ft.Encode(value)
		if err != nil {
			return Rawfield{}, fmt.Errorf("field %q: %w", title, err)
		}

		return NewRawfield(b, title, value), nil
	})
}

// WritePlaceholder reserves n zero bytes at the end of the buffer under tag.
// Reserving an existing tag replaces the earlier reservation, whose bytes stay zero.
func (w *Writer) WritePlaceholder(tag string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: placeholder byte length must be greater than 0, got %d", ErrValidationFailed, n)
	}

	start := len(w.buf)
	w.placeholders[tag] = PlaceHolder{tag: tag, pos: len(w.fields), start: start, end: start + n}
	w.buf = append(w.buf, make([]byte, n)...)

	return nil
}

// RewritePlaceholder overwrites the range reserved under tag with b and inserts a field at the
// reserved position. The length of b must equal the reservation. The placeholder is consumed
// only on success; a failed call leaves the buffer and the placeholder untouched.
func (w *Writer) RewritePlaceholder(tag, title string, b []byte, value string) error {
	p, ok := w.placeholders[tag]
	if !ok {
		return fmt.Errorf("%w: tag %q", ErrPlaceholderNotFound, tag)
	}
	if len(b) != p.Capacity() {
		return fmt.Errorf("%w: data length mismatch for placeholder %q, expected %d bytes, got %d",
			ErrValidationFailed, tag, p.Capacity(), len(b))
	}

	delete(w.placeholders, tag)
	copy(w.buf[p.start:p.end], b)
	w.fields = slices.Insert(w.fields, min(p.pos, len(w.fields)), NewRawfield(b, title, value))

	// later placeholders now insert one position further
	for k, other := range w.placeholders {
		if other.pos >= p.pos && other.start >= p.end {
			other.pos++
			w.placeholders[k] = other
		}
	}

	return nil
}

// WriteCRC computes the CRC of [start, end) of the buffer and backfills it into the
// placeholder tag as a field titled "crc". A negative end counts from the current length.
// The CRC is written big-endian, or little-endian when swap is set.
func (w *Writer) WriteCRC(crcType crc.Type, start, end int, tag string, swap bool) error {
	data, err := w.slice(start, end)
	if err != nil {
		return err
	}

	b := crc.CalculateBytes(crcType, data, swap)

	return w.RewritePlaceholder(tag, crcTitle, b, hexutil.BytesToHex(b))
}

func (w *Writer) slice(start, end int) ([]byte, error) {
	total := len(w.buf)
	resolved := end
	if end < 0 {
		resolved = total + end
		if resolved < 0 {
			return nil, fmt.Errorf("%w: end index %d is out of bounds", ErrValidationFailed, end)
		}
	}
	if resolved > total {
		return nil, fmt.Errorf("%w: end index %d (resolved to %d) is out of bounds (%d)",
			ErrValidationFailed, end, resolved, total)
	}
	if start < 0 || start > resolved {
		return nil, fmt.Errorf("%w: start index %d is greater than end index %d", ErrValidationFailed, start, resolved)
	}

	return w.buf[start:resolved], nil
}
