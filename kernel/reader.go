package kernel

import (
	"fmt"

	"github.com/arloliu/go-meterkit/crc"
	"github.com/arloliu/go-meterkit/hexutil"
	"github.com/arloliu/go-meterkit/internal/util"
)

// crcTitle is the title of the fields recorded by CRC reads and writes.
const crcTitle = "crc"

// Reader walks an immutable frame with two cursors and collects the parsed fields.
//
// The head cursor pos moves forward from 0, the tail cursor sop moves backward from the
// frame length and is exclusive. The live region is [pos, sop) and 0 <= pos <= sop <= len
// holds after every call. A failed call leaves both cursors where they were.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	buf     []byte
	pos     int
	sop     int
	fields  []Rawfield
	current *Rawfield
}

// NewReader creates a Reader over buf. The buffer is borrowed and must not be modified while
// the Reader is in use.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf, sop: len(buf)}
}

// TotalLen returns the length of the frame.
func (r *Reader) TotalLen() int { return len(r.buf) }

// RemainingLen returns the number of bytes in the live region.
func (r *Reader) RemainingLen() int { return max(r.sop-r.pos, 0) }

// Pos returns the head cursor.
func (r *Reader) Pos() int { return r.pos }

// Sop returns the exclusive tail cursor.
func (r *Reader) Sop() int { return r.sop }

// Fields returns the fields collected so far in read order.
func (r *Reader) Fields() []Rawfield { return util.CloneSlice(r.fields, 0) }

// ReportFields projects the collected fields.
func (r *Reader) ReportFields() []ReportField { return ToReportFields(r.fields) }

// CurrentField returns the most recently recorded field.
func (r *Reader) CurrentField() (Rawfield, bool) {
	if r.current == nil {
		return Rawfield{}, false
	}

	return *r.current, true
}

// SetCurrentField records a field that was produced outside the cursor walk.
func (r *Reader) SetCurrentField(f Rawfield) {
	r.record(f)
}

// BytesBeforeTail returns the frame up to the tail cursor, i.e. [0, sop), without moving.
func (r *Reader) BytesBeforeTail() ([]byte, error) {
	if err := r.checkOverlap(); err != nil {
		return nil, err
	}

	return r.buf[:r.sop], nil
}

// ReadBytes returns a copy of the next n bytes and advances the head cursor.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if err := r.checkRemaining(n); err != nil {
		return nil, err
	}
	out := util.CloneSlice(r.buf[r.pos:r.pos+n], 0)
	r.pos += n

	return out, nil
}

// ReadBytesLE is ReadBytes with the returned copy reversed.
func (r *Reader) ReadBytesLE(n int) ([]byte, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	util.ReverseInPlace(b)

	return b, nil
}

// ReadRemaining returns a copy of the live region and collapses the head cursor onto the tail.
func (r *Reader) ReadRemaining() ([]byte, error) {
	if err := r.checkOverlap(); err != nil {
		return nil, err
	}
	out := util.CloneSlice(r.buf[r.pos:r.sop], 0)
	r.pos = r.sop

	return out, nil
}

// ReadAndTranslateHead translates the next n bytes, records the field and advances the head cursor.
func (r *Reader) ReadAndTranslateHead(n int, translate Translator) error {
	if err := r.checkRemaining(n); err != nil {
		return err
	}

	f, err := translate(r.buf[r.pos : r.pos+n])
	if err != nil {
		return err
	}
	r.record(f)
	r.pos += n

	return nil
}

// ReadAndTranslateTail translates the last n bytes of the live region, records the field
// and moves the tail cursor back.
func (r *Reader) ReadAndTranslateTail(n int, translate Translator) error {
	if err := r.checkRemaining(n); err != nil {
		return err
	}
	if err := r.checkOverlap(); err != nil {
		return err
	}

	f, err := translate(r.buf[r.sop-n : r.sop])
	if err != nil {
		return err
	}
	r.record(f)
	r.sop -= n

	return nil
}

// ReadAndTranslateRemaining translates the whole live region and collapses the head cursor onto the tail.
func (r *Reader) ReadAndTranslateRemaining(translate Translator) error {
	if err := r.checkOverlap(); err != nil {
		return err
	}

	f, err := translate(r.buf[r.pos:r.sop])
	if err != nil {
		return err
	}
	r.record(f)
	r.pos = r.sop

	return nil
}

// ReadAndTranslateCRC verifies a big-endian CRC trailer of n bytes.
//
// The trailer is the last n bytes of the live region. The CRC is computed over
// [start, end) of the whole frame, where a negative end counts from the frame length.
// On a match a field titled "crc" is recorded and the tail cursor moves back by n;
// on a mismatch a crc.MismatchError is returned and nothing changes.
func (r *Reader) ReadAndTranslateCRC(n int, crcType crc.Type, start, end int) error {
	return r.readCRC(n, crcType, start, end, false)
}

// ReadAndTranslateCRCLE is ReadAndTranslateCRC for a little-endian trailer.
func (r *Reader) ReadAndTranslateCRCLE(n int, crcType crc.Type, start, end int) error {
	return r.readCRC(n, crcType, start, end, true)
}

func (r *Reader) readCRC(n int, crcType crc.Type, start, end int, swap bool) error {
	if err := r.checkRemaining(n); err != nil {
		return err
	}
	if err := r.checkOverlap(); err != nil {
		return err
	}

	trailer := r.buf[r.sop-n : r.sop]
	data, err := r.ReadByIndex(start, end)
	if err != nil {
		return err
	}
	if err := crc.Verify(crcType, data, trailer, swap); err != nil {
		return err
	}

	r.record(NewRawfield(trailer, crcTitle, hexutil.BytesToHex(trailer)))
	r.sop -= n

	return nil
}

// ReadByIndex returns the frame bytes [start, end) without moving the cursors.
// A negative end counts from the frame length. The returned slice aliases the frame.
func (r *Reader) ReadByIndex(start, end int) ([]byte, error) {
	total := len(r.buf)
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

	return r.buf[start:resolved], nil
}

// CheckCRC hands two independently addressed ranges of the frame to checker: the data
// range [start, end) and the CRC range [crcStart, crcEnd). Negative ends count from the
// frame length. The cursors never move.
func (r *Reader) CheckCRC(start, end, crcStart, crcEnd int, checker func(data, crcBytes []byte) error) error {
	data, err := r.ReadByIndex(start, end)
	if err != nil {
		return err
	}
	crcBytes, err := r.ReadByIndex(crcStart, crcEnd)
	if err != nil {
		return err
	}

	return checker(data, crcBytes)
}

func (r *Reader) record(f Rawfield) {
	r.fields = append(r.fields, f)
	r.current = &f
}

func (r *Reader) checkRemaining(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative read length %d", ErrValidationFailed, n)
	}
	if available := r.RemainingLen(); available < n {
		return &InputTooShortError{Needed: n, Available: available}
	}

	return nil
}

func (r *Reader) checkOverlap() error {
	if r.pos > r.sop {
		return fmt.Errorf("%w: reader cursors overlapped", ErrValidationFailed)
	}

	return nil
}
