// Package timeutil converts the BCD timestamps found in meter frames into readable strings.
//
// Meters send clocks as packed BCD, either with a two digit year (yymmddHHmmss) or with the
// full year (20yymmddHHmmss). Convert accepts both forms and renders them in one of the
// Layout formats.
package timeutil

import (
	"fmt"
	"time"

	"github.com/arloliu/go-meterkit/hexutil"
)

// Layout is an output format of Convert and Now.
type Layout uint8

const (
	Year                   Layout = iota // yyyy
	YearMonth                            // yyyy-MM
	YearMonthDay                         // yyyy-MM-dd
	YearMonthDayHour                     // yyyy-MM-dd HH
	YearMonthDayHourMin                  // yyyy-MM-dd HH:mm
	YearMonthDayHourMinSec               // yyyy-MM-dd HH:mm:ss
	HourMinSec                           // HH:mm:ss
	YyyyMMddHHmmss                       // yyyyMMddHHmmss
	YyyyMMdd                             // yyyyMMdd
	HHmmss                               // HHmmss
	YyMMddHHmmss                         // yyMMddHHmmss
	YyMMdd                               // yyMMdd
)

const yearPrefix = "20"

type layoutDef struct {
	digits int
	dated  bool
	goFmt  string
	render func(d string) string
}

var layouts = [...]layoutDef{
	Year:      {2, true, "2006", func(d string) string { return yearPrefix + d[0:2] }},
	YearMonth: {4, true, "2006-01", func(d string) string { return yearPrefix + d[0:2] + "-" + d[2:4] }},
	YearMonthDay: {6, true, "2006-01-02", func(d string) string {
		return yearPrefix + d[0:2] + "-" + d[2:4] + "-" + d[4:6]
	}},
	YearMonthDayHour: {8, true, "2006-01-02 15", func(d string) string {
		return yearPrefix + d[0:2] + "-" + d[2:4] + "-" + d[4:6] + " " + d[6:8]
	}},
	YearMonthDayHourMin: {10, true, "2006-01-02 15:04", func(d string) string {
		return yearPrefix + d[0:2] + "-" + d[2:4] + "-" + d[4:6] + " " + d[6:8] + ":" + d[8:10]
	}},
	YearMonthDayHourMinSec: {12, true, "2006-01-02 15:04:05", func(d string) string {
		return yearPrefix + d[0:2] + "-" + d[2:4] + "-" + d[4:6] + " " + d[6:8] + ":" + d[8:10] + ":" + d[10:12]
	}},
	HourMinSec:     {6, false, "15:04:05", func(d string) string { return d[0:2] + ":" + d[2:4] + ":" + d[4:6] }},
	YyyyMMddHHmmss: {12, true, "20060102150405", func(d string) string { return yearPrefix + d[0:12] }},
	YyyyMMdd:       {6, true, "20060102", func(d string) string { return yearPrefix + d[0:6] }},
	HHmmss:         {6, false, "150405", func(d string) string { return d[0:6] }},
	YyMMddHHmmss:   {12, true, "060102150405", func(d string) string { return d[0:12] }},
	YyMMdd:         {6, true, "060102", func(d string) string { return d[0:6] }},
}

func (l Layout) def() (layoutDef, error) {
	if int(l) >= len(layouts) {
		return layoutDef{}, fmt.Errorf("%w: unknown layout %d", hexutil.ErrInvalidInput, l)
	}

	return layouts[l], nil
}

// Convert renders the BCD timestamp bcd in layout.
//
// A leading "20" century is dropped from dated timestamps when the remaining digits still
// cover the layout. Input too short for the layout is returned as its plain digits.
// Non-BCD input fails with hexutil.ErrNotBCD.
func Convert(bcd []byte, layout Layout) (string, error) {
	def, err := layout.def()
	if err != nil {
		return "", err
	}

	digits := hexutil.BytesToHex(bcd)
	if err := hexutil.EnsureBCD(digits); err != nil {
		return "", err
	}

	if def.dated && len(digits) >= def.digits+len(yearPrefix) && digits[:len(yearPrefix)] == yearPrefix {
		digits = digits[len(yearPrefix):]
	}
	if len(digits) < def.digits {
		return digits, nil
	}

	return def.render(digits), nil
}

// Format renders t in layout.
func Format(t time.Time, layout Layout) (string, error) {
	def, err := layout.def()
	if err != nil {
		return "", err
	}

	return t.Format(def.goFmt), nil
}

// Now renders the local time in layout.
func Now(layout Layout) (string, error) {
	return Format(time.Now(), layout)
}

// BCD encodes t as packed BCD in a compact layout such as YyMMddHHmmss, ready to be written
// into a downstream frame.
func BCD(t time.Time, layout Layout) ([]byte, error) {
	s, err := Format(t, layout)
	if err != nil {
		return nil, err
	}
	if err := hexutil.EnsureBCD(s); err != nil {
		return nil, fmt.Errorf("%w: layout %d is not compact", hexutil.ErrInvalidInput, layout)
	}

	return hexutil.HexToBytes(s)
}
