// Package crc computes and verifies the 16-bit checksums used by meter frames.
package crc

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/sigurn/crc16"

	"github.com/arloliu/go-meterkit/hexutil"
)

// Type is a CRC-16 algorithm: a parameter set plus an optional byte swap of the result.
// Type values are comparable.
type Type struct {
	params     crc16.Params
	swapResult bool
}

var (
	// CCITT is CRC-16/CCITT (KERMIT): poly 0x1021, reflected, init 0x0000.
	CCITT = Type{params: crc16.CRC16_KERMIT}
	// CCITTFalse is CRC-16/CCITT-FALSE: poly 0x1021, init 0xFFFF.
	CCITTFalse = Type{params: crc16.CRC16_CCITT_FALSE}
	// Modbus is CRC-16/MODBUS: poly 0x8005, reflected, init 0xFFFF.
	Modbus = Type{params: crc16.CRC16_MODBUS}
	// XModem is CRC-16/XMODEM: poly 0x1021, init 0x0000.
	XModem = Type{params: crc16.CRC16_XMODEM}
)

// Custom returns a non-reflected CCITT style CRC-16 with the given parameters.
// When swapResult is true the two bytes of the result are exchanged.
func Custom(poly, init, xorOut uint16, swapResult bool) Type {
	return Type{
		params: crc16.Params{
			Poly:   poly,
			Init:   init,
			XorOut: xorOut,
			Name:   fmt.Sprintf("CRC-16/CUSTOM(poly=0x%04X,init=0x%04X,xorout=0x%04X)", poly, init, xorOut),
		},
		swapResult: swapResult,
	}
}

// String returns the catalogue name of the algorithm.
func (t Type) String() string {
	if t.params.Name == "" {
		return "CRC-16/UNKNOWN"
	}
	if t.swapResult {
		return t.params.Name + "/SWAPPED"
	}

	return t.params.Name
}

// tables caches lookup tables by parameter set, custom types included.
var tables = xsync.NewMapOf[crc16.Params, *crc16.Table]()

func (t Type) table() *crc16.Table {
	tbl, _ := tables.LoadOrCompute(t.params, func() *crc16.Table {
		return crc16.MakeTable(t.params)
	})

	return tbl
}

// Calculate returns the CRC of data.
func Calculate(t Type, data []byte) uint16 {
	v := crc16.Checksum(data, t.table())
	if t.swapResult {
		v = bits.ReverseBytes16(v)
	}

	return v
}

// CalculateBytes returns the CRC of data as 2 big-endian bytes, or little-endian when swap is true.
func CalculateBytes(t Type, data []byte, swap bool) []byte {
	v := Calculate(t, data)
	if swap {
		return binary.LittleEndian.AppendUint16(nil, v)
	}

	return binary.BigEndian.AppendUint16(nil, v)
}

// Compare checks the on-wire CRC hex against a calculated value rendered as 2 big-endian bytes.
// The comparison ignores case.
func Compare(wireHex string, calculated uint16) error {
	expected := hexutil.IntToHex(calculated, 2)
	if !strings.EqualFold(strings.TrimSpace(wireHex), expected) {
		return &MismatchError{Expected: expected, Actual: strings.ToUpper(wireHex)}
	}

	return nil
}

// CompareBytes is Compare for on-wire bytes.
func CompareBytes(wire []byte, calculated uint16) error {
	return Compare(hexutil.BytesToHex(wire), calculated)
}

// Verify computes the CRC of data and compares it with the on-wire bytes in big-endian order,
// or little-endian when swap is true.
func Verify(t Type, data, wire []byte, swap bool) error {
	expected := hexutil.BytesToHex(CalculateBytes(t, data, swap))
	actual := hexutil.BytesToHex(wire)
	if expected != actual {
		return &MismatchError{Expected: expected, Actual: actual}
	}

	return nil
}
