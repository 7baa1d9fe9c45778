// Package hexutil provides the byte level helpers used by the frame codec:
// hex encoding and decoding, big-endian number conversions with explicit target widths,
// binary string conversions, Python-like slicing, splicing, padding and the
// BCD/ASCII classification of device values.
//
// All hex output is upper-case and even-length. Hex input is trimmed, an optional
// "0x"/"0X" prefix is removed and an odd-length string is left-padded with a single '0'.
//
// Usage Example:
//
//	b, _ := hexutil.HexToBytes("0x0102")      // []byte{0x01, 0x02}
//	s := hexutil.BytesToHex(b)                // "0102"
//	v, _ := hexutil.BytesToInt[uint16](b)     // 258
//	h := hexutil.IntToHex(int16(-2), 4)       // "FFFFFFFE"
package hexutil
