package kernel

import "github.com/arloliu/go-meterkit/crc"

// ProtocolConfig describes the framing constants of one device protocol.
type ProtocolConfig interface {
	HeadTag() string
	TailTag() string
	CRCType() crc.Type
	// CRCIndex returns the start and end offsets of the CRC field.
	CRCIndex() (uint8, uint8)
	// LengthIndex returns the start and end offsets of the length field.
	LengthIndex() (uint8, uint8)
}
