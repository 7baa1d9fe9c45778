package device

import (
	"github.com/arloliu/go-meterkit/hexutil"
	"github.com/arloliu/go-meterkit/internal/util"
)

// TransportPair is a transport value kept both as hex and as bytes.
type TransportPair struct {
	hex   string
	bytes []byte
}

// NewTransportPair creates a pair from both representations. They are not cross-checked.
func NewTransportPair(hex string, b []byte) TransportPair {
	return TransportPair{hex: hex, bytes: util.CloneSlice(b, 0)}
}

// NewTransportPairFromHex creates a pair by decoding hex.
func NewTransportPairFromHex(hex string) (TransportPair, error) {
	b, err := hexutil.HexToBytes(hex)
	if err != nil {
		return TransportPair{}, err
	}

	return TransportPair{hex: hex, bytes: b}, nil
}

// NewTransportPairFromBytes creates a pair by encoding b as upper-case hex.
func NewTransportPairFromBytes(b []byte) TransportPair {
	return TransportPair{hex: hexutil.BytesToHex(b), bytes: util.CloneSlice(b, 0)}
}

// Hex returns the hex representation.
func (p TransportPair) Hex() string { return p.hex }

// Bytes returns a copy of the byte representation.
func (p TransportPair) Bytes() []byte { return util.CloneSlice(p.bytes, 0) }

// IsZero reports whether the pair carries neither hex nor bytes.
func (p TransportPair) IsZero() bool { return p.hex == "" && len(p.bytes) == 0 }
