package device

import (
	"sync"

	"github.com/arloliu/go-meterkit/hexutil"
)

// Field names a transport value remembered per device.
type Field uint8

const (
	FieldDeviceNo Field = iota
	FieldDeviceNoPadding
	FieldDeviceNoLength
	FieldProtocolVersion
	FieldReportType
	FieldControlField
	FieldDeviceType
	FieldFactoryCode
	FieldUpstreamCount
	FieldDownstreamCount

	fieldCount
)

var fieldNames = [fieldCount]string{
	"device_no",
	"device_no_padding",
	"device_no_length",
	"protocol_version",
	"report_type",
	"control_field",
	"device_type",
	"factory_code",
	"upstream_count",
	"downstream_count",
}

// String returns the snake case name of the field.
func (f Field) String() string {
	if f < fieldCount {
		return fieldNames[f]
	}

	return "unknown"
}

// NoCipher is the cipher slot of a device whose link layer is not encrypted.
const NoCipher int8 = -1

// Transport is the read view of the per-device transport state.
type Transport interface {
	// Pair returns the value of f and whether it has been set.
	Pair(f Field) (TransportPair, bool)
	// DeviceNo returns the device number.
	DeviceNo() (TransportPair, bool)
	// DeviceNoPadding returns the padded device number, falling back to DeviceNo.
	DeviceNoPadding() (TransportPair, bool)
	// CipherSlot returns the key ring slot, or NoCipher.
	CipherSlot() int8
	// UseCipher reports whether the link layer is encrypted.
	UseCipher() bool
}

// TransportCarrier holds the transport values of one device between frames.
//
// A carrier is shared by the cache and every session of the device, so all methods are
// safe for concurrent use.
type TransportCarrier struct {
	mu         sync.RWMutex
	pairs      [fieldCount]TransportPair
	set        [fieldCount]bool
	cipherSlot int8
}

var _ Transport = (*TransportCarrier)(nil)

// NewTransportCarrier creates a carrier with no values and no cipher.
func NewTransportCarrier() *TransportCarrier {
	return &TransportCarrier{cipherSlot: NoCipher}
}

// NewCarrierWithUpstreamCount creates a carrier holding a device number and the upstream
// counter, both given as hex.
func NewCarrierWithUpstreamCount(deviceNoHex, upstreamCountHex string) (*TransportCarrier, error) {
	c := NewTransportCarrier()
	if err := c.SetHex(FieldDeviceNo, deviceNoHex); err != nil {
		return nil, err
	}
	if err := c.SetHex(FieldUpstreamCount, upstreamCountHex); err != nil {
		return nil, err
	}

	return c, nil
}

// NewCarrierWithDeviceNo creates a carrier holding a device number and its padded form.
func NewCarrierWithDeviceNo(no string, noBytes []byte, padding string, paddingBytes []byte) *TransportCarrier {
	c := NewTransportCarrier()
	c.Set(FieldDeviceNo, no, noBytes)
	c.Set(FieldDeviceNoPadding, padding, paddingBytes)

	return c
}

// Pair implements Transport.
func (c *TransportCarrier) Pair(f Field) (TransportPair, bool) {
	if f >= fieldCount {
		return TransportPair{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.pairs[f], c.set[f]
}

// DeviceNo implements Transport.
func (c *TransportCarrier) DeviceNo() (TransportPair, bool) {
	return c.Pair(FieldDeviceNo)
}

// DeviceNoPadding implements Transport.
func (c *TransportCarrier) DeviceNoPadding() (TransportPair, bool) {
	if p, ok := c.Pair(FieldDeviceNoPadding); ok {
		return p, true
	}

	return c.Pair(FieldDeviceNo)
}

// Set stores the value of f. Unknown fields are ignored.
func (c *TransportCarrier) Set(f Field, hex string, b []byte) {
	if f >= fieldCount {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pairs[f] = NewTransportPair(hex, b)
	c.set[f] = true
}

// SetHex stores the value of f decoded from hex.
func (c *TransportCarrier) SetHex(f Field, hex string) error {
	b, err := hexutil.HexToBytes(hex)
	if err != nil {
		return err
	}
	c.Set(f, hex, b)

	return nil
}

// SetBytes stores the value of f, deriving the hex from b.
func (c *TransportCarrier) SetBytes(f Field, b []byte) {
	c.Set(f, hexutil.BytesToHex(b), b)
}

// Unset removes the value of f.
func (c *TransportCarrier) Unset(f Field) {
	if f >= fieldCount {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pairs[f] = TransportPair{}
	c.set[f] = false
}

// CipherSlot implements Transport.
func (c *TransportCarrier) CipherSlot() int8 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.cipherSlot
}

// SetCipherSlot selects the key ring slot of the device. A negative slot disables the cipher.
func (c *TransportCarrier) SetCipherSlot(slot int8) {
	if slot < 0 {
		slot = NoCipher
	}

	c.mu.Lock()
	c.cipherSlot = slot
	c.mu.Unlock()
}

// UseCipher implements Transport.
func (c *TransportCarrier) UseCipher() bool {
	return c.CipherSlot() >= 0
}

// Snapshot returns every value that has been set, keyed by field name.
func (c *TransportCarrier) Snapshot() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]string, fieldCount)
	for i := range fieldCount {
		if c.set[i] {
			out[i.String()] = c.pairs[i].hex
		}
	}

	return out
}
