// Package session assembles the per-device flow of a meter protocol.
//
// An upstream frame is identified, matched with the device's cached transport state,
// optionally decrypted and parsed with a kernel.Reader into a capsule. A downstream reply
// is built with a kernel.Writer, optionally encrypted, and stored in a capsule. The two
// capsules of one exchange are paired into a chamber.
//
// The protocol itself is supplied as a Codec; the session only sequences it.
package session

import (
	"fmt"

	"github.com/arloliu/go-meterkit/capsule"
	"github.com/arloliu/go-meterkit/device"
	"github.com/arloliu/go-meterkit/kernel"
	"github.com/arloliu/go-meterkit/linkcrypt"
	"github.com/arloliu/go-meterkit/logger"
)

// Identity is what a codec extracts from a frame before it is decrypted.
type Identity struct {
	DeviceNo      string
	DeviceID      string
	UpstreamCount string
}

// Codec implements one device protocol on top of the kernel drivers.
type Codec[C capsule.Cmd] interface {
	// Identify reads the device identity from the clear part of an upstream frame.
	Identify(frame []byte) (Identity, error)
	// Decode parses an upstream frame from r into ex.Capsule. Fields recorded in r end up
	// ahead of any field the codec appends to the capsule itself.
	Decode(ex *Exchange[C], r *kernel.Reader) error
	// Encode builds the downstream frame of ex.Capsule into w.
	Encode(ex *Exchange[C], w *kernel.Writer, params map[string]string) error
}

// Exchange is the state a codec works on for one frame.
type Exchange[C capsule.Cmd] struct {
	Capsule *capsule.RawCapsule[C]
	Carrier *device.TransportCarrier
	keys    *linkcrypt.KeyRing
	logger  logger.Logger
}

// Decrypt decrypts b with the device's cipher slot. Without a cipher, b is returned as is.
func (ex *Exchange[C]) Decrypt(b []byte) ([]byte, error) {
	return ex.crypt(b, false)
}

// Encrypt encrypts b with the device's cipher slot. Without a cipher, b is returned as is.
func (ex *Exchange[C]) Encrypt(b []byte) ([]byte, error) {
	return ex.crypt(b, true)
}

func (ex *Exchange[C]) crypt(b []byte, encrypt bool) ([]byte, error) {
	if !ex.Carrier.UseCipher() {
		return b, nil
	}
	if ex.keys == nil {
		return nil, ErrNoKeyRing
	}

	slot := ex.Carrier.CipherSlot()
	var (
		out []byte
		err error
	)
	if encrypt {
		out, err = ex.keys.Encrypt(slot, b)
	} else {
		out, err = ex.keys.Decrypt(slot, b)
	}
	if err != nil {
		ex.logger.Error("link cipher failed", "slot", slot, "encrypt", encrypt, "error", err)
		return nil, err
	}

	return out, nil
}

// Session runs upstream and downstream flows of one protocol.
// It is safe for concurrent use when its codec is.
type Session[C capsule.Cmd] struct {
	codec  Codec[C]
	store  device.Store
	keys   *linkcrypt.KeyRing
	logger logger.Logger
}

// New creates a Session for codec.
func New[C capsule.Cmd](codec Codec[C], opts ...Option) (*Session[C], error) {
	if codec == nil {
		return nil, ErrNilCodec
	}

	cfg := &Config{logger: logger.GetLogger()}
	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.store == nil {
		cache, err := device.NewCache(device.WithLogger(cfg.logger))
		if err != nil {
			return nil, err
		}
		cfg.store = cache
	}

	return &Session[C]{
		codec:  codec,
		store:  cfg.store,
		keys:   cfg.keys,
		logger: cfg.logger,
	}, nil
}

// Store returns the device store of the session.
func (s *Session[C]) Store() device.Store { return s.store }

// Upstream parses a received frame.
//
// The returned capsule is never nil. On failure it is marked failed, keeps the fields
// decoded before the failure, and the error is returned alongside it.
func (s *Session[C]) Upstream(frame []byte) (*capsule.RawCapsule[C], error) {
	up := capsule.NewUpstream[C](frame)

	id, err := s.codec.Identify(frame)
	if err != nil {
		return s.failed(up, "identify", err)
	}
	up.SetDeviceNo(id.DeviceNo)
	up.SetDeviceID(id.DeviceID)

	carrier, err := s.carrier(id.DeviceNo, id.DeviceID, id.UpstreamCount)
	if err != nil {
		return s.failed(up, "identify", err)
	}
	if id.UpstreamCount != "" {
		if err := carrier.SetHex(device.FieldUpstreamCount, id.UpstreamCount); err != nil {
			return s.failed(up, "identify", err)
		}
	}

	ex := &Exchange[C]{Capsule: up, Carrier: carrier, keys: s.keys, logger: s.logger}
	r := kernel.NewReader(frame)
	err = s.codec.Decode(ex, r)
	up.PrependFields(r.ReportFields()...)
	if err != nil {
		return s.failed(up, "decode", err)
	}

	s.logger.Debug("upstream frame decoded", "device_no", id.DeviceNo, "fields", len(r.Fields()))

	return up, nil
}

// Reply builds the downstream frame answering up.
func (s *Session[C]) Reply(up *capsule.RawCapsule[C], params map[string]string) (*capsule.RawCapsule[C], error) {
	return s.encode(capsule.NewDownstreamFrom(up), params)
}

// Downstream builds a platform initiated frame for cmd.
func (s *Session[C]) Downstream(cmd C, deviceNo, deviceID string, params map[string]string) (*capsule.RawCapsule[C], error) {
	return s.encode(capsule.NewDownstream(cmd, deviceNo, deviceID), params)
}

// Exchange parses frame, builds the reply and pairs both capsules.
// When the upstream frame fails, the reply is not encoded and is marked failed too.
func (s *Session[C]) Exchange(frame []byte, params map[string]string) (*capsule.RawChamber[C], error) {
	up, err := s.Upstream(frame)
	if err != nil {
		down := capsule.NewDownstreamFrom(up)
		down.Fail()

		return capsule.NewRawChamber(up, down), err
	}

	down, err := s.Reply(up, params)

	return capsule.NewRawChamber(up, down), err
}

func (s *Session[C]) encode(down *capsule.RawCapsule[C], params map[string]string) (*capsule.RawCapsule[C], error) {
	carrier, err := s.carrier(down.DeviceNo(), down.DeviceID(), "")
	if err != nil {
		return s.failed(down, "encode", err)
	}

	ex := &Exchange[C]{Capsule: down, Carrier: carrier, keys: s.keys, logger: s.logger}
	w := kernel.NewWriter()
	err = s.codec.Encode(ex, w, params)
	down.PrependFields(w.ReportFields()...)
	if err != nil {
		return s.failed(down, "encode", err)
	}
	down.SetBytes(w.Buffer())

	s.logger.Debug("downstream frame encoded", "device_no", down.DeviceNo(), "hex", down.Hex())

	return down, nil
}

func (s *Session[C]) carrier(deviceNo, deviceID, upstreamCount string) (*device.TransportCarrier, error) {
	unique, err := capsule.UniqueID(deviceNo, deviceID)
	if err != nil {
		return nil, err
	}

	carrier := s.store.GetOrDefault(unique, upstreamCount)
	if deviceNo != "" {
		if err := carrier.SetHex(device.FieldDeviceNo, deviceNo); err != nil {
			return nil, fmt.Errorf("device number %q: %w", deviceNo, err)
		}
	}

	return carrier, nil
}

func (s *Session[C]) failed(c *capsule.RawCapsule[C], stage string, err error) (*capsule.RawCapsule[C], error) {
	c.Fail()
	s.logger.Warn("frame failed", "stage", stage, "direction", c.Direction().String(),
		"device_no", c.DeviceNo(), "hex", c.Hex(), "error", err)

	return c, err
}
