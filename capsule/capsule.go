package capsule

import (
	"fmt"

	"github.com/arloliu/go-meterkit/hexutil"
	"github.com/arloliu/go-meterkit/internal/util"
	"github.com/arloliu/go-meterkit/kernel"
)

// RawCapsule is the result of parsing or building one frame in one direction.
//
// It owns its bytes and field list. Copies made with Clone share nothing.
type RawCapsule[C Cmd] struct {
	bytes     []byte
	hex       string
	fields    []kernel.ReportField
	cmd       C
	hasCmd    bool
	deviceNo  string
	deviceID  string
	tempBytes []byte
	direction Direction
	success   bool
}

// NewUpstream creates an upstream capsule for a received frame.
func NewUpstream[C Cmd](frame []byte) *RawCapsule[C] {
	return &RawCapsule[C]{
		bytes:     util.CloneSlice(frame, 0),
		hex:       hexutil.BytesToHex(frame),
		direction: Upstream,
		success:   true,
	}
}

// NewDownstream creates an empty downstream capsule for cmd. An empty deviceID means none.
func NewDownstream[C Cmd](cmd C, deviceNo, deviceID string) *RawCapsule[C] {
	return &RawCapsule[C]{
		cmd:       cmd,
		hasCmd:    true,
		deviceNo:  deviceNo,
		deviceID:  deviceID,
		direction: Downstream,
		success:   true,
	}
}

// NewDownstreamFrom creates the downstream reply of an upstream capsule, inheriting its
// command and device identity.
func NewDownstreamFrom[C Cmd](up *RawCapsule[C]) *RawCapsule[C] {
	return &RawCapsule[C]{
		cmd:       up.cmd,
		hasCmd:    up.hasCmd,
		deviceNo:  up.deviceNo,
		deviceID:  up.deviceID,
		direction: Downstream,
		success:   true,
	}
}

// UniqueID returns the cache key of the device, "unique_<no>_<id>" with "0" for a missing part.
func (c *RawCapsule[C]) UniqueID() (string, error) {
	return UniqueID(c.deviceNo, c.deviceID)
}

// UniqueID builds a device cache key from a device number and a device id.
func UniqueID(deviceNo, deviceID string) (string, error) {
	if deviceNo == "" {
		deviceNo = "0"
	}
	if deviceID == "" {
		deviceID = "0"
	}
	if deviceNo == "0" && deviceID == "0" {
		return "", ErrNoDeviceIdentity
	}

	return fmt.Sprintf("unique_%s_%s", deviceNo, deviceID), nil
}

// Fail marks the capsule unsuccessful. Fields gathered so far are kept.
func (c *RawCapsule[C]) Fail() { c.success = false }

// Success reports whether the capsule was parsed or built successfully.
func (c *RawCapsule[C]) Success() bool { return c.success }

// Bytes returns a copy of the frame bytes.
func (c *RawCapsule[C]) Bytes() []byte { return util.CloneSlice(c.bytes, 0) }

// Hex returns the upper-case hex of the frame.
func (c *RawCapsule[C]) Hex() string { return c.hex }

// SetBytes replaces the frame bytes and regenerates the hex.
func (c *RawCapsule[C]) SetBytes(b []byte) {
	c.bytes = util.CloneSlice(b, 0)
	c.hex = hexutil.BytesToHex(b)
}

// Fields returns a copy of the report fields.
func (c *RawCapsule[C]) Fields() []kernel.ReportField { return util.CloneSlice(c.fields, 0) }

// SetFields replaces the report fields.
func (c *RawCapsule[C]) SetFields(fields []kernel.ReportField) {
	c.fields = util.CloneSlice(fields, 0)
}

// AppendFields adds fields after the existing ones.
func (c *RawCapsule[C]) AppendFields(fields ...kernel.ReportField) {
	c.fields = append(c.fields, fields...)
}

// PrependFields adds fields before the existing ones.
func (c *RawCapsule[C]) PrependFields(fields ...kernel.ReportField) {
	out := make([]kernel.ReportField, 0, len(fields)+len(c.fields))
	out = append(out, fields...)
	c.fields = append(out, c.fields...)
}

// Cmd returns the command of the capsule, if any.
func (c *RawCapsule[C]) Cmd() (C, bool) { return c.cmd, c.hasCmd }

// SetCmd sets the command of the capsule.
func (c *RawCapsule[C]) SetCmd(cmd C) {
	c.cmd = cmd
	c.hasCmd = true
}

// DeviceNo returns the device number, empty when unknown.
func (c *RawCapsule[C]) DeviceNo() string { return c.deviceNo }

// SetDeviceNo sets the device number.
func (c *RawCapsule[C]) SetDeviceNo(no string) { c.deviceNo = no }

// DeviceID returns the device id, empty when unknown.
func (c *RawCapsule[C]) DeviceID() string { return c.deviceID }

// SetDeviceID sets the device id.
func (c *RawCapsule[C]) SetDeviceID(id string) { c.deviceID = id }

// TempBytes returns a copy of the scratch bytes.
func (c *RawCapsule[C]) TempBytes() []byte { return util.CloneSlice(c.tempBytes, 0) }

// SetTempBytes sets the scratch bytes, e.g. a decrypted payload kept for later steps.
func (c *RawCapsule[C]) SetTempBytes(b []byte) { c.tempBytes = util.CloneSlice(b, 0) }

// Direction returns the direction of the capsule.
func (c *RawCapsule[C]) Direction() Direction { return c.direction }

// IsUpstream reports whether the capsule travels upstream.
func (c *RawCapsule[C]) IsUpstream() bool { return c.direction.IsUpstream() }

// IsDownstream reports whether the capsule travels downstream.
func (c *RawCapsule[C]) IsDownstream() bool { return c.direction.IsDownstream() }

// Clone returns a deep copy of the capsule. The command value is copied as is.
func (c *RawCapsule[C]) Clone() *RawCapsule[C] {
	out := *c
	out.bytes = util.CloneSlice(c.bytes, 0)
	out.fields = util.CloneSlice(c.fields, 0)
	out.tempBytes = util.CloneSlice(c.tempBytes, 0)

	return &out
}
