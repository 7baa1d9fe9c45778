package capsule

// RawChamber pairs an upstream capsule with its downstream reply.
type RawChamber[C Cmd] struct {
	upstream   *RawCapsule[C]
	downstream *RawCapsule[C]
	cmdCode    string
	success    bool
}

// NewRawChamber copies both capsules. The command code comes from the downstream command
// when present, otherwise from the upstream one; success requires both capsules to succeed.
func NewRawChamber[C Cmd](up, down *RawCapsule[C]) *RawChamber[C] {
	var code string
	if cmd, ok := down.Cmd(); ok {
		code = cmd.Code()
	} else if cmd, ok := up.Cmd(); ok {
		code = cmd.Code()
	}

	return &RawChamber[C]{
		upstream:   up.Clone(),
		downstream: down.Clone(),
		cmdCode:    code,
		success:    up.Success() && down.Success(),
	}
}

// Upstream returns the upstream capsule.
func (c *RawChamber[C]) Upstream() *RawCapsule[C] { return c.upstream }

// Downstream returns the downstream capsule.
func (c *RawChamber[C]) Downstream() *RawCapsule[C] { return c.downstream }

// CmdCode returns the command code of the exchange.
func (c *RawChamber[C]) CmdCode() string { return c.cmdCode }

// Success reports whether both capsules succeeded.
func (c *RawChamber[C]) Success() bool { return c.success }

// DeviceNo returns the device number, preferring the upstream capsule.
func (c *RawChamber[C]) DeviceNo() string {
	if no := c.upstream.DeviceNo(); no != "" {
		return no
	}

	return c.downstream.DeviceNo()
}

// DeviceID returns the device id, preferring the upstream capsule.
func (c *RawChamber[C]) DeviceID() string {
	if id := c.upstream.DeviceID(); id != "" {
		return id
	}

	return c.downstream.DeviceID()
}
