package capsule

import "fmt"

// Direction is the direction of a frame relative to the platform.
type Direction uint8

const (
	// Both is used by commands that may travel either way.
	Both Direction = iota
	// Upstream frames travel from the device to the platform.
	Upstream
	// Downstream frames travel from the platform to the device.
	Downstream
)

// IsUpstream reports whether d includes the upstream direction.
func (d Direction) IsUpstream() bool { return d == Upstream || d == Both }

// IsDownstream reports whether d includes the downstream direction.
func (d Direction) IsDownstream() bool { return d == Downstream || d == Both }

// IsUpstreamOnly reports whether d is exactly Upstream.
func (d Direction) IsUpstreamOnly() bool { return d == Upstream }

// IsDownstreamOnly reports whether d is exactly Downstream.
func (d Direction) IsDownstreamOnly() bool { return d == Downstream }

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case Upstream:
		return "upstream"
	case Downstream:
		return "downstream"
	default:
		return "both"
	}
}

// RW is the access kind of a command.
type RW uint8

const (
	RWNone RW = iota
	RWRead
	RWWrite
	RWWriteThenRead
)

// String returns the name of the access kind.
func (rw RW) String() string {
	switch rw {
	case RWRead:
		return "read"
	case RWWrite:
		return "write"
	case RWWriteThenRead:
		return "write_then_read"
	default:
		return "none"
	}
}

// MsgType classifies an exchange for the business layer.
type MsgType uint8

const (
	MsgUnknown MsgType = iota
	MsgSignIn
	MsgDataReport
	MsgValveOperation
	MsgBalanceSync
	MsgRecharge
	MsgUpdateGasPrice
	MsgDeviceParamSetting
	MsgServerTerminalOver
	MsgErrorRespond
	MsgHeartBeat
	MsgNotifyTerminal
)

var msgTypes = [...]struct {
	code        string
	description string
}{
	MsgUnknown:            {"unknown", "未知"},
	MsgSignIn:             {"signin", "注册"},
	MsgDataReport:         {"data_report", "数据上报"},
	MsgValveOperation:     {"valve_operation", "阀门控制"},
	MsgBalanceSync:        {"sync_balance_centre_charging", "余额同步"},
	MsgRecharge:           {"charge_operation", "充值"},
	MsgUpdateGasPrice:     {"update_gas_price", "调价"},
	MsgDeviceParamSetting: {"device_param_setting", "设备参数设置"},
	MsgServerTerminalOver: {"server_terminal_over", "服务器会话终止"},
	MsgErrorRespond:       {"error_respond", "表端回复异常"},
	MsgHeartBeat:          {"heart_beat", "心跳包"},
	MsgNotifyTerminal:     {"notify_terminal", "告知平台并下发结束帧"},
}

// Code returns the wire code of the message type, e.g. "data_report".
func (m MsgType) Code() string {
	if int(m) < len(msgTypes) {
		return msgTypes[m].code
	}

	return msgTypes[MsgUnknown].code
}

// Description returns the human readable name of the message type.
func (m MsgType) Description() string {
	if int(m) < len(msgTypes) {
		return msgTypes[m].description
	}

	return msgTypes[MsgUnknown].description
}

// String implements fmt.Stringer.
func (m MsgType) String() string { return m.Code() }

// MarshalText implements encoding.TextMarshaler.
func (m MsgType) MarshalText() ([]byte, error) {
	return []byte(m.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MsgType) UnmarshalText(text []byte) error {
	v, err := MsgTypeOf(string(text))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// MsgTypeOf returns the message type with the given code.
// Any code that is not defined, "unknown" included, fails with ErrUnknownMsgType.
func MsgTypeOf(code string) (MsgType, error) {
	for i := MsgSignIn; int(i) < len(msgTypes); i++ {
		if msgTypes[i].code == code {
			return i, nil
		}
	}

	return MsgUnknown, fmt.Errorf("%w: %q", ErrUnknownMsgType, code)
}

// Cmd identifies a protocol command. Embed CmdDefaults to get the common defaults.
type Cmd interface {
	Code() string
	Title() string
	Direction() Direction
	RW() RW
	MsgType() MsgType
	IsSuccess() bool
}

// CmdDefaults provides the default Cmd behavior: both directions, write access,
// a device parameter setting message and a successful outcome.
type CmdDefaults struct{}

func (CmdDefaults) Direction() Direction { return Both }
func (CmdDefaults) RW() RW               { return RWWrite }
func (CmdDefaults) MsgType() MsgType     { return MsgDeviceParamSetting }
func (CmdDefaults) IsSuccess() bool      { return true }
