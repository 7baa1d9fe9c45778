package capsule

import "errors"

var (
	// ErrUnknownMsgType indicates a message type code that is not defined.
	ErrUnknownMsgType = errors.New("unknown message type")

	// ErrNoDeviceIdentity indicates a capsule with neither device number nor device id.
	ErrNoDeviceIdentity = errors.New("capsule requires at least one of device number and device id")
)
