package session

import "errors"

var (
	// ErrSessionConfigNil indicates a session option applied to a nil configuration.
	ErrSessionConfigNil = errors.New("session configuration is nil")

	// ErrNilCodec indicates a session created without a codec.
	ErrNilCodec = errors.New("session codec is nil")

	// ErrNoKeyRing indicates an encrypted device on a session without a key ring.
	ErrNoKeyRing = errors.New("device uses a cipher but the session has no key ring")
)
