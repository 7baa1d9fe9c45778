package linkcrypt

import "errors"

var (
	// ErrCrypto indicates a failed encryption or decryption, e.g. a bad padding.
	ErrCrypto = errors.New("crypto error")

	// ErrInvalidKeyLength indicates a key whose length the algorithm does not accept.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidIVLength indicates an IV that is not one block long.
	ErrInvalidIVLength = errors.New("invalid iv length")

	// ErrUnsupportedMode indicates a mode the algorithm does not support.
	ErrUnsupportedMode = errors.New("unsupported cipher mode")

	// ErrUnsupportedAlgorithm indicates an unknown algorithm name.
	ErrUnsupportedAlgorithm = errors.New("unsupported cipher algorithm")

	// ErrInvalidSlot indicates a negative key ring slot.
	ErrInvalidSlot = errors.New("invalid cipher slot")

	// ErrSlotNotFound indicates a key ring slot with no registered key.
	ErrSlotNotFound = errors.New("cipher slot not found")
)
