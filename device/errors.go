package device

import "errors"

var (
	// ErrCacheConfigNil indicates a cache option applied to a nil configuration.
	ErrCacheConfigNil = errors.New("cache configuration is nil")

	// ErrInvalidCapacity indicates a negative cache capacity.
	ErrInvalidCapacity = errors.New("invalid cache capacity")

	// ErrInvalidTTL indicates a negative cache time-to-live.
	ErrInvalidTTL = errors.New("invalid cache ttl")
)
