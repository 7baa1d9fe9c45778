package session

import (
	"github.com/arloliu/go-meterkit/device"
	"github.com/arloliu/go-meterkit/linkcrypt"
	"github.com/arloliu/go-meterkit/logger"
)

// Config holds the collaborators of a Session.
type Config struct {
	store  device.Store
	keys   *linkcrypt.KeyRing
	logger logger.Logger
}

// Option configures a Session.
type Option interface {
	apply(*Config) error
}

type optFunc struct {
	name      string
	applyFunc func(*Config) error
}

func (o *optFunc) apply(cfg *Config) error { return o.applyFunc(cfg) }

func newOptFunc(name string, f func(*Config) error) *optFunc {
	return &optFunc{name: name, applyFunc: f}
}

// WithStore sets the device store. By default a device.Cache with default settings is used.
func WithStore(store device.Store) Option {
	return newOptFunc("WithStore", func(cfg *Config) error {
		if cfg == nil {
			return ErrSessionConfigNil
		}
		cfg.store = store

		return nil
	})
}

// WithKeyRing sets the key ring used for devices that carry a cipher slot.
func WithKeyRing(keys *linkcrypt.KeyRing) Option {
	return newOptFunc("WithKeyRing", func(cfg *Config) error {
		if cfg == nil {
			return ErrSessionConfigNil
		}
		cfg.keys = keys

		return nil
	})
}

// WithLogger sets the session logger.
func WithLogger(l logger.Logger) Option {
	return newOptFunc("WithLogger", func(cfg *Config) error {
		if cfg == nil {
			return ErrSessionConfigNil
		}
		if l != nil {
			cfg.logger = l
		}

		return nil
	})
}
