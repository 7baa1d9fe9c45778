// Package config loads session settings from TOML.
//
//	[log]
//	level = "debug"
//
//	[cache]
//	capacity = 50000
//	ttl = "30m"
//
//	[[cipher]]
//	slot = 0
//	algorithm = "aes"
//	mode = "cbc"
//	key_hex = "2B7E151628AED2A6ABF7158809CF4F3C"
//	iv_hex = "000102030405060708090A0B0C0D0E0F"
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/arloliu/go-meterkit/device"
	"github.com/arloliu/go-meterkit/hexutil"
	"github.com/arloliu/go-meterkit/linkcrypt"
	"github.com/arloliu/go-meterkit/logger"
	"github.com/arloliu/go-meterkit/session"
)

// ErrInvalidConfig indicates a configuration value that cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the parsed configuration of a session.
type Config struct {
	LogLevel      logger.Level
	CacheCapacity int
	CacheTTL      time.Duration
	Ciphers       []Cipher
}

// Cipher is one key ring slot.
type Cipher struct {
	Slot      int8
	Algorithm linkcrypt.Algorithm
	Mode      linkcrypt.Mode
	Key       []byte
	IV        []byte
}

type fileConfig struct {
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
	Cache struct {
		Capacity int    `toml:"capacity"`
		TTL      string `toml:"ttl"`
	} `toml:"cache"`
	Cipher []fileCipher `toml:"cipher"`
}

type fileCipher struct {
	Slot      int    `toml:"slot"`
	Algorithm string `toml:"algorithm"`
	Mode      string `toml:"mode"`
	KeyHex    string `toml:"key_hex"`
	IVHex     string `toml:"iv_hex"`
}

// Default returns the configuration used for missing keys.
func Default() Config {
	return Config{
		LogLevel:      logger.InfoLevel,
		CacheCapacity: device.DefaultCacheCapacity,
		CacheTTL:      device.DefaultCacheTTL,
	}
}

// Load reads the TOML file at path.
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	return build(raw, meta)
}

// Parse reads TOML from data.
func Parse(data []byte) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return build(raw, meta)
}

func build(raw fileConfig, meta toml.MetaData) (Config, error) {
	cfg := Default()

	if meta.IsDefined("log", "level") {
		level, err := logger.ParseLevel(raw.Log.Level)
		if err != nil {
			return Config{}, fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
		}
		cfg.LogLevel = level
	}

	if meta.IsDefined("cache", "capacity") {
		if raw.Cache.Capacity < 0 {
			return Config{}, fmt.Errorf("%w: cache.capacity must not be negative, got %d", ErrInvalidConfig, raw.Cache.Capacity)
		}
		cfg.CacheCapacity = raw.Cache.Capacity
	}

	if meta.IsDefined("cache", "ttl") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Cache.TTL))
		if err != nil {
			return Config{}, fmt.Errorf("%w: cache.ttl: %w", ErrInvalidConfig, err)
		}
		cfg.CacheTTL = d
	}

	for i, c := range raw.Cipher {
		parsed, err := parseCipher(c)
		if err != nil {
			return Config{}, fmt.Errorf("%w: cipher[%d]: %w", ErrInvalidConfig, i, err)
		}
		cfg.Ciphers = append(cfg.Ciphers, parsed)
	}

	return cfg, nil
}

func parseCipher(c fileCipher) (Cipher, error) {
	if c.Slot < 0 || c.Slot > 127 {
		return Cipher{}, fmt.Errorf("slot %d out of range [0, 127]", c.Slot)
	}

	algorithm, err := linkcrypt.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return Cipher{}, err
	}
	mode, err := linkcrypt.ParseMode(c.Mode)
	if err != nil {
		return Cipher{}, err
	}
	key, err := hexutil.HexToBytes(c.KeyHex)
	if err != nil {
		return Cipher{}, fmt.Errorf("key_hex: %w", err)
	}

	var iv []byte
	if c.IVHex != "" {
		if iv, err = hexutil.HexToBytes(c.IVHex); err != nil {
			return Cipher{}, fmt.Errorf("iv_hex: %w", err)
		}
	}

	return Cipher{Slot: int8(c.Slot), Algorithm: algorithm, Mode: mode, Key: key, IV: iv}, nil
}

// KeyRing builds a key ring holding every configured cipher.
func (c Config) KeyRing() (*linkcrypt.KeyRing, error) {
	ring := linkcrypt.NewKeyRing()
	for _, entry := range c.Ciphers {
		ciph, err := linkcrypt.New(entry.Algorithm, entry.Mode, entry.Key)
		if err != nil {
			return nil, fmt.Errorf("cipher slot %d: %w", entry.Slot, err)
		}
		if err := ring.Register(entry.Slot, ciph, entry.IV); err != nil {
			return nil, err
		}
	}

	return ring, nil
}

// Options converts the configuration into session options: a logger at the configured
// level, a device cache and the key ring.
func (c Config) Options() ([]session.Option, error) {
	l := logger.NewSlog(c.LogLevel, false)

	cache, err := device.NewCache(
		device.WithCapacity(c.CacheCapacity),
		device.WithTTL(c.CacheTTL),
		device.WithLogger(l),
	)
	if err != nil {
		return nil, err
	}

	ring, err := c.KeyRing()
	if err != nil {
		return nil, err
	}

	return []session.Option{
		session.WithLogger(l),
		session.WithStore(cache),
		session.WithKeyRing(ring),
	}, nil
}
