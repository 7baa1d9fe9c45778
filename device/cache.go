package device

import (
	"sync"
	"time"

	"github.com/arloliu/go-meterkit/hexutil"
	"github.com/arloliu/go-meterkit/logger"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultCacheCapacity is the default number of devices kept in a Cache.
	DefaultCacheCapacity = 100000
	// DefaultCacheTTL is the default time a device stays cached after it was stored.
	DefaultCacheTTL = time.Hour
)

// Store keeps transport carriers by device unique id.
type Store interface {
	// Get returns the carrier of unique, if cached.
	Get(unique string) (*TransportCarrier, bool)
	// Put stores the carrier of unique, replacing any previous one.
	Put(unique string, carrier *TransportCarrier)
	// Remove drops the carrier of unique and reports whether it was present.
	Remove(unique string) bool
	// Len returns the number of cached carriers.
	Len() int
	// GetOrDefault returns the carrier of unique, creating and storing one when absent.
	GetOrDefault(unique string, upstreamCountHex string) *TransportCarrier
}

// CacheConfig holds the settings of a Cache.
type CacheConfig struct {
	capacity int
	ttl      time.Duration
	logger   logger.Logger
}

// CacheOption configures a Cache.
type CacheOption interface {
	apply(*CacheConfig) error
}

type cacheOptFunc struct {
	name      string
	applyFunc func(*CacheConfig) error
}

func (c *cacheOptFunc) apply(cfg *CacheConfig) error { return c.applyFunc(cfg) }

func newCacheOptFunc(name string, f func(*CacheConfig) error) *cacheOptFunc {
	return &cacheOptFunc{name: name, applyFunc: f}
}

// WithCapacity sets the maximum number of cached devices. Zero means unbounded.
func WithCapacity(n int) CacheOption {
	return newCacheOptFunc("WithCapacity", func(cfg *CacheConfig) error {
		if cfg == nil {
			return ErrCacheConfigNil
		}
		if n < 0 {
			return ErrInvalidCapacity
		}
		cfg.capacity = n

		return nil
	})
}

// WithTTL sets how long a device stays cached after it was stored. Zero disables expiry.
func WithTTL(ttl time.Duration) CacheOption {
	return newCacheOptFunc("WithTTL", func(cfg *CacheConfig) error {
		if cfg == nil {
			return ErrCacheConfigNil
		}
		if ttl < 0 {
			return ErrInvalidTTL
		}
		cfg.ttl = ttl

		return nil
	})
}

// WithLogger sets the logger used to trace evictions.
func WithLogger(l logger.Logger) CacheOption {
	return newCacheOptFunc("WithLogger", func(cfg *CacheConfig) error {
		if cfg == nil {
			return ErrCacheConfigNil
		}
		if l != nil {
			cfg.logger = l
		}

		return nil
	})
}

// Cache is a Store bounded by capacity and time-to-live.
type Cache struct {
	lru    *expirable.LRU[string, *TransportCarrier]
	logger logger.Logger
	mu     sync.Mutex
}

var _ Store = (*Cache)(nil)

// NewCache creates a Cache. Without options it keeps DefaultCacheCapacity devices
// for DefaultCacheTTL.
func NewCache(opts ...CacheOption) (*Cache, error) {
	cfg := &CacheConfig{
		capacity: DefaultCacheCapacity,
		ttl:      DefaultCacheTTL,
		logger:   logger.GetLogger(),
	}
	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	c := &Cache{logger: cfg.logger}
	c.lru = expirable.NewLRU(cfg.capacity, c.onEvict, cfg.ttl)

	return c, nil
}

func (c *Cache) onEvict(unique string, _ *TransportCarrier) {
	c.logger.Debug("device evicted", "unique", unique)
}

// Get implements Store.
func (c *Cache) Get(unique string) (*TransportCarrier, bool) {
	return c.lru.Get(unique)
}

// Put implements Store.
func (c *Cache) Put(unique string, carrier *TransportCarrier) {
	if carrier == nil {
		return
	}
	c.lru.Add(unique, carrier)
}

// Remove implements Store.
func (c *Cache) Remove(unique string) bool {
	return c.lru.Remove(unique)
}

// Len implements Store.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge drops every cached carrier.
func (c *Cache) Purge() {
	c.lru.Purge()
}

// GetOrDefault implements Store. A new carrier takes unique as its device number, with bytes
// only when unique is valid hex, and upstreamCountHex as its upstream counter.
func (c *Cache) GetOrDefault(unique string, upstreamCountHex string) *TransportCarrier {
	c.mu.Lock()
	defer c.mu.Unlock()

	if carrier, ok := c.lru.Get(unique); ok {
		return carrier
	}

	carrier := NewTransportCarrier()
	carrier.Set(FieldDeviceNo, unique, decodeOrNil(unique))
	carrier.Set(FieldUpstreamCount, upstreamCountHex, decodeOrNil(upstreamCountHex))
	c.lru.Add(unique, carrier)

	return carrier
}

func decodeOrNil(hex string) []byte {
	b, err := hexutil.HexToBytes(hex)
	if err != nil {
		return nil
	}

	return b
}
