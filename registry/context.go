package registry

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Konsultn-Engineering/tabular/cache"
	"github.com/Konsultn-Engineering/tabular/naming"
)

// Context owns one independent registration space: the authoritative per-type
// table store plus a bounded cache for derived artifacts (rendered header
// lines). The zero configuration matches the package-level Default context.
type Context struct {
	// Configuration
	namingStrategy naming.Strategy
	delimiter      string

	// Cache configuration
	cacheSize int
	onEvict   func(cache.FixedKey, string)

	// Storage
	tables  typeStore
	headers cache.HeaderCache
	ids     *idSource
}

type Option func(*Context)

// WithNaming sets the naming strategy applied to record headers and
// collection names registered through this context.
func WithNaming(s naming.Strategy) Option {
	return func(ctx *Context) { ctx.namingStrategy = s }
}

// WithDelimiter sets the field delimiter for encoders registered through
// this context.
func WithDelimiter(d string) Option {
	return func(ctx *Context) { ctx.delimiter = d }
}

// WithHeaderCacheSize sets the LRU size for rendered header lines. A size of
// zero or less disables the LRU in favor of an unbounded map cache.
func WithHeaderCacheSize(size int) Option {
	return func(ctx *Context) { ctx.cacheSize = size }
}

// WithEvictionCallback sets a callback invoked when a cached header line is
// evicted from the LRU.
func WithEvictionCallback(onEvict func(cache.FixedKey, string)) Option {
	return func(ctx *Context) { ctx.onEvict = onEvict }
}

// New creates a registration context with configuration.
func New(options ...Option) *Context {
	ctx := &Context{
		// Default configuration
		namingStrategy: naming.Default(),
		delimiter:      DefaultDelimiter,
		cacheSize:      256,
		ids:            newIDSource(),
	}

	for _, opt := range options {
		opt(ctx)
	}

	ctx.headers = newHeaderCache(ctx.cacheSize, ctx.onEvict)
	return ctx
}

// Default is the process-wide context used by the facade package.
var Default = New()

// newHeaderCache picks the header cache implementation for the configured
// size: LRU-backed when bounded, plain map otherwise.
func newHeaderCache(size int, onEvict func(cache.FixedKey, string)) cache.HeaderCache {
	if size <= 0 {
		return cache.NewHeaderCache()
	}
	var (
		c   *lru.Cache[cache.FixedKey, string]
		err error
	)
	if onEvict != nil {
		c, err = lru.NewWithEvict(size, onEvict)
	} else {
		c, err = lru.New[cache.FixedKey, string](size)
	}
	if err != nil {
		// lru.New only fails on a non-positive size, which is handled above.
		return cache.NewHeaderCache()
	}
	return &lruHeaderCache{c: c}
}

type lruHeaderCache struct {
	c *lru.Cache[cache.FixedKey, string]
}

func (l *lruHeaderCache) Get(key cache.FixedKey) (string, bool) {
	return l.c.Get(key)
}

func (l *lruHeaderCache) Set(key cache.FixedKey, header string) {
	l.c.Add(key, header)
}
