package http

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/container-quote/internal/domain/model"
	"github.com/guttosm/container-quote/internal/metrics"
	"github.com/guttosm/container-quote/internal/service"
)

// defaultCatalogCacheTTL applies when no TTL is configured.
const defaultCatalogCacheTTL = 30 * time.Second

// cachedCatalog is one catalog load together with where it came from.
type cachedCatalog struct {
	version model.CatalogVersion
	source  string
}

// catalogCache keeps the active catalog in memory so quotes that omit
// products do not hit the store on every request. Reads are lock free.
type catalogCache struct {
	entry     atomic.Pointer[cachedCatalog]
	expiresAt atomic.Int64 // unix nanos
	mu        sync.Mutex
	ttl       time.Duration
}

func newCatalogCache(ttl time.Duration) *catalogCache {
	if ttl <= 0 {
		ttl = defaultCatalogCacheTTL
	}
	return &catalogCache{ttl: ttl}
}

// get returns the cached catalog, or nil when it is missing or expired.
func (c *catalogCache) get() *cachedCatalog {
	if time.Now().UnixNano() >= c.expiresAt.Load() {
		return nil
	}
	return c.entry.Load()
}

// set stores a load unless another goroutine already refreshed the cache.
func (c *catalogCache) set(entry *cachedCatalog) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if time.Now().UnixNano() < c.expiresAt.Load() {
		return
	}
	c.store(entry)
}

// replace stores a freshly saved catalog regardless of the current entry.
func (c *catalogCache) replace(entry *cachedCatalog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(entry)
}

func (c *catalogCache) store(entry *cachedCatalog) {
	c.entry.Store(entry)
	c.expiresAt.Store(time.Now().Add(c.ttl).UnixNano())
}

func (c *catalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(0)
}

// catalogLoader serves the active catalog through a catalogCache.
type catalogLoader struct {
	catalogService service.CatalogService
	cache          *catalogCache
}

func newCatalogLoader(catalogService service.CatalogService, ttl time.Duration) *catalogLoader {
	return &catalogLoader{catalogService: catalogService, cache: newCatalogCache(ttl)}
}

// load returns the active catalog. Without a catalog service the built-in
// default catalog is served.
func (l *catalogLoader) load(ctx context.Context) (*cachedCatalog, error) {
	if cached := l.cache.get(); cached != nil {
		metrics.RecordCatalogLoad("cache")
		return cached, nil
	}

	if l.catalogService == nil {
		entry := &cachedCatalog{
			version: model.CatalogVersion{Products: service.DefaultCatalog()},
			source:  service.CatalogSourceDefault,
		}
		l.cache.set(entry)
		return entry, nil
	}

	version, source, err := l.catalogService.Load(ctx)
	if err != nil {
		return nil, err
	}
	entry := &cachedCatalog{version: version, source: source}
	l.cache.set(entry)
	return entry, nil
}
