package layout

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"laydeck/internal/domain"
)

type cacheEntry struct {
	props  domain.LabwareProperties
	reason domain.DiagnosticReason
}

// propertyCache memoises definition reads for one run. Concurrent loads of the
// same path share a single read.
type propertyCache struct {
	store domain.LabwareStore
	sink  domain.DiagnosticSink
	log   *zap.Logger

	group   singleflight.Group
	mu      sync.Mutex
	entries map[string]cacheEntry
}

func newPropertyCache(store domain.LabwareStore, sink domain.DiagnosticSink, log *zap.Logger) *propertyCache {
	return &propertyCache{
		store:   store,
		sink:    sink,
		log:     log,
		entries: make(map[string]cacheEntry),
	}
}

// load returns the properties at path. reason is empty on success, otherwise
// it says why the zero properties were substituted.
func (c *propertyCache) load(path string) (domain.LabwareProperties, domain.DiagnosticReason) {
	if e, ok := c.lookup(path); ok {
		return e.props, e.reason
	}
	v, _, _ := c.group.Do(path, func() (any, error) {
		if e, ok := c.lookup(path); ok {
			return e, nil
		}
		e := c.read(path)
		c.mu.Lock()
		c.entries[path] = e
		c.mu.Unlock()
		return e, nil
	})
	e := v.(cacheEntry)
	return e.props, e.reason
}

func (c *propertyCache) lookup(path string) (cacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[path]
	return e, ok
}

func (c *propertyCache) read(path string) cacheEntry {
	props, ok, err := c.store.LoadLabwareProperties(path, c.sink)
	switch {
	case err != nil:
		c.log.Warn("Labware definition unreadable", zap.String("path", path), zap.Error(err))
		return cacheEntry{reason: domain.ReasonFileUnreadable}
	case !ok:
		c.log.Warn("Labware definition not found", zap.String("path", path))
		return cacheEntry{reason: domain.ReasonFileMissing}
	}
	return cacheEntry{props: props}
}
