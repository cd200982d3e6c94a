package scenery

import (
	"runtime"
	"sync"
	"unsafe"
	"weak"

	"github.com/scenery-dev/scenery/cache"
	"github.com/scenery-dev/scenery/fontkit"
)

// registryKey identifies a font list by its backing array. The weak
// pointer keeps the cache from retaining lists the caller has dropped.
type registryKey = weak.Pointer[fontkit.Font]

// registryCache caches font registries per font-list identity for the
// process lifetime, bounded by recency. A runtime cleanup prunes an
// entry once its font list is collected, so the cache retains neither
// the list nor, past collection, the registry built from it.
type registryCache struct {
	mu      sync.Mutex
	entries *cache.Bounded[registryKey, *fontkit.Registry]
	build   func(fonts []fontkit.Font) (*fontkit.Registry, error)
}

func newRegistryCache(build func([]fontkit.Font) (*fontkit.Registry, error)) *registryCache {
	return &registryCache{
		entries: cache.NewBounded[registryKey, *fontkit.Registry](cache.DefaultCapacity),
		build:   build,
	}
}

var registries = newRegistryCache(func(fonts []fontkit.Font) (*fontkit.Registry, error) {
	return fontkit.NewRegistry(fonts...)
})

// lookup returns the registry for the font list, building and caching
// it on first sight of this exact list object. An empty list has no
// identity and gets a fresh registry every time.
func (c *registryCache) lookup(fonts []fontkit.Font) (*fontkit.Registry, error) {
	if len(fonts) == 0 {
		return c.build(nil)
	}

	anchor := unsafe.SliceData(fonts)
	key := weak.Make(anchor)

	// The outer mutex serializes building so two concurrent requests
	// over the same list cannot each build a registry.
	c.mu.Lock()
	defer c.mu.Unlock()

	if reg, ok := c.entries.Get(key); ok {
		return reg, nil
	}

	reg, err := c.build(fonts)
	if err != nil {
		return nil, err
	}
	c.entries.Set(key, reg)
	runtime.AddCleanup(anchor, c.entries.Remove, key)
	return reg, nil
}
