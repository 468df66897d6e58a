package fetcher

import (
	"fmt"

	"github.com/gabapcia/chainsentry/internal/metrics"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cache is a named, fixed-capacity LRU cache. Lookups are counted per name.
type cache[V any] struct {
	name string
	lru  *lru.Cache[string, V]
}

func newCache[V any](name string, size int) *cache[V] {
	l, err := lru.New[string, V](size)
	if err != nil {
		panic(fmt.Sprintf("fetcher: %s cache: %v", name, err))
	}

	return &cache[V]{name: name, lru: l}
}

func (c *cache[V]) get(key string) (V, bool) {
	v, ok := c.lru.Get(key)
	metrics.CacheLookupsTotal.WithLabelValues(c.name, metrics.CacheResult(ok)).Inc()
	return v, ok
}

func (c *cache[V]) add(key string, v V) {
	c.lru.Add(key, v)
}

func (c *cache[V]) len() int {
	return c.lru.Len()
}
