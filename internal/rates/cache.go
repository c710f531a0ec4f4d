// Package rates fetches official BNM exchange rates by date, with a
// run-scoped cache so each distinct date hits the network at most once.
package rates

import (
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// Cache is a run-scoped, concurrency-safe map from a normalized date key to
// its fetched rate. Concurrent misses for the same key are collapsed into a
// single in-flight fetch; a failed fetch is not stored, so a later call for
// the same key retries.
type Cache struct {
	store *cache.Cache
	group singleflight.Group
}

// NewCache creates an empty rate cache. Entries never expire within a run.
func NewCache() *Cache {
	return &Cache{
		store: cache.New(cache.NoExpiration, 0),
	}
}

// GetOrFetch returns the cached rate for key, invoking fetch on a miss and
// storing the result on success. While a fetch for key is in flight, other
// callers for the same key wait on it instead of fetching again.
func (c *Cache) GetOrFetch(key string, fetch func() (decimal.Decimal, error)) (decimal.Decimal, error) {
	if cached, found := c.store.Get(key); found {
		return cached.(decimal.Decimal), nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A fetch that completed while we waited on the group lock wins.
		if cached, found := c.store.Get(key); found {
			return cached, nil
		}
		rate, err := fetch()
		if err != nil {
			return decimal.Decimal{}, err
		}
		c.store.Set(key, rate, cache.NoExpiration)
		return rate, nil
	})
	if err != nil {
		return decimal.Decimal{}, err
	}
	return result.(decimal.Decimal), nil
}

// Len returns the number of distinct dates cached so far.
func (c *Cache) Len() int {
	return c.store.ItemCount()
}
