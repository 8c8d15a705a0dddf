package leaderboard

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const defaultCacheSize = 10 * 1024 * 1024

// Cache keeps ranked leaderboards per lift type and limit. Zero ttl disables it.
type Cache struct {
	cache *freecache.Cache
	ttl   time.Duration
}

func NewCache(sizeBytes int, ttl time.Duration) *Cache {
	if sizeBytes <= 0 {
		sizeBytes = defaultCacheSize
	}
	return &Cache{
		cache: freecache.NewCache(sizeBytes),
		ttl:   ttl,
	}
}

func (c *Cache) enabled() bool {
	return c != nil && c.ttl > 0
}

func cacheKey(liftType string, limit int) []byte {
	return []byte(fmt.Sprintf("leaderboard::%s::%d", liftType, limit))
}

func (c *Cache) Get(liftType string, limit int) ([]Entry, bool) {
	if !c.enabled() {
		return nil, false
	}

	entriesBytes, err := c.cache.Get(cacheKey(liftType, limit))
	if err != nil {
		return nil, false
	}

	var entries []Entry
	if err := json.Unmarshal(entriesBytes, &entries); err != nil {
		log.Errorf("failed to unmarshal cached leaderboard for %s: %s", liftType, err)
		return nil, false
	}
	return entries, true
}

func (c *Cache) Set(liftType string, limit int, entries []Entry) {
	if !c.enabled() {
		return
	}

	entriesBytes, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("failed to marshal leaderboard for %s: %s", liftType, err)
		return
	}

	// freecache expiry has seconds granularity
	expireSeconds := int(c.ttl.Seconds())
	if expireSeconds < 1 {
		expireSeconds = 1
	}
	if err := c.cache.Set(cacheKey(liftType, limit), entriesBytes, expireSeconds); err != nil {
		log.Errorf("failed to cache leaderboard for %s: %s", liftType, err)
	}
}

func (c *Cache) Clear() {
	if c == nil {
		return
	}
	c.cache.Clear()
}
