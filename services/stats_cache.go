package services

import (
	"sync"
	"time"
)

// StatsCache memoizes platform stats for a TTL. The clock is injected
// so tests can move time without sleeping.
type StatsCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	now       func() time.Time
	stats     *PlatformStats
	fetchedAt time.Time
}

func NewStatsCache(ttl time.Duration, now func() time.Time) *StatsCache {
	if now == nil {
		now = time.Now
	}
	return &StatsCache{ttl: ttl, now: now}
}

func (c *StatsCache) Get(load func() (*PlatformStats, error)) (*PlatformStats, error) {
	c.mu.RLock()
	if c.stats != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		stats := c.stats
		c.mu.RUnlock()
		return stats, nil
	}
	c.mu.RUnlock()

	stats, err := load()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.stats = stats
	c.fetchedAt = c.now()
	c.mu.Unlock()

	return stats, nil
}
