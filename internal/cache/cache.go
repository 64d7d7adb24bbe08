package cache

import (
	"sync"
	"time"

	"careercompass-jobs/pkg/models"
)

// entry is one cached ranked result set. Entries are never updated in
// place; expiry always produces a fresh entry on the next miss.
type entry struct {
	jobs      []models.JobPosting
	createdAt time.Time
	expiresAt time.Time
}

func (e *entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// ProfileCache is the fingerprint-keyed tier of the recommendation cache.
// It owns entry lifecycle exclusively; callers must treat returned payloads
// as read-only snapshots.
type ProfileCache struct {
	mu         sync.Mutex
	entries    map[string]*entry
	defaultTTL time.Duration

	hits      int64
	misses    int64
	sets      int64
	evictions int64
}

// NewProfileCache creates a profile cache with the given default TTL.
func NewProfileCache(defaultTTL time.Duration) *ProfileCache {
	return &ProfileCache{
		entries:    make(map[string]*entry),
		defaultTTL: defaultTTL,
	}
}

// Lookup returns the cached payload for a fingerprint. Expired entries are
// evicted lazily here; an eviction counts as an eviction plus the miss that
// follows, never as a hit.
func (c *ProfileCache) Lookup(fingerprint string) ([]models.JobPosting, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	c.sweepLocked(now)

	if e, ok := c.entries[fingerprint]; ok {
		if !e.expired(now) {
			c.hits++
			return e.jobs, true
		}
		delete(c.entries, fingerprint)
		c.evictions++
	}

	c.misses++
	return nil, false
}

// Store caches a payload under a fingerprint. A zero ttl uses the default.
func (c *ProfileCache) Store(fingerprint string, jobs []models.JobPosting, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	c.entries[fingerprint] = &entry{
		jobs:      jobs,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
	c.sets++
}

// Invalidate removes one entry, reporting whether it existed.
func (c *ProfileCache) Invalidate(fingerprint string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[fingerprint]; ok {
		delete(c.entries, fingerprint)
		return true
	}
	return false
}

// Clear removes all entries, returning how many were dropped.
func (c *ProfileCache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[string]*entry)
	return n
}

// Sweep removes expired entries. It is called periodically by the
// composition root in addition to the lazy eviction at lookup time.
func (c *ProfileCache) Sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweepLocked(time.Now())
}

func (c *ProfileCache) sweepLocked(now time.Time) {
	for key, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, key)
			c.evictions++
		}
	}
}

// Stats returns a snapshot of the cache counters.
func (c *ProfileCache) Stats() models.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.hits + c.misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(c.hits) / float64(total) * 100
	}

	return models.CacheStats{
		Hits:           c.hits,
		Misses:         c.misses,
		Sets:           c.sets,
		Evictions:      c.evictions,
		EntryCount:     len(c.entries),
		HitRatePercent: hitRate,
	}
}
