package cache

import (
	"sync"
	"time"

	"careercompass-jobs/pkg/models"
)

// userEntry binds a ranked result set to the profile snapshot it was
// computed from, so a later request can detect profile drift.
type userEntry struct {
	jobs        []models.JobPosting
	fingerprint string
	createdAt   time.Time
	expiresAt   time.Time
}

func (e *userEntry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// UserCache is the identity-keyed tier. It remembers the last result set
// per user together with the profile fingerprint it was built from, and
// keeps a refresh counter that survives forced refreshes.
type UserCache struct {
	mu         sync.Mutex
	entries    map[string]*userEntry
	refreshes  map[string]int64
	defaultTTL time.Duration

	hits   int64
	misses int64
}

// NewUserCache creates a user cache with the given default TTL.
func NewUserCache(defaultTTL time.Duration) *UserCache {
	return &UserCache{
		entries:    make(map[string]*userEntry),
		refreshes:  make(map[string]int64),
		defaultTTL: defaultTTL,
	}
}

// Lookup returns the cached jobs for a user if the entry is live and was
// built from the same profile fingerprint. A fingerprint mismatch means
// the profile changed and counts as a miss, evicting the stale entry.
func (c *UserCache) Lookup(userID, fingerprint string) ([]models.JobPosting, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	e, ok := c.entries[userID]
	if !ok {
		c.misses++
		return nil, false
	}
	if e.expired(now) || e.fingerprint != fingerprint {
		delete(c.entries, userID)
		c.misses++
		return nil, false
	}

	c.hits++
	return e.jobs, true
}

// Store caches a user's result set alongside the profile fingerprint it
// was computed from. A zero ttl uses the default.
func (c *UserCache) Store(userID, fingerprint string, jobs []models.JobPosting, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	c.entries[userID] = &userEntry{
		jobs:        jobs,
		fingerprint: fingerprint,
		createdAt:   now,
		expiresAt:   now.Add(ttl),
	}
}

// Invalidate drops a user's entry, reporting whether one existed.
func (c *UserCache) Invalidate(userID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[userID]; ok {
		delete(c.entries, userID)
		return true
	}
	return false
}

// Refresh drops a user's entry and bumps their refresh counter. The counter
// is tracked separately from the entry so it survives the eviction.
func (c *UserCache) Refresh(userID string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, userID)
	c.refreshes[userID]++
	return c.refreshes[userID]
}

// RefreshCount returns how many forced refreshes a user has requested.
func (c *UserCache) RefreshCount(userID string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshes[userID]
}

// Clear removes all user entries. Refresh counters are preserved.
func (c *UserCache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.entries)
	c.entries = make(map[string]*userEntry)
	return n
}

// Sweep removes expired entries.
func (c *UserCache) Sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for id, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, id)
		}
	}
}

// Stats returns a snapshot of the user tier counters.
func (c *UserCache) Stats() models.UserStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	totalJobs := 0
	for _, e := range c.entries {
		totalJobs += len(e.jobs)
	}

	return models.UserStats{
		ActiveUsers:     len(c.entries),
		TotalCachedJobs: totalJobs,
		Hits:            c.hits,
		Misses:          c.misses,
	}
}
