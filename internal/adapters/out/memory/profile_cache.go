package memory

import (
	"context"
	"sync"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/ports"
)

var _ ports.ProfileCache = (*ProfileCache)(nil)

type cacheEntry struct {
	profile   user.Profile
	expiresAt time.Time
}

// ProfileCache is a TTL map of profiles.
type ProfileCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[kernel.ID]cacheEntry
}

func NewProfileCache(ttl time.Duration) *ProfileCache {
	return &ProfileCache{ttl: ttl, now: time.Now, entries: make(map[kernel.ID]cacheEntry)}
}

func (c *ProfileCache) Get(_ context.Context, id kernel.ID) (user.Profile, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()

	if !ok || !c.now().Before(entry.expiresAt) {
		return user.Profile{}, false, nil
	}
	return entry.profile, true, nil
}

func (c *ProfileCache) Set(_ context.Context, profile user.Profile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[profile.ID()] = cacheEntry{profile: profile, expiresAt: c.now().Add(c.ttl)}
	return nil
}

func (c *ProfileCache) SetIfAbsent(_ context.Context, profile user.Profile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if entry, ok := c.entries[profile.ID()]; ok && now.Before(entry.expiresAt) {
		return nil
	}
	c.entries[profile.ID()] = cacheEntry{profile: profile, expiresAt: now.Add(c.ttl)}
	return nil
}

func (c *ProfileCache) Invalidate(_ context.Context, id kernel.ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, id)
	return nil
}
