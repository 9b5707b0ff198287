package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
)

const (
	profileKeyPrefix = "profile:"

	// DefaultProfileTTL bounds how long a role change can go unnoticed by
	// other instances.
	DefaultProfileTTL = 5 * time.Minute
)

var _ ports.ProfileCache = (*ProfileCache)(nil)

type cachedProfile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProfileCache caches resolved profiles under profile:<id> with a TTL.
type ProfileCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewProfileCache creates a ProfileCache. A non-positive ttl selects DefaultProfileTTL.
func NewProfileCache(client *goredis.Client, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = DefaultProfileTTL
	}
	return &ProfileCache{client: client, ttl: ttl}
}

func (c *ProfileCache) Get(ctx context.Context, id kernel.ID) (user.Profile, bool, error) {
	data, err := c.client.Get(ctx, profileKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return user.Profile{}, false, nil
	}
	if err != nil {
		return user.Profile{}, false, errs.NewPersistenceError("profile.cache.get", err)
	}

	var cached cachedProfile
	if err = json.Unmarshal(data, &cached); err != nil {
		return user.Profile{}, false, errs.NewPersistenceError("profile.cache.decode", err)
	}

	role, err := user.ParseRole(cached.Role)
	if err != nil {
		return user.Profile{}, false, err
	}
	profile, err := user.NewProfile(id, cached.Email, cached.DisplayName, role, cached.CreatedAt)
	if err != nil {
		return user.Profile{}, false, err
	}

	return profile, true, nil
}

func (c *ProfileCache) Set(ctx context.Context, profile user.Profile) error {
	data, err := encodeProfile(profile)
	if err != nil {
		return err
	}

	if err = c.client.Set(ctx, profileKey(profile.ID()), data, c.ttl).Err(); err != nil {
		return errs.NewPersistenceError("profile.cache.set", err)
	}
	return nil
}

func (c *ProfileCache) SetIfAbsent(ctx context.Context, profile user.Profile) error {
	data, err := encodeProfile(profile)
	if err != nil {
		return err
	}

	if err = c.client.SetNX(ctx, profileKey(profile.ID()), data, c.ttl).Err(); err != nil {
		return errs.NewPersistenceError("profile.cache.set", err)
	}
	return nil
}

func (c *ProfileCache) Invalidate(ctx context.Context, id kernel.ID) error {
	if err := c.client.Del(ctx, profileKey(id)).Err(); err != nil {
		return errs.NewPersistenceError("profile.cache.invalidate", err)
	}
	return nil
}

func encodeProfile(profile user.Profile) ([]byte, error) {
	data, err := json.Marshal(cachedProfile{
		ID:          profile.ID().String(),
		Email:       profile.Email(),
		DisplayName: profile.DisplayName(),
		Role:        profile.Role().String(),
		CreatedAt:   profile.CreatedAt(),
	})
	if err != nil {
		return nil, errs.NewPersistenceError("profile.cache.encode", err)
	}
	return data, nil
}

func profileKey(id kernel.ID) string {
	return profileKeyPrefix + id.String()
}
