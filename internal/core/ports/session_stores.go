package ports

import (
	"context"

	"procurement/internal/core/domain/model/cart"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
)

// CartStore keeps one cart per supervisor.
type CartStore interface {
	// Get returns the owner's cart, empty if none is stored.
	Get(ctx context.Context, owner kernel.ID) (*cart.Cart, error)

	// Modify loads the owner's cart, applies fn and stores the result atomically
	// with respect to other Modify calls for the same owner. If fn returns an
	// error nothing is stored.
	Modify(ctx context.Context, owner kernel.ID, fn func(c *cart.Cart) error) (*cart.Cart, error)

	// Clear removes the owner's cart.
	Clear(ctx context.Context, owner kernel.ID) error
}

// ProfileCache caches resolved profiles between requests.
type ProfileCache interface {
	// Get returns the cached profile and whether it was found.
	Get(ctx context.Context, id kernel.ID) (user.Profile, bool, error)

	// Set stores the profile, replacing any cached entry.
	Set(ctx context.Context, profile user.Profile) error

	// SetIfAbsent stores the profile only when no entry is cached, so a profile
	// read before a concurrent Set never replaces the newer one.
	SetIfAbsent(ctx context.Context, profile user.Profile) error

	Invalidate(ctx context.Context, id kernel.ID) error
}
