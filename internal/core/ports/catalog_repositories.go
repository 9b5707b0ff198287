package ports

import (
	"context"

	"procurement/internal/core/domain/model/client"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/model/user"
)

// ClientRepository defines the persistence contract for clients (sectors).
type ClientRepository interface {
	Add(ctx context.Context, aggregate *client.Client) error
	Update(ctx context.Context, aggregate *client.Client) error
	Get(ctx context.Context, id kernel.ID) (*client.Client, error)
	Delete(ctx context.Context, id kernel.ID) error
}

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)
	Delete(ctx context.Context, id kernel.ID) error
}

// UserRepository defines the persistence contract for user profiles.
type UserRepository interface {
	// Add persists a profile. Adding an existing ID is a no-op so that two
	// concurrent first logins of the same user do not fail.
	Add(ctx context.Context, profile user.Profile) error

	// UpdateRole changes the stored role of an existing user.
	UpdateRole(ctx context.Context, id kernel.ID, role user.Role) error

	// Get returns the stored profile. Stored roles are normalized; unknown roles
	// are reported as validation errors.
	Get(ctx context.Context, id kernel.ID) (user.Profile, error)
}
