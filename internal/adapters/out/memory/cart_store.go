// Package memory holds process-local session stores, used when Redis is
// disabled and in tests.
package memory

import (
	"context"
	"sync"

	"procurement/internal/core/domain/model/cart"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/ports"
)

var _ ports.CartStore = (*CartStore)(nil)

// CartStore keeps carts in a map guarded by a mutex. Modify holds the lock
// while fn runs, so updates for the same owner never interleave.
type CartStore struct {
	mu    sync.Mutex
	carts map[kernel.ID][]cart.Line
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[kernel.ID][]cart.Line)}
}

func (s *CartStore) Get(_ context.Context, owner kernel.ID) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cart.Restore(s.carts[owner])
}

func (s *CartStore) Modify(ctx context.Context, owner kernel.ID, fn func(c *cart.Cart) error) (*cart.Cart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := cart.Restore(s.carts[owner])
	if err != nil {
		return nil, err
	}
	if err = fn(c); err != nil {
		return nil, err
	}

	if c.IsEmpty() {
		delete(s.carts, owner)
	} else {
		s.carts[owner] = c.Lines()
	}
	return c, nil
}

func (s *CartStore) Clear(_ context.Context, owner kernel.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, owner)
	return nil
}
