package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/cart"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix = "cart:"

	// DefaultCartTTL is how long an untouched cart survives.
	DefaultCartTTL = 7 * 24 * time.Hour

	// maxCartRetries bounds optimistic-lock retries of Modify.
	maxCartRetries = 10
)

var _ ports.CartStore = (*CartStore)(nil)

type cartLine struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

type getter interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
}

// CartStore stores each cart as a JSON array under cart:<owner>. Concurrent
// Modify calls for the same owner are serialized with WATCH/MULTI; a lost
// race is retried up to maxCartRetries times.
type CartStore struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewCartStore creates a CartStore. A non-positive ttl selects DefaultCartTTL.
func NewCartStore(client *goredis.Client, ttl time.Duration) *CartStore {
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &CartStore{client: client, ttl: ttl}
}

func (s *CartStore) Get(ctx context.Context, owner kernel.ID) (*cart.Cart, error) {
	return s.load(ctx, s.client, cartKey(owner))
}

func (s *CartStore) Modify(
	ctx context.Context,
	owner kernel.ID,
	fn func(c *cart.Cart) error,
) (*cart.Cart, error) {
	key := cartKey(owner)

	var (
		result *cart.Cart
		fnErr  error
	)
	txf := func(tx *goredis.Tx) error {
		c, err := s.load(ctx, tx, key)
		if err != nil {
			return err
		}
		if fnErr = fn(c); fnErr != nil {
			return fnErr
		}

		data, err := encodeCart(c)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			if c.IsEmpty() {
				pipe.Del(ctx, key)
			} else {
				pipe.Set(ctx, key, data, s.ttl)
			}
			return nil
		})
		if err != nil {
			return err
		}

		result = c
		return nil
	}

	for range maxCartRetries {
		err := s.client.Watch(ctx, txf, key)
		switch {
		case err == nil:
			return result, nil
		case fnErr != nil:
			return nil, fnErr
		case errors.Is(err, goredis.TxFailedErr):
			continue
		default:
			return nil, asPersistenceError("cart.modify", err)
		}
	}

	return nil, errs.NewPersistenceError("cart.modify",
		fmt.Errorf("cart of %s changed concurrently %d times", owner, maxCartRetries))
}

func (s *CartStore) Clear(ctx context.Context, owner kernel.ID) error {
	if err := s.client.Del(ctx, cartKey(owner)).Err(); err != nil {
		return errs.NewPersistenceError("cart.clear", err)
	}
	return nil
}

func (s *CartStore) load(ctx context.Context, g getter, key string) (*cart.Cart, error) {
	data, err := g.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return &cart.Cart{}, nil
	}
	if err != nil {
		return nil, errs.NewPersistenceError("cart.get", err)
	}
	return decodeCart(data)
}

func cartKey(owner kernel.ID) string {
	return cartKeyPrefix + owner.String()
}

func encodeCart(c *cart.Cart) ([]byte, error) {
	lines := c.Lines()
	stored := make([]cartLine, 0, len(lines))
	for _, line := range lines {
		stored = append(stored, cartLine{
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
		})
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, errs.NewPersistenceError("cart.encode", err)
	}
	return data, nil
}

func decodeCart(data []byte) (*cart.Cart, error) {
	var stored []cartLine
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errs.NewPersistenceError("cart.decode", err)
	}

	lines := make([]cart.Line, 0, len(stored))
	for _, line := range stored {
		id, err := kernel.IDFromString(line.ProductID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, cart.Line{ProductID: id, ProductName: line.ProductName, Quantity: line.Quantity})
	}

	return cart.Restore(lines)
}

// asPersistenceError wraps driver errors; errors that already carry a domain
// meaning are returned unchanged.
func asPersistenceError(operation string, err error) error {
	if errors.Is(err, errs.ErrPersistenceFailure) || errs.IsValidation(err) {
		return err
	}
	return errs.NewPersistenceError(operation, err)
}
