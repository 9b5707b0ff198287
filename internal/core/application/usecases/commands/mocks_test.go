package commands_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/cart"
	"procurement/internal/core/domain/model/client"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.ID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, p user.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id kernel.ID, role user.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.ID) (user.Profile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.Profile), args.Error(1)
}

// MockUoW satisfies every narrow unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSubmissionUoWFactory struct{ mock.Mock }

func (m *MockSubmissionUoWFactory) Create() commands.SubmissionUoW {
	args := m.Called()
	return args.Get(0).(commands.SubmissionUoW)
}

type MockClientUoWFactory struct{ mock.Mock }

func (m *MockClientUoWFactory) Create() commands.ClientUoW {
	args := m.Called()
	return args.Get(0).(commands.ClientUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

// MockCartStore returns the configured cart from Modify after applying fn to it.
type MockCartStore struct{ mock.Mock }

func (m *MockCartStore) Get(ctx context.Context, owner kernel.ID) (*cart.Cart, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartStore) Modify(ctx context.Context, owner kernel.ID, fn func(c *cart.Cart) error) (*cart.Cart, error) {
	args := m.Called(ctx, owner)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	c := args.Get(0).(*cart.Cart)
	if err := fn(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (m *MockCartStore) Clear(ctx context.Context, owner kernel.ID) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

type MockProfileCache struct{ mock.Mock }

func (m *MockProfileCache) Get(ctx context.Context, id kernel.ID) (user.Profile, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.Profile), args.Bool(1), args.Error(2)
}

func (m *MockProfileCache) Set(ctx context.Context, p user.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileCache) SetIfAbsent(ctx context.Context, p user.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProfileCache) Invalidate(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, event ports.OrderEvent) {
	m.Called(ctx, event)
}

func eventOfType(eventType ports.OrderEventType) any {
	return mock.MatchedBy(func(e ports.OrderEvent) bool { return e.Type == eventType })
}

func newProfile(t *testing.T, id string, role user.Role) user.Profile {
	t.Helper()
	p, err := user.NewProfile(kernel.MustIDFromString(id), id+"@example.com", "User "+id, role, time.Now())
	require.NoError(t, err)
	return p
}

func newPendingOrder(t *testing.T, quantities map[string]int) *order.Order {
	t.Helper()
	supervisor, err := kernel.NewSnapshot(kernel.MustIDFromString("s1"), "User s1")
	require.NoError(t, err)
	clientSnapshot, err := kernel.NewSnapshot(kernel.MustIDFromString("c1"), "Setor A")
	require.NoError(t, err)

	items := make([]order.Item, 0, len(quantities))
	for productID, quantity := range quantities {
		item, itemErr := order.NewItem(kernel.MustIDFromString(productID), "Produto "+productID, quantity)
		require.NoError(t, itemErr)
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewID(), supervisor, clientSnapshot, items, "", time.Now())
	require.NoError(t, err)
	return o
}

func newClient(t *testing.T, id string, owner user.Profile, active bool) *client.Client {
	t.Helper()
	c, err := client.NewClient(kernel.MustIDFromString(id), client.Details{
		Name: "Setor A", Code: "A-01", Active: active,
	}, time.Now())
	require.NoError(t, err)
	if !owner.ID().IsZero() {
		snapshot, snapErr := owner.Snapshot()
		require.NoError(t, snapErr)
		require.NoError(t, c.AssignSupervisor(snapshot))
	}
	return c
}

func newProduct(t *testing.T, id, name string, active bool) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.MustIDFromString(id), product.Details{
		Name: name, Code: "SKU-" + id, Stock: 50, Active: active,
	}, time.Now())
	require.NoError(t, err)
	return p
}
