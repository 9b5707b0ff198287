package queries_test

import (
	"context"
	"errors"
	"testing"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/cart"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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
	return nil, args.Error(1)
}

func (m *MockCartStore) Clear(ctx context.Context, owner kernel.ID) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

func TestGetCartQueryHandler_Handle(t *testing.T) {
	supervisor := newProfile(t, "s1", user.Supervisor)

	t.Run("should list lines and total quantity", func(t *testing.T) {
		stored, err := cart.Restore([]cart.Line{
			{ProductID: kernel.MustIDFromString("p1"), ProductName: "Detergente", Quantity: 2},
			{ProductID: kernel.MustIDFromString("p2"), ProductName: "Desinfetante", Quantity: 3},
		})
		require.NoError(t, err)

		carts := &MockCartStore{}
		carts.On("Get", mock.Anything, supervisor.ID()).Return(stored, nil).Once()
		handler := queries.NewGetCartQueryHandler(carts)
		query, err := queries.NewGetCartQuery(supervisor)
		require.NoError(t, err)

		resp, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, resp.Lines, 2)
		assert.Equal(t, "Detergente", resp.Lines[0].ProductName)
		assert.Equal(t, 3, resp.Lines[1].Quantity)
		assert.Equal(t, 5, resp.TotalQuantity)
		carts.AssertExpectations(t)
	})

	t.Run("should return empty lines for an empty cart", func(t *testing.T) {
		carts := &MockCartStore{}
		carts.On("Get", mock.Anything, supervisor.ID()).Return(&cart.Cart{}, nil).Once()
		handler := queries.NewGetCartQueryHandler(carts)
		query, err := queries.NewGetCartQuery(supervisor)
		require.NoError(t, err)

		resp, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.NotNil(t, resp.Lines)
		assert.Empty(t, resp.Lines)
		assert.Zero(t, resp.TotalQuantity)
	})

	t.Run("should deny roles without a cart", func(t *testing.T) {
		carts := &MockCartStore{}
		handler := queries.NewGetCartQueryHandler(carts)
		query, err := queries.NewGetCartQuery(newProfile(t, "ap1", user.Approver))
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		carts.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("should propagate store errors", func(t *testing.T) {
		storeErr := errors.New("redis down")
		carts := &MockCartStore{}
		carts.On("Get", mock.Anything, supervisor.ID()).Return(nil, storeErr).Once()
		handler := queries.NewGetCartQueryHandler(carts)
		query, err := queries.NewGetCartQuery(supervisor)
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)

		require.ErrorIs(t, err, storeErr)
	})
}
