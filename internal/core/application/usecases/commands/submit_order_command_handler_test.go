package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/cart"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cartWith(t *testing.T, lines ...cart.Line) *cart.Cart {
	t.Helper()
	c, err := cart.Restore(lines)
	require.NoError(t, err)
	return c
}

func TestNewSubmitOrderCommand(t *testing.T) {
	_, err := commands.NewSubmitOrderCommand(newProfile(t, "s1", user.Supervisor), kernel.ID{}, "")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "clientId")
}

func TestSubmitOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	supervisor := newProfile(t, "s1", user.Supervisor)
	c := newClient(t, "c1", supervisor, true)
	current := cartWith(t, cart.Line{ProductID: kernel.MustIDFromString("p1"), ProductName: "Detergente", Quantity: 1})
	cmd, err := commands.NewSubmitOrderCommand(supervisor, c.ID(), "urgente")
	require.NoError(t, err)

	carts := new(MockCartStore)
	clientRepo := new(MockClientRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockSubmissionUoWFactory)
	publisher := new(MockPublisher)

	var stored *order.Order
	mock.InOrder(
		carts.On("Get", ctx, supervisor.ID()).Return(current, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("Get", ctx, c.ID()).Return(c, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		carts.On("Clear", ctx, supervisor.ID()).Return(nil).Once(),
		publisher.On("Publish", ctx, eventOfType(ports.OrderSubmitted)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSubmitOrderCommandHandler(factory, carts, publisher, slog.Default())
	id, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, id.IsEqual(stored.ID()))
	assert.Equal(t, order.Pending, stored.Status())
	assert.Equal(t, "Setor A", stored.Client().Name())
	assert.Equal(t, "User s1", stored.Supervisor().Name())
	assert.Equal(t, "urgente", stored.Note())
	require.Len(t, stored.Items(), 1)
	assert.Equal(t, "Detergente", stored.Items()[0].ProductName())
	assert.Equal(t, 1, stored.Items()[0].Quantity())
	carts.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	supervisor := newProfile(t, "s1", user.Supervisor)
	cmd, err := commands.NewSubmitOrderCommand(supervisor, kernel.MustIDFromString("c1"), "")
	require.NoError(t, err)

	carts := new(MockCartStore)
	carts.On("Get", ctx, supervisor.ID()).Return(&cart.Cart{}, nil).Once()
	factory := new(MockSubmissionUoWFactory)

	handler := commands.NewSubmitOrderCommandHandler(factory, carts, new(MockPublisher), slog.Default())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	assert.True(t, errs.IsValidation(err))
	factory.AssertNotCalled(t, "Create")
}

func TestSubmitOrderCommandHandler_Handle_ClientNotOwned(t *testing.T) {
	ctx := t.Context()
	supervisor := newProfile(t, "s1", user.Supervisor)
	other := newProfile(t, "s2", user.Supervisor)
	c := newClient(t, "c1", other, true)
	current := cartWith(t, cart.Line{ProductID: kernel.MustIDFromString("p1"), ProductName: "Detergente", Quantity: 2})
	cmd, err := commands.NewSubmitOrderCommand(supervisor, c.ID(), "")
	require.NoError(t, err)

	carts := new(MockCartStore)
	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	factory := new(MockSubmissionUoWFactory)

	carts.On("Get", ctx, supervisor.ID()).Return(current, nil).Once()
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	clientRepo.On("Get", ctx, c.ID()).Return(c, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSubmitOrderCommandHandler(factory, carts, new(MockPublisher), slog.Default())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	uow.AssertNotCalled(t, "OrderRepository")
	carts.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestSubmitOrderCommandHandler_Handle_InactiveClient(t *testing.T) {
	ctx := t.Context()
	supervisor := newProfile(t, "s1", user.Supervisor)
	c := newClient(t, "c1", supervisor, false)
	current := cartWith(t, cart.Line{ProductID: kernel.MustIDFromString("p1"), ProductName: "Detergente", Quantity: 2})
	cmd, err := commands.NewSubmitOrderCommand(supervisor, c.ID(), "")
	require.NoError(t, err)

	carts := new(MockCartStore)
	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	factory := new(MockSubmissionUoWFactory)

	carts.On("Get", ctx, supervisor.ID()).Return(current, nil).Once()
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	clientRepo.On("Get", ctx, c.ID()).Return(c, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSubmitOrderCommandHandler(factory, carts, new(MockPublisher), slog.Default())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestSubmitOrderCommandHandler_Handle_ForeignClientDeniedRegardlessOfActiveFlag(t *testing.T) {
	for _, active := range []bool{true, false} {
		ctx := t.Context()
		supervisor := newProfile(t, "s1", user.Supervisor)
		c := newClient(t, "c1", newProfile(t, "s2", user.Supervisor), active)
		current := cartWith(t, cart.Line{ProductID: kernel.MustIDFromString("p1"), ProductName: "Detergente", Quantity: 1})
		cmd, err := commands.NewSubmitOrderCommand(supervisor, c.ID(), "")
		require.NoError(t, err)

		carts := new(MockCartStore)
		clientRepo := new(MockClientRepository)
		uow := new(MockUoW)
		factory := new(MockSubmissionUoWFactory)

		carts.On("Get", ctx, supervisor.ID()).Return(current, nil).Once()
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ClientRepository").Return(clientRepo).Once()
		clientRepo.On("Get", ctx, c.ID()).Return(c, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		handler := commands.NewSubmitOrderCommandHandler(factory, carts, new(MockPublisher), slog.Default())
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied, "active=%v", active)
		assert.NotContains(t, err.Error(), "not active")
	}
}

func TestSubmitOrderCommandHandler_Handle_CartKeptWhenCommitFails(t *testing.T) {
	ctx := t.Context()
	supervisor := newProfile(t, "s1", user.Supervisor)
	c := newClient(t, "c1", supervisor, true)
	current := cartWith(t, cart.Line{ProductID: kernel.MustIDFromString("p1"), ProductName: "Detergente", Quantity: 1})
	cmd, err := commands.NewSubmitOrderCommand(supervisor, c.ID(), "")
	require.NoError(t, err)

	carts := new(MockCartStore)
	clientRepo := new(MockClientRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockSubmissionUoWFactory)
	publisher := new(MockPublisher)

	carts.On("Get", ctx, supervisor.ID()).Return(current, nil).Once()
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	clientRepo.On("Get", ctx, c.ID()).Return(c, nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("connection reset")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewSubmitOrderCommandHandler(factory, carts, publisher, slog.Default())
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "connection reset")
	carts.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSubmitOrderCommandHandler_Handle_OnlySupervisors(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSubmitOrderCommand(newProfile(t, "a1", user.Approver), kernel.MustIDFromString("c1"), "")
	require.NoError(t, err)

	carts := new(MockCartStore)
	handler := commands.NewSubmitOrderCommandHandler(new(MockSubmissionUoWFactory), carts, new(MockPublisher), slog.Default())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	carts.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
