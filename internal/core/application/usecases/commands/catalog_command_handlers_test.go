package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/client"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateClientCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	admin := newProfile(t, "adm", user.Admin)
	details := client.Details{Name: "Setor de Limpeza", Code: "lmp-01", SectorName: "Limpeza", Active: true}

	t.Run("assigns supervisor snapshot", func(t *testing.T) {
		supervisor := newProfile(t, "s1", user.Supervisor)
		clientRepo := new(MockClientRepository)
		userRepo := new(MockUserRepository)
		uow := new(MockUoW)
		factory := new(MockClientUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("UserRepository").Return(userRepo).Once(),
			userRepo.On("Get", ctx, supervisor.ID()).Return(supervisor, nil).Once(),
			uow.On("ClientRepository").Return(clientRepo).Once(),
			clientRepo.On("Add", ctx, mock.AnythingOfType("*client.Client")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewCreateClientCommand(admin, details, supervisor.ID())
		require.NoError(t, err)
		handler := commands.NewCreateClientCommandHandler(factory)
		created, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "LMP-01", created.Code())
		owner, assigned := created.Supervisor()
		require.True(t, assigned)
		assert.Equal(t, "User s1", owner.Name())
		assert.True(t, created.IsAvailableTo(supervisor.ID()))
		clientRepo.AssertExpectations(t)
	})

	t.Run("assignee must be a supervisor", func(t *testing.T) {
		approver := newProfile(t, "a1", user.Approver)
		userRepo := new(MockUserRepository)
		uow := new(MockUoW)
		factory := new(MockClientUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("UserRepository").Return(userRepo).Once()
		userRepo.On("Get", ctx, approver.ID()).Return(approver, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewCreateClientCommand(admin, details, approver.ID())
		require.NoError(t, err)
		handler := commands.NewCreateClientCommandHandler(factory)
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "supervisorId")
		uow.AssertNotCalled(t, "ClientRepository")
	})

	t.Run("invalid details fail before the transaction", func(t *testing.T) {
		factory := new(MockClientUoWFactory)
		cmd, err := commands.NewCreateClientCommand(admin, client.Details{}, kernel.ID{})
		require.NoError(t, err)

		handler := commands.NewCreateClientCommandHandler(factory)
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestUpdateClientCommandHandler_Handle_Unassigns(t *testing.T) {
	ctx := t.Context()
	admin := newProfile(t, "adm", user.Admin)
	existing := newClient(t, "c1", newProfile(t, "s1", user.Supervisor), true)

	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	factory := new(MockClientUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	clientRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	uow.On("UserRepository").Return(new(MockUserRepository)).Once()
	clientRepo.On("Update", ctx, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewUpdateClientCommand(admin, existing.ID(),
		client.Details{Name: "Setor A", Code: "A-01", Active: false}, kernel.ID{})
	require.NoError(t, err)
	handler := commands.NewUpdateClientCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	_, assigned := updated.Supervisor()
	assert.False(t, assigned)
	assert.False(t, updated.IsActive())
	clientRepo.AssertExpectations(t)
}

func TestDeleteClientCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.MustIDFromString("c1")

	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	factory := new(MockClientUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	clientRepo.On("Delete", ctx, id).Return(errs.NewObjectNotFoundError("clientId", id)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewDeleteClientCommand(newProfile(t, "adm", user.Admin), id)
	require.NoError(t, err)
	handler := commands.NewDeleteClientCommandHandler(factory)

	require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	admin := newProfile(t, "adm", user.Admin)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	factory := new(MockProductUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", ctx, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, err := commands.NewCreateProductCommand(admin, product.Details{
		Name:   "Detergente Neutro 5L",
		Code:   "lmp-001",
		Stock:  50,
		Price:  decimal.RequireFromString("12.499"),
		Active: true,
	})
	require.NoError(t, err)
	handler := commands.NewCreateProductCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "LMP-001", created.Code())
	assert.Equal(t, product.DefaultUnit, created.Unit())
	assert.Equal(t, "12.5", created.Price().String())
	productRepo.AssertExpectations(t)

	t.Run("supervisors cannot manage products", func(t *testing.T) {
		cmd, err := commands.NewCreateProductCommand(newProfile(t, "s1", user.Supervisor), product.Details{Name: "X", Code: "X"})
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})
}

func TestUpdateProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	existing := newProduct(t, "p1", "Detergente", true)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	factory := new(MockProductUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Get", ctx, existing.ID()).Return(existing, nil).Once()
	productRepo.On("Update", ctx, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewUpdateProductCommand(newProfile(t, "adm", user.Admin), existing.ID(), product.Details{
		Name: "Detergente Neutro 5L", Code: "LMP-001", Stock: 10, Active: false,
	})
	require.NoError(t, err)
	handler := commands.NewUpdateProductCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Detergente Neutro 5L", updated.Name())
	assert.False(t, updated.IsActive())
	assert.Equal(t, 10, updated.Stock())
}

func TestDeleteProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.MustIDFromString("p1")

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	factory := new(MockProductUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	productRepo.On("Delete", ctx, id).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewDeleteProductCommand(newProfile(t, "adm", user.Admin), id)
	require.NoError(t, err)
	handler := commands.NewDeleteProductCommandHandler(factory)

	require.NoError(t, handler.Handle(ctx, cmd))
	productRepo.AssertExpectations(t)
}
