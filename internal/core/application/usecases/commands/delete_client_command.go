package commands

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/guard"
)

var ErrDeleteClientCommandIsNotConstructed = errors.New(
	"DeleteClientCommand must be created via NewDeleteClientCommand constructor",
)

type DeleteClientCommand struct {
	actor    user.Profile
	clientID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteClientCommand(actor user.Profile, clientID kernel.ID) (DeleteClientCommand, error) {
	if err := errors.Join(validateActor(actor), validateID("clientId", clientID)); err != nil {
		return DeleteClientCommand{}, err
	}
	return DeleteClientCommand{actor: actor, clientID: clientID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteClientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteClientCommandIsNotConstructed)
}

// DeleteClientCommandHandler removes sectors. Existing orders keep their client snapshot.
type DeleteClientCommandHandler struct {
	uowFactory ClientUoWFactory
	policy     services.AccessPolicy
}

func NewDeleteClientCommandHandler(uowFactory ClientUoWFactory) DeleteClientCommandHandler {
	return DeleteClientCommandHandler{uowFactory: uowFactory, policy: services.NewAccessPolicy()}
}

func (h *DeleteClientCommandHandler) Handle(ctx context.Context, cmd DeleteClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.actor, services.ActionManageClients); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ClientRepository().Delete(ctx, cmd.clientID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
