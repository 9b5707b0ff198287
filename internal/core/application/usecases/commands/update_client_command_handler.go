package commands

import (
	"context"

	"procurement/internal/core/domain/model/client"
	"procurement/internal/core/domain/services"
)

// UpdateClientCommandHandler edits sectors. Orders already placed keep the
// client name they were submitted with.
type UpdateClientCommandHandler struct {
	uowFactory ClientUoWFactory
	policy     services.AccessPolicy
}

func NewUpdateClientCommandHandler(uowFactory ClientUoWFactory) UpdateClientCommandHandler {
	return UpdateClientCommandHandler{uowFactory: uowFactory, policy: services.NewAccessPolicy()}
}

func (h *UpdateClientCommandHandler) Handle(ctx context.Context, cmd UpdateClientCommand) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ActionManageClients); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	clientRepo := uow.ClientRepository()
	c, err := clientRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}

	if err = c.Update(cmd.Details()); err != nil {
		return nil, err
	}
	if err = assignSupervisor(ctx, uow.UserRepository(), c, cmd.SupervisorID()); err != nil {
		return nil, err
	}

	if err = clientRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
