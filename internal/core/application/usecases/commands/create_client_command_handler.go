package commands

import (
	"context"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/client"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
	policy     services.AccessPolicy
}

func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{uowFactory: uowFactory, policy: services.NewAccessPolicy()}
}

func (h *CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ActionManageClients); err != nil {
		return nil, err
	}

	c, err := client.NewClient(kernel.NewID(), cmd.Details(), time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = assignSupervisor(ctx, uow.UserRepository(), c, cmd.SupervisorID()); err != nil {
		return nil, err
	}

	if err = uow.ClientRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// assignSupervisor snapshots the given user into c. A zero supervisorID
// unassigns the client; any other user must have the supervisor role.
func assignSupervisor(ctx context.Context, users ports.UserRepository, c *client.Client, supervisorID kernel.ID) error {
	if supervisorID.IsZero() {
		c.Unassign()
		return nil
	}

	profile, err := users.Get(ctx, supervisorID)
	if err != nil {
		return err
	}
	if !profile.Is(user.Supervisor) {
		return errs.NewValueIsInvalidErrorWithCause("supervisorId",
			fmt.Errorf("user %s has role %s", profile.ID(), profile.Role()))
	}

	snapshot, err := profile.Snapshot()
	if err != nil {
		return err
	}
	return c.AssignSupervisor(snapshot)
}
