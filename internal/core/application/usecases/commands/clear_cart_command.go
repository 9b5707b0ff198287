package commands

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand empties the actor's cart.
type ClearCartCommand struct {
	actor user.Profile

	guard guard.ConstructorGuard
}

func NewClearCartCommand(actor user.Profile) (ClearCartCommand, error) {
	if err := validateActor(actor); err != nil {
		return ClearCartCommand{}, err
	}
	return ClearCartCommand{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) Actor() user.Profile {
	return c.actor
}

// ClearCartCommandHandler empties carts.
type ClearCartCommandHandler struct {
	carts  ports.CartStore
	policy services.AccessPolicy
}

func NewClearCartCommandHandler(carts ports.CartStore) ClearCartCommandHandler {
	return ClearCartCommandHandler{carts: carts, policy: services.NewAccessPolicy()}
}

func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ActionManageCart); err != nil {
		return err
	}
	return h.carts.Clear(ctx, cmd.Actor().ID())
}
