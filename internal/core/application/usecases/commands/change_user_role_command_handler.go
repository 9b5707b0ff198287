package commands

import (
	"context"
	"errors"
	"log/slog"

	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// ErrOwnRoleChange is returned when an admin tries to change their own role.
var ErrOwnRoleChange = errs.NewValueIsInvalidErrorWithCause(
	"userId", errors.New("admins cannot change their own role"))

// ChangeUserRoleCommandHandler updates user roles and overwrites the cached
// profile so the next request sees the new role.
type ChangeUserRoleCommandHandler struct {
	uowFactory UserUoWFactory
	cache      ports.ProfileCache
	policy     services.AccessPolicy
	logger     *slog.Logger
}

func NewChangeUserRoleCommandHandler(
	uowFactory UserUoWFactory,
	cache ports.ProfileCache,
	logger *slog.Logger,
) ChangeUserRoleCommandHandler {
	return ChangeUserRoleCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		policy:     services.NewAccessPolicy(),
		logger:     logger.With("component", "change_user_role_handler"),
	}
}

func (h *ChangeUserRoleCommandHandler) Handle(ctx context.Context, cmd ChangeUserRoleCommand) (user.Profile, error) {
	if err := cmd.Validate(); err != nil {
		return user.Profile{}, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ActionManageUsers); err != nil {
		return user.Profile{}, err
	}
	if cmd.Actor().ID().IsEqual(cmd.UserID()) {
		return user.Profile{}, ErrOwnRoleChange
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return user.Profile{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	current, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return user.Profile{}, err
	}

	updated, err := current.WithRole(cmd.Role())
	if err != nil {
		return user.Profile{}, err
	}

	if err = userRepo.UpdateRole(ctx, updated.ID(), updated.Role()); err != nil {
		return user.Profile{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return user.Profile{}, err
	}

	if err = h.cache.Set(ctx, updated); err != nil {
		h.logger.WarnContext(ctx, "Cached profile was not updated",
			"user_id", updated.ID().String(), "error", err)
		if err = h.cache.Invalidate(ctx, updated.ID()); err != nil {
			h.logger.WarnContext(ctx, "Cached profile was not invalidated",
				"user_id", updated.ID().String(), "error", err)
		}
	}

	return updated, nil
}
