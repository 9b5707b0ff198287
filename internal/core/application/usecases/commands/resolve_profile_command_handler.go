package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"
)

// ResolveProfileCommandHandler loads the caller's profile, provisioning a
// supervisor profile the first time a user is seen.
type ResolveProfileCommandHandler struct {
	uowFactory UserUoWFactory
	cache      ports.ProfileCache
	logger     *slog.Logger
}

func NewResolveProfileCommandHandler(
	uowFactory UserUoWFactory,
	cache ports.ProfileCache,
	logger *slog.Logger,
) ResolveProfileCommandHandler {
	return ResolveProfileCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "resolve_profile_handler"),
	}
}

// Handle returns the cached profile when present. Cache failures are logged
// and the lookup falls through to the database.
func (h *ResolveProfileCommandHandler) Handle(ctx context.Context, cmd ResolveProfileCommand) (user.Profile, error) {
	if err := cmd.Validate(); err != nil {
		return user.Profile{}, err
	}

	cached, found, err := h.cache.Get(ctx, cmd.UserID())
	if err != nil {
		h.logger.WarnContext(ctx, "Profile cache read failed", "user_id", cmd.UserID().String(), "error", err)
	}
	if found {
		return cached, nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return user.Profile{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	profile, err := userRepo.Get(ctx, cmd.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		profile, err = h.provision(ctx, userRepo, cmd)
	}
	if err != nil {
		return user.Profile{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return user.Profile{}, err
	}

	if err = h.cache.SetIfAbsent(ctx, profile); err != nil {
		h.logger.WarnContext(ctx, "Profile cache write failed", "user_id", profile.ID().String(), "error", err)
	}

	return profile, nil
}

// provision stores the default profile and reads it back, so a concurrent first
// login that won the insert determines the result.
func (h *ResolveProfileCommandHandler) provision(
	ctx context.Context,
	userRepo ports.UserRepository,
	cmd ResolveProfileCommand,
) (user.Profile, error) {
	now := time.Now()

	profile, err := user.DefaultProfile(cmd.UserID(), cmd.Email(), now)
	if err != nil {
		return user.Profile{}, err
	}
	if cmd.Name() != "" {
		profile, err = user.NewProfile(cmd.UserID(), cmd.Email(), cmd.Name(), user.Supervisor, now)
		if err != nil {
			return user.Profile{}, err
		}
	}

	if err = userRepo.Add(ctx, profile); err != nil {
		return user.Profile{}, err
	}

	h.logger.InfoContext(ctx, "Provisioned profile on first login",
		"user_id", profile.ID().String(), "role", profile.Role().String())

	return userRepo.Get(ctx, cmd.UserID())
}
