package commands_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveProfileCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	userID := kernel.MustIDFromString("u1")

	t.Run("cache hit skips the database", func(t *testing.T) {
		cached := newProfile(t, "u1", user.Approver)
		cache := new(MockProfileCache)
		cache.On("Get", ctx, userID).Return(cached, true, nil).Once()
		factory := new(MockUserUoWFactory)
		cmd, err := commands.NewResolveProfileCommand(userID, "u1@example.com", "")
		require.NoError(t, err)

		handler := commands.NewResolveProfileCommandHandler(factory, cache, slog.Default())
		profile, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, user.Approver, profile.Role())
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("stored profile is cached", func(t *testing.T) {
		stored := newProfile(t, "u1", user.Purchasing)
		cache := new(MockProfileCache)
		userRepo := new(MockUserRepository)
		uow := new(MockUoW)
		factory := new(MockUserUoWFactory)

		mock.InOrder(
			cache.On("Get", ctx, userID).Return(user.Profile{}, false, nil).Once(),
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("UserRepository").Return(userRepo).Once(),
			userRepo.On("Get", ctx, userID).Return(stored, nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			cache.On("SetIfAbsent", ctx, stored).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewResolveProfileCommand(userID, "u1@example.com", "")
		require.NoError(t, err)
		handler := commands.NewResolveProfileCommandHandler(factory, cache, slog.Default())
		profile, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, user.Purchasing, profile.Role())
		cache.AssertExpectations(t)
	})

	t.Run("first login provisions a supervisor", func(t *testing.T) {
		cache := new(MockProfileCache)
		userRepo := new(MockUserRepository)
		uow := new(MockUoW)
		factory := new(MockUserUoWFactory)

		provisioned, err := user.DefaultProfile(userID, "maria.souza@example.com", time.Now())
		require.NoError(t, err)

		var added user.Profile
		cache.On("Get", ctx, userID).Return(user.Profile{}, false, errors.New("redis down")).Once()
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("UserRepository").Return(userRepo).Once()
		userRepo.On("Get", ctx, userID).Return(user.Profile{}, errs.NewObjectNotFoundError("userId", userID)).Once()
		userRepo.On("Add", ctx, mock.AnythingOfType("user.Profile")).
			Run(func(args mock.Arguments) { added = args.Get(1).(user.Profile) }).
			Return(nil).Once()
		userRepo.On("Get", ctx, userID).Return(provisioned, nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		cache.On("SetIfAbsent", ctx, provisioned).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewResolveProfileCommand(userID, "maria.souza@example.com", "")
		require.NoError(t, err)
		handler := commands.NewResolveProfileCommandHandler(factory, cache, slog.Default())
		profile, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, provisioned, profile)
		assert.Equal(t, user.Supervisor, added.Role())
		assert.Equal(t, "maria.souza", added.DisplayName())
		assert.Equal(t, "maria.souza@example.com", added.Email())
	})

	t.Run("zero user id", func(t *testing.T) {
		_, err := commands.NewResolveProfileCommand(kernel.ID{}, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestChangeUserRoleCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	admin := newProfile(t, "adm", user.Admin)

	t.Run("updates role and overwrites cache", func(t *testing.T) {
		target := newProfile(t, "u1", user.Supervisor)
		cache := new(MockProfileCache)
		userRepo := new(MockUserRepository)
		uow := new(MockUoW)
		factory := new(MockUserUoWFactory)

		mock.InOrder(
			factory.On("Create").Return(uow).Once(),
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("UserRepository").Return(userRepo).Once(),
			userRepo.On("Get", ctx, target.ID()).Return(target, nil).Once(),
			userRepo.On("UpdateRole", ctx, target.ID(), user.Approver).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			cache.On("Set", ctx, mock.MatchedBy(func(p user.Profile) bool {
				return p.ID().IsEqual(target.ID()) && p.Role() == user.Approver
			})).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		cmd, err := commands.NewChangeUserRoleCommand(admin, target.ID(), user.Approver)
		require.NoError(t, err)
		handler := commands.NewChangeUserRoleCommandHandler(factory, cache, slog.Default())
		updated, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, user.Approver, updated.Role())
		userRepo.AssertExpectations(t)
		cache.AssertExpectations(t)
		cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})

	t.Run("drops the cached profile when overwriting fails", func(t *testing.T) {
		target := newProfile(t, "u1", user.Approver)
		cache := new(MockProfileCache)
		userRepo := new(MockUserRepository)
		uow := new(MockUoW)
		factory := new(MockUserUoWFactory)

		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("UserRepository").Return(userRepo).Once()
		userRepo.On("Get", ctx, target.ID()).Return(target, nil).Once()
		userRepo.On("UpdateRole", ctx, target.ID(), user.Supervisor).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		cache.On("Set", ctx, mock.AnythingOfType("user.Profile")).Return(errors.New("redis down")).Once()
		cache.On("Invalidate", ctx, target.ID()).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		cmd, err := commands.NewChangeUserRoleCommand(admin, target.ID(), user.Supervisor)
		require.NoError(t, err)
		handler := commands.NewChangeUserRoleCommandHandler(factory, cache, slog.Default())
		updated, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, user.Supervisor, updated.Role())
		cache.AssertExpectations(t)
	})

	t.Run("admin cannot change own role", func(t *testing.T) {
		factory := new(MockUserUoWFactory)
		cmd, err := commands.NewChangeUserRoleCommand(admin, admin.ID(), user.Supervisor)
		require.NoError(t, err)

		handler := commands.NewChangeUserRoleCommandHandler(factory, new(MockProfileCache), slog.Default())
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrOwnRoleChange)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("non admins are denied", func(t *testing.T) {
		cmd, err := commands.NewChangeUserRoleCommand(newProfile(t, "s1", user.Supervisor), kernel.MustIDFromString("u1"), user.Admin)
		require.NoError(t, err)

		handler := commands.NewChangeUserRoleCommandHandler(new(MockUserUoWFactory), new(MockProfileCache), slog.Default())
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("unknown role is rejected at construction", func(t *testing.T) {
		_, err := commands.NewChangeUserRoleCommand(admin, kernel.MustIDFromString("u1"), user.UnknownRole)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
