package queries

import (
	"context"
	"strings"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// UserResponse is a user as listed to admins.
type UserResponse struct {
	ID          kernel.ID
	Email       string
	DisplayName string
	Role        user.Role
	CreatedAt   time.Time
}

type userRow struct {
	ID          string
	Email       string
	DisplayName string
	Role        string
	CreatedAt   time.Time
}

// ListUsersQueryHandler lists users ordered by display name. Stored roles are
// normalized, so legacy spellings compare equal to the canonical ones.
type ListUsersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListUsersQueryHandler(db *gorm.DB) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ActionManageUsers); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			email,
			display_name,
			role,
			created_at
		FROM users`
	var args []any
	if query.Role() != user.UnknownRole {
		sql += `
		WHERE lower(trim(role)) = ?`
		args = append(args, query.Role().String())
	}
	sql += `
		ORDER BY display_name, id`

	var rows []userRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, errs.NewPersistenceError("user.list", err)
	}

	users := make([]UserResponse, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.IDFromString(row.ID)
		if err != nil {
			return nil, err
		}
		role, err := user.ParseRole(row.Role)
		if err != nil {
			return nil, err
		}

		displayName := strings.TrimSpace(row.DisplayName)
		if displayName == "" {
			displayName = user.NameFromEmail(row.Email, row.ID)
		}

		users = append(users, UserResponse{
			ID:          id,
			Email:       row.Email,
			DisplayName: displayName,
			Role:        role,
			CreatedAt:   row.CreatedAt.UTC(),
		})
	}

	return users, nil
}
