package userrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add inserts the profile unless a row with the same ID already exists.
func (r *GormUserRepository) Add(ctx context.Context, profile user.Profile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&dto).Error
	if err != nil {
		return errs.NewPersistenceError("insert user", err)
	}

	return nil
}

func (r *GormUserRepository) UpdateRole(ctx context.Context, id kernel.ID, role user.Role) error {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", id.String()).Update("role", role.String())
	if result.Error != nil {
		return errs.NewPersistenceError("update user role", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", id.String())
	}

	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.ID) (user.Profile, error) {
	if err := id.Validate(); err != nil {
		return user.Profile{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.Profile{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return user.Profile{}, errs.NewPersistenceError("select user", err)
	}

	return toDomain(dto)
}
