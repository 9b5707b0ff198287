// Package userrepo persists user profiles in the users table.
package userrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
)

// UserDTO stores a profile. Role is free text so that legacy spellings
// such as "ADMIN" survive until they are read and normalized.
type UserDTO struct {
	ID          string    `gorm:"type:text;primaryKey"`
	Email       string    `gorm:"index"`
	DisplayName string    `gorm:"not null"`
	Role        string    `gorm:"type:text;not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(p user.Profile) UserDTO {
	return UserDTO{
		ID:          p.ID().String(),
		Email:       p.Email(),
		DisplayName: p.DisplayName(),
		Role:        p.Role().String(),
		CreatedAt:   p.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (user.Profile, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return user.Profile{}, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return user.Profile{}, err
	}

	displayName := dto.DisplayName
	if displayName == "" {
		displayName = user.NameFromEmail(dto.Email, dto.ID)
	}

	return user.NewProfile(id, dto.Email, displayName, role, dto.CreatedAt)
}
