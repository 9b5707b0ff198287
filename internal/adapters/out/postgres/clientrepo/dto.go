// Package clientrepo persists clients (sectors) in the clients table.
package clientrepo

import (
	"time"

	"procurement/internal/core/domain/model/client"
	"procurement/internal/core/domain/model/kernel"
)

// ClientDTO represents the database structure for clients. The supervisor is
// stored as a nullable id plus the display name captured at assignment time.
type ClientDTO struct {
	ID             string `gorm:"type:text;primaryKey"`
	Name           string `gorm:"not null"`
	Code           string `gorm:"type:text;not null;uniqueIndex"`
	SectorName     string
	SupervisorID   *string `gorm:"type:text;index"`
	SupervisorName string
	Phone          string
	Email          string
	Address        string
	Neighborhood   string
	City           string
	State          string
	ZipCode        string
	Active         bool      `gorm:"not null"`
	CreatedAt      time.Time `gorm:"not null"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(c *client.Client) ClientDTO {
	details := c.Details()
	dto := ClientDTO{
		ID:           c.ID().String(),
		Name:         details.Name,
		Code:         details.Code,
		SectorName:   details.SectorName,
		Phone:        details.Contact.Phone,
		Email:        details.Contact.Email,
		Address:      details.Contact.Address,
		Neighborhood: details.Contact.Neighborhood,
		City:         details.Contact.City,
		State:        details.Contact.State,
		ZipCode:      details.Contact.ZipCode,
		Active:       details.Active,
		CreatedAt:    c.CreatedAt(),
	}

	if supervisor, ok := c.Supervisor(); ok {
		id := supervisor.ID().String()
		dto.SupervisorID = &id
		dto.SupervisorName = supervisor.Name()
	}

	return dto
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	var supervisor kernel.Snapshot
	if dto.SupervisorID != nil {
		supervisorID, idErr := kernel.IDFromString(*dto.SupervisorID)
		if idErr != nil {
			return nil, idErr
		}
		if supervisor, err = kernel.NewSnapshot(supervisorID, dto.SupervisorName); err != nil {
			return nil, err
		}
	}

	return client.RestoreClient(id, client.Details{
		Name:       dto.Name,
		Code:       dto.Code,
		SectorName: dto.SectorName,
		Contact: client.Contact{
			Phone:        dto.Phone,
			Email:        dto.Email,
			Address:      dto.Address,
			Neighborhood: dto.Neighborhood,
			City:         dto.City,
			State:        dto.State,
			ZipCode:      dto.ZipCode,
		},
		Active: dto.Active,
	}, supervisor, dto.CreatedAt)
}
