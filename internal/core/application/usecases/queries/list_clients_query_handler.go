package queries

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// ClientResponse is the read model of a client. SupervisorID is the zero ID
// when nobody is assigned.
type ClientResponse struct {
	ID             kernel.ID
	Name           string
	Code           string
	SectorName     string
	SupervisorID   kernel.ID
	SupervisorName string
	Phone          string
	Email          string
	Address        string
	Neighborhood   string
	City           string
	State          string
	ZipCode        string
	Active         bool
	CreatedAt      time.Time
}

type clientRow struct {
	ID             string
	Name           string
	Code           string
	SectorName     string
	SupervisorID   *string
	SupervisorName string
	Phone          string
	Email          string
	Address        string
	Neighborhood   string
	City           string
	State          string
	ZipCode        string
	Active         bool
	CreatedAt      time.Time
}

const clientColumns = `
			id,
			name,
			code,
			sector_name,
			supervisor_id,
			supervisor_name,
			phone,
			email,
			address,
			neighborhood,
			city,
			state,
			zip_code,
			active,
			created_at`

// ListClientsQueryHandler serves both client listings.
type ListClientsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListClientsQueryHandler(db *gorm.DB) ListClientsQueryHandler {
	return ListClientsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle lists every client ordered by name.
func (h ListClientsQueryHandler) Handle(ctx context.Context, query ListClientsQuery) ([]ClientResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ActionManageClients); err != nil {
		return nil, err
	}

	var rows []clientRow
	err := h.db.WithContext(ctx).Raw(`SELECT` + clientColumns + `
		FROM clients
		ORDER BY name, id`).Scan(&rows).Error
	if err != nil {
		return nil, errs.NewPersistenceError("client.list", err)
	}

	return clientResponses(rows)
}

// HandleAvailable lists the actor's own active clients ordered by name.
func (h ListClientsQueryHandler) HandleAvailable(
	ctx context.Context,
	query ListAvailableClientsQuery,
) ([]ClientResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ActionListOwnClients); err != nil {
		return nil, err
	}

	var rows []clientRow
	err := h.db.WithContext(ctx).Raw(`SELECT`+clientColumns+`
		FROM clients
		WHERE supervisor_id = ? AND active
		ORDER BY name, id`, query.Actor().ID().String()).Scan(&rows).Error
	if err != nil {
		return nil, errs.NewPersistenceError("client.list_available", err)
	}

	return clientResponses(rows)
}

func clientResponses(rows []clientRow) ([]ClientResponse, error) {
	clients := make([]ClientResponse, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.IDFromString(row.ID)
		if err != nil {
			return nil, err
		}

		var supervisorID kernel.ID
		if row.SupervisorID != nil {
			if supervisorID, err = kernel.IDFromString(*row.SupervisorID); err != nil {
				return nil, err
			}
		}

		clients = append(clients, ClientResponse{
			ID:             id,
			Name:           row.Name,
			Code:           row.Code,
			SectorName:     row.SectorName,
			SupervisorID:   supervisorID,
			SupervisorName: row.SupervisorName,
			Phone:          row.Phone,
			Email:          row.Email,
			Address:        row.Address,
			Neighborhood:   row.Neighborhood,
			City:           row.City,
			State:          row.State,
			ZipCode:        row.ZipCode,
			Active:         row.Active,
			CreatedAt:      row.CreatedAt.UTC(),
		})
	}
	return clients, nil
}
