package queries

import (
	"context"

	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// StatsResponse holds the record totals shown on the admin dashboard.
type StatsResponse struct {
	Products int64
	Clients  int64
	Orders   int64
	Users    int64
}

type GetStatsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetStatsQueryHandler(db *gorm.DB) GetStatsQueryHandler {
	return GetStatsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetStatsQueryHandler) Handle(ctx context.Context, query GetStatsQuery) (StatsResponse, error) {
	if err := query.Validate(); err != nil {
		return StatsResponse{}, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ActionViewStats); err != nil {
		return StatsResponse{}, err
	}

	var stats StatsResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM products) AS products,
			(SELECT COUNT(*) FROM clients) AS clients,
			(SELECT COUNT(*) FROM orders) AS orders,
			(SELECT COUNT(*) FROM users) AS users`).
		Scan(&stats).Error
	if err != nil {
		return StatsResponse{}, errs.NewPersistenceError("stats.get", err)
	}

	return stats, nil
}
