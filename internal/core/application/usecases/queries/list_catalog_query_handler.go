package queries

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductResponse is a catalog entry.
type ProductResponse struct {
	ID        kernel.ID
	Name      string
	Code      string
	Unit      string
	Category  string
	Stock     int
	Price     decimal.Decimal
	ImageURL  string
	Active    bool
	CreatedAt time.Time
}

type productRow struct {
	ID        string
	Name      string
	Code      string
	Unit      string
	Category  string
	Stock     int
	Price     decimal.Decimal
	ImageURL  string
	Active    bool
	CreatedAt time.Time
}

// ListCatalogQueryHandler lists products ordered by category and name.
type ListCatalogQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListCatalogQueryHandler(db *gorm.DB) ListCatalogQueryHandler {
	return ListCatalogQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h ListCatalogQueryHandler) Handle(ctx context.Context, query ListCatalogQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Actor(), services.ActionBrowseCatalog); err != nil {
		return nil, err
	}

	includeInactive := query.IncludeInactive() && h.policy.IncludesInactiveProducts(query.Actor())

	var rows []productRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			code,
			unit,
			category,
			stock,
			price,
			image_url,
			active,
			created_at
		FROM products
		WHERE active OR ?
		ORDER BY category, name, id
	`, includeInactive).Scan(&rows).Error
	if err != nil {
		return nil, errs.NewPersistenceError("product.list", err)
	}

	products := make([]ProductResponse, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.IDFromString(row.ID)
		if idErr != nil {
			return nil, idErr
		}
		products = append(products, ProductResponse{
			ID:        id,
			Name:      row.Name,
			Code:      row.Code,
			Unit:      row.Unit,
			Category:  row.Category,
			Stock:     row.Stock,
			Price:     row.Price,
			ImageURL:  row.ImageURL,
			Active:    row.Active,
			CreatedAt: row.CreatedAt.UTC(),
		})
	}

	return products, nil
}
