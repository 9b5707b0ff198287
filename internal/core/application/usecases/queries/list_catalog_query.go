package queries

import (
	"errors"

	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrListCatalogQueryIsNotConstructed = errors.New(
	"ListCatalogQuery must be created via NewListCatalogQuery constructor",
)

// ListCatalogQuery lists products. includeInactive is honored for admins only.
type ListCatalogQuery struct {
	actor           user.Profile
	includeInactive bool

	guard guard.ConstructorGuard
}

func NewListCatalogQuery(actor user.Profile, includeInactive bool) (ListCatalogQuery, error) {
	if err := validateActor(actor); err != nil {
		return ListCatalogQuery{}, err
	}
	return ListCatalogQuery{
		actor:           actor,
		includeInactive: includeInactive,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q ListCatalogQuery) Validate() error {
	return q.guard.Validate(ErrListCatalogQueryIsNotConstructed)
}

func (q ListCatalogQuery) Actor() user.Profile {
	return q.actor
}

func (q ListCatalogQuery) IncludeInactive() bool {
	return q.includeInactive
}
