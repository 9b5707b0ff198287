package queries

import (
	"errors"

	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrGetStatsQueryIsNotConstructed = errors.New(
	"GetStatsQuery must be created via NewGetStatsQuery constructor",
)

// GetStatsQuery asks for the admin dashboard totals.
type GetStatsQuery struct {
	actor user.Profile

	guard guard.ConstructorGuard
}

func NewGetStatsQuery(actor user.Profile) (GetStatsQuery, error) {
	if err := validateActor(actor); err != nil {
		return GetStatsQuery{}, err
	}
	return GetStatsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatsQueryIsNotConstructed)
}

func (q GetStatsQuery) Actor() user.Profile {
	return q.actor
}
