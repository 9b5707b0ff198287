package queries

import (
	"errors"

	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery reads the actor's cart.
type GetCartQuery struct {
	actor user.Profile

	guard guard.ConstructorGuard
}

func NewGetCartQuery(actor user.Profile) (GetCartQuery, error) {
	if err := validateActor(actor); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) Actor() user.Profile {
	return q.actor
}
