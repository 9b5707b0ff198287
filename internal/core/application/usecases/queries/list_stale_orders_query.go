package queries

import (
	"errors"
	"time"

	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrListStaleOrdersQueryIsNotConstructed = errors.New(
	"ListStaleOrdersQuery must be created via NewListStaleOrdersQuery constructor",
)

// ListStaleOrdersQuery finds pending orders created before a cutoff. It is a
// system query run by the scheduler and carries no actor.
type ListStaleOrdersQuery struct {
	createdBefore time.Time

	guard guard.ConstructorGuard
}

func NewListStaleOrdersQuery(createdBefore time.Time) (ListStaleOrdersQuery, error) {
	if createdBefore.IsZero() {
		return ListStaleOrdersQuery{}, errs.NewValueIsRequiredError("createdBefore")
	}
	return ListStaleOrdersQuery{createdBefore: createdBefore.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q ListStaleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListStaleOrdersQueryIsNotConstructed)
}

func (q ListStaleOrdersQuery) CreatedBefore() time.Time {
	return q.createdBefore
}
