package queries

import (
	"errors"
	"strings"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

const (
	// DefaultOrderListLimit is used when no limit is requested.
	DefaultOrderListLimit = 50
	// MaxOrderListLimit caps a single listing.
	MaxOrderListLimit = 200
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders the actor may observe, newest first.
//
// Example:
//
//	query, err := NewListOrdersQuery(profile, order.Pending, "setor", 20)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	actor  user.Profile
	status order.Status
	search string
	limit  int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery builds the query. status order.Unknown lists every status
// visible to the actor; search matches client name, supervisor name or order
// id; limit 0 means DefaultOrderListLimit.
func NewListOrdersQuery(actor user.Profile, status order.Status, search string, limit int) (ListOrdersQuery, error) {
	var statusErr error
	if status != order.Unknown {
		statusErr = status.Validate()
	}

	var limitErr error
	if limit < 0 || limit > MaxOrderListLimit {
		limitErr = errs.NewValueIsOutOfRangeError("limit", limit, 0, MaxOrderListLimit)
	}
	if limit == 0 {
		limit = DefaultOrderListLimit
	}

	if err := errors.Join(validateActor(actor), statusErr, limitErr); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actor:  actor,
		status: status,
		search: strings.TrimSpace(search),
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() user.Profile {
	return q.actor
}

// Status returns the requested status, order.Unknown for all.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

func (q ListOrdersQuery) Search() string {
	return q.search
}

func (q ListOrdersQuery) Limit() int {
	return q.limit
}
