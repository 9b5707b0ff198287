package services

import (
	"slices"

	"procurement/internal/core/domain/model/client"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/errs"
)

// Action names an operation guarded by the AccessPolicy.
type Action string

const (
	ActionViewProfile      Action = "view profile"
	ActionBrowseCatalog    Action = "browse catalog"
	ActionManageCart       Action = "manage cart"
	ActionListOwnClients   Action = "list own clients"
	ActionSubmitOrder      Action = "submit order"
	ActionViewOrders       Action = "view orders"
	ActionApproveOrder     Action = "approve order"
	ActionRejectOrder      Action = "reject order"
	ActionCompleteOrder    Action = "complete order"
	ActionExportOrder      Action = "export order"
	ActionManageClients    Action = "manage clients"
	ActionManageProducts   Action = "manage products"
	ActionManageUsers      Action = "manage users"
	ActionDeleteOrder      Action = "delete order"
	ActionReceiveOrderFeed Action = "receive order events"
	ActionViewStats        Action = "view stats"
)

var allRoles = []user.Role{user.Admin, user.Supervisor, user.Approver, user.Purchasing}

var permissions = map[Action][]user.Role{
	ActionViewProfile:      allRoles,
	ActionBrowseCatalog:    allRoles,
	ActionManageCart:       {user.Supervisor},
	ActionListOwnClients:   {user.Supervisor},
	ActionSubmitOrder:      {user.Supervisor},
	ActionViewOrders:       {user.Admin, user.Approver, user.Purchasing},
	ActionApproveOrder:     {user.Approver},
	ActionRejectOrder:      {user.Approver},
	ActionCompleteOrder:    {user.Purchasing},
	ActionExportOrder:      {user.Admin, user.Purchasing},
	ActionManageClients:    {user.Admin},
	ActionManageProducts:   {user.Admin},
	ActionManageUsers:      {user.Admin},
	ActionDeleteOrder:      {user.Admin},
	ActionReceiveOrderFeed: {user.Admin, user.Approver, user.Purchasing},
	ActionViewStats:        {user.Admin},
}

var orderVisibility = map[user.Role][]order.Status{
	user.Admin:      order.Statuses(),
	user.Approver:   {order.Pending},
	user.Purchasing: {order.Approved, order.Completed},
}

// AccessPolicy decides what a profile may do and see.
//
// Role scopes:
//   - Supervisor: its cart, its own active clients, active products, order submission
//   - Approver: pending orders; approve and reject
//   - Purchasing: approved and completed orders; complete and export
//   - Admin: read everything; manage clients, products, user roles; delete orders
type AccessPolicy struct{}

// NewAccessPolicy creates an AccessPolicy.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// Authorize returns an AccessDeniedError unless the profile's role may perform action.
func (AccessPolicy) Authorize(profile user.Profile, action Action) error {
	if err := profile.Validate(); err != nil {
		return errs.NewAccessDeniedError(profile.Role().String(), string(action))
	}
	if !slices.Contains(permissions[action], profile.Role()) {
		return errs.NewAccessDeniedError(profile.Role().String(), string(action))
	}
	return nil
}

// VisibleOrderStatuses returns the statuses of the orders the profile may observe.
func (p AccessPolicy) VisibleOrderStatuses(profile user.Profile) ([]order.Status, error) {
	if err := p.Authorize(profile, ActionViewOrders); err != nil {
		return nil, err
	}
	return slices.Clone(orderVisibility[profile.Role()]), nil
}

// CanViewOrder reports whether the profile may observe an order in the given status.
func (p AccessPolicy) CanViewOrder(profile user.Profile, status order.Status) bool {
	statuses, err := p.VisibleOrderStatuses(profile)
	if err != nil {
		return false
	}
	return slices.Contains(statuses, status)
}

// AuthorizeOrderRead returns an AccessDeniedError unless the profile may observe
// an order in the given status.
func (p AccessPolicy) AuthorizeOrderRead(profile user.Profile, status order.Status) error {
	if !p.CanViewOrder(profile, status) {
		return errs.NewAccessDeniedError(profile.Role().String(), "view "+status.String()+" order")
	}
	return nil
}

// CanViewClient reports whether the profile may observe the client.
func (AccessPolicy) CanViewClient(profile user.Profile, c *client.Client) bool {
	switch profile.Role() {
	case user.Admin:
		return true
	case user.Supervisor:
		return c.IsAvailableTo(profile.ID())
	default:
		return false
	}
}

// IncludesInactiveProducts reports whether catalog listings for the profile
// contain inactive products.
func (AccessPolicy) IncludesInactiveProducts(profile user.Profile) bool {
	return profile.Is(user.Admin)
}
