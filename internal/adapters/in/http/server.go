package http

import (
	"context"
	"mime"
	"net/http"
	"strings"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/cart"
	"procurement/internal/core/domain/model/client"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Handler is a command or query handler returning a result.
type Handler[Q, R any] interface {
	Handle(ctx context.Context, q Q) (R, error)
}

// VoidHandler is a command handler returning only an error.
type VoidHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc[Q, R any] func(ctx context.Context, q Q) (R, error)

func (f HandlerFunc[Q, R]) Handle(ctx context.Context, q Q) (R, error) {
	return f(ctx, q)
}

// VoidHandlerFunc adapts a function to VoidHandler.
type VoidHandlerFunc[C any] func(ctx context.Context, cmd C) error

func (f VoidHandlerFunc[C]) Handle(ctx context.Context, cmd C) error {
	return f(ctx, cmd)
}

// Handlers are the use cases exposed over HTTP.
type Handlers struct {
	// Commands
	AddToCart       Handler[commands.AddToCartCommand, *cart.Cart]
	SetCartQuantity Handler[commands.SetCartQuantityCommand, *cart.Cart]
	ClearCart       VoidHandler[commands.ClearCartCommand]
	SubmitOrder     Handler[commands.SubmitOrderCommand, kernel.ID]
	ApproveOrder    Handler[commands.ApproveOrderCommand, *order.Order]
	RejectOrder     Handler[commands.RejectOrderCommand, *order.Order]
	CompleteOrder   Handler[commands.CompleteOrderCommand, *order.Order]
	DeleteOrder     VoidHandler[commands.DeleteOrderCommand]
	CreateClient    Handler[commands.CreateClientCommand, *client.Client]
	UpdateClient    Handler[commands.UpdateClientCommand, *client.Client]
	DeleteClient    VoidHandler[commands.DeleteClientCommand]
	CreateProduct   Handler[commands.CreateProductCommand, *product.Product]
	UpdateProduct   Handler[commands.UpdateProductCommand, *product.Product]
	DeleteProduct   VoidHandler[commands.DeleteProductCommand]
	ChangeUserRole  Handler[commands.ChangeUserRoleCommand, user.Profile]

	// Queries
	GetCart              Handler[queries.GetCartQuery, queries.CartResponse]
	ListCatalog          Handler[queries.ListCatalogQuery, []queries.ProductResponse]
	ListClients          Handler[queries.ListClientsQuery, []queries.ClientResponse]
	ListAvailableClients Handler[queries.ListAvailableClientsQuery, []queries.ClientResponse]
	ListOrders           Handler[queries.ListOrdersQuery, []queries.OrderResponse]
	GetOrder             Handler[queries.GetOrderQuery, queries.OrderResponse]
	ExportOrder          Handler[queries.ExportOrderQuery, services.OrderExport]
	ListUsers            Handler[queries.ListUsersQuery, []queries.UserResponse]
	GetStats             Handler[queries.GetStatsQuery, queries.StatsResponse]
}

// Server implements ServerInterface by translating HTTP payloads into
// commands and queries. The caller's profile comes from the Authenticator.
type Server struct {
	h Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

var _ ServerInterface = (*Server)(nil)

// GetMe handles GET /api/v1/me.
func (s *Server) GetMe(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, toProfile(profileFrom(ctx)))
}

// ListCatalogProducts handles GET /api/v1/catalog/products.
func (s *Server) ListCatalogProducts(ctx echo.Context, params ListCatalogProductsParams) error {
	includeInactive := params.IncludeInactive != nil && *params.IncludeInactive

	query, err := queries.NewListCatalogQuery(profileFrom(ctx), includeInactive)
	if err != nil {
		return err
	}

	products, err := s.h.ListCatalog.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = productFromResponse(p)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListClients handles GET /api/v1/clients. Admins see every client,
// everyone else the active clients assigned to them.
func (s *Server) ListClients(ctx echo.Context) error {
	actor := profileFrom(ctx)

	var (
		clients []queries.ClientResponse
		err     error
	)
	if actor.Is(user.Admin) {
		query, qErr := queries.NewListClientsQuery(actor)
		if qErr != nil {
			return qErr
		}
		clients, err = s.h.ListClients.Handle(ctx.Request().Context(), query)
	} else {
		query, qErr := queries.NewListAvailableClientsQuery(actor)
		if qErr != nil {
			return qErr
		}
		clients, err = s.h.ListAvailableClients.Handle(ctx.Request().Context(), query)
	}
	if err != nil {
		return err
	}

	response := make([]Client, len(clients))
	for i, c := range clients {
		response[i] = clientFromResponse(c)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(profileFrom(ctx))
	if err != nil {
		return err
	}

	c, err := s.h.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cartFromResponse(c))
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	cmd, err := commands.NewClearCartCommand(profileFrom(ctx))
	if err != nil {
		return err
	}

	if err = s.h.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddCartItem handles POST /api/v1/cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var body AddCartItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest("invalid request body", err)
	}
	productID, err := parseID("productId", body.ProductID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddToCartCommand(profileFrom(ctx), productID)
	if err != nil {
		return err
	}

	c, err := s.h.AddToCart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toCart(c))
}

// SetCartItemQuantity handles PUT /api/v1/cart/items/{productId}.
func (s *Server) SetCartItemQuantity(ctx echo.Context, productID string) error {
	id, err := parseID("productId", productID)
	if err != nil {
		return err
	}
	var body SetCartItemQuantity
	if err = ctx.Bind(&body); err != nil {
		return badRequest("invalid request body", err)
	}

	cmd, err := commands.NewSetCartQuantityCommand(profileFrom(ctx), id, body.Quantity)
	if err != nil {
		return err
	}
	return s.setCartQuantity(ctx, cmd)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/{productId}.
func (s *Server) RemoveCartItem(ctx echo.Context, productID string) error {
	id, err := parseID("productId", productID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveFromCartCommand(profileFrom(ctx), id)
	if err != nil {
		return err
	}
	return s.setCartQuantity(ctx, cmd)
}

func (s *Server) setCartQuantity(ctx echo.Context, cmd commands.SetCartQuantityCommand) error {
	c, err := s.h.SetCartQuantity.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toCart(c))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	status := order.Unknown
	if params.Status != nil {
		parsed, err := order.ParseStatus(*params.Status)
		if err != nil {
			return badRequest("invalid status", err)
		}
		status = parsed
	}
	var search string
	if params.Search != nil {
		search = *params.Search
	}
	var limit int
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListOrdersQuery(profileFrom(ctx), status, search, limit)
	if err != nil {
		return err
	}

	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromResponse(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// SubmitOrder handles POST /api/v1/orders.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var body SubmitOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest("invalid request body", err)
	}
	clientID, err := parseID("clientId", body.ClientID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSubmitOrderCommand(profileFrom(ctx), clientID, body.Note)
	if err != nil {
		return err
	}

	orderID, err := s.h.SubmitOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID string) error {
	id, err := parseID("orderId", orderID)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(profileFrom(ctx), id)
	if err != nil {
		return err
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orderFromResponse(o))
}

// ApproveOrder handles POST /api/v1/orders/{orderId}/approve. Without a
// body every item is approved in full.
func (s *Server) ApproveOrder(ctx echo.Context, orderID string) error {
	id, err := parseID("orderId", orderID)
	if err != nil {
		return err
	}
	var body ApproveOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest("invalid request body", err)
	}

	var adjustments map[kernel.ID]int
	if len(body.Items) > 0 {
		adjustments = make(map[kernel.ID]int, len(body.Items))
		for _, item := range body.Items {
			productID, idErr := parseID("productId", item.ProductID)
			if idErr != nil {
				return idErr
			}
			if _, dup := adjustments[productID]; dup {
				return badRequest("product "+productID.String()+" is listed more than once", nil)
			}
			adjustments[productID] = item.ApprovedQuantity
		}
	}

	cmd, err := commands.NewApproveOrderCommand(profileFrom(ctx), id, adjustments)
	if err != nil {
		return err
	}
	return respondOrder(ctx, s.h.ApproveOrder, cmd)
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject.
func (s *Server) RejectOrder(ctx echo.Context, orderID string) error {
	id, err := parseID("orderId", orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRejectOrderCommand(profileFrom(ctx), id)
	if err != nil {
		return err
	}
	return respondOrder(ctx, s.h.RejectOrder, cmd)
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context, orderID string) error {
	id, err := parseID("orderId", orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteOrderCommand(profileFrom(ctx), id)
	if err != nil {
		return err
	}
	return respondOrder(ctx, s.h.CompleteOrder, cmd)
}

// ExportOrder handles GET /api/v1/orders/{orderId}/export.
func (s *Server) ExportOrder(ctx echo.Context, orderID string) error {
	id, err := parseID("orderId", orderID)
	if err != nil {
		return err
	}

	query, err := queries.NewExportOrderQuery(profileFrom(ctx), id)
	if err != nil {
		return err
	}

	export, err := s.h.ExportOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": export.FileName}))
	return ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", export.Content)
}

// DeleteOrder handles DELETE /api/v1/admin/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID string) error {
	id, err := parseID("orderId", orderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(profileFrom(ctx), id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateClient handles POST /api/v1/admin/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var body ClientInput
	if err := ctx.Bind(&body); err != nil {
		return badRequest("invalid request body", err)
	}
	supervisorID, err := optionalID("supervisorId", body.SupervisorID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateClientCommand(profileFrom(ctx), body.details(), supervisorID)
	if err != nil {
		return err
	}

	c, err := s.h.CreateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toClient(c))
}

// UpdateClient handles PUT /api/v1/admin/clients/{clientId}.
func (s *Server) UpdateClient(ctx echo.Context, clientID string) error {
	id, err := parseID("clientId", clientID)
	if err != nil {
		return err
	}
	var body ClientInput
	if err = ctx.Bind(&body); err != nil {
		return badRequest("invalid request body", err)
	}
	supervisorID, err := optionalID("supervisorId", body.SupervisorID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateClientCommand(profileFrom(ctx), id, body.details(), supervisorID)
	if err != nil {
		return err
	}

	c, err := s.h.UpdateClient.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toClient(c))
}

// DeleteClient handles DELETE /api/v1/admin/clients/{clientId}.
func (s *Server) DeleteClient(ctx echo.Context, clientID string) error {
	id, err := parseID("clientId", clientID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteClientCommand(profileFrom(ctx), id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/v1/admin/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body ProductInput
	if err := ctx.Bind(&body); err != nil {
		return badRequest("invalid request body", err)
	}

	cmd, err := commands.NewCreateProductCommand(profileFrom(ctx), body.details())
	if err != nil {
		return err
	}

	p, err := s.h.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toProduct(p))
}

// UpdateProduct handles PUT /api/v1/admin/products/{productId}.
func (s *Server) UpdateProduct(ctx echo.Context, productID string) error {
	id, err := parseID("productId", productID)
	if err != nil {
		return err
	}
	var body ProductInput
	if err = ctx.Bind(&body); err != nil {
		return badRequest("invalid request body", err)
	}

	cmd, err := commands.NewUpdateProductCommand(profileFrom(ctx), id, body.details())
	if err != nil {
		return err
	}

	p, err := s.h.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toProduct(p))
}

// DeleteProduct handles DELETE /api/v1/admin/products/{productId}.
func (s *Server) DeleteProduct(ctx echo.Context, productID string) error {
	id, err := parseID("productId", productID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteProductCommand(profileFrom(ctx), id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetStats handles GET /api/v1/admin/stats.
func (s *Server) GetStats(ctx echo.Context) error {
	query, err := queries.NewGetStatsQuery(profileFrom(ctx))
	if err != nil {
		return err
	}

	stats, err := s.h.GetStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Stats(stats))
}

// ListUsers handles GET /api/v1/admin/users.
func (s *Server) ListUsers(ctx echo.Context, params ListUsersParams) error {
	role := user.UnknownRole
	if params.Role != nil {
		parsed, err := user.ParseRole(*params.Role)
		if err != nil {
			return badRequest("invalid role", err)
		}
		role = parsed
	}

	query, err := queries.NewListUsersQuery(profileFrom(ctx), role)
	if err != nil {
		return err
	}

	users, err := s.h.ListUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]User, len(users))
	for i, u := range users {
		response[i] = userFromResponse(u)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ChangeUserRole handles PUT /api/v1/admin/users/{userId}/role.
func (s *Server) ChangeUserRole(ctx echo.Context, userID string) error {
	id, err := parseID("userId", userID)
	if err != nil {
		return err
	}
	var body ChangeUserRole
	if err = ctx.Bind(&body); err != nil {
		return badRequest("invalid request body", err)
	}
	role, err := user.ParseRole(body.Role)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeUserRoleCommand(profileFrom(ctx), id, role)
	if err != nil {
		return err
	}

	updated, err := s.h.ChangeUserRole.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toUser(updated))
}

func respondOrder[C any](ctx echo.Context, h Handler[C, *order.Order], cmd C) error {
	o, err := h.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

func parseID(name, value string) (kernel.ID, error) {
	id, err := kernel.IDFromString(value)
	if err != nil {
		return kernel.ID{}, badRequest("invalid "+name, err)
	}
	return id, nil
}

// optionalID maps an empty value to the zero ID.
func optionalID(name, value string) (kernel.ID, error) {
	if strings.TrimSpace(value) == "" {
		return kernel.ID{}, nil
	}
	return parseID(name, value)
}
