package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListCatalogProductsParams defines parameters for ListCatalogProducts.
type ListCatalogProductsParams struct {
	IncludeInactive *bool `form:"includeInactive,omitempty" json:"includeInactive,omitempty"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
	Search *string `form:"search,omitempty" json:"search,omitempty"`
	Limit  *int    `form:"limit,omitempty" json:"limit,omitempty"`
}

// ListUsersParams defines parameters for ListUsers.
type ListUsersParams struct {
	Role *string `form:"role,omitempty" json:"role,omitempty"`
}

// ServerInterface represents all server handlers of api/openapi.yml.
type ServerInterface interface {
	// (GET /api/v1/me)
	GetMe(ctx echo.Context) error
	// (GET /api/v1/catalog/products)
	ListCatalogProducts(ctx echo.Context, params ListCatalogProductsParams) error
	// (GET /api/v1/clients)
	ListClients(ctx echo.Context) error
	// (GET /api/v1/cart)
	GetCart(ctx echo.Context) error
	// (DELETE /api/v1/cart)
	ClearCart(ctx echo.Context) error
	// (POST /api/v1/cart/items)
	AddCartItem(ctx echo.Context) error
	// (PUT /api/v1/cart/items/{productId})
	SetCartItemQuantity(ctx echo.Context, productID string) error
	// (DELETE /api/v1/cart/items/{productId})
	RemoveCartItem(ctx echo.Context, productID string) error
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/v1/orders)
	SubmitOrder(ctx echo.Context) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderID string) error
	// (POST /api/v1/orders/{orderId}/approve)
	ApproveOrder(ctx echo.Context, orderID string) error
	// (POST /api/v1/orders/{orderId}/reject)
	RejectOrder(ctx echo.Context, orderID string) error
	// (POST /api/v1/orders/{orderId}/complete)
	CompleteOrder(ctx echo.Context, orderID string) error
	// (GET /api/v1/orders/{orderId}/export)
	ExportOrder(ctx echo.Context, orderID string) error
	// (POST /api/v1/admin/clients)
	CreateClient(ctx echo.Context) error
	// (PUT /api/v1/admin/clients/{clientId})
	UpdateClient(ctx echo.Context, clientID string) error
	// (DELETE /api/v1/admin/clients/{clientId})
	DeleteClient(ctx echo.Context, clientID string) error
	// (POST /api/v1/admin/products)
	CreateProduct(ctx echo.Context) error
	// (PUT /api/v1/admin/products/{productId})
	UpdateProduct(ctx echo.Context, productID string) error
	// (DELETE /api/v1/admin/products/{productId})
	DeleteProduct(ctx echo.Context, productID string) error
	// (GET /api/v1/admin/stats)
	GetStats(ctx echo.Context) error
	// (GET /api/v1/admin/users)
	ListUsers(ctx echo.Context, params ListUsersParams) error
	// (PUT /api/v1/admin/users/{userId}/role)
	ChangeUserRole(ctx echo.Context, userID string) error
	// (DELETE /api/v1/admin/orders/{orderId})
	DeleteOrder(ctx echo.Context, orderID string) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetMe(ctx echo.Context) error {
	return w.Handler.GetMe(ctx)
}

func (w *ServerInterfaceWrapper) ListCatalogProducts(ctx echo.Context) error {
	var params ListCatalogProductsParams
	if err := runtime.BindQueryParameter("form", true, false, "includeInactive", ctx.QueryParams(), &params.IncludeInactive); err != nil {
		return badRequest("invalid format for parameter includeInactive", err)
	}
	return w.Handler.ListCatalogProducts(ctx, params)
}

func (w *ServerInterfaceWrapper) ListClients(ctx echo.Context) error {
	return w.Handler.ListClients(ctx)
}

func (w *ServerInterfaceWrapper) GetCart(ctx echo.Context) error {
	return w.Handler.GetCart(ctx)
}

func (w *ServerInterfaceWrapper) ClearCart(ctx echo.Context) error {
	return w.Handler.ClearCart(ctx)
}

func (w *ServerInterfaceWrapper) AddCartItem(ctx echo.Context) error {
	return w.Handler.AddCartItem(ctx)
}

func (w *ServerInterfaceWrapper) SetCartItemQuantity(ctx echo.Context) error {
	productID, err := pathParam(ctx, "productId")
	if err != nil {
		return err
	}
	return w.Handler.SetCartItemQuantity(ctx, productID)
}

func (w *ServerInterfaceWrapper) RemoveCartItem(ctx echo.Context) error {
	productID, err := pathParam(ctx, "productId")
	if err != nil {
		return err
	}
	return w.Handler.RemoveCartItem(ctx, productID)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return badRequest("invalid format for parameter status", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search); err != nil {
		return badRequest("invalid format for parameter search", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return badRequest("invalid format for parameter limit", err)
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) SubmitOrder(ctx echo.Context) error {
	return w.Handler.SubmitOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	return w.withOrderID(ctx, w.Handler.GetOrder)
}

func (w *ServerInterfaceWrapper) ApproveOrder(ctx echo.Context) error {
	return w.withOrderID(ctx, w.Handler.ApproveOrder)
}

func (w *ServerInterfaceWrapper) RejectOrder(ctx echo.Context) error {
	return w.withOrderID(ctx, w.Handler.RejectOrder)
}

func (w *ServerInterfaceWrapper) CompleteOrder(ctx echo.Context) error {
	return w.withOrderID(ctx, w.Handler.CompleteOrder)
}

func (w *ServerInterfaceWrapper) ExportOrder(ctx echo.Context) error {
	return w.withOrderID(ctx, w.Handler.ExportOrder)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	return w.withOrderID(ctx, w.Handler.DeleteOrder)
}

func (w *ServerInterfaceWrapper) CreateClient(ctx echo.Context) error {
	return w.Handler.CreateClient(ctx)
}

func (w *ServerInterfaceWrapper) UpdateClient(ctx echo.Context) error {
	clientID, err := pathParam(ctx, "clientId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateClient(ctx, clientID)
}

func (w *ServerInterfaceWrapper) DeleteClient(ctx echo.Context) error {
	clientID, err := pathParam(ctx, "clientId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteClient(ctx, clientID)
}

func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	return w.Handler.CreateProduct(ctx)
}

func (w *ServerInterfaceWrapper) UpdateProduct(ctx echo.Context) error {
	productID, err := pathParam(ctx, "productId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateProduct(ctx, productID)
}

func (w *ServerInterfaceWrapper) DeleteProduct(ctx echo.Context) error {
	productID, err := pathParam(ctx, "productId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteProduct(ctx, productID)
}

func (w *ServerInterfaceWrapper) GetStats(ctx echo.Context) error {
	return w.Handler.GetStats(ctx)
}

func (w *ServerInterfaceWrapper) ListUsers(ctx echo.Context) error {
	var params ListUsersParams
	if err := runtime.BindQueryParameter("form", true, false, "role", ctx.QueryParams(), &params.Role); err != nil {
		return badRequest("invalid format for parameter role", err)
	}
	return w.Handler.ListUsers(ctx, params)
}

func (w *ServerInterfaceWrapper) ChangeUserRole(ctx echo.Context) error {
	userID, err := pathParam(ctx, "userId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeUserRole(ctx, userID)
}

func (w *ServerInterfaceWrapper) withOrderID(ctx echo.Context, next func(echo.Context, string) error) error {
	orderID, err := pathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return next(ctx, orderID)
}

func pathParam(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", badRequest("invalid format for parameter "+name, err)
	}
	return value, nil
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	Add(method string, path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every operation under baseURL.
func RegisterHandlers(router EchoRouter, si ServerInterface, baseURL string) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.Add(http.MethodGet, baseURL+"/me", w.GetMe)
	router.Add(http.MethodGet, baseURL+"/catalog/products", w.ListCatalogProducts)
	router.Add(http.MethodGet, baseURL+"/clients", w.ListClients)
	router.Add(http.MethodGet, baseURL+"/cart", w.GetCart)
	router.Add(http.MethodDelete, baseURL+"/cart", w.ClearCart)
	router.Add(http.MethodPost, baseURL+"/cart/items", w.AddCartItem)
	router.Add(http.MethodPut, baseURL+"/cart/items/:productId", w.SetCartItemQuantity)
	router.Add(http.MethodDelete, baseURL+"/cart/items/:productId", w.RemoveCartItem)
	router.Add(http.MethodGet, baseURL+"/orders", w.ListOrders)
	router.Add(http.MethodPost, baseURL+"/orders", w.SubmitOrder)
	router.Add(http.MethodGet, baseURL+"/orders/:orderId", w.GetOrder)
	router.Add(http.MethodPost, baseURL+"/orders/:orderId/approve", w.ApproveOrder)
	router.Add(http.MethodPost, baseURL+"/orders/:orderId/reject", w.RejectOrder)
	router.Add(http.MethodPost, baseURL+"/orders/:orderId/complete", w.CompleteOrder)
	router.Add(http.MethodGet, baseURL+"/orders/:orderId/export", w.ExportOrder)
	router.Add(http.MethodPost, baseURL+"/admin/clients", w.CreateClient)
	router.Add(http.MethodPut, baseURL+"/admin/clients/:clientId", w.UpdateClient)
	router.Add(http.MethodDelete, baseURL+"/admin/clients/:clientId", w.DeleteClient)
	router.Add(http.MethodPost, baseURL+"/admin/products", w.CreateProduct)
	router.Add(http.MethodPut, baseURL+"/admin/products/:productId", w.UpdateProduct)
	router.Add(http.MethodDelete, baseURL+"/admin/products/:productId", w.DeleteProduct)
	router.Add(http.MethodGet, baseURL+"/admin/stats", w.GetStats)
	router.Add(http.MethodGet, baseURL+"/admin/users", w.ListUsers)
	router.Add(http.MethodPut, baseURL+"/admin/users/:userId/role", w.ChangeUserRole)
	router.Add(http.MethodDelete, baseURL+"/admin/orders/:orderId", w.DeleteOrder)
}
