package http

import (
	"time"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/cart"
	"procurement/internal/core/domain/model/client"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Profile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

type User struct {
	Profile
	CreatedAt time.Time `json:"createdAt"`
}

type Stats struct {
	Products int64 `json:"products"`
	Clients  int64 `json:"clients"`
	Orders   int64 `json:"orders"`
	Users    int64 `json:"users"`
}

type ChangeUserRole struct {
	Role string `json:"role"`
}

type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Code     string          `json:"code"`
	Unit     string          `json:"unit"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl,omitempty"`
	Active   bool            `json:"active"`
}

type ProductInput struct {
	Name     string          `json:"name"`
	Code     string          `json:"code"`
	Unit     string          `json:"unit"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl"`
	Active   *bool           `json:"active"`
}

type Client struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Code           string `json:"code"`
	SectorName     string `json:"sectorName,omitempty"`
	SupervisorID   string `json:"supervisorId,omitempty"`
	SupervisorName string `json:"supervisorName,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"address,omitempty"`
	Neighborhood   string `json:"neighborhood,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	ZipCode        string `json:"zipCode,omitempty"`
	Active         bool   `json:"active"`
}

type ClientInput struct {
	Name         string `json:"name"`
	Code         string `json:"code"`
	SectorName   string `json:"sectorName"`
	SupervisorID string `json:"supervisorId"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Active       *bool  `json:"active"`
}

type CartLine struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

type Cart struct {
	Items         []CartLine `json:"items"`
	TotalQuantity int        `json:"totalQuantity"`
}

type AddCartItem struct {
	ProductID string `json:"productId"`
}

type SetCartItemQuantity struct {
	Quantity int `json:"quantity"`
}

type SubmitOrder struct {
	ClientID string `json:"clientId"`
	Note     string `json:"note"`
}

type Created struct {
	ID string `json:"id"`
}

type ApprovedItem struct {
	ProductID        string `json:"productId"`
	ApprovedQuantity int    `json:"approvedQuantity"`
}

type ApproveOrder struct {
	Items []ApprovedItem `json:"items"`
}

type OrderItem struct {
	ProductID        string `json:"productId"`
	ProductName      string `json:"productName"`
	Quantity         int    `json:"quantity"`
	ApprovedQuantity *int   `json:"approvedQuantity,omitempty"`
}

type Order struct {
	ID             string      `json:"id"`
	SupervisorID   string      `json:"supervisorId"`
	SupervisorName string      `json:"supervisorName"`
	ClientID       string      `json:"clientId"`
	ClientName     string      `json:"clientName"`
	Status         string      `json:"status"`
	Note           string      `json:"note,omitempty"`
	Items          []OrderItem `json:"items"`
	CreatedAt      time.Time   `json:"createdAt"`
	ApprovedAt     *time.Time  `json:"approvedAt,omitempty"`
	CompletedAt    *time.Time  `json:"completedAt,omitempty"`
}

func toProfile(p user.Profile) Profile {
	return Profile{
		ID:          p.ID().String(),
		Email:       p.Email(),
		DisplayName: p.DisplayName(),
		Role:        p.Role().String(),
	}
}

func toUser(p user.Profile) User {
	return User{Profile: toProfile(p), CreatedAt: p.CreatedAt()}
}

func toProduct(p *product.Product) Product {
	return Product{
		ID:       p.ID().String(),
		Name:     p.Name(),
		Code:     p.Code(),
		Unit:     p.Unit(),
		Category: p.Category(),
		Stock:    p.Stock(),
		Price:    p.Price(),
		ImageURL: p.ImageURL(),
		Active:   p.IsActive(),
	}
}

func productFromResponse(p queries.ProductResponse) Product {
	return Product{
		ID:       p.ID.String(),
		Name:     p.Name,
		Code:     p.Code,
		Unit:     p.Unit,
		Category: p.Category,
		Stock:    p.Stock,
		Price:    p.Price,
		ImageURL: p.ImageURL,
		Active:   p.Active,
	}
}

func (in ProductInput) details() product.Details {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return product.Details{
		Name:     in.Name,
		Code:     in.Code,
		Unit:     in.Unit,
		Category: in.Category,
		Stock:    in.Stock,
		Price:    in.Price,
		ImageURL: in.ImageURL,
		Active:   active,
	}
}

func toClient(c *client.Client) Client {
	contact := c.Contact()
	resp := Client{
		ID:           c.ID().String(),
		Name:         c.Name(),
		Code:         c.Code(),
		SectorName:   c.SectorName(),
		Phone:        contact.Phone,
		Email:        contact.Email,
		Address:      contact.Address,
		Neighborhood: contact.Neighborhood,
		City:         contact.City,
		State:        contact.State,
		ZipCode:      contact.ZipCode,
		Active:       c.IsActive(),
	}
	if supervisor, ok := c.Supervisor(); ok {
		resp.SupervisorID = supervisor.ID().String()
		resp.SupervisorName = supervisor.Name()
	}
	return resp
}

func clientFromResponse(c queries.ClientResponse) Client {
	return Client{
		ID:             c.ID.String(),
		Name:           c.Name,
		Code:           c.Code,
		SectorName:     c.SectorName,
		SupervisorID:   c.SupervisorID.String(),
		SupervisorName: c.SupervisorName,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		Neighborhood:   c.Neighborhood,
		City:           c.City,
		State:          c.State,
		ZipCode:        c.ZipCode,
		Active:         c.Active,
	}
}

func (in ClientInput) details() client.Details {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return client.Details{
		Name:       in.Name,
		Code:       in.Code,
		SectorName: in.SectorName,
		Contact: client.Contact{
			Phone:        in.Phone,
			Email:        in.Email,
			Address:      in.Address,
			Neighborhood: in.Neighborhood,
			City:         in.City,
			State:        in.State,
			ZipCode:      in.ZipCode,
		},
		Active: active,
	}
}

func toCart(c *cart.Cart) Cart {
	resp := Cart{Items: make([]CartLine, 0, c.Len())}
	for _, line := range c.Lines() {
		resp.Items = append(resp.Items, CartLine{
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
		})
		resp.TotalQuantity += line.Quantity
	}
	return resp
}

func cartFromResponse(c queries.CartResponse) Cart {
	resp := Cart{Items: make([]CartLine, 0, len(c.Lines)), TotalQuantity: c.TotalQuantity}
	for _, line := range c.Lines {
		resp.Items = append(resp.Items, CartLine{
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
		})
	}
	return resp
}

func toOrder(o *order.Order) Order {
	resp := Order{
		ID:             o.ID().String(),
		SupervisorID:   o.Supervisor().ID().String(),
		SupervisorName: o.Supervisor().Name(),
		ClientID:       o.Client().ID().String(),
		ClientName:     o.Client().Name(),
		Status:         o.Status().String(),
		Note:           o.Note(),
		Items:          make([]OrderItem, 0, len(o.Items())),
		CreatedAt:      o.CreatedAt(),
		ApprovedAt:     o.ApprovedAt(),
		CompletedAt:    o.CompletedAt(),
	}
	for _, item := range o.Items() {
		line := OrderItem{
			ProductID:   item.ProductID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
		}
		if approved, ok := item.ApprovedQuantity(); ok {
			line.ApprovedQuantity = &approved
		}
		resp.Items = append(resp.Items, line)
	}
	return resp
}

func orderFromResponse(o queries.OrderResponse) Order {
	resp := Order{
		ID:             o.ID.String(),
		SupervisorID:   o.SupervisorID.String(),
		SupervisorName: o.SupervisorName,
		ClientID:       o.ClientID.String(),
		ClientName:     o.ClientName,
		Status:         o.Status.String(),
		Note:           o.Note,
		Items:          make([]OrderItem, 0, len(o.Items)),
		CreatedAt:      o.CreatedAt,
		ApprovedAt:     o.ApprovedAt,
		CompletedAt:    o.CompletedAt,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, OrderItem{
			ProductID:        item.ProductID.String(),
			ProductName:      item.ProductName,
			Quantity:         item.Quantity,
			ApprovedQuantity: item.ApprovedQuantity,
		})
	}
	return resp
}

func userFromResponse(u queries.UserResponse) User {
	return User{
		Profile: Profile{
			ID:          u.ID.String(),
			Email:       u.Email,
			DisplayName: u.DisplayName,
			Role:        u.Role.String(),
		},
		CreatedAt: u.CreatedAt,
	}
}
