// Package product models catalog entries offered to supervisors.
package product

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultUnit is used when no unit of measure is given.
const DefaultUnit = "UN"

// ErrProductIsNotConstructed is returned when a Product was not built by NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Details are the admin-editable attributes of a product.
type Details struct {
	Name     string
	Code     string
	Unit     string
	Category string
	Stock    int
	Price    decimal.Decimal
	ImageURL string
	Active   bool
}

// Product is a catalog entry. Orders only keep a snapshot of its name.
type Product struct {
	id        kernel.ID
	details   Details
	createdAt time.Time

	isConstructed bool
}

// NewProduct validates and creates a product.
func NewProduct(id kernel.ID, details Details, createdAt time.Time) (*Product, error) {
	p := &Product{createdAt: createdAt.UTC(), isConstructed: true}
	if err := errors.Join(id.Validate(), p.setDetails(details)); err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.ID {
	return p.id
}

func (p *Product) Name() string {
	return p.details.Name
}

func (p *Product) Code() string {
	return p.details.Code
}

func (p *Product) Unit() string {
	return p.details.Unit
}

func (p *Product) Category() string {
	return p.details.Category
}

func (p *Product) Stock() int {
	return p.details.Stock
}

func (p *Product) Price() decimal.Decimal {
	return p.details.Price
}

func (p *Product) ImageURL() string {
	return p.details.ImageURL
}

func (p *Product) IsActive() bool {
	return p.details.Active
}

func (p *Product) Details() Details {
	return p.details
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// Update replaces the editable attributes.
func (p *Product) Update(details Details) error {
	return p.setDetails(details)
}

func (p *Product) setDetails(details Details) error {
	details.Name = strings.TrimSpace(details.Name)
	details.Code = strings.ToUpper(strings.TrimSpace(details.Code))
	details.Unit = strings.ToUpper(strings.TrimSpace(details.Unit))
	details.Category = strings.TrimSpace(details.Category)
	details.ImageURL = strings.TrimSpace(details.ImageURL)
	if details.Unit == "" {
		details.Unit = DefaultUnit
	}

	var detailErrs []error
	if details.Name == "" {
		detailErrs = append(detailErrs, errs.NewValueIsRequiredError("name"))
	}
	if details.Code == "" {
		detailErrs = append(detailErrs, errs.NewValueIsRequiredError("code"))
	}
	if details.Stock < 0 {
		detailErrs = append(detailErrs, errs.NewValueIsInvalidErrorWithCause(
			"stock", fmt.Errorf("%d is negative", details.Stock)))
	}
	if details.Price.IsNegative() {
		detailErrs = append(detailErrs, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%s is negative", details.Price)))
	}
	if details.ImageURL != "" {
		if u, err := url.Parse(details.ImageURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			detailErrs = append(detailErrs, errs.NewValueIsInvalidError("imageUrl"))
		}
	}
	if err := errors.Join(detailErrs...); err != nil {
		return err
	}

	details.Price = details.Price.Round(2)
	p.details = details
	return nil
}
