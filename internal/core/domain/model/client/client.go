// Package client models the sectors orders are placed for. Each sector is
// owned by at most one supervisor.
package client

import (
	"errors"
	"strings"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client was not built by NewClient or RestoreClient.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Contact groups the optional contact and address fields of a sector.
type Contact struct {
	Phone        string
	Email        string
	Address      string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
}

// Details are the admin-editable attributes of a client.
type Details struct {
	Name       string
	Code       string
	SectorName string
	Contact    Contact
	Active     bool
}

// Client is a sector that supervisors place orders for.
type Client struct {
	id         kernel.ID
	details    Details
	supervisor kernel.Snapshot
	createdAt  time.Time

	isConstructed bool
}

// NewClient creates an unassigned client.
func NewClient(id kernel.ID, details Details, createdAt time.Time) (*Client, error) {
	c := &Client{createdAt: createdAt.UTC(), isConstructed: true}
	if err := errors.Join(id.Validate(), c.setDetails(details)); err != nil {
		return nil, err
	}
	c.id = id
	return c, nil
}

// RestoreClient rebuilds a stored client. A zero supervisor snapshot means unassigned.
func RestoreClient(id kernel.ID, details Details, supervisor kernel.Snapshot, createdAt time.Time) (*Client, error) {
	c, err := NewClient(id, details, createdAt)
	if err != nil {
		return nil, err
	}
	if !supervisor.IsZero() {
		if err = c.AssignSupervisor(supervisor); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

func (c *Client) ID() kernel.ID {
	return c.id
}

func (c *Client) Name() string {
	return c.details.Name
}

func (c *Client) Code() string {
	return c.details.Code
}

func (c *Client) SectorName() string {
	return c.details.SectorName
}

// DisplayName is the name snapshotted into orders: the sector name when set,
// the client name otherwise.
func (c *Client) DisplayName() string {
	if c.details.SectorName != "" {
		return c.details.SectorName
	}
	return c.details.Name
}

func (c *Client) Contact() Contact {
	return c.details.Contact
}

func (c *Client) Details() Details {
	return c.details
}

func (c *Client) IsActive() bool {
	return c.details.Active
}

func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

// Supervisor returns the owning supervisor and whether one is assigned.
func (c *Client) Supervisor() (kernel.Snapshot, bool) {
	return c.supervisor, !c.supervisor.IsZero()
}

// IsOwnedBy reports whether the client is assigned to the supervisor,
// regardless of its active flag.
func (c *Client) IsOwnedBy(supervisorID kernel.ID) bool {
	return !c.supervisor.IsZero() && c.supervisor.ID().IsEqual(supervisorID)
}

// IsAvailableTo reports whether the supervisor may place orders for this client.
func (c *Client) IsAvailableTo(supervisorID kernel.ID) bool {
	return c.details.Active && c.IsOwnedBy(supervisorID)
}

// Update replaces the editable attributes.
func (c *Client) Update(details Details) error {
	return c.setDetails(details)
}

// AssignSupervisor sets the owning supervisor.
func (c *Client) AssignSupervisor(supervisor kernel.Snapshot) error {
	if err := supervisor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supervisor", err)
	}
	c.supervisor = supervisor
	return nil
}

// Unassign leaves the client without a supervisor.
func (c *Client) Unassign() {
	c.supervisor = kernel.Snapshot{}
}

func (c *Client) setDetails(details Details) error {
	details.Name = strings.TrimSpace(details.Name)
	details.Code = strings.ToUpper(strings.TrimSpace(details.Code))
	details.SectorName = strings.TrimSpace(details.SectorName)
	details.Contact.Email = strings.TrimSpace(details.Contact.Email)
	details.Contact.State = strings.ToUpper(strings.TrimSpace(details.Contact.State))

	var detailErrs []error
	if details.Name == "" {
		detailErrs = append(detailErrs, errs.NewValueIsRequiredError("name"))
	}
	if details.Code == "" {
		detailErrs = append(detailErrs, errs.NewValueIsRequiredError("code"))
	}
	if e := details.Contact.Email; e != "" && !strings.Contains(e, "@") {
		detailErrs = append(detailErrs, errs.NewValueIsInvalidError("email"))
	}
	if err := errors.Join(detailErrs...); err != nil {
		return err
	}

	c.details = details
	return nil
}
