package commands

import (
	"errors"
	"strings"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand turns the actor's cart into a pending order for a client.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand(session, clientID, "entregar na portaria")
//	if err != nil {
//	    return err // no client selected
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type SubmitOrderCommand struct {
	actor    user.Profile
	clientID kernel.ID
	note     string

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand validates that a client has been selected.
func NewSubmitOrderCommand(actor user.Profile, clientID kernel.ID, note string) (SubmitOrderCommand, error) {
	if err := errors.Join(validateActor(actor), validateID("clientId", clientID)); err != nil {
		return SubmitOrderCommand{}, err
	}

	return SubmitOrderCommand{
		actor:    actor,
		clientID: clientID,
		note:     strings.TrimSpace(note),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

func (c SubmitOrderCommand) Actor() user.Profile {
	return c.actor
}

func (c SubmitOrderCommand) ClientID() kernel.ID {
	return c.clientID
}

func (c SubmitOrderCommand) Note() string {
	return c.note
}
