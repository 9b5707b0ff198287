package commands

import (
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/errs"
)

// ErrActorIsRequired is returned when a command is built without a resolved profile.
var ErrActorIsRequired = errs.NewValueIsRequiredError("actor")

func validateActor(actor user.Profile) error {
	if err := actor.Validate(); err != nil {
		return ErrActorIsRequired
	}
	return nil
}

func validateID(name string, id kernel.ID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
