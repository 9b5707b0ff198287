package kernel

import (
	"errors"
	"strings"

	"procurement/internal/pkg/errs"
)

// Snapshot is a denormalized reference: an identifier plus the display name it
// had when the snapshot was taken.
type Snapshot struct {
	id   ID
	name string
}

// NewSnapshot validates and creates a Snapshot. The name is trimmed.
func NewSnapshot(id ID, name string) (Snapshot, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{id: id, name: name}, nil
}

func (s Snapshot) ID() ID {
	return s.id
}

func (s Snapshot) Name() string {
	return s.name
}

// IsZero reports whether the snapshot is empty.
func (s Snapshot) IsZero() bool {
	return s.id.IsZero()
}

// Validate checks that the snapshot was built via NewSnapshot.
func (s Snapshot) Validate() error {
	if s.id.IsZero() || s.name == "" {
		return errs.NewValueIsRequiredError("snapshot")
	}
	return nil
}
