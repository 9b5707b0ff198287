package client_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/client"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() client.Details {
	return client.Details{
		Name:       "Setor A",
		Code:       "adm-01",
		SectorName: "Setor Administrativo",
		Contact:    client.Contact{Email: "adm@example.com", State: "sp"},
		Active:     true,
	}
}

func supervisor(t *testing.T, id string) kernel.Snapshot {
	t.Helper()
	s, err := kernel.NewSnapshot(kernel.MustIDFromString(id), "Supervisor "+id)
	require.NoError(t, err)
	return s
}

func TestNewClient(t *testing.T) {
	t.Run("should normalize details", func(t *testing.T) {
		c, err := client.NewClient(kernel.NewID(), validDetails(), time.Now())

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "ADM-01", c.Code())
		assert.Equal(t, "SP", c.Contact().State)
		_, assigned := c.Supervisor()
		assert.False(t, assigned)
	})

	t.Run("should require name and code", func(t *testing.T) {
		_, err := client.NewClient(kernel.NewID(), client.Details{}, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "code")
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		details := validDetails()
		details.Contact.Email = "not-an-email"

		_, err := client.NewClient(kernel.NewID(), details, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestClient_DisplayName(t *testing.T) {
	c, err := client.NewClient(kernel.NewID(), validDetails(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Setor Administrativo", c.DisplayName())

	details := validDetails()
	details.SectorName = ""
	require.NoError(t, c.Update(details))
	assert.Equal(t, "Setor A", c.DisplayName())
}

func TestClient_IsAvailableTo(t *testing.T) {
	s1 := supervisor(t, "s1")

	t.Run("active and owned", func(t *testing.T) {
		c, err := client.RestoreClient(kernel.NewID(), validDetails(), s1, time.Now())
		require.NoError(t, err)

		assert.True(t, c.IsAvailableTo(s1.ID()))
		assert.False(t, c.IsAvailableTo(kernel.MustIDFromString("s2")))
	})

	t.Run("inactive client is not available", func(t *testing.T) {
		details := validDetails()
		details.Active = false
		c, err := client.RestoreClient(kernel.NewID(), details, s1, time.Now())
		require.NoError(t, err)

		assert.False(t, c.IsAvailableTo(s1.ID()))
		assert.True(t, c.IsOwnedBy(s1.ID()))
	})

	t.Run("unassigned client is not available", func(t *testing.T) {
		c, err := client.RestoreClient(kernel.NewID(), validDetails(), s1, time.Now())
		require.NoError(t, err)

		c.Unassign()

		assert.False(t, c.IsAvailableTo(s1.ID()))
		assert.False(t, c.IsOwnedBy(s1.ID()))
	})
}

func TestClient_AssignSupervisor(t *testing.T) {
	c, err := client.NewClient(kernel.NewID(), validDetails(), time.Now())
	require.NoError(t, err)

	require.ErrorIs(t, c.AssignSupervisor(kernel.Snapshot{}), errs.ErrValueIsRequired)

	require.NoError(t, c.AssignSupervisor(supervisor(t, "s1")))
	owner, assigned := c.Supervisor()
	assert.True(t, assigned)
	assert.Equal(t, "s1", owner.ID().String())
}
