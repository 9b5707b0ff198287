package queries_test

import (
	"testing"
	"time"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(t *testing.T, id string, role user.Role) user.Profile {
	t.Helper()
	p, err := user.NewProfile(kernel.MustIDFromString(id), id+"@example.com", "User "+id, role, time.Now())
	require.NoError(t, err)
	return p
}

func TestNewListOrdersQuery(t *testing.T) {
	admin := newProfile(t, "a1", user.Admin)

	t.Run("should default the limit", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(admin, order.Unknown, "  setor  ", 0)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, queries.DefaultOrderListLimit, query.Limit())
		assert.Equal(t, "setor", query.Search())
		assert.Equal(t, order.Unknown, query.Status())
	})

	t.Run("should bound the limit", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(admin, order.Pending, "", queries.MaxOrderListLimit+1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = queries.NewListOrdersQuery(admin, order.Pending, "", -1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject an undefined status", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(admin, order.Status(42), "", 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require an actor", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(user.Profile{}, order.Pending, "", 10)
		require.ErrorIs(t, err, queries.ErrActorIsRequired)
	})
}

func TestNewListUsersQuery(t *testing.T) {
	admin := newProfile(t, "a1", user.Admin)

	query, err := queries.NewListUsersQuery(admin, user.UnknownRole)
	require.NoError(t, err)
	assert.Equal(t, user.UnknownRole, query.Role())

	_, err = queries.NewListUsersQuery(admin, user.Role(99))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetOrderQuery_RequiresOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(newProfile(t, "a1", user.Admin), kernel.ID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewExportOrderQuery(newProfile(t, "p1", user.Purchasing), kernel.ID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.GetCartQuery{}.Validate(), queries.ErrGetCartQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListClientsQuery{}.Validate(), queries.ErrListClientsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListAvailableClientsQuery{}.Validate(), queries.ErrListAvailableClientsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListCatalogQuery{}.Validate(), queries.ErrListCatalogQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListOrdersQuery{}.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ExportOrderQuery{}.Validate(), queries.ErrExportOrderQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListUsersQuery{}.Validate(), queries.ErrListUsersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetStatsQuery{}.Validate(), queries.ErrGetStatsQueryIsNotConstructed)
}

func TestNewGetStatsQuery(t *testing.T) {
	_, err := queries.NewGetStatsQuery(user.Profile{})
	require.ErrorIs(t, err, queries.ErrActorIsRequired)

	query, err := queries.NewGetStatsQuery(newProfile(t, "a1", user.Admin))
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewListStaleOrdersQuery(t *testing.T) {
	_, err := queries.NewListStaleOrdersQuery(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	cutoff := time.Date(2026, 3, 10, 12, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	query, err := queries.NewListStaleOrdersQuery(cutoff)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, cutoff.Equal(query.CreatedBefore()))
	assert.Equal(t, time.UTC, query.CreatedBefore().Location())

	require.ErrorIs(t, queries.ListStaleOrdersQuery{}.Validate(), queries.ErrListStaleOrdersQueryIsNotConstructed)
}
