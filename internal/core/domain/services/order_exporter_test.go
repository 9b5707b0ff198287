package services_test

import (
	"strings"
	"testing"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, id, clientName string, items ...order.Item) *order.Order {
	t.Helper()
	supervisor, err := kernel.NewSnapshot(kernel.MustIDFromString("s1"), "Maria Souza")
	require.NoError(t, err)
	client, err := kernel.NewSnapshot(kernel.MustIDFromString("c1"), clientName)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.MustIDFromString(id), supervisor, client, items, "", time.Now())
	require.NoError(t, err)
	return o
}

func item(t *testing.T, productID, name string, quantity int) order.Item {
	t.Helper()
	i, err := order.NewItem(kernel.MustIDFromString(productID), name, quantity)
	require.NoError(t, err)
	return i
}

func TestOrderExporter_Export(t *testing.T) {
	exporter := services.NewOrderExporter()

	t.Run("should render header block and rows", func(t *testing.T) {
		o := newOrder(t, "0f3c2a9e-aaaa-bbbb-cccc-000000000001", "Setor A",
			item(t, "p1", "Detergente", 1), item(t, "p2", "Desinfetante", 4))
		require.NoError(t, o.Approve(map[kernel.ID]int{kernel.MustIDFromString("p2"): 2}, time.Now()))

		export, err := exporter.Export(o)

		require.NoError(t, err)
		assert.Equal(t, "pedido_Setor_A_0f3c2a9e.csv", export.FileName)
		assert.Equal(t,
			"Cliente: Setor A\n"+
				"Supervisor: Maria Souza\n"+
				"\n"+
				"Produto,Quantidade Solicitada,Quantidade Aprovada\n"+
				"Detergente,1,1\n"+
				"Desinfetante,4,2\n",
			string(export.Content))
	})

	t.Run("should quote values containing commas", func(t *testing.T) {
		o := newOrder(t, "o2", "Setor B", item(t, "p1", "Luva de Látex, par", 3))
		require.NoError(t, o.Approve(nil, time.Now()))

		export, err := exporter.Export(o)

		require.NoError(t, err)
		assert.Contains(t, string(export.Content), "\"Luva de Látex, par\",3,3\n")
	})

	t.Run("should export completed orders", func(t *testing.T) {
		o := newOrder(t, "o3", "Setor C", item(t, "p1", "Detergente", 1))
		require.NoError(t, o.Approve(nil, time.Now()))
		require.NoError(t, o.Complete(time.Now()))

		_, err := exporter.Export(o)

		require.NoError(t, err)
	})

	t.Run("should refuse pending and rejected orders", func(t *testing.T) {
		pending := newOrder(t, "o4", "Setor D", item(t, "p1", "Detergente", 1))
		rejected := newOrder(t, "o5", "Setor D", item(t, "p1", "Detergente", 1))
		require.NoError(t, rejected.Reject())

		for _, o := range []*order.Order{pending, rejected} {
			_, err := exporter.Export(o)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestExportFileName(t *testing.T) {
	o := newOrder(t, "abc", "Cozinha/Refeitório  Central", item(t, "p1", "Detergente", 1))

	name := services.ExportFileName(o)

	assert.Equal(t, "pedido_Cozinha_Refeitório_Central_abc.csv", name)
	assert.False(t, strings.ContainsAny(name, "/\\ "))
}
