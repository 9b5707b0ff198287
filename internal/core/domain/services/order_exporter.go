package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
)

// exportIDPrefixLength is how many characters of the order ID go into the file name.
const exportIDPrefixLength = 8

// ExportHeader is the column header row of an order export.
var ExportHeader = []string{"Produto", "Quantidade Solicitada", "Quantidade Aprovada"}

// OrderExport is the rendered file handed to purchasing.
type OrderExport struct {
	FileName string
	Content  []byte
}

// OrderExporter renders approved and completed orders as CSV:
//
//	Cliente: <client>
//	Supervisor: <supervisor>
//
//	Produto,Quantidade Solicitada,Quantidade Aprovada
//	<product>,<requested>,<approved>
//
// Values containing commas, quotes or line breaks are quoted.
type OrderExporter struct{}

// NewOrderExporter creates an OrderExporter.
func NewOrderExporter() OrderExporter {
	return OrderExporter{}
}

// Export renders o. It has no side effects.
func (OrderExporter) Export(o *order.Order) (OrderExport, error) {
	if err := o.Validate(); err != nil {
		return OrderExport{}, err
	}
	if s := o.Status(); s != order.Approved && s != order.Completed {
		return OrderExport{}, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s orders cannot be exported", s))
	}

	records := [][]string{
		{"Cliente: " + o.Client().Name()},
		{"Supervisor: " + o.Supervisor().Name()},
		{""},
		ExportHeader,
	}
	for _, item := range o.Items() {
		records = append(records, []string{
			item.ProductName(),
			strconv.Itoa(item.Quantity()),
			strconv.Itoa(item.EffectiveApprovedQuantity()),
		})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return OrderExport{}, fmt.Errorf("write order export: %w", err)
	}

	return OrderExport{
		FileName: ExportFileName(o),
		Content:  buf.Bytes(),
	}, nil
}

// ExportFileName returns pedido_<client>_<id prefix>.csv, with whitespace runs
// and path separators in the client name replaced by underscores.
func ExportFileName(o *order.Order) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return ' '
		}
		return r
	}, o.Client().Name())

	return fmt.Sprintf("pedido_%s_%s.csv", strings.Join(strings.Fields(name), "_"), o.ID().Short(exportIDPrefixLength))
}
