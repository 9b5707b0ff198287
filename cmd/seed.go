package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"procurement/internal/adapters/out/postgres"
	"procurement/internal/core/domain/model/client"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/product"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var standardClients = []client.Details{
	{Name: "Setor Administrativo", Code: "ADM-01", Active: true},
	{Name: "Setor de Limpeza", Code: "LMP-01", Active: true},
	{Name: "Setor de Manutenção", Code: "MNT-01", Active: true},
	{Name: "Cozinha/Refeitório", Code: "COZ-01", Active: true},
	{Name: "Recepção", Code: "RCP-01", Active: true},
}

var standardProducts = []product.Details{
	{Name: "Detergente Neutro 5L", Code: "LMP-001", Unit: "UN", Category: "Limpeza", Stock: 50, Active: true},
	{Name: "Desinfetante 2L", Code: "LMP-002", Unit: "UN", Category: "Limpeza", Stock: 30, Active: true},
	{Name: "Álcool Gel 500ml", Code: "LMP-003", Unit: "UN", Category: "Limpeza", Stock: 100, Active: true},
	{Name: "Papel Toalha (pacote)", Code: "LMP-004", Unit: "CX", Category: "Limpeza", Stock: 25, Active: true},
	{Name: "Sabonete Líquido 1L", Code: "LMP-005", Unit: "UN", Category: "Limpeza", Stock: 40, Active: true},
	{Name: "Saco de Lixo 100L", Code: "LMP-006", Unit: "CX", Category: "Limpeza", Stock: 20, Active: true},
	{Name: "Luva de Látex (par)", Code: "EPI-001", Unit: "CX", Category: "EPI", Stock: 150, Active: true},
	{Name: "Pano de Limpeza", Code: "LMP-007", Unit: "UN", Category: "Limpeza", Stock: 80, Active: true},
}

// SeedResult counts the records created by Seed.
type SeedResult struct {
	ClientsAdded  int
	ProductsAdded int
}

// Seed inserts the standard sectors and cleaning products. Records whose code
// already exists are left untouched, so running it twice is harmless.
func Seed(ctx context.Context, uow ports.UnitOfWork, now time.Time) (SeedResult, error) {
	var result SeedResult

	for _, details := range standardClients {
		c, err := client.NewClient(kernel.NewID(), details, now)
		if err != nil {
			return result, err
		}
		added, err := skipDuplicate(uow.ClientRepository().Add(ctx, c))
		if err != nil {
			return result, fmt.Errorf("seed client %s: %w", details.Code, err)
		}
		if added {
			result.ClientsAdded++
		}
	}

	for _, details := range standardProducts {
		details.Price = decimal.Zero
		p, err := product.NewProduct(kernel.NewID(), details, now)
		if err != nil {
			return result, err
		}
		added, err := skipDuplicate(uow.ProductRepository().Add(ctx, p))
		if err != nil {
			return result, fmt.Errorf("seed product %s: %w", details.Code, err)
		}
		if added {
			result.ProductsAdded++
		}
	}

	return result, nil
}

// skipDuplicate treats a duplicate code as an existing record.
func skipDuplicate(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errs.ErrValueIsInvalid):
		return false, nil
	default:
		return false, err
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the standard sectors and cleaning products",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, logger, err := bootstrap()
			if err != nil {
				return err
			}
			db, err := openDatabase(config, logger)
			if err != nil {
				return err
			}
			defer closeDatabase(db, logger)

			result, err := Seed(cmd.Context(), postgres.NewGormUnitOfWorkFactory(db).Create(), time.Now())
			if err != nil {
				return err
			}
			logger.Info("Seed finished", "clients_added", result.ClientsAdded, "products_added", result.ProductsAdded)
			return nil
		},
	}
}
