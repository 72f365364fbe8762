// Package cli implements workshopctl, the operator tool for store
// maintenance and quick invoice lookups.
package cli

import (
	"context"

	"workshop_xpto/internal/config"
	"workshop_xpto/internal/infrastructure/database"
	"workshop_xpto/internal/logger"
	"workshop_xpto/internal/usecase"

	"github.com/spf13/cobra"
)

// App is what the commands operate on.
type App struct {
	Stores   *database.Stores
	Catalog  usecase.ICatalogUseCase
	Invoices usecase.IInvoiceUseCase
	Log      *logger.Logger
}

// NewApp opens the configured store and builds the usecases on top of it.
func NewApp(ctx context.Context, cfg *config.Configuration, log *logger.Logger) (*App, error) {
	stores, err := database.Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return &App{
		Stores:   stores,
		Catalog:  usecase.NewCatalogUseCase(stores.Catalog, log),
		Invoices: usecase.NewInvoiceUseCase(stores.WorkOrders, stores.Pricing, cfg.Billing.Currency, log),
		Log:      log,
	}, nil
}

func (a *App) Close() {
	if a.Stores != nil {
		a.Stores.Close()
	}
}

// NewRootCmd builds the command tree. load is called lazily by the commands
// that need a store, so --help never connects.
func NewRootCmd(load func(ctx context.Context) (*App, error)) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "workshopctl",
		Short: "Maintenance tool for the workshop work order service",
		Long: `workshopctl prepares the configured store and inspects its data.

Configuration is read the same way as the API: config.yaml plus WORKSHOP_*
environment variables.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newMigrateCmd(load))
	rootCmd.AddCommand(newSeedCatalogCmd(load))
	rootCmd.AddCommand(newInvoiceCmd(load))
	rootCmd.AddCommand(newNextIDCmd(load))
	return rootCmd
}
