package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/restaurant_ledger/internal/adapters/database/pgsql"
	portssvc "github.com/SscSPs/restaurant_ledger/internal/core/ports/services"
	"github.com/SscSPs/restaurant_ledger/internal/core/services"
	"github.com/SscSPs/restaurant_ledger/internal/middleware"
	"github.com/SscSPs/restaurant_ledger/internal/platform/config"
	"github.com/SscSPs/restaurant_ledger/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var verbose bool

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Restaurant ledger command line",
		Long: `ledgerctl works against the same database as the ledger server.

Example Usage:
  ledgerctl detect statement.csv             # Show which export a file is
  ledgerctl import --tab ledger truist.csv   # Store new rows from a bank export
  ledgerctl summary --month 2024-01 -o yaml  # Print one month of totals`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			decimal.MarshalJSONWithoutQuotes = true
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	rootCmd.AddCommand(newDetectCmd(), newImportCmd(), newSummaryCmd())
	return rootCmd
}

// openServices connects to the configured database and builds the service
// container. The returned func releases the pool.
func openServices(ctx context.Context) (context.Context, *portssvc.ServiceContainer, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return ctx, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return ctx, nil, nil, err
	}

	ctx = middleware.WithLogger(ctx, slog.Default())
	return ctx, services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool)), pool.Close, nil
}
