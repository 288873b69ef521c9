package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/SscSPs/restaurant_ledger/internal/core/domain"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var tabFlag string

	cmd := &cobra.Command{
		Use:   "import <file>...",
		Short: "Store new rows from bank, credit-card or invoice exports",
		Long: `import reads each file, detects its export format and stores every row
that is not already in the ledger. Files are processed in order and the
command stops at the first file that fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, ok := domain.ParseTab(tabFlag)
			if !ok {
				return fmt.Errorf("--tab must be one of invoice, ledger, credit_card")
			}

			ctx, svcs, closeFn, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				result, err := svcs.Ingest.ProcessUpload(ctx, content, filepath.Base(path), tab)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tabFlag, "tab", "", "Expected tab (invoice, ledger or credit_card)")
	return cmd
}
