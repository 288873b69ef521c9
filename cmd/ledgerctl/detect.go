package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/SscSPs/restaurant_ledger/internal/ingest"
	"github.com/spf13/cobra"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file>...",
		Short: "Classify export files without storing anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := detectFile(cmd.OutOrStdout(), path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func detectFile(w io.Writer, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	name := filepath.Base(path)

	table, err := ingest.ReadTable(content, name)
	if err != nil {
		return err
	}
	f, err := ingest.Classify(table, name)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s: %s (tab %s, %d rows)\n", name, f.Name, f.Tab, len(table.Rows))
	return err
}
