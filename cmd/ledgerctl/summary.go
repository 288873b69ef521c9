package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/SscSPs/restaurant_ledger/internal/dto"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newSummaryCmd() *cobra.Command {
	var month, output string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, svcs, closeFn, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			s, err := svcs.Dashboard.Summary(ctx, month)
			if err != nil {
				return err
			}
			return writeSummary(cmd.OutOrStdout(), dto.ToDashboardSummaryResponse(s), output)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Limit to dates starting with this prefix (YYYY-MM)")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format: json or yaml")
	return cmd
}

func writeSummary(w io.Writer, s dto.DashboardSummaryResponse, format string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	switch format {
	case "json":
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		// JSON is a subset of YAML; going through a node keeps the key order.
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return err
		}
		blockStyle(&node)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q, expected json or yaml", format)
	}
}

// blockStyle clears the flow and quoting styles picked up from the JSON source.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
