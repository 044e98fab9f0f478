package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/streamhtml/audit"
)

func newAuditCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "audit <file>",
		Short: "Report the escaping contexts of an HTML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			report, err := audit.Document(f)
			if err != nil {
				return fmt.Errorf("audit %s: %w", args[0], err)
			}

			return encode(cmd.OutOrStdout(), outputFormat, report, report.WriteText)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, yaml)")

	return cmd
}
