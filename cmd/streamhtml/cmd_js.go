package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/streamhtml/audit"
)

func newJSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "js [source...]",
		Short: "Tell regular expression literals from divisions in JavaScript",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := inputText(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, s := range audit.ScanJavascript(src) {
				if s.Regexp {
					fmt.Fprintf(out, "%d\tregexp\t/%s/\n", s.Offset, s.Literal)
				} else {
					fmt.Fprintf(out, "%d\tdivision\n", s.Offset)
				}
			}
			return nil
		},
	}
}
