package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/streamhtml/htmlutil"
)

func newEscapeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "escape [text...]",
		Short: "Escape text for a single quoted JavaScript string using only ASCII",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), htmlutil.EncodeStringForASCII(text))
			return nil
		},
	}
}
