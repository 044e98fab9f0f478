package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/streamhtml/htmlutil"
)

func newMetaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "meta <content>",
		Short: "Find the URL in a meta refresh content value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, kind := htmlutil.ContentAttributeURL(args[0])
			if kind == htmlutil.MetaRedirectURL {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", kind, url)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), kind)
			return nil
		},
	}
}
