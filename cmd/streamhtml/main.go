package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "streamhtml",
		Short: "Character level HTML and JavaScript context tools",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newEscapeCmd())
	rootCmd.AddCommand(newMetaCmd())
	rootCmd.AddCommand(newJSCmd())
	rootCmd.AddCommand(newAuditCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
