package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"
	"golang.org/x/text/transform"

	"github.com/dhamidi/streamhtml/entity"
)

func newDecodeCmd() *cobra.Command {
	var reference bool

	cmd := &cobra.Command{
		Use:   "decode [text...]",
		Short: "Decode HTML character references in text or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if !reference {
				r := transform.NewReader(inputReader(cmd, args), entity.NewTransformer())
				if _, err := io.Copy(out, r); err != nil {
					return fmt.Errorf("decode: %w", err)
				}
				return nil
			}

			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "streamhtml: %s\n", entity.DecodeString(text))
			fmt.Fprintf(out, "html5:      %s\n", html.UnescapeString(text))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reference, "reference", false, "also print the HTML5 decoding for comparison")

	return cmd
}
