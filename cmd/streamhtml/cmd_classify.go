package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhamidi/streamhtml/htmlutil"
)

type classification struct {
	Name       string `json:"name" yaml:"name"`
	Kind       string `json:"kind" yaml:"kind"`
	Javascript bool   `json:"javascript" yaml:"javascript"`
	Style      bool   `json:"style" yaml:"style"`
	URI        bool   `json:"uri" yaml:"uri"`
}

func newClassifyCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "classify <attribute>...",
		Short: "Show how attribute values are interpreted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []classification
			for _, arg := range args {
				name := strings.ToLower(arg)
				result = append(result, classification{
					Name:       name,
					Kind:       htmlutil.ClassifyAttribute(name).String(),
					Javascript: htmlutil.IsAttributeJavascript(name),
					Style:      htmlutil.IsAttributeStyle(name),
					URI:        htmlutil.IsAttributeURI(name),
				})
			}

			return encode(cmd.OutOrStdout(), outputFormat, result, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, c := range result {
					fmt.Fprintf(tw, "%s\t%s\n", c.Name, c.Kind)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, yaml)")

	return cmd
}
