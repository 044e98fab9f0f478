package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// inputReader returns the arguments joined by spaces, or stdin when there
// are none.
func inputReader(cmd *cobra.Command, args []string) io.Reader {
	if len(args) > 0 {
		return strings.NewReader(strings.Join(args, " "))
	}
	return cmd.InOrStdin()
}

func inputText(cmd *cobra.Command, args []string) (string, error) {
	data, err := io.ReadAll(inputReader(cmd, args))
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
