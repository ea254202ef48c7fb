package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magus-warrior/80-s-webbuilder/internal/blocks"
)

func newBlocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocks",
		Short: "List the built-in block library",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", styled(sectionStyle, "Built-in blocks", out))
			for _, name := range blocks.Builtin() {
				tmpl, _ := blocks.Lookup(name)
				fmt.Fprintf(out, "  %-12s %s\n", name, styled(mutedStyle, string(tmpl.Type), out))
			}
			return nil
		},
	}

	return cmd
}
