package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the slash commands the bot registers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, mod := range newRegistry().Modules() {
			for _, c := range mod.Commands() {
				fmt.Fprintf(w, "/%s\t%s\t%s\n", c.Name, mod.Name(), c.Description)
			}
		}
		return w.Flush()
	},
}
