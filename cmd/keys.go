package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zjrosen/tuinput/backend/teainput"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the field's key bindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, group := range teainput.DefaultKeyMap().FullHelp() {
			for _, b := range group {
				if !b.Enabled() {
					continue
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\n", strings.Join(b.Keys(), ", "), b.Help().Desc)
			}
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", "esc, ctrl+c", "quit")
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
