package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFormatsCmd(a *app) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the registered formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if verbose {
				fmt.Fprintln(w, "NAME\tLABEL\tCASE\tPATTERN")
			} else {
				fmt.Fprintln(w, "NAME\tLABEL")
			}
			for _, f := range a.san.Registry().Formats() {
				if !verbose {
					fmt.Fprintf(w, "%s\t%s\n", f.Name, f.Label)
					continue
				}
				mode := "sensitive"
				if f.Rule.CaseInsensitive() {
					mode = "insensitive"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Name, f.Label, mode, f.Rule.String())
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include case mode and pattern")
	return cmd
}
