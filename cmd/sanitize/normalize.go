package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/web3sanitizer/pkg/sanitizer"
)

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [input...]",
		Short: "Lowercase and trim inputs without validating them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachInput(a.stdin, args, func(input string) {
				fmt.Fprintln(cmd.OutOrStdout(), sanitizer.NormalizeString(input))
			})
		},
	}
}
