package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/web3sanitizer/pkg/patterns"
	"github.com/dmitrymomot/web3sanitizer/pkg/sanitizer"
)

var errRejected = errors.New("inputs rejected")

func newCheckCmd(a *app) *cobra.Command {
	var failOpen bool

	cmd := &cobra.Command{
		Use:   "check <format> [input...]",
		Short: "Validate inputs against a format and print their normalized form",
		Long: `Check validates every input against the named format and prints the
normalized value, one per line. Inputs are read from stdin, one per line,
when none are given as arguments.

Rejected inputs are reported on stderr and make the command exit non-zero.
With --fail-open a rejected input is logged as a warning and its normalized
value is printed anyway.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.san.Registry().Lookup(args[0]); err != nil {
				return err
			}
			if !cmd.Flags().Changed("fail-open") {
				failOpen = a.cfg.FailOpen
			}

			var total, rejected int
			err := eachInput(a.stdin, args[1:], func(input string) {
				total++
				value, err := a.san.Sanitize(cmd.Context(), args[0], input,
					sanitizer.WithThrowOnFail(!failOpen),
				)
				if err != nil {
					rejected++
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					return
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
			})
			if err != nil {
				return err
			}
			if rejected > 0 {
				return fmt.Errorf("%w: %d of %d", errRejected, rejected, total)
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			// Flags are parsed by now, so --patterns and the env file apply.
			if err := a.setup(cmd); err != nil {
				return patterns.Default().Names(), cobra.ShellCompDirectiveNoFileComp
			}
			return a.san.Registry().Names(), cobra.ShellCompDirectiveNoFileComp
		},
	}

	cmd.Flags().BoolVar(&failOpen, "fail-open", false, "log rejected inputs and print their normalized value instead of failing (default from SANITIZE_FAIL_OPEN)")
	return cmd
}
