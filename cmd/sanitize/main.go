// Command sanitize validates and normalizes web3 identifiers from the command
// line and serves the same checks over HTTP.
package main

import (
	"context"
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
