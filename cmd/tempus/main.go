package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/tempus/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands render their own errors through the formatter and
		// return an ExitError. Anything else escaped cobra with
		// SilenceErrors set (flag, usage and pre-run failures), so
		// surface it here.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
