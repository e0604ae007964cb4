// Command vermutcalc is the vermouth blend calculator CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nosoynormal/vermutcalc/internal/cli"
	"github.com/nosoynormal/vermutcalc/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	}
	return extractExitCode(err)
}

// extractExitCode maps an execution error to a process exit code.
func extractExitCode(err error) int {
	if err == nil {
		return cli.ExitCodeOK
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return cli.ExitCodeError
}
