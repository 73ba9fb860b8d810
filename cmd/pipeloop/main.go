// Command pipeloop reads a pipe maze and prints the distance to the loop
// cell farthest from the start, then the number of tiles the loop encloses.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// main is the entrypoint for the pipeloop command.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "pipeloop:", exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "pipeloop:", err)
		os.Exit(1)
	}
}

// run executes the command line in args, writing results to stdout and logs
// and help to stderr.
func run(stdout, stderr io.Writer, args []string) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}
