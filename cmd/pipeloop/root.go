package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/internal/config"
	"github.com/katalvlaran/pipeloop/solver"
)

// Exit codes.
const (
	exitFailure = 1
	exitUsage   = 2
)

// newRootCmd builds the pipeloop command tree.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		logLevel  string
		logFormat string
		envFile   string
		logger    *slog.Logger
	)

	root := &cobra.Command{
		Use:   "pipeloop [flags] FILE",
		Short: "Measure the pipe loop in a maze file",
		Long: `Pipeloop reads a rectangular maze of pipe glyphs (| - L J 7 F . S),
follows the single loop through S and prints two lines:

  1. the number of steps to the loop cell farthest from S
  2. the number of tiles enclosed by the loop

Settings may also come from PIPELOOP_LOG_LEVEL and PIPELOOP_LOG_FORMAT,
optionally declared in an env file; flags take precedence.`,
		Args:          exactlyOneFile,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return &ExitError{Code: exitUsage, Message: err.Error()}
			}
			cfg, err = cfg.Override(logLevel, logFormat)
			if err != nil {
				return &ExitError{Code: exitUsage, Message: err.Error()}
			}
			logger = config.NewLogger(stderr, cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := solveFile(args[0], logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, res.Farthest)
			fmt.Fprintln(stdout, res.Enclosed)
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: exitUsage, Message: err.Error()}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&logLevel, "log-level", "", "Logging level: debug, info, warn or error (default from env, else warn)")
	flags.StringVar(&logFormat, "log-format", "", "Log output format: text or json (default from env, else text)")
	flags.StringVar(&envFile, "env-file", ".env", "Env file with PIPELOOP_* settings; ignored when missing")

	root.AddCommand(&cobra.Command{
		Use:           "render FILE",
		Short:         "Print the maze with enclosed tiles as I and outside tiles as O",
		Args:          exactlyOneFile,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := solveFile(args[0], logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, res.Render())
			return nil
		},
	})

	return root
}

// exactlyOneFile rejects anything but a single positional path.
func exactlyOneFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &ExitError{
			Code:    exitUsage,
			Message: fmt.Sprintf("expected exactly one FILE argument, got %d (see %s --help)", len(args), cmd.CommandPath()),
		}
	}
	return nil
}

// solveFile runs the solver on the file at path. Any failure becomes an
// ExitError with exitFailure.
func solveFile(path string, logger *slog.Logger) (*solver.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ExitError{Code: exitFailure, Message: err.Error()}
	}
	defer f.Close()

	logger.Debug("solving", "path", path)
	res, err := solver.Solve(f, solver.WithLogger(logger))
	if err != nil {
		return nil, &ExitError{Code: exitFailure, Message: fmt.Sprintf("%s: %v", path, err)}
	}
	logger.Info("solved", "path", path, "loop_length", res.LoopLength, "farthest", res.Farthest, "enclosed", res.Enclosed)
	return res, nil
}
