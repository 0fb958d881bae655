// Command asciicheck validates and transforms ASCII text.
//
// Logging:
//   - Base logger is created here and writes to stderr
//   - The level comes from --log-level and can be changed before any
//     subcommand runs
//   - No global slog configuration (no slog.SetDefault)
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// errCheckFailed is returned when at least one input failed validation. The
// diagnostics have already been printed.
var errCheckFailed = errors.New("check failed")

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	rootCmd := newRootCmd(logger, level)
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			logger.Error("command failed", "error", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "asciicheck",
		Short:         "Validate and transform ASCII text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, _ := cmd.Flags().GetString("log-level")
			if err := level.UnmarshalText([]byte(lvl)); err != nil {
				return fmt.Errorf("parse --log-level: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.AddCommand(
		newCheckCmd(logger),
		newCaretCmd(logger),
		newCaseCmd(logger),
		newLinesCmd(logger),
		versionCmd,
	)
	return rootCmd
}

// readInput reads the file named by args, or stdin when args is empty or
// names "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	p := "-"
	if len(args) > 0 {
		p = args[0]
	}
	return readPath(cmd.InOrStdin(), p)
}
