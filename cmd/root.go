/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// The tool owns its whole argument surface: flags may appear anywhere while
// the final two tokens are always QUERY and FILENAME. Cobra's own flag
// handling would fold that tail into its flag-ordered positional model, so
// flag parsing is disabled here and internal/cli receives the arguments raw.
// The default completion command is disabled as well: cobra injects it into a
// childless root whenever the first argument is spelled "completion", which
// would shadow a query by that name. Cobra's hidden "__complete" token stays
// reserved for shell integration; every other argument list reaches run
// untouched.

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jpl-au/minigrep/internal/cli"
	"github.com/jpl-au/minigrep/internal/grep"
	"github.com/spf13/cobra"
)

// out and errOut are the writers for search output and diagnostics.
// Default to the process streams; tests replace them to capture output.
var (
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr
)

// SetOut sets the standard output writer (for testing).
func SetOut(w io.Writer) { out = w }

// SetErrOut sets the error output writer (for testing).
func SetErrOut(w io.Writer) { errOut = w }

var rootCmd = &cobra.Command{
	Use:   "minigrep [options] QUERY FILENAME",
	Short: "Print the lines of a file containing a query string",
	Long: `Search a single file for a query string and print every line that
contains it, in file order. Matching is an exact substring test; with
-i/--insensitive the query and each line are compared lowercased instead.`,
	DisableFlagParsing: true,
	SilenceErrors:      true,
	SilenceUsage:       true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:               run,
}

// run wires the pipeline: parse the raw arguments, then search and print.
// It writes its own diagnostics, so Execute only maps errors to the exit
// status.
func run(c *cobra.Command, args []string) error {
	argv := append([]string{programName(c)}, args...)

	cfg, err := cli.Parse(argv, out)
	if errors.Is(err, cli.ErrHelpRequested) {
		// Usage has been printed; displaying help on request is a success.
		return nil
	}
	if err != nil {
		fmt.Fprintf(errOut, "Problem parsing arguments: %v\n", err)
		return err
	}

	if err := grep.Run(out, cfg); err != nil {
		fmt.Fprintf(errOut, "Application error: %v\n", err)
		return err
	}
	return nil
}

// programName returns argv[0] as the process was invoked, so usage output
// echoes whatever name launched the tool. Falls back to the command name when
// unavailable (tests driving the command directly).
func programName(c *cobra.Command) string {
	if len(os.Args) > 0 && os.Args[0] != "" {
		return os.Args[0]
	}
	return c.Root().Name()
}

// Execute runs the root command and handles process lifecycle. Diagnostics
// are printed by run, so a returned error only determines the exit status:
// 1 on any failure, 0 otherwise (help included).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
