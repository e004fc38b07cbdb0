// Package cli parses a raw argument list into the validated configuration
// for one search.
//
// The argument surface is deliberately small: two boolean flags that may
// appear anywhere, and a fixed positional tail. The last token of the list is
// always FILENAME and the second-to-last is always QUERY - flag recognition
// never consumes or reorders the tail. pflag does the option recognition;
// positional handling stays here.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// Config holds one validated invocation. It is built once per run and never
// mutated afterwards.
type Config struct {
	Query         string // substring to search for
	Filename      string // path of the file to search
	CaseSensitive bool   // false when -i/--insensitive was given
}

// Parse builds a Config from argv, which must include the program name as
// element 0 (pass os.Args or an equivalent).
//
// On the help path the usage text is written to helpW and ErrHelpRequested is
// returned; Parse writes nothing on any other path. All failures are
// recoverable errors - bad option syntax is reported, never fatal.
func Parse(argv []string, helpW io.Writer) (Config, error) {
	// The count check runs before flag parsing, so a lone -h reports missing
	// arguments rather than help.
	if len(argv) < 3 {
		return Config{}, ErrNotEnoughArgs
	}

	fs := pflag.NewFlagSet(argv[0], pflag.ContinueOnError)
	fs.SetOutput(io.Discard) // usage rendering is ours, not pflag's
	insensitive := fs.BoolP("insensitive", "i", false, "set insensitive mode")
	help := fs.BoolP("help", "h", false, "print this help menu")

	if err := fs.Parse(argv[1:]); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	if *help {
		printUsage(helpW, argv[0], fs)
		return Config{}, ErrHelpRequested
	}

	// The tail comes from the raw list, not from pflag's leftover
	// positionals: a flag sitting between the final two tokens lands in the
	// tail and is rejected below.
	filename := argv[len(argv)-1]
	if strings.HasPrefix(filename, "-") {
		return Config{}, ErrBadPositional
	}
	query := argv[len(argv)-2]
	if strings.HasPrefix(query, "-") {
		return Config{}, ErrBadPositional
	}

	return Config{
		Query:         query,
		Filename:      filename,
		CaseSensitive: !*insensitive,
	}, nil
}

// printUsage writes the usage banner followed by one description line per
// recognised option.
func printUsage(w io.Writer, program string, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "Usage: %s [options] QUERY FILENAME\n\nOptions:\n%s", program, fs.FlagUsages())
}
