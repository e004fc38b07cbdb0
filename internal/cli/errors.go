// errors.go defines sentinel errors for argument parsing failures.
//
// Callers distinguish failure categories with errors.Is. Detailed messages
// are provided by wrapping these with fmt.Errorf where extra context exists.
//
// ErrHelpRequested is deliberately modelled as an error: it stops the normal
// parse -> run pipeline like any other parse failure, but the command shell
// recognises it and exits successfully since the usage text has already been
// printed.

package cli

import "errors"

var (
	// ErrNotEnoughArgs means fewer than two tokens followed the program name.
	ErrNotEnoughArgs = errors.New("not enough arguments")

	// ErrHelpRequested means -h/--help was given and usage has been printed.
	ErrHelpRequested = errors.New("help requested")

	// ErrBadPositional means the trailing QUERY or FILENAME token starts with
	// the option prefix "-", which almost always indicates a missing
	// positional argument.
	ErrBadPositional = errors.New("arguments should be [options] QUERY FILENAME")

	// ErrInvalidOptions wraps option syntax failures such as unknown flags.
	ErrInvalidOptions = errors.New("invalid options")
)
