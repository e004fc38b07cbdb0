// Package grep runs one configured search against a file and prints the
// matching lines.
//
// The whole file is read into memory before searching; files larger than
// memory are out of scope. Contents must decode as UTF-8 text.
package grep

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/jpl-au/minigrep/internal/cli"
	"github.com/jpl-au/minigrep/internal/search"
)

// ErrNotUTF8 is returned when the target file is not valid UTF-8 text.
var ErrNotUTF8 = errors.New("file contents are not valid UTF-8")

// Run opens cfg.Filename, searches its contents for cfg.Query and writes each
// matching line to w followed by a line terminator. A search with no matches
// succeeds with no output.
//
// Nothing is written on any failure path: the file is read and validated in
// full before the first line goes out, so output is never a partial scan.
func Run(w io.Writer, cfg cli.Config) error {
	data, err := os.ReadFile(cfg.Filename)
	if err != nil {
		return err
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%s: %w", cfg.Filename, ErrNotUTF8)
	}
	contents := string(data)

	var lines []string
	if cfg.CaseSensitive {
		lines = search.Match(cfg.Query, contents)
	} else {
		lines = search.MatchInsensitive(cfg.Query, contents)
	}

	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}
