// Package search implements substring line matching over in-memory text.
//
// Both matchers are pure functions of (query, contents): they return the
// matching lines in source order, keep duplicates, and never mutate their
// inputs. Case-insensitive matching lowercases the query and each candidate
// line independently with strings.ToLower - a simple character mapping, not
// locale-aware collation.
package search

import (
	"bufio"
	"strings"
)

// Match returns every line of contents that contains query as an exact
// substring, in the order the lines occur. An empty query matches every line.
func Match(query, contents string) []string {
	return match(query, contents, false)
}

// MatchInsensitive is Match with simple case folding applied to both sides of
// the containment test. Returned lines keep their original casing.
func MatchInsensitive(query, contents string) []string {
	return match(query, contents, true)
}

func match(query, contents string, fold bool) []string {
	if fold {
		query = strings.ToLower(query)
	}

	var results []string
	scanner := bufio.NewScanner(strings.NewReader(contents))
	// A line can never be longer than the contents holding it, so with the
	// cap below the scan cannot fail and Err is always nil.
	scanner.Buffer(make([]byte, 64*1024), len(contents)+1)
	for scanner.Scan() {
		line := scanner.Text()
		candidate := line
		if fold {
			candidate = strings.ToLower(candidate)
		}
		if strings.Contains(candidate, query) {
			results = append(results, line)
		}
	}
	return results
}
