// Package search implements line-oriented substring matching.
package search

import (
	"strings"

	"github.com/taigrr/minigrep/internal/types"
)

// Search returns every line of content that contains query, in file order.
// With ignoreCase set, both sides are lowercased before comparing; the
// returned lines keep their original casing. The returned strings share
// memory with content.
func Search(query, content string, ignoreCase bool) []string {
	var results []string
	scan(query, content, ignoreCase, func(_ int, line string) {
		results = append(results, line)
	})
	return results
}

// Find is like Search but also reports the 1-based line number of each match.
func Find(query, content string, ignoreCase bool) []types.Match {
	var matches []types.Match
	scan(query, content, ignoreCase, func(lineNum int, line string) {
		matches = append(matches, types.Match{Line: lineNum, Text: line})
	})
	return matches
}

// Count returns the number of lines of content that contain query.
func Count(query, content string, ignoreCase bool) int {
	n := 0
	scan(query, content, ignoreCase, func(int, string) {
		n++
	})
	return n
}

// scan calls fn for each matching line.
func scan(query, content string, ignoreCase bool, fn func(lineNum int, line string)) {
	if ignoreCase {
		query = strings.ToLower(query)
	}

	for i, line := range Lines(content) {
		candidate := line
		if ignoreCase {
			candidate = strings.ToLower(line)
		}
		if strings.Contains(candidate, query) {
			fn(i+1, line)
		}
	}
}

// Lines splits content into lines using the same rules as Search:
// "\n" separates lines, a "\r" directly before a "\n" is dropped, and a
// terminator at the end of content does not start a new line.
func Lines(content string) []string {
	var lines []string
	for rest := content; rest != ""; {
		line, after, found := strings.Cut(rest, "\n")
		if found {
			line = strings.TrimSuffix(line, "\r")
		}
		lines = append(lines, line)
		rest = after
	}
	return lines
}
