// Package types defines the data structures shared across minigrep.
package types

type (
	// Match is a single matching line. Line is 1-based.
	Match struct {
		Line int    `json:"line" yaml:"line"`
		Text string `json:"text" yaml:"text"`
	}

	// SearchResult is the result set for one file.
	SearchResult struct {
		Path       string  `json:"path" yaml:"path"`
		Query      string  `json:"query" yaml:"query"`
		IgnoreCase bool    `json:"ignoreCase,omitempty" yaml:"ignoreCase,omitempty"`
		Matches    []Match `json:"matches" yaml:"matches"`
		Total      int     `json:"total" yaml:"total"`
	}
)
