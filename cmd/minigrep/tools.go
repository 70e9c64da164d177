package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// SearchInput contains parameters for searching a file.
	SearchInput struct {
		Path       string `json:"path" jsonschema:"Path to the file relative to the server root"`
		Query      string `json:"query" jsonschema:"Substring to look for; an empty query matches every line"`
		IgnoreCase bool   `json:"ignoreCase,omitempty" jsonschema:"Compare lowercased text (default: false)"`
		Limit      int    `json:"limit,omitempty" jsonschema:"Maximum matching lines to return (default: all)"`
		Offset     int    `json:"offset,omitempty" jsonschema:"Skip the first N matching lines (default: 0)"`
	}

	// SearchMatch is one matching line.
	SearchMatch struct {
		Line int    `json:"line"`
		Text string `json:"text"`
	}

	// SearchOutput contains the matching lines of one file.
	SearchOutput struct {
		Path    string        `json:"path"`
		Matches []SearchMatch `json:"matches"`
		Total   int           `json:"total"`
		HasMore bool          `json:"hasMore,omitempty"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search",
		Description: "Return every line of a file that contains the query as a plain substring, in file order with 1-based line numbers. Not a regex search. Set ignoreCase for case-insensitive matching.",
	}, handleSearch)
}
