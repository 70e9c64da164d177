package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/taigrr/minigrep/internal/config"
	"github.com/taigrr/minigrep/internal/runner"
)

func handleSearch(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	path := strings.TrimSpace(input.Path)
	if path == "" {
		return &mcp.CallToolResult{IsError: true}, SearchOutput{}, fmt.Errorf("path cannot be empty")
	}

	content, err := fileSystem.ReadFile(path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, SearchOutput{Path: path}, err
	}

	result := runner.Search(config.Config{
		Query:      input.Query,
		FilePath:   path,
		IgnoreCase: input.IgnoreCase,
	}, content)

	offset := min(max(input.Offset, 0), result.Total)
	end := result.Total
	if input.Limit > 0 {
		end = min(offset+input.Limit, result.Total)
	}

	matches := make([]SearchMatch, 0, end-offset)
	for _, m := range result.Matches[offset:end] {
		matches = append(matches, SearchMatch{Line: m.Line, Text: m.Text})
	}

	return nil, SearchOutput{
		Path:    path,
		Matches: matches,
		Total:   result.Total,
		HasMore: end < result.Total,
	}, nil
}
