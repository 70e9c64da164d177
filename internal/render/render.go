// Package render writes search results in the supported output formats.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/segmentio/encoding/json"
	"gopkg.in/yaml.v3"

	"github.com/taigrr/minigrep/internal/types"
)

// Format selects how results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want one of text, json, yaml)", s)
}

// Options control rendering.
type Options struct {
	Format      Format
	LineNumbers bool
	CountOnly   bool
}

// Write renders result to w.
func Write(w io.Writer, result types.SearchResult, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, result, opts)
	case FormatYAML:
		return writeYAML(w, result, opts)
	case FormatText, "":
		return writeText(w, result, opts)
	}
	return fmt.Errorf("unknown output format %q", opts.Format)
}

func writeText(w io.Writer, result types.SearchResult, opts Options) error {
	if opts.CountOnly {
		_, err := fmt.Fprintln(w, result.Total)
		return err
	}

	var b strings.Builder
	for _, m := range result.Matches {
		if opts.LineNumbers {
			b.WriteString(strconv.Itoa(m.Line))
			b.WriteByte(':')
		}
		b.WriteString(m.Text)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// countOutput is the structured form of a count-only result.
type countOutput struct {
	Path  string `json:"path" yaml:"path"`
	Query string `json:"query" yaml:"query"`
	Total int    `json:"total" yaml:"total"`
}

func structured(result types.SearchResult, opts Options) any {
	if opts.CountOnly {
		return countOutput{Path: result.Path, Query: result.Query, Total: result.Total}
	}
	if result.Matches == nil {
		result.Matches = []types.Match{}
	}
	return result
}

func writeJSON(w io.Writer, result types.SearchResult, opts Options) error {
	data, err := json.MarshalIndent(structured(result, opts), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func writeYAML(w io.Writer, result types.SearchResult, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(structured(result, opts)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
