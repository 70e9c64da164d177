// Package runner executes one search: read the file, match, print.
package runner

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/taigrr/minigrep/internal/config"
	"github.com/taigrr/minigrep/internal/filesystem"
	"github.com/taigrr/minigrep/internal/render"
	"github.com/taigrr/minigrep/internal/search"
	"github.com/taigrr/minigrep/internal/types"
)

// Options control where and how results are written.
type Options struct {
	Out    io.Writer
	Render render.Options
	Logger *zap.Logger
}

// Run searches cfg.FilePath for cfg.Query and writes the matching lines.
// Read failures are returned as *filesystem.ReadError before anything is
// written.
func Run(cfg config.Config, opts Options) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	log.Debug("resolved configuration",
		zap.String("query", cfg.Query),
		zap.String("path", cfg.FilePath),
		zap.Bool("ignoreCase", cfg.IgnoreCase),
	)

	content, err := filesystem.ReadFile(cfg.FilePath)
	if err != nil {
		return err
	}

	var result types.SearchResult
	if opts.Render.CountOnly {
		result = types.SearchResult{
			Path:       cfg.FilePath,
			Query:      cfg.Query,
			IgnoreCase: cfg.IgnoreCase,
			Total:      search.Count(cfg.Query, content, cfg.IgnoreCase),
		}
	} else {
		result = Search(cfg, content)
	}
	log.Debug("search complete",
		zap.Int("bytes", len(content)),
		zap.Int("matches", result.Total),
	)

	if err := render.Write(out, result, opts.Render); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

// Search matches content against cfg and packages the result.
func Search(cfg config.Config, content string) types.SearchResult {
	matches := search.Find(cfg.Query, content, cfg.IgnoreCase)
	return types.SearchResult{
		Path:       cfg.FilePath,
		Query:      cfg.Query,
		IgnoreCase: cfg.IgnoreCase,
		Matches:    matches,
		Total:      len(matches),
	}
}
