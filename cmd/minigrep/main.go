// Package main implements minigrep, a substring line search tool.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/minigrep/internal/config"
	"github.com/taigrr/minigrep/internal/logger"
	"github.com/taigrr/minigrep/internal/render"
	"github.com/taigrr/minigrep/internal/runner"
)

type options struct {
	format      string
	lineNumbers bool
	count       bool
	verbose     bool

	mcp         bool
	root        string
	allowedExts []string
	excludes    []string
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "minigrep <query> <file_path> [ignore]",
		Short: "Print the lines of a file that contain a string",
		Long: `minigrep prints every line of a file that contains the query,
in file order and with its original casing.

Matching is case-sensitive unless the third argument is exactly
"ignore" or the IGNORE_CASE environment variable is set to any value.
Arguments after the third are ignored. Flags must come before the
query. Put -- before a query that starts with a dash.

With --mcp, minigrep instead serves a "search" tool over stdio for
Model Context Protocol clients, limited to files under --root.`,
		Example: `minigrep frog poem.txt
minigrep to poem.txt ignore
IGNORE_CASE=1 minigrep to poem.txt
minigrep --mcp --root ~/notes`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(cmd.ErrOrStderr(), opts.verbose)
			defer func() { _ = log.Sync() }()

			if opts.mcp {
				return runServer(cmd, opts, log)
			}
			return runSearch(cmd, args, opts, log)
		},
	}

	formats := make([]string, len(render.Formats))
	for i, f := range render.Formats {
		formats[i] = string(f)
	}

	flags := cmd.Flags()
	// Flags go before the query; everything from the first positional on is
	// positional, so trailing arguments are ignored even if they look like flags.
	flags.SetInterspersed(false)
	flags.StringVarP(&opts.format, "format", "f", string(render.FormatText), "output format: "+strings.Join(formats, ", "))
	flags.BoolVarP(&opts.lineNumbers, "line-number", "n", false, "prefix each line with its line number (text format)")
	flags.BoolVarP(&opts.count, "count", "c", false, "print only the number of matching lines")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics to stderr")
	flags.BoolVar(&opts.mcp, "mcp", false, "serve the search tool over MCP stdio instead of searching")
	flags.StringVar(&opts.root, "root", "", "directory MCP clients may search (default: current directory)")
	flags.StringSliceVar(&opts.allowedExts, "allow-ext", nil, "file extensions MCP clients may search (default: all)")
	flags.StringSliceVar(&opts.excludes, "exclude", nil, "glob patterns MCP clients may not search")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string, opts *options, log *zap.Logger) error {
	cfg, err := config.FromEnv(args)
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	return runner.Run(cfg, runner.Options{
		Out: cmd.OutOrStdout(),
		Render: render.Options{
			Format:      format,
			LineNumbers: opts.lineNumbers,
			CountOnly:   opts.count,
		},
		Logger: log,
	})
}
