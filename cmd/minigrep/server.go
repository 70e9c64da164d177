package main

import (
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/minigrep/internal/filesystem"
	"github.com/taigrr/minigrep/internal/pathfilter"
	"github.com/taigrr/minigrep/internal/types"
)

var fileSystem *filesystem.Service

func runServer(cmd *cobra.Command, opts *options, log *zap.Logger) error {
	rootPath := opts.root
	if rootPath == "" {
		var err error
		rootPath, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	info, err := os.Stat(rootPath)
	if err != nil {
		return fmt.Errorf("invalid root %s: %w", rootPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root is not a directory: %s", rootPath)
	}

	pf := pathfilter.New(&types.PathFilterConfig{
		IgnoredPatterns:   opts.excludes,
		AllowedExtensions: opts.allowedExts,
	})
	fileSystem = filesystem.New(rootPath, pf)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "minigrep",
		Version: version,
	}, nil)

	registerTools(server)

	log.Debug("serving MCP over stdio", zap.String("root", fileSystem.RootPath()))

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
