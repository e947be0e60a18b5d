package main

import (
	"os"

	"log/slog"

	"github.com/spf13/cobra"

	"github.com/knmsyk/notion-content-mcp/internal/books"
	"github.com/knmsyk/notion-content-mcp/internal/config"
	mcpserver "github.com/knmsyk/notion-content-mcp/internal/mcp"
	"github.com/knmsyk/notion-content-mcp/internal/notion"
	"github.com/knmsyk/notion-content-mcp/internal/posts"
	"github.com/knmsyk/notion-content-mcp/internal/state"
	"github.com/knmsyk/notion-content-mcp/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:          "notion-content-mcp",
		Short:        "MCP server exposing blog posts and reading notes stored in Notion",
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			return run(cfgPath)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to configuration directory or file")

	return cmd
}

func run(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Default().Error("failed to load configuration", slog.Any("error", err))
		return err
	}

	logger := logging.New(cfg.Server.LogLevel, cfg.Server.LogFormat)

	client, err := notion.NewClient(cfg.Notion.APIBase, cfg.Notion.Token, cfg.Notion.Version, logger)
	if err != nil {
		logger.Error("failed to initialize Notion client", slog.Any("error", err))
		return err
	}

	postService := posts.NewService(client, cfg.Notion.PostsDataSource, logger)

	var bookService *books.Service
	if cfg.Notion.ReadingNotesDataSource != "" {
		bookService = books.NewService(client, cfg.Notion.ReadingNotesDataSource, logger)
	} else {
		logger.Info("reading notes data source not configured; book tools disabled")
	}

	srv := mcpserver.NewServer(mcpserver.Dependencies{
		Posts:  postService,
		Books:  bookService,
		Cache:  state.NewCache(),
		Logger: logger,
	})

	if err := server.ServeStdio(srv); err != nil {
		logger.Error("stdio server terminated", slog.Any("error", err))
		return err
	}

	return nil
}
