// Package mcp exposes the content services as MCP tools over stdio.
package mcp

import (
	"log/slog"

	"github.com/knmsyk/notion-content-mcp/internal/books"
	"github.com/knmsyk/notion-content-mcp/internal/posts"
	"github.com/knmsyk/notion-content-mcp/internal/state"

	"github.com/mark3labs/mcp-go/server"
)

// Dependencies bundles the services required for MCP server construction.
type Dependencies struct {
	Posts  *posts.Service
	Books  *books.Service
	Cache  *state.Cache
	Logger *slog.Logger
}

// NewServer builds an MCP server with registered post and reading note tools.
// A nil Books service leaves the reading note tools unregistered.
func NewServer(deps Dependencies) *server.MCPServer {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	srv := server.NewMCPServer(
		"Notion Content MCP",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithInstructions("Read-only tools over blog posts and reading notes stored in Notion."),
		server.WithRecovery(),
	)

	if deps.Cache == nil {
		deps.Cache = state.NewCache()
	}

	if deps.Posts != nil {
		NewPostTools(srv, deps.Posts, deps.Cache)
	}

	if deps.Books != nil {
		NewBookTools(srv, deps.Books, deps.Cache)
	}

	return srv
}
