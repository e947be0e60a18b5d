package mcp

import (
	"context"
	"fmt"

	"github.com/knmsyk/notion-content-mcp/internal/books"
	"github.com/knmsyk/notion-content-mcp/internal/state"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// BookTools wires the reading note service into MCP tools.
type BookTools struct {
	service *books.Service
	cache   *state.Cache
}

// NewBookTools registers reading note tools on the server.
func NewBookTools(s *server.MCPServer, service *books.Service, cache *state.Cache) *BookTools {
	bt := &BookTools{service: service, cache: cache}

	s.AddTool(
		mcp.NewTool(
			"books.list",
			mcp.WithDescription("List public reading notes, newest first, optionally filtered by topic"),
			mcp.WithInputSchema[BooksListArgs](),
			mcp.WithOutputSchema[BooksListResult](),
		),
		mcp.NewTypedToolHandler(bt.handleList),
	)

	s.AddTool(
		mcp.NewTool(
			"books.get",
			mcp.WithDescription("Fetch one public reading note with its parsed body blocks"),
			mcp.WithInputSchema[BooksGetArgs](),
			mcp.WithOutputSchema[NoteResult](),
		),
		mcp.NewTypedToolHandler(bt.handleGet),
	)

	s.AddTool(
		mcp.NewTool(
			"books.list_topics",
			mcp.WithDescription("List the topics used across public reading notes"),
			mcp.WithInputSchema[BooksTopicsArgs](),
			mcp.WithOutputSchema[TopicsResult](),
		),
		mcp.NewTypedToolHandler(bt.handleTopics),
	)

	return bt
}

// BooksListArgs parameters for listing reading notes.
type BooksListArgs struct {
	Topic string `json:"topic,omitempty" jsonschema_description:"Only notes carrying this topic"`
}

// NoteSummary models one reading note in a listing, without body blocks.
type NoteSummary struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Topics    []string `json:"topics"`
	CreatedAt string   `json:"createdAt,omitempty" jsonschema_description:"Raw ISO 8601 date"`
}

// BooksListResult wraps the listing response.
type BooksListResult struct {
	Notes []NoteSummary `json:"notes"`
}

func (b *BookTools) handleList(ctx context.Context, _ mcp.CallToolRequest, args BooksListArgs) (*mcp.CallToolResult, error) {
	notes, err := b.service.Notes(ctx, args.Topic)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("reading note listing failed", err), nil
	}

	result := BooksListResult{Notes: make([]NoteSummary, 0, len(notes))}
	for _, note := range notes {
		result.Notes = append(result.Notes, noteSummary(note))
	}

	fallback := fmt.Sprintf("Found %d reading notes", len(result.Notes))
	return mcp.NewToolResultStructured(result, fallback), nil
}

// BooksGetArgs parameters for fetching one reading note.
type BooksGetArgs struct {
	ID string `json:"id" jsonschema:"required" jsonschema_description:"Notion page ID of the reading note"`
}

// NoteResult models one reading note with its body.
type NoteResult struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Topics    []string      `json:"topics"`
	CreatedAt string        `json:"createdAt,omitempty"`
	Blocks    []BlockResult `json:"blocks"`
}

func (b *BookTools) handleGet(ctx context.Context, _ mcp.CallToolRequest, args BooksGetArgs) (*mcp.CallToolResult, error) {
	if args.ID == "" {
		return mcp.NewToolResultError("reading note id must not be empty"), nil
	}

	note := b.service.Note(ctx, args.ID)
	if note == nil {
		return mcp.NewToolResultError(fmt.Sprintf("reading note %s not found", args.ID)), nil
	}

	result := NoteResult{
		ID:     note.ID,
		Title:  note.Title,
		Topics: note.Topics,
		Blocks: blockResults(note.Blocks),
	}
	if note.CreatedAt != nil {
		result.CreatedAt = *note.CreatedAt
	}

	fallback := fmt.Sprintf("Reading note %q with %d blocks", result.Title, len(result.Blocks))
	return mcp.NewToolResultStructured(result, fallback), nil
}

// BooksTopicsArgs parameters for listing topics.
type BooksTopicsArgs struct{}

// TopicsResult wraps the topic listing response.
type TopicsResult struct {
	Topics []string `json:"topics"`
}

func (b *BookTools) handleTopics(ctx context.Context, _ mcp.CallToolRequest, _ BooksTopicsArgs) (*mcp.CallToolResult, error) {
	topics, err := b.service.Topics(ctx)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("topic listing failed", err), nil
	}

	b.cache.SetTopics(topics)

	fallback := fmt.Sprintf("Found %d topics", len(topics))
	return mcp.NewToolResultStructured(TopicsResult{Topics: topics}, fallback), nil
}

func noteSummary(note books.Note) NoteSummary {
	summary := NoteSummary{ID: note.ID, Title: note.Title, Topics: note.Topics}
	if note.CreatedAt != nil {
		summary.CreatedAt = *note.CreatedAt
	}
	return summary
}
