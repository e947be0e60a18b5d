package mcp

import (
	"context"
	"fmt"

	"github.com/knmsyk/notion-content-mcp/internal/posts"
	"github.com/knmsyk/notion-content-mcp/internal/state"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// PostTools wires the post service into MCP tools.
type PostTools struct {
	service *posts.Service
	cache   *state.Cache
}

// NewPostTools registers post tools on the server.
func NewPostTools(s *server.MCPServer, service *posts.Service, cache *state.Cache) *PostTools {
	pt := &PostTools{service: service, cache: cache}

	s.AddTool(
		mcp.NewTool(
			"posts.list",
			mcp.WithDescription("List published blog posts, newest first, optionally limited to one year"),
			mcp.WithInputSchema[PostsListArgs](),
			mcp.WithOutputSchema[PostsListResult](),
		),
		mcp.NewTypedToolHandler(pt.handleList),
	)

	s.AddTool(
		mcp.NewTool(
			"posts.get",
			mcp.WithDescription("Fetch one blog post with its parsed body blocks"),
			mcp.WithInputSchema[PostsGetArgs](),
			mcp.WithOutputSchema[PostResult](),
		),
		mcp.NewTypedToolHandler(pt.handleGet),
	)

	return pt
}

// PostsListArgs parameters for listing posts.
type PostsListArgs struct {
	Year int `json:"year,omitempty" jsonschema_description:"Limit to posts published in this calendar year" jsonschema:"minimum=1970"`
}

// PostSummary models one post in a listing, without body blocks.
type PostSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	PublishedAt string `json:"publishedAt,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// PostsListResult wraps the listing response.
type PostsListResult struct {
	Posts []PostSummary `json:"posts"`
}

func (p *PostTools) handleList(ctx context.Context, _ mcp.CallToolRequest, args PostsListArgs) (*mcp.CallToolResult, error) {
	var (
		list []posts.Post
		err  error
	)
	if args.Year != 0 {
		list, err = p.service.ListYear(ctx, args.Year)
	} else {
		list, err = p.service.List(ctx)
	}
	if err != nil {
		return mcp.NewToolResultErrorFromErr("post listing failed", err), nil
	}

	p.cache.SetPosts(list)

	result := PostsListResult{Posts: make([]PostSummary, 0, len(list))}
	for _, post := range list {
		result.Posts = append(result.Posts, postSummary(post))
	}

	fallback := fmt.Sprintf("Found %d posts", len(result.Posts))
	return mcp.NewToolResultStructured(result, fallback), nil
}

// PostsGetArgs parameters for fetching one post.
type PostsGetArgs struct {
	ID string `json:"id" jsonschema:"required" jsonschema_description:"Notion page ID of the post"`
}

// PostResult models one post with its body.
type PostResult struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Published   bool          `json:"published"`
	PublishedAt string        `json:"publishedAt,omitempty"`
	Thumbnail   string        `json:"thumbnail,omitempty"`
	Blocks      []BlockResult `json:"blocks"`
}

func (p *PostTools) handleGet(ctx context.Context, _ mcp.CallToolRequest, args PostsGetArgs) (*mcp.CallToolResult, error) {
	if args.ID == "" {
		return mcp.NewToolResultError("post id must not be empty"), nil
	}

	post := p.service.Get(ctx, args.ID)
	if post == nil {
		return mcp.NewToolResultError(fmt.Sprintf("post %s not found", args.ID)), nil
	}

	result := PostResult{
		ID:        post.ID,
		Title:     post.Title,
		Published: post.Published,
		Blocks:    blockResults(post.Blocks),
	}
	if post.PublishedAt != nil {
		result.PublishedAt = *post.PublishedAt
	}
	if post.Thumbnail != nil {
		result.Thumbnail = *post.Thumbnail
	}

	fallback := fmt.Sprintf("Post %q with %d blocks", result.Title, len(result.Blocks))
	return mcp.NewToolResultStructured(result, fallback), nil
}

func postSummary(post posts.Post) PostSummary {
	summary := PostSummary{ID: post.ID, Title: post.Title}
	if post.PublishedAt != nil {
		summary.PublishedAt = *post.PublishedAt
	}
	if post.Thumbnail != nil {
		summary.Thumbnail = *post.Thumbnail
	}
	return summary
}
