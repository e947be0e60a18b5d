package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/knmsyk/notion-content-mcp/internal/books"
	"github.com/knmsyk/notion-content-mcp/internal/content"
	"github.com/knmsyk/notion-content-mcp/internal/posts"
	"github.com/knmsyk/notion-content-mcp/internal/state"
)

func TestNewServerRegistersExpectedTools(t *testing.T) {
	t.Parallel()

	deps := Dependencies{
		Posts: &posts.Service{},
		Books: &books.Service{},
	}

	srv := NewServer(deps)

	tools := srv.ListTools()
	expected := []string{
		"posts.list",
		"posts.get",
		"books.list",
		"books.get",
		"books.list_topics",
	}

	if len(tools) != len(expected) {
		t.Fatalf("unexpected tool count: got %d want %d", len(tools), len(expected))
	}

	for _, name := range expected {
		if _, ok := tools[name]; !ok {
			t.Fatalf("tool %q not registered", name)
		}
	}
}

func TestNewServerWithoutBooks(t *testing.T) {
	t.Parallel()

	srv := NewServer(Dependencies{Posts: &posts.Service{}})

	tools := srv.ListTools()
	if len(tools) != 2 {
		t.Fatalf("expected only post tools, got %d", len(tools))
	}
	if _, ok := tools["books.list"]; ok {
		t.Fatalf("book tools should not be registered without a service")
	}
}

func TestPostToolsHandleGetValidation(t *testing.T) {
	t.Parallel()

	pt := &PostTools{cache: state.NewCache()}

	res, err := pt.handleGet(context.Background(), mcp.CallToolRequest{}, PostsGetArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result")
	}
	if got := firstText(res); got != "post id must not be empty" {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestBookToolsHandleGetValidation(t *testing.T) {
	t.Parallel()

	bt := &BookTools{cache: state.NewCache()}

	res, err := bt.handleGet(context.Background(), mcp.CallToolRequest{}, BooksGetArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected error result")
	}
	if got := firstText(res); got != "reading note id must not be empty" {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestBlockResultVariants(t *testing.T) {
	t.Parallel()

	caption := "図1"
	link := "https://example.com"

	cases := []struct {
		name  string
		block content.Block
		check func(t *testing.T, got BlockResult)
	}{
		{
			name:  "paragraph with link",
			block: content.Paragraph{Children: []content.RichText{{Text: "see", Link: &link}}},
			check: func(t *testing.T, got BlockResult) {
				if got.Type != "paragraph" || len(got.Children) != 1 || got.Children[0].Link != link {
					t.Fatalf("unexpected result %+v", got)
				}
			},
		},
		{
			name:  "heading keeps level",
			block: content.Heading{Level: 2, Children: []content.RichText{{Text: "h"}}},
			check: func(t *testing.T, got BlockResult) {
				if got.Type != "heading" || got.Level != 2 {
					t.Fatalf("unexpected result %+v", got)
				}
			},
		},
		{
			name:  "code keeps content verbatim",
			block: content.Code{Language: "go", Content: "a\nb"},
			check: func(t *testing.T, got BlockResult) {
				if got.Type != "code" || got.Language != "go" || got.Content != "a\nb" {
					t.Fatalf("unexpected result %+v", got)
				}
			},
		},
		{
			name:  "image with caption",
			block: content.Image{URL: "https://e.com/p.png", Caption: &caption},
			check: func(t *testing.T, got BlockResult) {
				if got.Type != "image" || got.URL != "https://e.com/p.png" || got.Caption != caption {
					t.Fatalf("unexpected result %+v", got)
				}
			},
		},
		{
			name:  "numbered list item",
			block: content.NumberedListItem{Children: []content.RichText{{Text: "1st"}}},
			check: func(t *testing.T, got BlockResult) {
				if got.Type != "numbered_list_item" || got.Children[0].Text != "1st" {
					t.Fatalf("unexpected result %+v", got)
				}
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tc.check(t, blockResult(tc.block))
		})
	}
}

func firstText(res *mcp.CallToolResult) string {
	if len(res.Content) == 0 {
		return ""
	}
	if text, ok := res.Content[0].(mcp.TextContent); ok {
		return text.Text
	}
	return ""
}
