package posts

import (
	"context"
	"fmt"

	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/knmsyk/notion-content-mcp/internal/notion"
)

// Service exposes read operations over the blog post database.
type Service struct {
	client       *notion.Client
	dataSourceID string
	logger       *slog.Logger
}

// NewService constructs a post service bound to one data source.
func NewService(client *notion.Client, dataSourceID string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, dataSourceID: dataSourceID, logger: logger}
}

func publishedFilter() map[string]any {
	return map[string]any{
		"property": "published",
		"checkbox": map[string]any{"equals": true},
	}
}

func newestFirst() []notion.Sort {
	return []notion.Sort{{Property: "published_at", Direction: "descending"}}
}

// List returns all published posts, newest first, without body blocks.
func (s *Service) List(ctx context.Context) ([]Post, error) {
	pages, err := s.client.QueryDataSource(ctx, s.dataSourceID, notion.Query{
		Filter: publishedFilter(),
		Sorts:  newestFirst(),
	})
	if err != nil {
		return nil, fmt.Errorf("posts: list: %w", err)
	}
	return mapPages(pages), nil
}

// ListYear returns published posts whose publication date falls within the
// given calendar year, newest first.
func (s *Service) ListYear(ctx context.Context, year int) ([]Post, error) {
	filter := map[string]any{
		"and": []map[string]any{
			publishedFilter(),
			{
				"property": "published_at",
				"date":     map[string]any{"on_or_after": fmt.Sprintf("%d-01-01", year)},
			},
			{
				"property": "published_at",
				"date":     map[string]any{"before": fmt.Sprintf("%d-01-01", year+1)},
			},
		},
	}

	pages, err := s.client.QueryDataSource(ctx, s.dataSourceID, notion.Query{
		Filter: filter,
		Sorts:  newestFirst(),
	})
	if err != nil {
		return nil, fmt.Errorf("posts: list year %d: %w", year, err)
	}
	return mapPages(pages), nil
}

// Get returns one post with its parsed body, or nil when the page does not
// exist or cannot be retrieved. An unreachable API is reported the same way
// as a missing page; the cause is only logged.
func (s *Service) Get(ctx context.Context, id string) *Post {
	if id == "" {
		return nil
	}

	var (
		page *notion.Page
		raw  []notion.Block
	)

	// The property bag and the block list are independent fetches; run them
	// together and require both.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = s.client.RetrievePage(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		raw, err = s.client.ListBlockChildren(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Debug("post fetch failed", slog.String("id", id), slog.Any("error", err))
		return nil
	}

	post := MapPage(page)
	post.Blocks = notion.ParseBlocks(raw)
	return &post
}

func mapPages(pages []notion.Page) []Post {
	posts := make([]Post, 0, len(pages))
	for i := range pages {
		posts = append(posts, MapPage(&pages[i]))
	}
	return posts
}
