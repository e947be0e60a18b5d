package books

import (
	"context"
	"fmt"
	"slices"

	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/knmsyk/notion-content-mcp/internal/notion"
)

// Service exposes read operations over the reading note database.
type Service struct {
	client       *notion.Client
	dataSourceID string
	logger       *slog.Logger
}

// NewService constructs a reading note service bound to one data source.
func NewService(client *notion.Client, dataSourceID string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, dataSourceID: dataSourceID, logger: logger}
}

func publicFilter() map[string]any {
	return map[string]any{
		"property": "is_public",
		"checkbox": map[string]any{"equals": true},
	}
}

// Notes lists public reading notes, newest first, without body blocks. A
// non-empty topic narrows the result to notes carrying that topic.
func (s *Service) Notes(ctx context.Context, topic string) ([]Note, error) {
	pages, err := s.client.QueryDataSource(ctx, s.dataSourceID, notion.Query{
		Filter: publicFilter(),
		Sorts:  []notion.Sort{{Property: "created_at", Direction: "descending"}},
	})
	if err != nil {
		return nil, fmt.Errorf("books: list: %w", err)
	}

	notes := make([]Note, 0, len(pages))
	for i := range pages {
		note := ParsePage(&pages[i])
		if topic != "" && !slices.Contains(note.Topics, topic) {
			continue
		}
		notes = append(notes, note)
	}
	return notes, nil
}

// Note returns one public reading note with its body. Pages that are missing,
// unreachable, or not public all come back nil: a private note reads as not
// found rather than forbidden.
func (s *Service) Note(ctx context.Context, id string) *NoteDetail {
	if id == "" {
		return nil
	}

	var (
		page *notion.Page
		raw  []notion.Block
	)

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
		s.logger.Debug("reading note fetch failed", slog.String("id", id), slog.Any("error", err))
		return nil
	}

	note := ParsePage(page)
	if !note.IsPublic {
		s.logger.Debug("reading note is not public", slog.String("id", id))
		return nil
	}

	return &NoteDetail{Note: note, Blocks: notion.ParseBlocks(raw)}
}

// Topics returns the union of topics across public notes, deduplicated and
// sorted with Japanese collation.
func (s *Service) Topics(ctx context.Context) ([]string, error) {
	pages, err := s.client.QueryDataSource(ctx, s.dataSourceID, notion.Query{
		Filter: publicFilter(),
	})
	if err != nil {
		return nil, fmt.Errorf("books: topics: %w", err)
	}

	seen := make(map[string]struct{})
	topics := make([]string, 0)
	for i := range pages {
		for _, topic := range ParsePage(&pages[i]).Topics {
			if _, ok := seen[topic]; ok {
				continue
			}
			seen[topic] = struct{}{}
			topics = append(topics, topic)
		}
	}

	collate.New(language.Japanese).SortStrings(topics)
	return topics, nil
}
