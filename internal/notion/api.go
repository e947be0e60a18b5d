package notion

import (
	"context"
	"fmt"
	"net/http"
)

// Query describes a data source query: an optional filter object in the API's
// filter syntax and optional sort directives.
type Query struct {
	Filter map[string]any
	Sorts  []Sort
}

// Sort is one sort directive of a data source query.
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

type pageList struct {
	Object     string  `json:"object"`
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

type blockList struct {
	Object     string  `json:"object"`
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// QueryDataSource runs a filtered, sorted query against a data source and
// returns all matching full pages, following the cursor until the result set
// is exhausted. Partial page records without properties are skipped.
func (c *Client) QueryDataSource(ctx context.Context, dataSourceID string, q Query) ([]Page, error) {
	if dataSourceID == "" {
		return nil, fmt.Errorf("notion: data source id required")
	}

	var pages []Page
	var cursor *string

	for {
		body := map[string]any{}
		if q.Filter != nil {
			body["filter"] = q.Filter
		}
		if len(q.Sorts) > 0 {
			body["sorts"] = q.Sorts
		}
		if cursor != nil {
			body["start_cursor"] = *cursor
		}

		req, err := c.NewRequest(ctx, http.MethodPost, "/v1/data_sources/"+dataSourceID+"/query", nil, body)
		if err != nil {
			return nil, err
		}

		var res pageList
		if err := c.Do(req, &res); err != nil {
			return nil, err
		}

		for _, page := range res.Results {
			if page.Object == "page" && page.Properties != nil {
				pages = append(pages, page)
			}
		}

		if !res.HasMore || res.NextCursor == nil {
			return pages, nil
		}
		cursor = res.NextCursor
	}
}

// RetrievePage fetches a single page's property bag.
func (c *Client) RetrievePage(ctx context.Context, pageID string) (*Page, error) {
	if pageID == "" {
		return nil, fmt.Errorf("notion: page id required")
	}

	req, err := c.NewRequest(ctx, http.MethodGet, "/v1/pages/"+pageID, nil, nil)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := c.Do(req, &page); err != nil {
		return nil, err
	}

	if page.Properties == nil {
		return nil, fmt.Errorf("notion: page %s: partial response without properties", pageID)
	}

	return &page, nil
}

// ListBlockChildren returns a page's direct child blocks in document order,
// following the cursor across result pages. Partial block records without a
// type discriminant are skipped.
func (c *Client) ListBlockChildren(ctx context.Context, blockID string) ([]Block, error) {
	if blockID == "" {
		return nil, fmt.Errorf("notion: block id required")
	}

	var blocks []Block
	cursor := ""

	for {
		query := map[string]string{"page_size": "100"}
		if cursor != "" {
			query["start_cursor"] = cursor
		}

		req, err := c.NewRequest(ctx, http.MethodGet, "/v1/blocks/"+blockID+"/children", query, nil)
		if err != nil {
			return nil, err
		}

		var res blockList
		if err := c.Do(req, &res); err != nil {
			return nil, err
		}

		for _, block := range res.Results {
			if block.Type != "" {
				blocks = append(blocks, block)
			}
		}

		if !res.HasMore || res.NextCursor == nil {
			return blocks, nil
		}
		cursor = *res.NextCursor
	}
}
