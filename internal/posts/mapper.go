// Package posts maps Notion pages from the blog database into posts and
// exposes the read operations the server offers over them.
package posts

import (
	"strings"
	"time"

	"github.com/knmsyk/notion-content-mcp/internal/content"
	"github.com/knmsyk/notion-content-mcp/internal/notion"
)

// untitled is the fallback title for pages without a usable title property.
const untitled = "Untitled"

// Post is a blog post derived from one Notion page. PublishedAt is a display
// string ("Jan 24, 2026"); nil means the page has no publication date.
type Post struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Published   bool            `json:"published"`
	PublishedAt *string         `json:"publishedAt"`
	Thumbnail   *string         `json:"thumbnail"`
	Blocks      []content.Block `json:"blocks,omitempty"`
}

// MapPage converts a page's property bag into post metadata. Blocks are not
// populated here. Every field has a documented default, so MapPage is total:
// a property that is missing or carries an unexpected shape degrades to the
// default instead of failing the page.
func MapPage(page *notion.Page) Post {
	return Post{
		ID:          page.ID,
		Title:       extractTitle(page),
		Published:   extractPublished(page),
		PublishedAt: extractPublishedAt(page),
		Thumbnail:   extractThumbnail(page),
	}
}

// extractTitle reads the first span of the title property. Missing property,
// empty span list, or a title that trims to nothing all yield the sentinel.
func extractTitle(page *notion.Page) string {
	prop, ok := page.Properties["title"]
	if !ok || prop.Type != "title" || len(prop.Title) == 0 {
		return untitled
	}
	title := prop.Title[0].PlainText
	if strings.TrimSpace(title) == "" {
		return untitled
	}
	return title
}

// extractPublished reads the published checkbox, defaulting to false.
func extractPublished(page *notion.Page) bool {
	prop, ok := page.Properties["published"]
	if !ok || prop.Type != "checkbox" || prop.Checkbox == nil {
		return false
	}
	return *prop.Checkbox
}

// extractPublishedAt reads the publication date and renders it for display.
func extractPublishedAt(page *notion.Page) *string {
	prop, ok := page.Properties["published_at"]
	if !ok || prop.Type != "date" || prop.Date == nil || prop.Date.Start == "" {
		return nil
	}
	formatted := FormatDate(prop.Date.Start)
	return &formatted
}

// extractThumbnail resolves the first file of the thumbnail property,
// accepting both the external and the Notion-hosted shape.
func extractThumbnail(page *notion.Page) *string {
	prop, ok := page.Properties["thumbnail"]
	if !ok || prop.Type != "files" || len(prop.Files) == 0 {
		return nil
	}
	url, ok := notion.ResolveFile(&prop.Files[0])
	if !ok {
		return nil
	}
	return &url
}

// FormatDate renders an ISO date as a short human string, e.g. "Jan 24, 2026".
// Unparseable input comes back unchanged.
func FormatDate(iso string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return iso
}
