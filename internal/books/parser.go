// Package books maps Notion pages from the reading note database into notes
// and exposes the read operations the server offers over them.
package books

import (
	"strings"

	"github.com/knmsyk/notion-content-mcp/internal/content"
	"github.com/knmsyk/notion-content-mcp/internal/notion"
)

// untitled is the fallback title for notes without a usable title property.
const untitled = "無題"

// Note is reading-note metadata derived from one Notion page. CreatedAt is
// the raw ISO 8601 date from the source, deliberately not display-formatted;
// consumers decide how to render it.
type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Topics    []string `json:"topics"`
	IsPublic  bool     `json:"isPublic"`
	CreatedAt *string  `json:"createdAt"`
}

// NoteDetail is a note plus its parsed body.
type NoteDetail struct {
	Note
	Blocks []content.Block `json:"blocks"`
}

// ParsePage converts a page's property bag into note metadata. Like the post
// mapper it is total: missing or misshapen properties degrade to defaults.
func ParsePage(page *notion.Page) Note {
	return Note{
		ID:        page.ID,
		Title:     extractTitle(page),
		Topics:    extractTopics(page),
		IsPublic:  extractIsPublic(page),
		CreatedAt: extractCreatedAt(page),
	}
}

// extractTitle joins all title spans, unlike the post mapper which reads only
// the first. A title that trims to nothing yields the sentinel.
func extractTitle(page *notion.Page) string {
	prop, ok := page.Properties["title"]
	if !ok || prop.Type != "title" {
		return untitled
	}

	var b strings.Builder
	for _, item := range prop.Title {
		b.WriteString(item.PlainText)
	}
	title := strings.TrimSpace(b.String())
	if title == "" {
		return untitled
	}
	return title
}

// extractTopics reads the multi-select topic names. Never nil.
func extractTopics(page *notion.Page) []string {
	prop, ok := page.Properties["topic"]
	if !ok || prop.Type != "multi_select" {
		return []string{}
	}

	topics := make([]string, 0, len(prop.MultiSelect))
	for _, option := range prop.MultiSelect {
		topics = append(topics, option.Name)
	}
	return topics
}

func extractIsPublic(page *notion.Page) bool {
	prop, ok := page.Properties["is_public"]
	if !ok || prop.Type != "checkbox" || prop.Checkbox == nil {
		return false
	}
	return *prop.Checkbox
}

func extractCreatedAt(page *notion.Page) *string {
	prop, ok := page.Properties["created_at"]
	if !ok || prop.Type != "date" || prop.Date == nil || prop.Date.Start == "" {
		return nil
	}
	start := prop.Date.Start
	return &start
}
