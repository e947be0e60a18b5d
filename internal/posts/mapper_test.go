package posts

import (
	"testing"

	"github.com/knmsyk/notion-content-mcp/internal/notion"
)

func titleProp(texts ...string) notion.Property {
	items := make([]notion.RichTextItem, 0, len(texts))
	for _, text := range texts {
		items = append(items, notion.RichTextItem{Type: "text", PlainText: text})
	}
	return notion.Property{Type: "title", Title: items}
}

func boolPtr(b bool) *bool {
	return &b
}

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		props map[string]notion.Property
		want  string
	}{
		{name: "plain title", props: map[string]notion.Property{"title": titleProp("My Post")}, want: "My Post"},
		{name: "missing property", props: map[string]notion.Property{}, want: "Untitled"},
		{name: "wrong shape", props: map[string]notion.Property{"title": {Type: "checkbox", Checkbox: boolPtr(true)}}, want: "Untitled"},
		{name: "empty span list", props: map[string]notion.Property{"title": titleProp()}, want: "Untitled"},
		{name: "whitespace only", props: map[string]notion.Property{"title": titleProp("  \t")}, want: "Untitled"},
		{name: "exact span text kept", props: map[string]notion.Property{"title": titleProp(" spaced ")}, want: " spaced "},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			page := &notion.Page{ID: "p1", Properties: tc.props}
			if got := extractTitle(page); got != tc.want {
				t.Fatalf("extractTitle = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtractPublished(t *testing.T) {
	t.Parallel()

	page := &notion.Page{Properties: map[string]notion.Property{
		"published": {Type: "checkbox", Checkbox: boolPtr(true)},
	}}
	if !extractPublished(page) {
		t.Fatalf("expected published")
	}

	page = &notion.Page{Properties: map[string]notion.Property{
		"published": {Type: "date", Date: &notion.DateValue{Start: "2024-01-01"}},
	}}
	if extractPublished(page) {
		t.Fatalf("wrong shape must default to false")
	}

	page = &notion.Page{Properties: map[string]notion.Property{}}
	if extractPublished(page) {
		t.Fatalf("missing property must default to false")
	}
}

func TestExtractPublishedAt(t *testing.T) {
	t.Parallel()

	page := &notion.Page{Properties: map[string]notion.Property{
		"published_at": {Type: "date", Date: &notion.DateValue{Start: "2024-01-24"}},
	}}
	got := extractPublishedAt(page)
	if got == nil || *got != "Jan 24, 2024" {
		t.Fatalf("unexpected publishedAt: %v", got)
	}

	page = &notion.Page{Properties: map[string]notion.Property{
		"published_at": {Type: "date"},
	}}
	if extractPublishedAt(page) != nil {
		t.Fatalf("date without payload must be nil")
	}

	page = &notion.Page{Properties: map[string]notion.Property{}}
	if extractPublishedAt(page) != nil {
		t.Fatalf("missing property must be nil")
	}
}

func TestExtractThumbnail(t *testing.T) {
	t.Parallel()

	page := &notion.Page{Properties: map[string]notion.Property{
		"thumbnail": {Type: "files", Files: []notion.FileObject{
			{Type: "external", External: &notion.ExternalFile{URL: "https://example.com/t.png"}},
		}},
	}}
	got := extractThumbnail(page)
	if got == nil || *got != "https://example.com/t.png" {
		t.Fatalf("unexpected thumbnail: %v", got)
	}

	page = &notion.Page{Properties: map[string]notion.Property{
		"thumbnail": {Type: "files", Files: []notion.FileObject{
			{Type: "file", File: &notion.HostedFile{URL: "https://files.notion.so/t.png"}},
		}},
	}}
	got = extractThumbnail(page)
	if got == nil || *got != "https://files.notion.so/t.png" {
		t.Fatalf("unexpected hosted thumbnail: %v", got)
	}

	page = &notion.Page{Properties: map[string]notion.Property{
		"thumbnail": {Type: "files"},
	}}
	if extractThumbnail(page) != nil {
		t.Fatalf("empty file list must be nil")
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"2026-01-24", "Jan 24, 2026"},
		{"2024-12-01", "Dec 1, 2024"},
		{"2024-03-05T09:30:00+09:00", "Mar 5, 2024"},
		{"not-a-date", "not-a-date"},
	}

	for _, tc := range cases {
		if got := FormatDate(tc.in); got != tc.want {
			t.Fatalf("FormatDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMapPageTotality(t *testing.T) {
	t.Parallel()

	// A page with nothing usable still maps to a fully populated post.
	post := MapPage(&notion.Page{ID: "p9", Properties: map[string]notion.Property{}})
	if post.ID != "p9" {
		t.Fatalf("unexpected id %q", post.ID)
	}
	if post.Title != "Untitled" {
		t.Fatalf("unexpected title %q", post.Title)
	}
	if post.Published {
		t.Fatalf("expected unpublished")
	}
	if post.PublishedAt != nil || post.Thumbnail != nil {
		t.Fatalf("expected nil date and thumbnail, got %v %v", post.PublishedAt, post.Thumbnail)
	}
}
