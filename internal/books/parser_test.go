package books

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

func topicProp(names ...string) notion.Property {
	options := make([]notion.SelectOption, 0, len(names))
	for _, name := range names {
		options = append(options, notion.SelectOption{Name: name})
	}
	return notion.Property{Type: "multi_select", MultiSelect: options}
}

func boolPtr(b bool) *bool {
	return &b
}

func TestExtractTitleJoinsSpans(t *testing.T) {
	t.Parallel()

	page := &notion.Page{Properties: map[string]notion.Property{
		"title": titleProp("リーダブル", "コード"),
	}}
	if got := extractTitle(page); got != "リーダブルコード" {
		t.Fatalf("unexpected title %q", got)
	}
}

func TestExtractTitleSentinel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		props map[string]notion.Property
	}{
		{name: "missing", props: map[string]notion.Property{}},
		{name: "wrong shape", props: map[string]notion.Property{"title": {Type: "checkbox", Checkbox: boolPtr(true)}}},
		{name: "no spans", props: map[string]notion.Property{"title": titleProp()}},
		{name: "whitespace only", props: map[string]notion.Property{"title": titleProp("  ", "\t")}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			page := &notion.Page{Properties: tc.props}
			if got := extractTitle(page); got != "無題" {
				t.Fatalf("expected sentinel, got %q", got)
			}
		})
	}
}

func TestExtractTopics(t *testing.T) {
	t.Parallel()

	page := &notion.Page{Properties: map[string]notion.Property{
		"topic": topicProp("設計", "Go"),
	}}
	got := extractTopics(page)
	if len(got) != 2 || got[0] != "設計" || got[1] != "Go" {
		t.Fatalf("unexpected topics %v", got)
	}

	page = &notion.Page{Properties: map[string]notion.Property{}}
	got = extractTopics(page)
	if got == nil || len(got) != 0 {
		t.Fatalf("missing property must yield an empty slice, got %#v", got)
	}
}

func TestExtractCreatedAtKeepsRawISO(t *testing.T) {
	t.Parallel()

	// Unlike a post's publishedAt, createdAt stays structured.
	page := &notion.Page{Properties: map[string]notion.Property{
		"created_at": {Type: "date", Date: &notion.DateValue{Start: "2025-11-03"}},
	}}
	got := extractCreatedAt(page)
	if got == nil || *got != "2025-11-03" {
		t.Fatalf("unexpected createdAt %v", got)
	}

	page = &notion.Page{Properties: map[string]notion.Property{}}
	if extractCreatedAt(page) != nil {
		t.Fatalf("missing property must be nil")
	}
}

func TestParsePageDefaults(t *testing.T) {
	t.Parallel()

	note := ParsePage(&notion.Page{ID: "n1", Properties: map[string]notion.Property{}})
	if note.ID != "n1" || note.Title != "無題" {
		t.Fatalf("unexpected note %+v", note)
	}
	if note.IsPublic {
		t.Fatalf("expected private by default")
	}
	if note.Topics == nil || len(note.Topics) != 0 {
		t.Fatalf("topics must default to empty, got %#v", note.Topics)
	}
	if note.CreatedAt != nil {
		t.Fatalf("createdAt must default to nil")
	}
}
