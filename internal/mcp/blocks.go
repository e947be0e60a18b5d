package mcp

import (
	"github.com/knmsyk/notion-content-mcp/internal/content"
)

// RichTextSpan is the tool-output form of one inline span.
type RichTextSpan struct {
	Text          string `json:"text"`
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Code          bool   `json:"code,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
	Underline     bool   `json:"underline,omitempty"`
	Link          string `json:"link,omitempty"`
}

// BlockResult is the flat, type-tagged tool-output form of a content block.
// Which fields are set depends on Type.
type BlockResult struct {
	Type     string         `json:"type"`
	Level    int            `json:"level,omitempty" jsonschema_description:"Heading level, 1-3"`
	Language string         `json:"language,omitempty"`
	Content  string         `json:"content,omitempty" jsonschema_description:"Code block source text"`
	URL      string         `json:"url,omitempty"`
	Caption  string         `json:"caption,omitempty"`
	Children []RichTextSpan `json:"children,omitempty"`
}

func richTextSpans(spans []content.RichText) []RichTextSpan {
	out := make([]RichTextSpan, 0, len(spans))
	for _, span := range spans {
		rt := RichTextSpan{
			Text:          span.Text,
			Bold:          span.Annotations.Bold,
			Italic:        span.Annotations.Italic,
			Code:          span.Annotations.Code,
			Strikethrough: span.Annotations.Strikethrough,
			Underline:     span.Annotations.Underline,
		}
		if span.Link != nil {
			rt.Link = *span.Link
		}
		out = append(out, rt)
	}
	return out
}

func blockResult(b content.Block) BlockResult {
	switch b := b.(type) {
	case content.Paragraph:
		return BlockResult{Type: string(content.TypeParagraph), Children: richTextSpans(b.Children)}
	case content.Heading:
		return BlockResult{Type: string(content.TypeHeading), Level: b.Level, Children: richTextSpans(b.Children)}
	case content.Code:
		return BlockResult{Type: string(content.TypeCode), Language: b.Language, Content: b.Content}
	case content.Image:
		result := BlockResult{Type: string(content.TypeImage), URL: b.URL}
		if b.Caption != nil {
			result.Caption = *b.Caption
		}
		return result
	case content.Quote:
		return BlockResult{Type: string(content.TypeQuote), Children: richTextSpans(b.Children)}
	case content.BulletedListItem:
		return BlockResult{Type: string(content.TypeBulletedListItem), Children: richTextSpans(b.Children)}
	case content.NumberedListItem:
		return BlockResult{Type: string(content.TypeNumberedListItem), Children: richTextSpans(b.Children)}
	}
	return BlockResult{Type: string(b.BlockType())}
}

func blockResults(blocks []content.Block) []BlockResult {
	out := make([]BlockResult, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, blockResult(b))
	}
	return out
}
