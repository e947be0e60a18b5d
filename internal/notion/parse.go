package notion

import (
	"strings"

	"github.com/knmsyk/notion-content-mcp/internal/content"
)

// ParseRichText converts raw inline spans into the render-agnostic form. The
// output is one-to-one with the input and preserves order; spans are never
// merged or split.
func ParseRichText(items []RichTextItem) []content.RichText {
	spans := make([]content.RichText, 0, len(items))
	for _, item := range items {
		span := content.RichText{
			Text: item.PlainText,
			Annotations: content.Annotations{
				Bold:          item.Annotations.Bold,
				Italic:        item.Annotations.Italic,
				Code:          item.Annotations.Code,
				Strikethrough: item.Annotations.Strikethrough,
				Underline:     item.Annotations.Underline,
			},
		}
		if item.Href != nil {
			link := *item.Href
			span.Link = &link
		}
		spans = append(spans, span)
	}
	return spans
}

// ParseBlock converts one raw block into its content form. The second return
// is false for block types outside the supported set; callers are expected to
// drop those.
func ParseBlock(b Block) (content.Block, bool) {
	switch b.Type {
	case "paragraph":
		return content.Paragraph{Children: ParseRichText(richText(b.Paragraph))}, true
	case "heading_1":
		return heading(1, b.Heading1), true
	case "heading_2":
		return heading(2, b.Heading2), true
	case "heading_3":
		return heading(3, b.Heading3), true
	case "code":
		var code content.Code
		if b.Code != nil {
			code.Language = b.Code.Language
			code.Content = plainText(b.Code.RichText)
		}
		return code, true
	case "image":
		// A block carrying neither file shape keeps an empty URL instead of
		// failing the whole page. Return (nil, false) here to drop such
		// blocks entirely.
		url, _ := ResolveFile(b.Image)
		img := content.Image{URL: url}
		if b.Image != nil {
			img.Caption = firstPlainText(b.Image.Caption)
		}
		return img, true
	case "quote":
		return content.Quote{Children: ParseRichText(richText(b.Quote))}, true
	case "bulleted_list_item":
		return content.BulletedListItem{Children: ParseRichText(richText(b.BulletedListItem))}, true
	case "numbered_list_item":
		return content.NumberedListItem{Children: ParseRichText(richText(b.NumberedListItem))}, true
	}
	return nil, false
}

// ParseBlocks maps raw blocks through ParseBlock and drops unsupported types,
// preserving the relative order of everything kept.
func ParseBlocks(raw []Block) []content.Block {
	blocks := make([]content.Block, 0, len(raw))
	for _, b := range raw {
		if block, ok := ParseBlock(b); ok {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// ResolveFile extracts the URL from either file shape. ok is false when f is
// nil or carries neither shape.
func ResolveFile(f *FileObject) (url string, ok bool) {
	if f == nil {
		return "", false
	}
	switch {
	case f.External != nil:
		return f.External.URL, true
	case f.File != nil:
		return f.File.URL, true
	}
	return "", false
}

func heading(level int, v *RichTextValue) content.Block {
	return content.Heading{Level: level, Children: ParseRichText(richText(v))}
}

func richText(v *RichTextValue) []RichTextItem {
	if v == nil {
		return nil
	}
	return v.RichText
}

// plainText concatenates the plain text of every span in order, with no
// separator. Line breaks inside spans come through verbatim.
func plainText(items []RichTextItem) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(item.PlainText)
	}
	return b.String()
}

// firstPlainText returns the first span's text, or nil for an empty list.
func firstPlainText(items []RichTextItem) *string {
	if len(items) == 0 {
		return nil
	}
	text := items[0].PlainText
	return &text
}
