// Package content defines the render-agnostic document model produced by the
// Notion normalization layer. Presentation code consumes these types and never
// reaches back into raw API shapes.
package content

// Annotations holds the five inline style flags attached to a rich text span.
// All flags are always populated; a flag missing from the source means false.
type Annotations struct {
	Bold          bool `json:"bold"`
	Italic        bool `json:"italic"`
	Code          bool `json:"code"`
	Strikethrough bool `json:"strikethrough"`
	Underline     bool `json:"underline"`
}

// RichText is one contiguous run of inline text with uniform formatting.
// Link is nil when the span is not hyperlinked; an empty Link string is never
// used to mean "no link".
type RichText struct {
	Text        string      `json:"text"`
	Annotations Annotations `json:"annotations"`
	Link        *string     `json:"link,omitempty"`
}

// BlockType discriminates the Block implementations.
type BlockType string

const (
	TypeParagraph        BlockType = "paragraph"
	TypeHeading          BlockType = "heading"
	TypeCode             BlockType = "code"
	TypeImage            BlockType = "image"
	TypeQuote            BlockType = "quote"
	TypeBulletedListItem BlockType = "bulleted_list_item"
	TypeNumberedListItem BlockType = "numbered_list_item"
)

// Block is one structural unit of document body content. The set of
// implementations is closed: source blocks of any other type are dropped
// during parsing instead of being given a placeholder variant.
type Block interface {
	BlockType() BlockType
}

// Paragraph is a plain paragraph of rich text.
type Paragraph struct {
	Children []RichText `json:"children"`
}

func (Paragraph) BlockType() BlockType { return TypeParagraph }

// Heading is a section heading. Level runs from 1 (largest) to 3.
type Heading struct {
	Level    int        `json:"level"`
	Children []RichText `json:"children"`
}

func (Heading) BlockType() BlockType { return TypeHeading }

// Code is a fenced code block. Content is the concatenated plain text of all
// source spans; inline formatting inside a code block carries no meaning.
type Code struct {
	Language string `json:"language"`
	Content  string `json:"content"`
}

func (Code) BlockType() BlockType { return TypeCode }

// Image references a hosted image. Caption is nil when the source block has
// no caption spans.
type Image struct {
	URL     string  `json:"url"`
	Caption *string `json:"caption,omitempty"`
}

func (Image) BlockType() BlockType { return TypeImage }

// Quote is a block quotation.
type Quote struct {
	Children []RichText `json:"children"`
}

func (Quote) BlockType() BlockType { return TypeQuote }

// BulletedListItem is a single unordered list entry.
type BulletedListItem struct {
	Children []RichText `json:"children"`
}

func (BulletedListItem) BlockType() BlockType { return TypeBulletedListItem }

// NumberedListItem is a single ordered list entry.
type NumberedListItem struct {
	Children []RichText `json:"children"`
}

func (NumberedListItem) BlockType() BlockType { return TypeNumberedListItem }
