package notion

// The API encodes variant data as flat records with a string type discriminant
// and one nested payload per discriminant. Only the payload matching Type is
// ever populated; the rest stay nil.

// Page is a page record returned by the API. The keys present in Properties
// depend on the database schema.
type Page struct {
	Object     string              `json:"object"`
	ID         string              `json:"id"`
	URL        string              `json:"url,omitempty"`
	Properties map[string]Property `json:"properties"`
}

// Property is a single page property, discriminated by Type.
type Property struct {
	ID          string         `json:"id,omitempty"`
	Type        string         `json:"type"`
	Title       []RichTextItem `json:"title,omitempty"`
	RichText    []RichTextItem `json:"rich_text,omitempty"`
	Checkbox    *bool          `json:"checkbox,omitempty"`
	Date        *DateValue     `json:"date,omitempty"`
	Files       []FileObject   `json:"files,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
}

// DateValue is a date property payload.
type DateValue struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// SelectOption is one entry of a select or multi-select property.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// RichTextItem is one inline span as returned by the API.
type RichTextItem struct {
	Type        string        `json:"type,omitempty"`
	PlainText   string        `json:"plain_text"`
	Href        *string       `json:"href,omitempty"`
	Annotations AnnotationBag `json:"annotations"`
}

// AnnotationBag carries the style flags of a rich text span.
type AnnotationBag struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Code          bool   `json:"code"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Color         string `json:"color,omitempty"`
}

// FileObject is the API's two-shape file reference: externally hosted files
// carry External, Notion-hosted uploads carry File with a time-limited signed
// URL.
type FileObject struct {
	Type     string         `json:"type"`
	Name     string         `json:"name,omitempty"`
	External *ExternalFile  `json:"external,omitempty"`
	File     *HostedFile    `json:"file,omitempty"`
	Caption  []RichTextItem `json:"caption,omitempty"`
}

// ExternalFile points at a file hosted outside Notion.
type ExternalFile struct {
	URL string `json:"url"`
}

// HostedFile points at a Notion-hosted file via a signed URL.
type HostedFile struct {
	URL        string `json:"url"`
	ExpiryTime string `json:"expiry_time,omitempty"`
}

// Block is a raw block record, discriminated by Type.
type Block struct {
	Object           string         `json:"object,omitempty"`
	ID               string         `json:"id"`
	Type             string         `json:"type"`
	HasChildren      bool           `json:"has_children,omitempty"`
	Paragraph        *RichTextValue `json:"paragraph,omitempty"`
	Heading1         *RichTextValue `json:"heading_1,omitempty"`
	Heading2         *RichTextValue `json:"heading_2,omitempty"`
	Heading3         *RichTextValue `json:"heading_3,omitempty"`
	Code             *CodeValue     `json:"code,omitempty"`
	Image            *FileObject    `json:"image,omitempty"`
	Quote            *RichTextValue `json:"quote,omitempty"`
	BulletedListItem *RichTextValue `json:"bulleted_list_item,omitempty"`
	NumberedListItem *RichTextValue `json:"numbered_list_item,omitempty"`
}

// RichTextValue is the payload shared by the text-bearing block types.
type RichTextValue struct {
	RichText []RichTextItem `json:"rich_text"`
	Color    string         `json:"color,omitempty"`
}

// CodeValue is the payload of a code block.
type CodeValue struct {
	RichText []RichTextItem `json:"rich_text"`
	Caption  []RichTextItem `json:"caption,omitempty"`
	Language string         `json:"language"`
}
