package models

// PageType identifies what a physical page is for. The print vendor validates
// front-matter page count and order, not just the grand total, so these are
// distinct types rather than free-form labels.
type PageType string

const (
	PageTypeHalfTitle    PageType = "half-title"
	PageTypeFrontispiece PageType = "frontispiece"
	PageTypeTitlePage    PageType = "title-page"
	PageTypeCopyright    PageType = "copyright"
	PageTypeDedication   PageType = "dedication"
	PageTypeBlank        PageType = "blank"
	PageTypeStorySingle  PageType = "story-single"
	PageTypeStorySpread  PageType = "story-spread"
	PageTypeTheEnd       PageType = "the-end"
	PageTypeAboutAuthor  PageType = "about-author"
	PageTypeOtherBooks   PageType = "other-books"
)

// TextPosition anchors a page's text block.
type TextPosition string

const (
	TextPositionTop    TextPosition = "top"
	TextPositionBottom TextPosition = "bottom"
	TextPositionLeft   TextPosition = "left"
	TextPositionRight  TextPosition = "right"
	TextPositionNone   TextPosition = "none"
)

// PageRecord is one unit of assembled book content. A story-spread record
// always carries exactly two physical page numbers (left, right); every other
// type carries exactly one. Across a fully assembled book the physical page
// numbers are strictly increasing and contiguous.
type PageRecord struct {
	ID                  string       `json:"id"`
	LogicalPageNumber   int          `json:"logical_page_number"`
	PhysicalPageNumbers []int        `json:"physical_page_numbers"`
	PageType            PageType     `json:"page_type"`
	Text                string       `json:"text,omitempty"`
	TextPosition        TextPosition `json:"text_position"`
	ImageURL            string       `json:"image_url,omitempty"`

	// Populated only for story-spread records: content of the right-hand
	// physical page. ImageURL and Text cover the left-hand page.
	SecondImageURL string `json:"second_image_url,omitempty"`
	SecondText     string `json:"second_text,omitempty"`

	IsFrontMatter bool `json:"is_front_matter,omitempty"`
	IsBackMatter  bool `json:"is_back_matter,omitempty"`
}

// PhysicalPageSpan is how many physical pages the record consumes.
func (p *PageRecord) PhysicalPageSpan() int {
	if p.PageType == PageTypeStorySpread {
		return 2
	}
	return 1
}

// LastPhysicalPage is the highest physical page number the record occupies.
func (p *PageRecord) LastPhysicalPage() int {
	if len(p.PhysicalPageNumbers) == 0 {
		return 0
	}
	return p.PhysicalPageNumbers[len(p.PhysicalPageNumbers)-1]
}
