package models

// BookFormat is a supported physical trim shape. Every format must have a
// registered trim size in pkg/dimensions; an unregistered format is a hard
// error, never a silent default.
type BookFormat string

const (
	BookFormatSquare    BookFormat = "square"
	BookFormatLandscape BookFormat = "landscape"
	BookFormatPortrait  BookFormat = "portrait"
	BookFormatWide      BookFormat = "wide"
)

// PaperType selects the paper stock, which only matters for spine-width
// arithmetic.
type PaperType string

const (
	PaperTypePremiumColor  PaperType = "premium-color"
	PaperTypeStandardColor PaperType = "standard-color"
	PaperTypeWhite         PaperType = "white-paper"
	PaperTypeCream         PaperType = "cream-paper"
)

// TextPlacement says which side of a spread carries text.
type TextPlacement string

const (
	TextPlacementLeft  TextPlacement = "left"
	TextPlacementRight TextPlacement = "right"
	TextPlacementBoth  TextPlacement = "both"
)

// Spread is a pre-pagination story unit: one two-page illustration laid out
// across facing pages. One Spread expands to exactly one story-spread
// PageRecord pair during assembly.
type Spread struct {
	SpreadNumber  int           `json:"spread_number"`
	LeftImageURL  string        `json:"left_image_url,omitempty" validate:"omitempty,url"`
	RightImageURL string        `json:"right_image_url,omitempty" validate:"omitempty,url"`
	LeftPageText  string        `json:"left_page_text,omitempty"`
	RightPageText string        `json:"right_page_text,omitempty"`
	TextPlacement TextPlacement `json:"text_placement,omitempty"`
	TextPosition  TextPosition  `json:"text_position,omitempty"`
}

// Beat is a raw story beat that has not been expanded into a spread yet.
// Older projects carry beats without spread art; each beat still accounts for
// two physical pages.
type Beat struct {
	BeatNumber int    `json:"beat_number"`
	Text       string `json:"text,omitempty"`
	ImageURL   string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// StorybookProject is the authoritative content record for one book. It is
// read-only from the assembly engine's perspective; every derived structure is
// recomputed from it on demand.
type StorybookProject struct {
	ID         string     `json:"id,omitempty"`
	Title      string     `json:"title"`
	Author     string     `json:"author,omitempty"`
	BookFormat BookFormat `json:"book_format"`

	// Story content. Projects migrated between representations over time, so
	// any of these may be populated; resolution priority is spreads, then
	// beats, then flat pages, then ConfiguredPageCount. See pkg/pagecount.
	Spreads             []Spread    `json:"spreads,omitempty"`
	Beats               []Beat      `json:"beats,omitempty"`
	Pages               []StoryPage `json:"pages,omitempty"`
	ConfiguredPageCount int         `json:"configured_page_count,omitempty"`

	// Front matter.
	Illustrator          string `json:"illustrator,omitempty"`
	DedicationText       string `json:"dedication_text,omitempty"`
	CopyrightYear        int    `json:"copyright_year,omitempty"`
	PublisherName        string `json:"publisher_name,omitempty"`
	ISBNPlaceholder      string `json:"isbn_placeholder,omitempty"`
	FrontispieceImageURL string `json:"frontispiece_image_url,omitempty" validate:"omitempty,url"`
	TitlePageImageURL    string `json:"title_page_image_url,omitempty" validate:"omitempty,url"`

	// Back matter.
	AboutAuthorText string `json:"about_author_text,omitempty"`
	AuthorPhotoURL  string `json:"author_photo_url,omitempty" validate:"omitempty,url"`
	OtherBooksText  string `json:"other_books_text,omitempty"`

	// Cover.
	CoverImageURL     string `json:"cover_image_url,omitempty" validate:"omitempty,url"`
	BackCoverImageURL string `json:"back_cover_image_url,omitempty" validate:"omitempty,url"`
	BackCoverText     string `json:"back_cover_text,omitempty"`
	BackCoverColor    *Color `json:"back_cover_color,omitempty"`
}

// StoryPage is the legacy flat story-page representation kept for projects
// that predate spreads.
type StoryPage struct {
	Text         string       `json:"text,omitempty"`
	TextPosition TextPosition `json:"text_position,omitempty"`
	ImageURL     string       `json:"image_url,omitempty" validate:"omitempty,url"`
	IsSpread     bool         `json:"is_spread,omitempty"`
}

// Color is an RGB color with components in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}
