package assembly

import (
	"github.com/google/uuid"
	"github.com/taskmasterpeace/bookpress/pkg/models"
)

// BackMatterConfig controls which closing pages are emitted.
type BackMatterConfig struct {
	IncludeTheEnd   bool
	AboutAuthorText string
	AuthorPhotoURL  string
	OtherBooksText  string
}

// GenerateBackMatter emits the conditional closing pages, continuing the
// physical page counter from startingPhysicalPage. "About the author" and
// "other books" pages only exist when their text was supplied.
func GenerateBackMatter(startingPhysicalPage int, cfg BackMatterConfig) []models.PageRecord {
	pages := []models.PageRecord{}
	current := startingPhysicalPage
	logical := 1

	if cfg.IncludeTheEnd {
		pages = append(pages, models.PageRecord{
			ID:                  uuid.NewString(),
			LogicalPageNumber:   logical,
			PhysicalPageNumbers: []int{current},
			PageType:            models.PageTypeTheEnd,
			Text:                "The End",
			TextPosition:        models.TextPositionBottom,
			IsBackMatter:        true,
		})
		current++
		logical++
	}

	if cfg.AboutAuthorText != "" {
		pages = append(pages, models.PageRecord{
			ID:                  uuid.NewString(),
			LogicalPageNumber:   logical,
			PhysicalPageNumbers: []int{current},
			PageType:            models.PageTypeAboutAuthor,
			Text:                cfg.AboutAuthorText,
			TextPosition:        models.TextPositionNone,
			ImageURL:            cfg.AuthorPhotoURL,
			IsBackMatter:        true,
		})
		current++
		logical++
	}

	if cfg.OtherBooksText != "" {
		pages = append(pages, models.PageRecord{
			ID:                  uuid.NewString(),
			LogicalPageNumber:   logical,
			PhysicalPageNumbers: []int{current},
			PageType:            models.PageTypeOtherBooks,
			Text:                cfg.OtherBooksText,
			TextPosition:        models.TextPositionNone,
			IsBackMatter:        true,
		})
	}

	return pages
}
