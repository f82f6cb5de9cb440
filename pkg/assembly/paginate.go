package assembly

import (
	"github.com/google/uuid"
	"github.com/taskmasterpeace/bookpress/pkg/models"
	"github.com/taskmasterpeace/bookpress/pkg/pagecount"
)

// StoryPages builds the unnumbered story page records for a project from its
// resolved content representation. Spreads and beats become story-spread
// records; legacy flat pages become story-single records unless flagged as
// spreads. AssignPhysicalPageNumbers fills in the numbering afterwards.
func StoryPages(project *models.StorybookProject) []models.PageRecord {
	content := pagecount.Resolve(project)

	switch content.Source {
	case pagecount.ContentSourceSpreads:
		pages := make([]models.PageRecord, 0, len(project.Spreads))
		for _, spread := range project.Spreads {
			record := models.PageRecord{
				ID:             uuid.NewString(),
				PageType:       models.PageTypeStorySpread,
				ImageURL:       spread.LeftImageURL,
				SecondImageURL: spread.RightImageURL,
				TextPosition:   spread.TextPosition,
			}
			if record.TextPosition == "" {
				record.TextPosition = models.TextPositionBottom
			}
			switch spread.TextPlacement {
			case models.TextPlacementLeft:
				record.Text = spread.LeftPageText
			case models.TextPlacementRight:
				record.SecondText = spread.RightPageText
			case models.TextPlacementBoth:
				record.Text = spread.LeftPageText
				record.SecondText = spread.RightPageText
			}
			pages = append(pages, record)
		}
		return pages

	case pagecount.ContentSourceBeats:
		pages := make([]models.PageRecord, 0, len(project.Beats))
		for _, beat := range project.Beats {
			pages = append(pages, models.PageRecord{
				ID:           uuid.NewString(),
				PageType:     models.PageTypeStorySpread,
				ImageURL:     beat.ImageURL,
				Text:         beat.Text,
				TextPosition: models.TextPositionBottom,
			})
		}
		return pages

	case pagecount.ContentSourceFlatPages:
		pages := make([]models.PageRecord, 0, len(project.Pages))
		for _, page := range project.Pages {
			record := models.PageRecord{
				ID:           uuid.NewString(),
				PageType:     models.PageTypeStorySingle,
				ImageURL:     page.ImageURL,
				Text:         page.Text,
				TextPosition: page.TextPosition,
			}
			if page.IsSpread {
				record.PageType = models.PageTypeStorySpread
			}
			if record.TextPosition == "" {
				record.TextPosition = models.TextPositionBottom
			}
			pages = append(pages, record)
		}
		return pages

	default:
		return nil
	}
}

// AssignPhysicalPageNumbers walks story records in order with a running
// physical-page counter starting at startingPage. A story-spread consumes two
// consecutive physical pages; everything else consumes one. Logical page
// numbers are the 1-based index within the story sequence, independent of
// physical numbering. The walk makes gaps and repeats structurally
// impossible; the contract is pinned by tests, not runtime checks.
func AssignPhysicalPageNumbers(storyPages []models.PageRecord, startingPage int) []models.PageRecord {
	out := make([]models.PageRecord, len(storyPages))
	current := startingPage

	for i, page := range storyPages {
		page.LogicalPageNumber = i + 1
		if page.PageType == models.PageTypeStorySpread {
			page.PhysicalPageNumbers = []int{current, current + 1}
			current += 2
		} else {
			page.PhysicalPageNumbers = []int{current}
			current++
		}
		out[i] = page
	}

	return out
}
