package pagecount

import (
	"github.com/taskmasterpeace/bookpress/pkg/models"
)

// ContentSource identifies which story representation a project's page count
// was derived from. Projects migrated between representations over time, so a
// record can carry more than one; Resolve makes the priority order explicit
// and testable in one place instead of scattering null checks.
type ContentSource string

const (
	ContentSourceSpreads    ContentSource = "spreads"
	ContentSourceBeats      ContentSource = "beats"
	ContentSourceFlatPages  ContentSource = "flat-pages"
	ContentSourceConfigured ContentSource = "configured"
	ContentSourceNone       ContentSource = "none"
)

// StoryContent is the resolved story representation: where the count came
// from, how many story units there are, and how many physical pages they fill.
type StoryContent struct {
	Source    ContentSource `json:"source"`
	Units     int           `json:"units"`
	PageCount int           `json:"page_count"`
}

// Resolve picks the authoritative story representation for a project. The
// priority order is spreads, then beats, then the legacy flat page array, then
// a manually configured count. Spreads and beats each fill two physical pages.
func Resolve(project *models.StorybookProject) StoryContent {
	switch {
	case len(project.Spreads) > 0:
		return StoryContent{
			Source:    ContentSourceSpreads,
			Units:     len(project.Spreads),
			PageCount: len(project.Spreads) * 2,
		}
	case len(project.Beats) > 0:
		return StoryContent{
			Source:    ContentSourceBeats,
			Units:     len(project.Beats),
			PageCount: len(project.Beats) * 2,
		}
	case len(project.Pages) > 0:
		return StoryContent{
			Source:    ContentSourceFlatPages,
			Units:     len(project.Pages),
			PageCount: len(project.Pages),
		}
	case project.ConfiguredPageCount > 0:
		return StoryContent{
			Source:    ContentSourceConfigured,
			PageCount: project.ConfiguredPageCount,
		}
	default:
		return StoryContent{Source: ContentSourceNone}
	}
}
