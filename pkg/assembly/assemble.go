package assembly

import (
	"github.com/taskmasterpeace/bookpress/pkg/models"
)

// AssembleOptions selects which surrounding matter joins the story pages.
// Always passed explicitly per build so concurrent builds can't interfere.
type AssembleOptions struct {
	IncludeFrontMatter bool
	IncludeBackMatter  bool
}

// StoryStartWithFrontMatter is the physical page the story opens on when the
// six front-matter pages are present.
const StoryStartWithFrontMatter = 7

// AssembleCompleteBook concatenates front matter, physically numbered story
// pages, and back matter into one ordered sequence. With front matter the
// story starts at physical page 7; without it, at page 1.
func AssembleCompleteBook(project *models.StorybookProject, opts AssembleOptions) []models.PageRecord {
	var all []models.PageRecord

	if opts.IncludeFrontMatter {
		all = append(all, GenerateFrontMatter(FrontMatterConfig{
			Title:                project.Title,
			Author:               project.Author,
			Illustrator:          project.Illustrator,
			DedicationText:       project.DedicationText,
			CopyrightYear:        project.CopyrightYear,
			PublisherName:        project.PublisherName,
			ISBNPlaceholder:      project.ISBNPlaceholder,
			FrontispieceImageURL: project.FrontispieceImageURL,
			TitlePageImageURL:    project.TitlePageImageURL,
		})...)
	}

	storyStart := 1
	if opts.IncludeFrontMatter {
		storyStart = StoryStartWithFrontMatter
	}
	story := AssignPhysicalPageNumbers(StoryPages(project), storyStart)
	all = append(all, story...)

	if opts.IncludeBackMatter {
		backStart := storyStart
		if len(story) > 0 {
			backStart = story[len(story)-1].LastPhysicalPage() + 1
		}
		all = append(all, GenerateBackMatter(backStart, BackMatterConfig{
			IncludeTheEnd:   true,
			AboutAuthorText: project.AboutAuthorText,
			AuthorPhotoURL:  project.AuthorPhotoURL,
			OtherBooksText:  project.OtherBooksText,
		})...)
	}

	return all
}
