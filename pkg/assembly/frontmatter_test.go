package assembly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskmasterpeace/bookpress/pkg/models"
)

func TestGenerateFrontMatterFullConfig(t *testing.T) {
	t.Parallel()

	pages := GenerateFrontMatter(FrontMatterConfig{
		Title:                "Luna and the Paper Boat",
		Author:               "Sam Rivera",
		Illustrator:          "Kim Ellis",
		DedicationText:       "For the dreamers",
		CopyrightYear:        2025,
		PublisherName:        "Paper Boat Press",
		ISBNPlaceholder:      "ISBN: 978-0-00-000000-0",
		FrontispieceImageURL: "https://img.example.com/frontispiece.png",
	})

	require.Len(t, pages, 6)

	expectedTypes := []models.PageType{
		models.PageTypeHalfTitle,
		models.PageTypeFrontispiece,
		models.PageTypeTitlePage,
		models.PageTypeCopyright,
		models.PageTypeDedication,
		models.PageTypeBlank,
	}
	for i, page := range pages {
		assert.Equal(t, expectedTypes[i], page.PageType)
		assert.Equal(t, []int{i + 1}, page.PhysicalPageNumbers)
		assert.Equal(t, i+1, page.LogicalPageNumber)
		assert.True(t, page.IsFrontMatter)
		assert.NotEmpty(t, page.ID)
	}

	assert.Equal(t, "Luna and the Paper Boat", pages[0].Text)
	assert.Equal(t, "https://img.example.com/frontispiece.png", pages[1].ImageURL)
	assert.Contains(t, pages[2].Text, "By Sam Rivera")
	assert.Contains(t, pages[2].Text, "Illustrated by Kim Ellis")
	assert.Contains(t, pages[3].Text, "Copyright © 2025 Sam Rivera")
	assert.Contains(t, pages[3].Text, "Published by Paper Boat Press")
	assert.Contains(t, pages[3].Text, "ISBN: 978-0-00-000000-0")
	assert.Contains(t, pages[3].Text, "First Edition")
	assert.Equal(t, "For the dreamers", pages[4].Text)
}

func TestGenerateFrontMatterMinimalConfig(t *testing.T) {
	t.Parallel()

	pages := GenerateFrontMatter(FrontMatterConfig{Title: "Untitled"})

	require.Len(t, pages, 6)

	// No frontispiece art and no dedication: blanks fill both slots so the
	// front matter always spans six physical pages.
	assert.Equal(t, models.PageTypeBlank, pages[1].PageType)
	assert.Equal(t, models.PageTypeBlank, pages[4].PageType)
	assert.Equal(t, models.PageTypeBlank, pages[5].PageType)

	assert.Contains(t, pages[3].Text, "Author Name")
	assert.Contains(t, pages[3].Text, "Self-Published")
	assert.Contains(t, pages[3].Text, "ISBN: [To be assigned]")
}

func TestGenerateBackMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		cfg           BackMatterConfig
		expectedTypes []models.PageType
	}{
		{
			name:          "the end only",
			cfg:           BackMatterConfig{IncludeTheEnd: true},
			expectedTypes: []models.PageType{models.PageTypeTheEnd},
		},
		{
			name: "with author bio",
			cfg:  BackMatterConfig{IncludeTheEnd: true, AboutAuthorText: "Sam lives in a lighthouse."},
			expectedTypes: []models.PageType{
				models.PageTypeTheEnd,
				models.PageTypeAboutAuthor,
			},
		},
		{
			name: "all pages",
			cfg: BackMatterConfig{
				IncludeTheEnd:   true,
				AboutAuthorText: "bio",
				OtherBooksText:  "Also by Sam: ...",
			},
			expectedTypes: []models.PageType{
				models.PageTypeTheEnd,
				models.PageTypeAboutAuthor,
				models.PageTypeOtherBooks,
			},
		},
		{
			name:          "nothing enabled",
			cfg:           BackMatterConfig{},
			expectedTypes: []models.PageType{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pages := GenerateBackMatter(31, tt.cfg)
			require.Len(t, pages, len(tt.expectedTypes))

			for i, page := range pages {
				assert.Equal(t, tt.expectedTypes[i], page.PageType)
				assert.Equal(t, []int{31 + i}, page.PhysicalPageNumbers)
				assert.True(t, page.IsBackMatter)
			}
		})
	}
}

func TestGenerateBackMatterTheEndPlacement(t *testing.T) {
	t.Parallel()

	pages := GenerateBackMatter(31, BackMatterConfig{IncludeTheEnd: true})
	require.Len(t, pages, 1)
	assert.Equal(t, "The End", pages[0].Text)
	assert.Equal(t, models.TextPositionBottom, pages[0].TextPosition)
}
