package assembly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskmasterpeace/bookpress/pkg/models"
)

func spreadRecords(k int) []models.PageRecord {
	pages := make([]models.PageRecord, k)
	for i := range pages {
		pages[i] = models.PageRecord{PageType: models.PageTypeStorySpread}
	}
	return pages
}

func TestAssignPhysicalPageNumbersSpreads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		spreads      int
		startingPage int
	}{
		{name: "from page 7", spreads: 12, startingPage: 7},
		{name: "from page 1", spreads: 3, startingPage: 1},
		{name: "single spread", spreads: 1, startingPage: 7},
		{name: "long book", spreads: 40, startingPage: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pages := AssignPhysicalPageNumbers(spreadRecords(tt.spreads), tt.startingPage)
			require.Len(t, pages, tt.spreads)

			// k spreads started at P must end exactly at P + 2k - 1, with
			// every physical page in between appearing exactly once.
			seen := map[int]int{}
			for i, page := range pages {
				assert.Equal(t, i+1, page.LogicalPageNumber)
				require.Len(t, page.PhysicalPageNumbers, 2)
				assert.Equal(t, page.PhysicalPageNumbers[0]+1, page.PhysicalPageNumbers[1])
				for _, n := range page.PhysicalPageNumbers {
					seen[n]++
				}
			}

			last := pages[len(pages)-1].LastPhysicalPage()
			assert.Equal(t, tt.startingPage+2*tt.spreads-1, last)
			for n := tt.startingPage; n <= last; n++ {
				assert.Equal(t, 1, seen[n], "physical page %d", n)
			}
			assert.Len(t, seen, 2*tt.spreads)
		})
	}
}

func TestAssignPhysicalPageNumbersMixed(t *testing.T) {
	t.Parallel()

	story := []models.PageRecord{
		{PageType: models.PageTypeStorySingle},
		{PageType: models.PageTypeStorySpread},
		{PageType: models.PageTypeStorySingle},
		{PageType: models.PageTypeStorySpread},
	}

	pages := AssignPhysicalPageNumbers(story, 7)
	require.Len(t, pages, 4)

	assert.Equal(t, []int{7}, pages[0].PhysicalPageNumbers)
	assert.Equal(t, []int{8, 9}, pages[1].PhysicalPageNumbers)
	assert.Equal(t, []int{10}, pages[2].PhysicalPageNumbers)
	assert.Equal(t, []int{11, 12}, pages[3].PhysicalPageNumbers)

	// Logical numbering is the story index, independent of physical pages.
	for i, page := range pages {
		assert.Equal(t, i+1, page.LogicalPageNumber)
	}
}

func TestAssignPhysicalPageNumbersDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	story := spreadRecords(2)
	_ = AssignPhysicalPageNumbers(story, 7)
	assert.Nil(t, story[0].PhysicalPageNumbers)
	assert.Zero(t, story[0].LogicalPageNumber)
}

func TestStoryPagesFromSpreads(t *testing.T) {
	t.Parallel()

	project := &models.StorybookProject{
		Spreads: []models.Spread{
			{
				SpreadNumber:  1,
				LeftImageURL:  "https://img.example.com/1L.png",
				RightImageURL: "https://img.example.com/1R.png",
				LeftPageText:  "Once upon a time",
				RightPageText: "there was a boat",
				TextPlacement: models.TextPlacementBoth,
				TextPosition:  models.TextPositionTop,
			},
			{
				SpreadNumber:  2,
				LeftPageText:  "ignored",
				RightPageText: "kept",
				TextPlacement: models.TextPlacementRight,
			},
		},
	}

	pages := StoryPages(project)
	require.Len(t, pages, 2)

	assert.Equal(t, models.PageTypeStorySpread, pages[0].PageType)
	assert.Equal(t, "https://img.example.com/1L.png", pages[0].ImageURL)
	assert.Equal(t, "https://img.example.com/1R.png", pages[0].SecondImageURL)
	assert.Equal(t, "Once upon a time", pages[0].Text)
	assert.Equal(t, "there was a boat", pages[0].SecondText)
	assert.Equal(t, models.TextPositionTop, pages[0].TextPosition)

	assert.Empty(t, pages[1].Text)
	assert.Equal(t, "kept", pages[1].SecondText)
	assert.Equal(t, models.TextPositionBottom, pages[1].TextPosition)
}

func TestStoryPagesFromFlatPages(t *testing.T) {
	t.Parallel()

	project := &models.StorybookProject{
		Pages: []models.StoryPage{
			{Text: "page one", ImageURL: "https://img.example.com/1.jpg"},
			{Text: "wide scene", IsSpread: true},
		},
	}

	pages := StoryPages(project)
	require.Len(t, pages, 2)
	assert.Equal(t, models.PageTypeStorySingle, pages[0].PageType)
	assert.Equal(t, models.PageTypeStorySpread, pages[1].PageType)
}

func TestStoryPagesEmptyProject(t *testing.T) {
	t.Parallel()

	assert.Empty(t, StoryPages(&models.StorybookProject{}))
}
