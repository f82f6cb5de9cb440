// Package pagecount reports how a project's content maps onto physical pages
// and whether the total satisfies the publisher's minimum. Breakdowns are
// recomputed from project content on demand and never cached.
package pagecount

import (
	"fmt"

	"github.com/taskmasterpeace/bookpress/pkg/models"
)

// MinimumRequired is KDP's minimum interior page count for children's books.
const MinimumRequired = 24

// Item is one named contributor to a section's page count.
type Item struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Breakdown is a read-only page-count report for one project.
type Breakdown struct {
	FrontMatterItems []Item `json:"front_matter_items"`
	BackMatterItems  []Item `json:"back_matter_items"`

	FrontMatterTotal int `json:"front_matter_total"`
	StoryTotal       int `json:"story_total"`
	BackMatterTotal  int `json:"back_matter_total"`
	GrandTotal       int `json:"grand_total"`

	StoryContent StoryContent `json:"story_content"`

	MinimumRequired int  `json:"minimum_required"`
	IsCompliant     bool `json:"is_compliant"`
	ShortfallPages  int  `json:"shortfall_pages"`
}

// ComputeBreakdown sums front matter, story content, and back matter for the
// project as it stands. Dedication and its facing blank only count when
// dedication text is present; "about the author" only counts when bio text is
// present.
func ComputeBreakdown(project *models.StorybookProject) Breakdown {
	b := Breakdown{MinimumRequired: MinimumRequired}

	// Front matter: the fixed four-page opening, then the dedication pair.
	b.FrontMatterItems = []Item{
		{Name: "Half-title", Count: 1},
		{Name: "Frontispiece / blank", Count: 1},
		{Name: "Title page", Count: 1},
		{Name: "Copyright page", Count: 1},
	}
	if project.DedicationText != "" {
		b.FrontMatterItems = append(b.FrontMatterItems,
			Item{Name: "Dedication", Count: 1},
			Item{Name: "Blank", Count: 1},
		)
	} else {
		b.FrontMatterItems = append(b.FrontMatterItems, Item{Name: "Blank pair", Count: 2})
	}
	for _, item := range b.FrontMatterItems {
		b.FrontMatterTotal += item.Count
	}

	b.StoryContent = Resolve(project)
	b.StoryTotal = b.StoryContent.PageCount

	b.BackMatterItems = []Item{{Name: "The End", Count: 1}}
	if project.AboutAuthorText != "" {
		b.BackMatterItems = append(b.BackMatterItems, Item{Name: "About the author", Count: 1})
	}
	if project.OtherBooksText != "" {
		b.BackMatterItems = append(b.BackMatterItems, Item{Name: "Other books", Count: 1})
	}
	for _, item := range b.BackMatterItems {
		b.BackMatterTotal += item.Count
	}

	b.GrandTotal = b.FrontMatterTotal + b.StoryTotal + b.BackMatterTotal
	b.IsCompliant = b.GrandTotal >= b.MinimumRequired
	if !b.IsCompliant {
		b.ShortfallPages = b.MinimumRequired - b.GrandTotal
	}

	return b
}

// Recommendation returns a human-readable instruction for closing a page
// shortfall, or the empty string when the breakdown is already compliant.
// Story content is only ever added in spread units, so the shortfall is
// expressed in two-page spreads.
func Recommendation(b Breakdown) string {
	if b.IsCompliant {
		return ""
	}
	spreadsNeeded := (b.ShortfallPages + 1) / 2
	noun := "spreads"
	if spreadsNeeded == 1 {
		noun = "spread"
	}
	return fmt.Sprintf("Add %d more story %s to reach the %d-page minimum (currently %d pages short).",
		spreadsNeeded, noun, b.MinimumRequired, b.ShortfallPages)
}
