// Package assembly turns project content into the ordered physical page
// sequence of a print book: the fixed front-matter opening, the paginated
// story, and the conditional back matter. Print-on-demand vendors validate
// front-matter page count and order, not just the book total, so the shapes
// here are fixed rather than configurable.
package assembly

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/taskmasterpeace/bookpress/pkg/models"
)

// FrontMatterConfig carries everything the front-matter pages print.
type FrontMatterConfig struct {
	Title                string
	Author               string
	Illustrator          string
	DedicationText       string
	CopyrightYear        int
	PublisherName        string
	ISBNPlaceholder      string
	FrontispieceImageURL string
	TitlePageImageURL    string
}

// GenerateFrontMatter emits the fixed six-page opening sequence: half-title,
// frontispiece or blank, title page, copyright page, then a dedication-blank
// pair (two blanks when there is no dedication, preserving even pagination).
// Physical page numbers start at 1.
func GenerateFrontMatter(cfg FrontMatterConfig) []models.PageRecord {
	pages := make([]models.PageRecord, 0, 6)

	// Page 1: half-title, book title only.
	pages = append(pages, models.PageRecord{
		ID:                  uuid.NewString(),
		LogicalPageNumber:   1,
		PhysicalPageNumbers: []int{1},
		PageType:            models.PageTypeHalfTitle,
		Text:                cfg.Title,
		TextPosition:        models.TextPositionNone,
		IsFrontMatter:       true,
	})

	// Page 2: frontispiece when art was supplied, otherwise a blank filler.
	frontispiece := models.PageRecord{
		ID:                  uuid.NewString(),
		LogicalPageNumber:   2,
		PhysicalPageNumbers: []int{2},
		PageType:            models.PageTypeBlank,
		TextPosition:        models.TextPositionNone,
		IsFrontMatter:       true,
	}
	if cfg.FrontispieceImageURL != "" {
		frontispiece.PageType = models.PageTypeFrontispiece
		frontispiece.ImageURL = cfg.FrontispieceImageURL
	}
	pages = append(pages, frontispiece)

	// Page 3: title page.
	titleText := cfg.Title
	if cfg.Author != "" {
		titleText += "\n\nBy " + cfg.Author
	}
	if cfg.Illustrator != "" {
		titleText += "\n\nIllustrated by " + cfg.Illustrator
	}
	pages = append(pages, models.PageRecord{
		ID:                  uuid.NewString(),
		LogicalPageNumber:   3,
		PhysicalPageNumbers: []int{3},
		PageType:            models.PageTypeTitlePage,
		Text:                titleText,
		TextPosition:        models.TextPositionNone,
		ImageURL:            cfg.TitlePageImageURL,
		IsFrontMatter:       true,
	})

	// Page 4: copyright page.
	pages = append(pages, models.PageRecord{
		ID:                  uuid.NewString(),
		LogicalPageNumber:   4,
		PhysicalPageNumbers: []int{4},
		PageType:            models.PageTypeCopyright,
		Text:                CopyrightText(cfg),
		TextPosition:        models.TextPositionNone,
		IsFrontMatter:       true,
	})

	// Pages 5 and 6: dedication plus blank, or two blanks.
	dedication := models.PageRecord{
		ID:                  uuid.NewString(),
		LogicalPageNumber:   5,
		PhysicalPageNumbers: []int{5},
		PageType:            models.PageTypeBlank,
		TextPosition:        models.TextPositionNone,
		IsFrontMatter:       true,
	}
	if cfg.DedicationText != "" {
		dedication.PageType = models.PageTypeDedication
		dedication.Text = cfg.DedicationText
	}
	pages = append(pages, dedication)

	pages = append(pages, models.PageRecord{
		ID:                  uuid.NewString(),
		LogicalPageNumber:   6,
		PhysicalPageNumbers: []int{6},
		PageType:            models.PageTypeBlank,
		TextPosition:        models.TextPositionNone,
		IsFrontMatter:       true,
	})

	return pages
}

// CopyrightText renders the copyright page's templated legal text.
func CopyrightText(cfg FrontMatterConfig) string {
	year := cfg.CopyrightYear
	if year == 0 {
		year = time.Now().Year()
	}
	author := cfg.Author
	if author == "" {
		author = "Author Name"
	}
	publisher := cfg.PublisherName
	if publisher == "" {
		publisher = "Self-Published"
	}
	isbn := cfg.ISBNPlaceholder
	if isbn == "" {
		isbn = "ISBN: [To be assigned]"
	}

	return fmt.Sprintf(`Copyright © %d %s

All rights reserved. No part of this publication may be reproduced, distributed, or transmitted in any form or by any means, including photocopying, recording, or other electronic or mechanical methods, without the prior written permission of the publisher.

%s

Published by %s

First Edition`, year, author, isbn, publisher)
}
