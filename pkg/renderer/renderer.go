// Package renderer walks an assembled page sequence and issues draw commands
// against a pdfdraw.Surface. All per-page inputs (image bytes, wrapped text
// lines) are gathered before the first draw call for a page; the surface is
// single-writer, so everything here runs in one sequential context.
package renderer

import (
	"context"

	"github.com/robinjoseph08/golib/logger"
	"github.com/taskmasterpeace/bookpress/pkg/dimensions"
	"github.com/taskmasterpeace/bookpress/pkg/imagefetch"
	"github.com/taskmasterpeace/bookpress/pkg/models"
	"github.com/taskmasterpeace/bookpress/pkg/pdfdraw"
	"github.com/taskmasterpeace/bookpress/pkg/typeset"
)

const (
	bodyFontSize = 14
	bodyLineGap  = 4
	platePadding = 10
	plateOpacity = 0.8
	metadataTool = "Bookpress"
)

var (
	black       = models.Color{R: 0, G: 0, B: 0}
	nearBlack   = models.Color{R: 0.1, G: 0.1, B: 0.1}
	darkGray    = models.Color{R: 0.2, G: 0.2, B: 0.2}
	midGray     = models.Color{R: 0.3, G: 0.3, B: 0.3}
	placeholder = models.Color{R: 0.9, G: 0.9, B: 0.9}
	white       = models.Color{R: 1, G: 1, B: 1}
)

// Interior is everything one interior build needs. Images holds prefetched
// bytes keyed by URL; a missing entry renders as a placeholder.
type Interior struct {
	Format  models.BookFormat
	Title   string
	Author  string
	Pages   []models.PageRecord
	Images  map[string]imagefetch.Image
	Options models.ExportOptions
}

// RenderInterior draws every page of in.Pages onto surf in order. Pagination
// must already be final: each record's physical page numbers determine its
// position, and a spread record produces its two physical pages back to back.
// Configuration problems surface as errors before any drawing; a missing or
// undecodable image never fails the build.
func RenderInterior(ctx context.Context, surf pdfdraw.Surface, in Interior) error {
	dims, err := dimensions.ForFormat(in.Format)
	if err != nil {
		return err
	}

	pageW, pageH := pageSizePt(dims, in.Options.IncludeBleed)

	bleedPt := 0.0
	if in.Options.IncludeBleed {
		bleedPt = dimensions.InchesToPoints(dimensions.BleedInches)
	}

	r := &pageRenderer{
		log:     logger.FromContext(ctx),
		surf:    surf,
		images:  in.Images,
		pageW:   pageW,
		pageH:   pageH,
		bleedPt: bleedPt,
		safePt:  dimensions.InchesToPoints(dimensions.SafeZoneInches),
	}

	for i := range in.Pages {
		r.renderRecord(&in.Pages[i])
	}

	author := in.Author
	if author == "" {
		author = "Unknown"
	}
	surf.SetMetadata(pdfdraw.Metadata{
		Title:    in.Title,
		Author:   author,
		Creator:  metadataTool,
		Producer: metadataTool,
	})

	return nil
}

func pageSizePt(dims dimensions.PageDimensions, includeBleed bool) (w, h float64) {
	if includeBleed {
		return dimensions.InchesToPoints(dims.BleedWidth), dimensions.InchesToPoints(dims.BleedHeight)
	}
	return dimensions.InchesToPoints(dims.TrimWidth), dimensions.InchesToPoints(dims.TrimHeight)
}

type pageRenderer struct {
	log     logger.Logger
	surf    pdfdraw.Surface
	images  map[string]imagefetch.Image
	pageW   float64
	pageH   float64
	bleedPt float64
	safePt  float64
}

func (r *pageRenderer) renderRecord(page *models.PageRecord) {
	switch page.PageType {
	case models.PageTypeStorySpread:
		// Left and right physical pages, in order.
		r.renderStoryPage(page.ImageURL, page.Text, page.TextPosition)
		r.renderStoryPage(page.SecondImageURL, page.SecondText, page.TextPosition)
	case models.PageTypeStorySingle:
		r.renderStoryPage(page.ImageURL, page.Text, page.TextPosition)
	case models.PageTypeHalfTitle:
		r.openPage()
		r.drawCenteredLines(page.Text, pdfdraw.FontBold, 24, nearBlack, r.pageH*0.6)
	case models.PageTypeFrontispiece:
		r.openPage()
		r.drawFullPageImage(page.ImageURL)
	case models.PageTypeTitlePage:
		r.renderTitlePage(page)
	case models.PageTypeCopyright:
		r.openPage()
		r.drawCenteredBlock(page.Text, pdfdraw.FontRegular, 10, darkGray)
	case models.PageTypeDedication:
		r.openPage()
		r.drawCenteredBlock(page.Text, pdfdraw.FontItalic, bodyFontSize, darkGray)
	case models.PageTypeTheEnd:
		r.renderStoryPage(page.ImageURL, page.Text, page.TextPosition)
	case models.PageTypeAboutAuthor:
		r.openPage()
		r.drawFullPageImage(page.ImageURL)
		r.drawTextBlock(page.Text, models.TextPositionBottom)
	case models.PageTypeOtherBooks:
		r.openPage()
		r.drawTopLeftBlock(page.Text, pdfdraw.FontRegular, 12, darkGray)
	default: // blank
		r.openPage()
	}
}

func (r *pageRenderer) openPage() {
	r.surf.AddPage(r.pageW, r.pageH)
}

// renderStoryPage is the workhorse layout: full-bleed cover-fit image, then a
// wrapped text block over a semi-opaque white plate anchored by position.
func (r *pageRenderer) renderStoryPage(imageURL, text string, position models.TextPosition) {
	r.openPage()
	r.drawFullPageImage(imageURL)
	if text != "" && position != models.TextPositionNone {
		r.drawTextBlock(text, position)
	}
}

// drawFullPageImage scales the image uniformly to cover the full page (never
// letterboxed) and centers the overflow. Any failure becomes a neutral
// placeholder so a single bad image cannot abort the document.
func (r *pageRenderer) drawFullPageImage(url string) {
	if url == "" {
		return
	}

	img, ok := r.images[url]
	if !ok {
		r.drawPlaceholder(url)
		return
	}

	imgW, imgH, err := img.Dimensions()
	if err != nil || imgW == 0 || imgH == 0 {
		r.log.Warn("unreadable image, drawing placeholder", logger.Data{"url": url})
		r.drawPlaceholder(url)
		return
	}

	scale := r.pageW / float64(imgW)
	if s := r.pageH / float64(imgH); s > scale {
		scale = s
	}
	w := float64(imgW) * scale
	h := float64(imgH) * scale
	x := (r.pageW - w) / 2
	y := (r.pageH - h) / 2

	if err := r.surf.DrawImage(img.Data, img.Format, x, y, w, h); err != nil {
		r.log.Err(err).Warn("image embed failed, drawing placeholder", logger.Data{"url": url})
		r.drawPlaceholder(url)
	}
}

func (r *pageRenderer) drawPlaceholder(string) {
	r.surf.DrawRect(0, 0, r.pageW, r.pageH, pdfdraw.RectOptions{Fill: &placeholder})
}

// drawTextBlock wraps text to the safe-zone width, draws the backing plate,
// then the lines top to bottom. The anchor per position is a fixed mapping.
func (r *pageRenderer) drawTextBlock(text string, position models.TextPosition) {
	inset := r.bleedPt + r.safePt
	textX := inset
	textW := r.pageW - inset*2

	var textY float64
	switch position {
	case models.TextPositionTop:
		textY = r.pageH - inset - bodyFontSize
	case models.TextPositionLeft:
		textY = r.pageH / 2
	case models.TextPositionRight:
		textX = r.pageW - inset - textW/2
		textY = r.pageH / 2
	default: // bottom
		textY = inset + bodyFontSize*2
	}

	lines := r.wrap(text, textW, pdfdraw.FontRegular, bodyFontSize)
	blockH := float64(len(lines)) * (bodyFontSize + bodyLineGap)

	r.surf.DrawRect(
		textX-platePadding,
		textY-blockH-platePadding,
		textW+platePadding*2,
		blockH+platePadding*2,
		pdfdraw.RectOptions{Fill: &white, Opacity: plateOpacity},
	)

	y := textY
	for _, line := range lines {
		r.surf.DrawText(line, textX, y, pdfdraw.FontRegular, bodyFontSize, black)
		y -= bodyFontSize + bodyLineGap
	}
}

func (r *pageRenderer) wrap(text string, maxWidth float64, font pdfdraw.Font, size float64) []string {
	return typeset.WrapText(text, maxWidth, func(s string) float64 {
		return r.surf.TextWidth(s, font, size)
	})
}
