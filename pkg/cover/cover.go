// Package cover composes the one-page KDP cover wrap: back cover, spine, and
// front cover on a single sheet, laid out left to right.
package cover

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
	synopsisFontSize    = 11
	barcodeLabelSize    = 10
	placeholderTextSize = 24
	maxSpineTextSize    = 14
	guideThickness      = 0.5
)

var (
	black         = models.Color{R: 0, G: 0, B: 0}
	gray          = models.Color{R: 0.5, G: 0.5, B: 0.5}
	white         = models.Color{R: 1, G: 1, B: 1}
	defaultBack   = models.Color{R: 0.95, G: 0.95, B: 0.95}
	frontFallback = models.Color{R: 0.95, G: 0.9, B: 0.8}
	cyanTrimGuide = models.Color{R: 0, G: 1, B: 1}
	magentaSpine  = models.Color{R: 1, G: 0, B: 1}
)

// Wrap is everything one cover build needs. Images holds prefetched bytes
// keyed by URL.
type Wrap struct {
	Format        models.BookFormat
	Title         string
	Author        string
	PageCount     int
	Paper         models.PaperType
	FrontImageURL string
	BackImageURL  string
	BackText      string
	BackColor     *models.Color
	SpineText     string
	Images        map[string]imagefetch.Image
	Options       models.ExportOptions
}

// RenderCover draws the full wrap onto surf. Format and page count problems
// fail before any drawing; missing or broken art degrades to labeled
// placeholders so the wrap is always a complete, inspectable sheet.
func RenderCover(ctx context.Context, surf pdfdraw.Surface, w Wrap) error {
	dims, err := dimensions.ForCover(w.Format, w.PageCount, w.Paper)
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx)

	pdfW := dimensions.InchesToPoints(dims.TotalWrapWidth)
	pdfH := dimensions.InchesToPoints(dims.TotalWrapHeight)
	spinePt := dimensions.InchesToPoints(dims.SpineWidth)
	bleedPt := dimensions.InchesToPoints(dimensions.BleedInches)

	backW := dimensions.InchesToPoints(dims.BackWidth) + bleedPt
	spineX := backW
	frontX := spineX + spinePt
	frontW := dimensions.InchesToPoints(dims.FrontWidth) + bleedPt

	surf.AddPage(pdfW, pdfH)

	// Back cover band.
	backFill := defaultBack
	if w.BackColor != nil {
		backFill = *w.BackColor
	}
	if !drawBandImage(log, surf, w.Images, w.BackImageURL, 0, backW, pdfH) {
		surf.DrawRect(0, 0, backW, pdfH, pdfdraw.RectOptions{Fill: &backFill})
	}

	if w.BackText != "" {
		drawSynopsis(surf, w.BackText, dims, pdfH, bleedPt)
	}

	drawBarcodeArea(surf, dims.BarcodeArea, bleedPt)

	// Spine band. Text only fits when the book is thick enough.
	surf.DrawRect(spineX, 0, spinePt, pdfH, pdfdraw.RectOptions{Fill: &backFill})
	if w.SpineText != "" && dimensions.CanRenderSpineText(w.PageCount) {
		drawSpineText(surf, w.SpineText, spineX, spinePt, pdfH)
	}

	// Front cover band.
	if !drawBandImage(log, surf, w.Images, w.FrontImageURL, frontX, frontW, pdfH) {
		surf.DrawRect(frontX, 0, frontW, pdfH, pdfdraw.RectOptions{Fill: &frontFallback})
		surf.DrawText("FRONT COVER", frontX+100, pdfH/2, pdfdraw.FontBold, placeholderTextSize, gray)
	}

	if w.Options.Quality == models.QualityDraft {
		drawGuides(surf, pdfW, pdfH, bleedPt, spineX, spinePt)
	}

	author := w.Author
	if author == "" {
		author = "Unknown"
	}
	surf.SetMetadata(pdfdraw.Metadata{
		Title:    w.Title + " - Cover",
		Author:   author,
		Creator:  "Bookpress",
		Producer: "Bookpress",
	})

	return nil
}

// drawBandImage stretches prefetched art across one vertical band of the
// wrap. Reports whether anything was drawn so callers can fall back.
func drawBandImage(log logger.Logger, surf pdfdraw.Surface, images map[string]imagefetch.Image, url string, x, width, height float64) bool {
	if url == "" {
		return false
	}

	img, ok := images[url]
	if !ok {
		log.Warn("cover image missing, drawing fallback", logger.Data{"url": url})
		return false
	}

	if err := surf.DrawImage(img.Data, img.Format, x, 0, width, height); err != nil {
		log.Err(err).Warn("cover image embed failed, drawing fallback", logger.Data{"url": url})
		return false
	}
	return true
}

func drawSynopsis(surf pdfdraw.Surface, text string, dims dimensions.CoverDimensions, pdfH, bleedPt float64) {
	textX := bleedPt + 36 // half inch inside the trim
	maxWidth := dimensions.InchesToPoints(dims.BackWidth) - 72

	lines := typeset.WrapText(text, maxWidth, func(s string) float64 {
		return surf.TextWidth(s, pdfdraw.FontRegular, synopsisFontSize)
	})

	y := pdfH - bleedPt - 72 // start an inch from the top
	for _, line := range lines {
		surf.DrawText(line, textX, y, pdfdraw.FontRegular, synopsisFontSize, black)
		y -= synopsisFontSize + 4
	}
}

func drawBarcodeArea(surf pdfdraw.Surface, area dimensions.BarcodeArea, bleedPt float64) {
	x := bleedPt + dimensions.InchesToPoints(area.X)
	y := bleedPt + dimensions.InchesToPoints(area.Y)
	w := dimensions.InchesToPoints(area.Width)
	h := dimensions.InchesToPoints(area.Height)

	surf.DrawRect(x, y, w, h, pdfdraw.RectOptions{
		Fill:        &white,
		Border:      &gray,
		BorderWidth: 1,
	})
	surf.DrawText("BARCODE AREA", x+20, y+h/2-5, pdfdraw.FontRegular, barcodeLabelSize, gray)
}

// drawSpineText sizes the title to the spine and centers it along the spine's
// length. Drawn horizontally; it reads correctly when the book stands on a
// shelf.
func drawSpineText(surf pdfdraw.Surface, text string, spineX, spinePt, pdfH float64) {
	size := spinePt * 0.6
	if size > maxSpineTextSize {
		size = maxSpineTextSize
	}

	textW := surf.TextWidth(text, pdfdraw.FontBold, size)
	x := spineX + spinePt/2 + size/3
	y := (pdfH - textW) / 2

	surf.DrawText(text, x, y, pdfdraw.FontBold, size, black)
}

// drawGuides overlays draft-only verification lines: cyan at the trim edges,
// magenta at the spine boundaries.
func drawGuides(surf pdfdraw.Surface, pdfW, pdfH, bleedPt, spineX, spinePt float64) {
	surf.DrawLine(bleedPt, 0, bleedPt, pdfH, cyanTrimGuide, guideThickness)
	surf.DrawLine(pdfW-bleedPt, 0, pdfW-bleedPt, pdfH, cyanTrimGuide, guideThickness)
	surf.DrawLine(0, bleedPt, pdfW, bleedPt, cyanTrimGuide, guideThickness)
	surf.DrawLine(0, pdfH-bleedPt, pdfW, pdfH-bleedPt, cyanTrimGuide, guideThickness)

	surf.DrawLine(spineX, 0, spineX, pdfH, magentaSpine, guideThickness)
	surf.DrawLine(spineX+spinePt, 0, spineX+spinePt, pdfH, magentaSpine, guideThickness)
}
