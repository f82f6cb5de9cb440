package renderer

import (
	"strings"

	"github.com/taskmasterpeace/bookpress/pkg/models"
	"github.com/taskmasterpeace/bookpress/pkg/pdfdraw"
)

const (
	titleFontSize  = 28
	bylineFontSize = 16
	textPageMargin = 36 // half inch
)

// renderTitlePage lays out the title page: optional cover-fit art, the title
// in bold at three quarters of the page height, then each byline beneath it.
func (r *pageRenderer) renderTitlePage(page *models.PageRecord) {
	r.openPage()
	r.drawFullPageImage(page.ImageURL)

	lines := nonEmptyLines(page.Text)
	if len(lines) == 0 {
		return
	}

	title := lines[0]
	titleW := r.surf.TextWidth(title, pdfdraw.FontBold, titleFontSize)
	r.surf.DrawText(title, (r.pageW-titleW)/2, r.pageH*0.75, pdfdraw.FontBold, titleFontSize, nearBlack)

	y := r.pageH*0.75 - titleFontSize - 20
	for _, line := range lines[1:] {
		lineW := r.surf.TextWidth(line, pdfdraw.FontItalic, bylineFontSize)
		r.surf.DrawText(line, (r.pageW-lineW)/2, y, pdfdraw.FontItalic, bylineFontSize, midGray)
		y -= bylineFontSize + 8
	}
}

// drawCenteredBlock draws newline-separated text vertically and horizontally
// centered. Blank lines keep their vertical space so paragraph breaks in the
// copyright template survive.
func (r *pageRenderer) drawCenteredBlock(text string, font pdfdraw.Font, size float64, color models.Color) {
	lines := strings.Split(text, "\n")
	lineHeight := size + bodyLineGap
	y := (r.pageH + float64(len(lines))*lineHeight) / 2

	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			lineW := r.surf.TextWidth(line, font, size)
			r.surf.DrawText(line, (r.pageW-lineW)/2, y, font, size, color)
		}
		y -= lineHeight
	}
}

// drawCenteredLines draws newline-separated text horizontally centered,
// starting at topY and working downward.
func (r *pageRenderer) drawCenteredLines(text string, font pdfdraw.Font, size float64, color models.Color, topY float64) {
	y := topY
	for _, line := range nonEmptyLines(text) {
		lineW := r.surf.TextWidth(line, font, size)
		r.surf.DrawText(line, (r.pageW-lineW)/2, y, font, size, color)
		y -= size * 1.5
	}
}

// drawTopLeftBlock draws newline-separated text from the top-left corner of
// the printable area, half an inch inside the trim.
func (r *pageRenderer) drawTopLeftBlock(text string, font pdfdraw.Font, size float64, color models.Color) {
	x := r.bleedPt + textPageMargin
	y := r.pageH - r.bleedPt - textPageMargin - size

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			r.surf.DrawText(line, x, y, font, size, color)
		}
		y -= size * 1.5
	}
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
