package renderer

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskmasterpeace/bookpress/pkg/imagefetch"
	"github.com/taskmasterpeace/bookpress/pkg/models"
	"github.com/taskmasterpeace/bookpress/pkg/pdfdraw"
)

type drawOp struct {
	kind    string
	page    int
	x, y    float64
	w, h    float64
	text    string
	opacity float64
	fill    *models.Color
}

// recordingSurface captures draw calls so layout decisions can be asserted
// without producing actual PDF bytes.
type recordingSurface struct {
	pages    int
	ops      []drawOp
	metadata pdfdraw.Metadata
}

func (s *recordingSurface) AddPage(w, h float64) {
	s.pages++
	s.ops = append(s.ops, drawOp{kind: "page", page: s.pages, w: w, h: h})
}

func (s *recordingSurface) DrawImage(data []byte, format string, x, y, w, h float64) error {
	s.ops = append(s.ops, drawOp{kind: "image", page: s.pages, x: x, y: y, w: w, h: h})
	return nil
}

func (s *recordingSurface) DrawText(text string, x, y float64, font pdfdraw.Font, size float64, color models.Color) {
	s.ops = append(s.ops, drawOp{kind: "text", page: s.pages, x: x, y: y, text: text})
}

func (s *recordingSurface) TextWidth(text string, font pdfdraw.Font, size float64) float64 {
	return float64(len(text)) * size * 0.5
}

func (s *recordingSurface) DrawRect(x, y, w, h float64, opts pdfdraw.RectOptions) {
	s.ops = append(s.ops, drawOp{kind: "rect", page: s.pages, x: x, y: y, w: w, h: h, opacity: opts.Opacity, fill: opts.Fill})
}

func (s *recordingSurface) DrawLine(x1, y1, x2, y2 float64, color models.Color, thickness float64) {
	s.ops = append(s.ops, drawOp{kind: "line", page: s.pages, x: x1, y: y1, w: x2, h: y2})
}

func (s *recordingSurface) SetMetadata(m pdfdraw.Metadata) { s.metadata = m }

func (s *recordingSurface) Serialize() ([]byte, error) { return []byte("%PDF"), nil }

func (s *recordingSurface) opsOfKind(kind string) []drawOp {
	var out []drawOp
	for _, op := range s.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// pngImage encodes a real PNG so header probing sees genuine dimensions.
func pngImage(t *testing.T, w, h int) imagefetch.Image {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return imagefetch.Image{Data: buf.Bytes(), Format: imagefetch.FormatPNG}
}

func storyRecord(imageURL, text string, pos models.TextPosition) models.PageRecord {
	return models.PageRecord{
		ID:                  "p1",
		LogicalPageNumber:   1,
		PhysicalPageNumbers: []int{7},
		PageType:            models.PageTypeStorySingle,
		Text:                text,
		TextPosition:        pos,
		ImageURL:            imageURL,
	}
}

func TestRenderInteriorUnsupportedFormat(t *testing.T) {
	t.Parallel()

	surf := &recordingSurface{}
	err := RenderInterior(context.Background(), surf, Interior{Format: "octagon"})
	require.Error(t, err)
	assert.Zero(t, surf.pages)
}

func TestRenderInteriorPageSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		includeBleed bool
		expectedW    float64
		expectedH    float64
	}{
		{
			name:         "bleed size",
			includeBleed: true,
			expectedW:    8.75 * 72,
			expectedH:    8.75 * 72,
		},
		{
			name:         "trim size for draft without bleed",
			includeBleed: false,
			expectedW:    8.5 * 72,
			expectedH:    8.5 * 72,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			surf := &recordingSurface{}
			err := RenderInterior(context.Background(), surf, Interior{
				Format:  models.BookFormatSquare,
				Title:   "Test",
				Pages:   []models.PageRecord{storyRecord("", "", models.TextPositionNone)},
				Options: models.ExportOptions{IncludeBleed: tt.includeBleed},
			})
			require.NoError(t, err)

			pages := surf.opsOfKind("page")
			require.Len(t, pages, 1)
			assert.InDelta(t, tt.expectedW, pages[0].w, 0.001)
			assert.InDelta(t, tt.expectedH, pages[0].h, 0.001)
		})
	}
}

func TestRenderInteriorCoverFitImage(t *testing.T) {
	t.Parallel()

	url := "https://img.example.com/wide.png"
	surf := &recordingSurface{}
	err := RenderInterior(context.Background(), surf, Interior{
		Format:  models.BookFormatSquare,
		Pages:   []models.PageRecord{storyRecord(url, "", models.TextPositionNone)},
		Images:  map[string]imagefetch.Image{url: pngImage(t, 200, 100)},
		Options: models.ExportOptions{IncludeBleed: true},
	})
	require.NoError(t, err)

	images := surf.opsOfKind("image")
	require.Len(t, images, 1)

	pageSize := 8.75 * 72
	// 200x100 on a square page scales by height, overflowing horizontally.
	assert.InDelta(t, pageSize, images[0].h, 0.001)
	assert.InDelta(t, pageSize*2, images[0].w, 0.001)
	// Overflow is centered.
	assert.InDelta(t, (pageSize-images[0].w)/2, images[0].x, 0.001)
	assert.InDelta(t, 0, images[0].y, 0.001)
}

func TestRenderInteriorMissingImagePlaceholder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		images map[string]imagefetch.Image
	}{
		{
			name:   "image never fetched",
			images: nil,
		},
		{
			name: "image bytes unreadable",
			images: map[string]imagefetch.Image{
				"https://img.example.com/broken.png": {Data: []byte("not a png"), Format: imagefetch.FormatPNG},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			surf := &recordingSurface{}
			err := RenderInterior(context.Background(), surf, Interior{
				Format:  models.BookFormatSquare,
				Pages:   []models.PageRecord{storyRecord("https://img.example.com/broken.png", "", models.TextPositionNone)},
				Images:  tt.images,
				Options: models.ExportOptions{IncludeBleed: true},
			})
			require.NoError(t, err)

			rects := surf.opsOfKind("rect")
			require.Len(t, rects, 1)
			assert.Equal(t, models.Color{R: 0.9, G: 0.9, B: 0.9}, *rects[0].fill)
			assert.InDelta(t, 8.75*72, rects[0].w, 0.001)
			assert.InDelta(t, 8.75*72, rects[0].h, 0.001)
		})
	}
}

func TestRenderInteriorTextPlate(t *testing.T) {
	t.Parallel()

	surf := &recordingSurface{}
	err := RenderInterior(context.Background(), surf, Interior{
		Format:  models.BookFormatSquare,
		Pages:   []models.PageRecord{storyRecord("", "Once upon a time", models.TextPositionBottom)},
		Options: models.ExportOptions{IncludeBleed: true},
	})
	require.NoError(t, err)

	rects := surf.opsOfKind("rect")
	require.Len(t, rects, 1)
	assert.InDelta(t, 0.8, rects[0].opacity, 0.001)
	assert.Equal(t, models.Color{R: 1, G: 1, B: 1}, *rects[0].fill)

	texts := surf.opsOfKind("text")
	require.NotEmpty(t, texts)

	// Plate is drawn before any text line and encloses the first line's
	// baseline area.
	var rectIdx, textIdx int
	for i, op := range surf.ops {
		switch op.kind {
		case "rect":
			rectIdx = i
		case "text":
			if textIdx == 0 {
				textIdx = i
			}
		}
	}
	assert.Less(t, rectIdx, textIdx)

	inset := (0.125 + 0.25) * 72.0
	assert.InDelta(t, inset, texts[0].x, 0.001)
	assert.InDelta(t, inset+14*2, texts[0].y, 0.001)
}

func TestRenderInteriorTextAnchors(t *testing.T) {
	t.Parallel()

	pageSize := 8.75 * 72
	inset := (0.125 + 0.25) * 72.0

	tests := []struct {
		name      string
		position  models.TextPosition
		expectedY float64
	}{
		{
			name:      "top anchors near the top safe edge",
			position:  models.TextPositionTop,
			expectedY: pageSize - inset - 14,
		},
		{
			name:      "bottom anchors near the bottom safe edge",
			position:  models.TextPositionBottom,
			expectedY: inset + 28,
		},
		{
			name:      "left centers vertically",
			position:  models.TextPositionLeft,
			expectedY: pageSize / 2,
		},
		{
			name:      "right centers vertically",
			position:  models.TextPositionRight,
			expectedY: pageSize / 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			surf := &recordingSurface{}
			err := RenderInterior(context.Background(), surf, Interior{
				Format:  models.BookFormatSquare,
				Pages:   []models.PageRecord{storyRecord("", "hi", tt.position)},
				Options: models.ExportOptions{IncludeBleed: true},
			})
			require.NoError(t, err)

			texts := surf.opsOfKind("text")
			require.NotEmpty(t, texts)
			assert.InDelta(t, tt.expectedY, texts[0].y, 0.001)
		})
	}
}

func TestRenderInteriorSpreadProducesTwoPages(t *testing.T) {
	t.Parallel()

	surf := &recordingSurface{}
	err := RenderInterior(context.Background(), surf, Interior{
		Format: models.BookFormatLandscape,
		Pages: []models.PageRecord{
			{
				ID:                  "s1",
				LogicalPageNumber:   1,
				PhysicalPageNumbers: []int{7, 8},
				PageType:            models.PageTypeStorySpread,
				Text:                "left text",
				SecondText:          "right text",
				TextPosition:        models.TextPositionBottom,
			},
		},
		Options: models.ExportOptions{IncludeBleed: true},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, surf.pages)

	texts := surf.opsOfKind("text")
	require.Len(t, texts, 2)
	assert.Equal(t, "left text", texts[0].text)
	assert.Equal(t, 1, texts[0].page)
	assert.Equal(t, "right text", texts[1].text)
	assert.Equal(t, 2, texts[1].page)
}

func TestRenderInteriorTitlePage(t *testing.T) {
	t.Parallel()

	surf := &recordingSurface{}
	err := RenderInterior(context.Background(), surf, Interior{
		Format: models.BookFormatSquare,
		Pages: []models.PageRecord{
			{
				ID:                  "t1",
				LogicalPageNumber:   3,
				PhysicalPageNumbers: []int{3},
				PageType:            models.PageTypeTitlePage,
				Text:                "Luna's Journey\n\nBy Jane Doe",
				TextPosition:        models.TextPositionNone,
				IsFrontMatter:       true,
			},
		},
		Options: models.ExportOptions{IncludeBleed: true},
	})
	require.NoError(t, err)

	texts := surf.opsOfKind("text")
	require.Len(t, texts, 2)

	pageSize := 8.75 * 72
	assert.Equal(t, "Luna's Journey", texts[0].text)
	assert.InDelta(t, pageSize*0.75, texts[0].y, 0.001)
	assert.Equal(t, "By Jane Doe", texts[1].text)
	assert.Less(t, texts[1].y, texts[0].y)
}

func TestRenderInteriorMetadata(t *testing.T) {
	t.Parallel()

	surf := &recordingSurface{}
	err := RenderInterior(context.Background(), surf, Interior{
		Format:  models.BookFormatPortrait,
		Title:   "Luna's Journey",
		Options: models.ExportOptions{IncludeBleed: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "Luna's Journey", surf.metadata.Title)
	assert.Equal(t, "Unknown", surf.metadata.Author)
	assert.Equal(t, "Bookpress", surf.metadata.Creator)
}
