// Package pdfdraw is the drawing-surface boundary between the book-assembly
// engine and the PDF-authoring library. The engine thinks in PDF point units
// with a bottom-left origin; implementations own whatever coordinate flips
// their backing library needs.
package pdfdraw

import (
	"github.com/pkg/errors"
	"github.com/taskmasterpeace/bookpress/pkg/models"
)

// Font is an opaque reference to an embedded standard font face.
type Font struct {
	Family string
	Style  string
}

// The three standard faces the engine uses. Implementations must support all
// of them without external font files.
var (
	FontRegular = Font{Family: "Helvetica"}
	FontBold    = Font{Family: "Helvetica", Style: "B"}
	FontItalic  = Font{Family: "Helvetica", Style: "I"}
)

// EmbedFont resolves a standard PDF font name to a Font reference.
func EmbedFont(name string) (Font, error) {
	switch name {
	case "Helvetica":
		return FontRegular, nil
	case "Helvetica-Bold":
		return FontBold, nil
	case "Helvetica-Oblique":
		return FontItalic, nil
	default:
		return Font{}, errors.Errorf("unsupported standard font: %s", name)
	}
}

// RectOptions configures a rectangle draw. A nil Fill or Border skips that
// part; Opacity zero means fully opaque.
type RectOptions struct {
	Fill        *models.Color
	Border      *models.Color
	BorderWidth float64
	Opacity     float64
}

// Metadata is the document information dictionary.
type Metadata struct {
	Title    string
	Author   string
	Creator  string
	Producer string
}

// Surface is a single-writer PDF document under construction. Draw calls
// apply to the page most recently opened with AddPage and must be issued from
// one sequential context; callers gather all per-page inputs before drawing.
type Surface interface {
	// AddPage opens a new page of the given size in points and makes it the
	// target of subsequent draw calls.
	AddPage(widthPt, heightPt float64)

	// DrawImage places pre-fetched image bytes. format is "png" or "jpg".
	// A decode failure is returned so the caller can substitute a
	// placeholder; it must not poison the rest of the document.
	DrawImage(data []byte, format string, x, y, width, height float64) error

	DrawText(text string, x, y float64, font Font, size float64, color models.Color)

	// TextWidth measures text in points at the given face and size.
	TextWidth(text string, font Font, size float64) float64

	DrawRect(x, y, width, height float64, opts RectOptions)

	DrawLine(x1, y1, x2, y2 float64, color models.Color, thickness float64)

	SetMetadata(m Metadata)

	// Serialize closes the document and returns its bytes. The surface is
	// not usable afterwards.
	Serialize() ([]byte, error)
}
