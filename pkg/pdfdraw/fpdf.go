package pdfdraw

import (
	"bytes"
	"fmt"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/taskmasterpeace/bookpress/pkg/models"
)

// FpdfSurface implements Surface on codeberg.org/go-pdf/fpdf. fpdf uses a
// top-left origin, so every y coordinate is flipped against the current page
// height on the way in.
type FpdfSurface struct {
	pdf        *fpdf.Fpdf
	pageHeight float64
	imageSeq   int
}

var _ Surface = (*FpdfSurface)(nil)

// NewFpdfSurface creates an empty document. Pages are added per call with
// their own sizes, so no default page size is configured here.
func NewFpdfSurface() *FpdfSurface {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: 612, Ht: 792},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return &FpdfSurface{pdf: pdf}
}

func (s *FpdfSurface) AddPage(widthPt, heightPt float64) {
	s.pageHeight = heightPt
	orientation := "P"
	if widthPt > heightPt {
		// fpdf expects landscape sizes in portrait order and swaps them
		// itself.
		orientation = "L"
		widthPt, heightPt = heightPt, widthPt
	}
	s.pdf.AddPageFormat(orientation, fpdf.SizeType{Wd: widthPt, Ht: heightPt})
}

func (s *FpdfSurface) DrawImage(data []byte, format string, x, y, width, height float64) error {
	s.imageSeq++
	name := fmt.Sprintf("page-image-%d", s.imageSeq)
	opts := fpdf.ImageOptions{ImageType: strings.ToUpper(format)}

	s.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if s.pdf.Err() {
		// Recover the document so one bad image can't abort the build.
		err := s.pdf.Error()
		s.pdf.ClearError()
		return errors.Wrap(err, "embed image")
	}

	s.pdf.ImageOptions(name, x, s.flipY(y)-height, width, height, false, opts, 0, "")
	if s.pdf.Err() {
		err := s.pdf.Error()
		s.pdf.ClearError()
		return errors.Wrap(err, "place image")
	}
	return nil
}

func (s *FpdfSurface) DrawText(text string, x, y float64, font Font, size float64, color models.Color) {
	s.pdf.SetFont(font.Family, font.Style, size)
	s.pdf.SetTextColor(rgb255(color))
	s.pdf.Text(x, s.flipY(y), text)
}

func (s *FpdfSurface) TextWidth(text string, font Font, size float64) float64 {
	s.pdf.SetFont(font.Family, font.Style, size)
	return s.pdf.GetStringWidth(text)
}

func (s *FpdfSurface) DrawRect(x, y, width, height float64, opts RectOptions) {
	style := ""
	if opts.Fill != nil {
		s.pdf.SetFillColor(rgb255(*opts.Fill))
		style += "F"
	}
	if opts.Border != nil {
		s.pdf.SetDrawColor(rgb255(*opts.Border))
		lineWidth := opts.BorderWidth
		if lineWidth == 0 {
			lineWidth = 1
		}
		s.pdf.SetLineWidth(lineWidth)
		style += "D"
	}
	if style == "" {
		return
	}

	if opts.Opacity > 0 && opts.Opacity < 1 {
		s.pdf.SetAlpha(opts.Opacity, "Normal")
		defer s.pdf.SetAlpha(1, "Normal")
	}
	s.pdf.Rect(x, s.flipY(y)-height, width, height, style)
}

func (s *FpdfSurface) DrawLine(x1, y1, x2, y2 float64, color models.Color, thickness float64) {
	s.pdf.SetDrawColor(rgb255(color))
	s.pdf.SetLineWidth(thickness)
	s.pdf.Line(x1, s.flipY(y1), x2, s.flipY(y2))
}

func (s *FpdfSurface) SetMetadata(m Metadata) {
	s.pdf.SetTitle(m.Title, true)
	s.pdf.SetAuthor(m.Author, true)
	s.pdf.SetCreator(m.Creator, true)
	s.pdf.SetProducer(m.Producer, true)
}

func (s *FpdfSurface) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "serialize pdf")
	}
	return buf.Bytes(), nil
}

func (s *FpdfSurface) flipY(y float64) float64 {
	return s.pageHeight - y
}

func rgb255(c models.Color) (int, int, int) {
	return int(c.R * 255), int(c.G * 255), int(c.B * 255)
}
