// Package dimensions computes the physical geometry of a print book: trim,
// bleed, and safe-zone page dimensions, spine width, and the full cover wrap.
// Everything here is pure arithmetic over registered KDP constants; callers
// own nothing but the inputs.
//
// References:
//   - https://kdp.amazon.com/en_US/help/topic/G201834180
//   - https://kdp.amazon.com/en_US/help/topic/G201834230
package dimensions

import (
	"math"

	"github.com/pkg/errors"
	"github.com/taskmasterpeace/bookpress/pkg/errcodes"
	"github.com/taskmasterpeace/bookpress/pkg/models"
)

// DPI is the print resolution KDP requires.
const DPI = 300

// BleedInches is the margin beyond the trim line so full-bleed art has no
// white edge after cutting. Fixed by KDP, not configurable per book.
const BleedInches = 0.125

// SafeZoneInches is the inset within which all important content must stay.
const SafeZoneInches = 0.25

// PointsPerInch converts inches to PDF point units.
const PointsPerInch = 72.0

// SpineTextMinPageCount is the page count below which KDP disallows spine
// text. Text on a too-thin spine is a common real-world print defect, so the
// cover composer checks CanRenderSpineText instead of inlining the threshold.
const SpineTextMinPageCount = 79

// paperThickness is inches of spine per interior page, by paper stock.
var paperThickness = map[models.PaperType]float64{
	models.PaperTypePremiumColor:  0.00225,
	models.PaperTypeStandardColor: 0.0032,
	models.PaperTypeWhite:         0.002252,
	models.PaperTypeCream:         0.0025,
}

type trimSize struct {
	width  float64
	height float64
}

// trimSizes registers the trim size for every supported book format. A format
// missing from this table is a hard error downstream, never a silent default.
var trimSizes = map[models.BookFormat]trimSize{
	models.BookFormatSquare:    {width: 8.5, height: 8.5},
	models.BookFormatLandscape: {width: 10, height: 7},
	models.BookFormatPortrait:  {width: 8, height: 10},
	models.BookFormatWide:      {width: 8.25, height: 6},
}

// PageDimensions holds every interior page measurement downstream code needs,
// in inches and in pixels at 300 DPI.
type PageDimensions struct {
	TrimWidth   float64 `json:"trim_width"`
	TrimHeight  float64 `json:"trim_height"`
	BleedWidth  float64 `json:"bleed_width"`
	BleedHeight float64 `json:"bleed_height"`
	SafeWidth   float64 `json:"safe_width"`
	SafeHeight  float64 `json:"safe_height"`

	TrimWidthPx   int `json:"trim_width_px"`
	TrimHeightPx  int `json:"trim_height_px"`
	BleedWidthPx  int `json:"bleed_width_px"`
	BleedHeightPx int `json:"bleed_height_px"`
	SafeWidthPx   int `json:"safe_width_px"`
	SafeHeightPx  int `json:"safe_height_px"`

	BleedPx    int `json:"bleed_px"`
	SafeZonePx int `json:"safe_zone_px"`
}

// BarcodeArea is the reservation rectangle on the back cover, in inches from
// the back cover's trim edges. The 0.25in offsets are a hard publisher
// requirement.
type BarcodeArea struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CoverDimensions describes the single continuous cover sheet: back cover,
// spine, and front cover plus bleed on the outer edges.
type CoverDimensions struct {
	FrontWidth float64 `json:"front_width"`
	BackWidth  float64 `json:"back_width"`
	SpineWidth float64 `json:"spine_width"`
	WrapHeight float64 `json:"wrap_height"`

	TotalWrapWidth  float64 `json:"total_wrap_width"`
	TotalWrapHeight float64 `json:"total_wrap_height"`

	BarcodeArea BarcodeArea `json:"barcode_area"`

	TotalWrapWidthPx  int `json:"total_wrap_width_px"`
	TotalWrapHeightPx int `json:"total_wrap_height_px"`
	SpineWidthPx      int `json:"spine_width_px"`
	BleedPx           int `json:"bleed_px"`
}

// ForFormat computes interior page geometry for the given format. Fails with
// errcodes.UnsupportedFormat when the format has no registered trim size.
func ForFormat(format models.BookFormat) (PageDimensions, error) {
	trim, ok := trimSizes[format]
	if !ok {
		return PageDimensions{}, errors.WithStack(errcodes.UnsupportedFormat(string(format)))
	}

	bleedWidth := trim.width + BleedInches*2
	bleedHeight := trim.height + BleedInches*2
	safeWidth := trim.width - SafeZoneInches*2
	safeHeight := trim.height - SafeZoneInches*2

	return PageDimensions{
		TrimWidth:   trim.width,
		TrimHeight:  trim.height,
		BleedWidth:  bleedWidth,
		BleedHeight: bleedHeight,
		SafeWidth:   safeWidth,
		SafeHeight:  safeHeight,

		TrimWidthPx:   InchesToPixels(trim.width),
		TrimHeightPx:  InchesToPixels(trim.height),
		BleedWidthPx:  InchesToPixels(bleedWidth),
		BleedHeightPx: InchesToPixels(bleedHeight),
		SafeWidthPx:   InchesToPixels(safeWidth),
		SafeHeightPx:  InchesToPixels(safeHeight),

		BleedPx:    InchesToPixels(BleedInches),
		SafeZonePx: InchesToPixels(SafeZoneInches),
	}, nil
}

// SpineWidth is pageCount times the paper stock's thickness per page, in
// inches. Fails with errcodes.InvalidPageCount for negative counts. An
// unknown paper type falls back to premium color, the KDP default for
// children's books.
func SpineWidth(pageCount int, paper models.PaperType) (float64, error) {
	if pageCount < 0 {
		return 0, errors.WithStack(errcodes.InvalidPageCount(pageCount))
	}
	thickness, ok := paperThickness[paper]
	if !ok {
		thickness = paperThickness[models.PaperTypePremiumColor]
	}
	return float64(pageCount) * thickness, nil
}

// CanRenderSpineText reports whether KDP permits text on the spine. The
// threshold is total book page count, not spine width.
func CanRenderSpineText(totalPageCount int) bool {
	return totalPageCount >= SpineTextMinPageCount
}

// ForCover composes trim size and spine width into full cover wrap geometry.
func ForCover(format models.BookFormat, pageCount int, paper models.PaperType) (CoverDimensions, error) {
	trim, ok := trimSizes[format]
	if !ok {
		return CoverDimensions{}, errors.WithStack(errcodes.UnsupportedFormat(string(format)))
	}
	spineWidth, err := SpineWidth(pageCount, paper)
	if err != nil {
		return CoverDimensions{}, err
	}

	// Front and back covers use the interior trim size.
	frontWidth := trim.width
	backWidth := trim.width
	wrapHeight := trim.height

	totalWrapWidth := backWidth + spineWidth + frontWidth + BleedInches*2
	totalWrapHeight := wrapHeight + BleedInches*2

	return CoverDimensions{
		FrontWidth: frontWidth,
		BackWidth:  backWidth,
		SpineWidth: spineWidth,
		WrapHeight: wrapHeight,

		TotalWrapWidth:  totalWrapWidth,
		TotalWrapHeight: totalWrapHeight,

		// 2in x 1.2in minimum, 0.25in from the trim edges.
		BarcodeArea: BarcodeArea{X: 0.25, Y: 0.25, Width: 2, Height: 1.2},

		TotalWrapWidthPx:  InchesToPixels(totalWrapWidth),
		TotalWrapHeightPx: InchesToPixels(totalWrapHeight),
		SpineWidthPx:      InchesToPixels(spineWidth),
		BleedPx:           InchesToPixels(BleedInches),
	}, nil
}

// InchesToPixels converts inches to pixels at the KDP print resolution.
func InchesToPixels(inches float64) int {
	return int(math.Round(inches * DPI))
}

// PixelsToInches converts pixels at the KDP print resolution back to inches.
func PixelsToInches(pixels int) float64 {
	return float64(pixels) / DPI
}

// InchesToPoints converts inches to PDF point units (1/72 inch).
func InchesToPoints(inches float64) float64 {
	return inches * PointsPerInch
}

// RequiredImageResolution is the pixel size page art must meet to print
// cleanly at full bleed.
func RequiredImageResolution(format models.BookFormat) (width, height int, err error) {
	dims, err := ForFormat(format)
	if err != nil {
		return 0, 0, err
	}
	return dims.BleedWidthPx, dims.BleedHeightPx, nil
}

// ValidateImageDimensions checks page art against the format's required
// resolution.
func ValidateImageDimensions(widthPx, heightPx int, format models.BookFormat, includeBleed bool) (bool, error) {
	dims, err := ForFormat(format)
	if err != nil {
		return false, err
	}
	requiredWidth, requiredHeight := dims.BleedWidthPx, dims.BleedHeightPx
	if !includeBleed {
		requiredWidth, requiredHeight = dims.TrimWidthPx, dims.TrimHeightPx
	}
	return widthPx >= requiredWidth && heightPx >= requiredHeight, nil
}
