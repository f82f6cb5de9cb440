package models

// ExportQuality selects between a human-inspection draft and a
// print-submission artifact.
type ExportQuality string

const (
	QualityDraft ExportQuality = "draft"
	QualityPrint ExportQuality = "print"
)

// ExportOptions configures one build call. It is passed explicitly into every
// build, never held as ambient state, so concurrent exports for different
// projects cannot interfere.
type ExportOptions struct {
	IncludeBleed       bool          `json:"include_bleed"`
	Quality            ExportQuality `json:"quality"`
	IncludeFrontMatter bool          `json:"include_front_matter"`
	IncludeBackMatter  bool          `json:"include_back_matter"`
	PaperType          PaperType     `json:"paper_type"`
}

// DefaultExportOptions is the print-submission configuration.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		IncludeBleed:       true,
		Quality:            QualityPrint,
		IncludeFrontMatter: true,
		IncludeBackMatter:  true,
		PaperType:          PaperTypePremiumColor,
	}
}
