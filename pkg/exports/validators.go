package exports

import (
	"github.com/taskmasterpeace/bookpress/pkg/models"
)

// ExportOptionsPayload is the wire form of models.ExportOptions. Booleans are
// pointers so an explicit false survives defaulting.
type ExportOptionsPayload struct {
	IncludeBleed       *bool                `json:"include_bleed,omitempty"`
	Quality            models.ExportQuality `json:"quality,omitempty" validate:"omitempty,oneof=draft print"`
	IncludeFrontMatter *bool                `json:"include_front_matter,omitempty"`
	IncludeBackMatter  *bool                `json:"include_back_matter,omitempty"`
	PaperType          models.PaperType     `json:"paper_type,omitempty" validate:"omitempty,oneof=premium-color standard-color white-paper cream-paper"`
}

// ExportOptions resolves the payload against the print defaults.
func (p *ExportOptionsPayload) ExportOptions() models.ExportOptions {
	opts := models.DefaultExportOptions()

	if p.IncludeBleed != nil {
		opts.IncludeBleed = *p.IncludeBleed
	}
	if p.Quality != "" {
		opts.Quality = p.Quality
	}
	if p.IncludeFrontMatter != nil {
		opts.IncludeFrontMatter = *p.IncludeFrontMatter
	}
	if p.IncludeBackMatter != nil {
		opts.IncludeBackMatter = *p.IncludeBackMatter
	}
	if p.PaperType != "" {
		opts.PaperType = p.PaperType
	}

	return opts
}

type ExportPayload struct {
	Project *models.StorybookProject `json:"project" validate:"required"`
	Options ExportOptionsPayload     `json:"options"`
}
