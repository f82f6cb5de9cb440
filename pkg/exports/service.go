package exports

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pkg/errors"
	"github.com/taskmasterpeace/bookpress/pkg/assembly"
	"github.com/taskmasterpeace/bookpress/pkg/cover"
	"github.com/taskmasterpeace/bookpress/pkg/dimensions"
	"github.com/taskmasterpeace/bookpress/pkg/errcodes"
	"github.com/taskmasterpeace/bookpress/pkg/imagefetch"
	"github.com/taskmasterpeace/bookpress/pkg/models"
	"github.com/taskmasterpeace/bookpress/pkg/pagecount"
	"github.com/taskmasterpeace/bookpress/pkg/pdfdraw"
	"github.com/taskmasterpeace/bookpress/pkg/renderer"
)

// Artifact is one finished PDF ready to hand to the caller.
type Artifact struct {
	Filename string `json:"filename"`
	Data     []byte `json:"-"`
}

// Export is the result of a full book build: the interior, plus the cover
// wrap when the project has front cover art.
type Export struct {
	Interior *Artifact
	Cover    *Artifact
}

// BreakdownReport is what the page-count panel consumes.
type BreakdownReport struct {
	Breakdown      pagecount.Breakdown `json:"breakdown"`
	Recommendation string              `json:"recommendation,omitempty"`
}

type Service struct {
	fetcher          imagefetch.Fetcher
	fetchConcurrency int
	newSurface       func() pdfdraw.Surface
	validateOutput   bool
}

type ServiceOptions struct {
	Fetcher          imagefetch.Fetcher
	FetchConcurrency int

	// SurfaceFactory and SkipOutputValidation exist for tests that swap in a
	// recording surface.
	SurfaceFactory       func() pdfdraw.Surface
	SkipOutputValidation bool
}

func NewService(opts ServiceOptions) *Service {
	concurrency := opts.FetchConcurrency
	if concurrency < 1 {
		concurrency = 4
	}
	factory := opts.SurfaceFactory
	if factory == nil {
		factory = func() pdfdraw.Surface { return pdfdraw.NewFpdfSurface() }
	}
	return &Service{
		fetcher:          opts.Fetcher,
		fetchConcurrency: concurrency,
		newSurface:       factory,
		validateOutput:   !opts.SkipOutputValidation,
	}
}

// Breakdown reports how the project's content maps onto physical pages.
// Format problems fail before any counting.
func (svc *Service) Breakdown(ctx context.Context, project *models.StorybookProject) (*BreakdownReport, error) {
	if _, err := dimensions.ForFormat(project.BookFormat); err != nil {
		return nil, err
	}

	b := pagecount.ComputeBreakdown(project)
	return &BreakdownReport{
		Breakdown:      b,
		Recommendation: pagecount.Recommendation(b),
	}, nil
}

// ExportInterior builds the complete interior PDF: assemble pages, prefetch
// art, render, then validate the artifact before returning it. A missing
// image degrades to a placeholder page; a bad format or page count rejects
// the request before any processing time is spent.
func (svc *Service) ExportInterior(ctx context.Context, project *models.StorybookProject, opts models.ExportOptions) (*Artifact, error) {
	if _, err := dimensions.ForFormat(project.BookFormat); err != nil {
		return nil, err
	}

	pages := assembly.AssembleCompleteBook(project, assembly.AssembleOptions{
		IncludeFrontMatter: opts.IncludeFrontMatter,
		IncludeBackMatter:  opts.IncludeBackMatter,
	})

	images := svc.prefetch(ctx, interiorImageURLs(pages))
	surf := svc.newSurface()

	err := renderer.RenderInterior(ctx, surf, renderer.Interior{
		Format:  project.BookFormat,
		Title:   project.Title,
		Author:  project.Author,
		Pages:   pages,
		Images:  images,
		Options: opts,
	})
	if err != nil {
		return nil, err
	}

	data, err := svc.finish(surf)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Filename: sanitizeTitle(project.Title) + "-interior.pdf",
		Data:     data,
	}, nil
}

// ExportCover builds the one-page cover wrap PDF. The spine is sized from the
// full book's page count, including front and back matter. Requests without
// front cover art are rejected up front.
func (svc *Service) ExportCover(ctx context.Context, project *models.StorybookProject, opts models.ExportOptions) (*Artifact, error) {
	if _, err := dimensions.ForFormat(project.BookFormat); err != nil {
		return nil, err
	}
	if project.CoverImageURL == "" {
		return nil, errors.WithStack(errcodes.MissingCoverArt())
	}

	breakdown := pagecount.ComputeBreakdown(project)
	images := svc.prefetch(ctx, []string{project.CoverImageURL, project.BackCoverImageURL})
	surf := svc.newSurface()

	err := cover.RenderCover(ctx, surf, cover.Wrap{
		Format:        project.BookFormat,
		Title:         project.Title,
		Author:        project.Author,
		PageCount:     breakdown.GrandTotal,
		Paper:         opts.PaperType,
		FrontImageURL: project.CoverImageURL,
		BackImageURL:  project.BackCoverImageURL,
		BackText:      project.BackCoverText,
		BackColor:     project.BackCoverColor,
		SpineText:     project.Title,
		Images:        images,
		Options:       opts,
	})
	if err != nil {
		return nil, err
	}

	data, err := svc.finish(surf)
	if err != nil {
		return nil, err
	}

	return &Artifact{
		Filename: sanitizeTitle(project.Title) + "-cover.pdf",
		Data:     data,
	}, nil
}

// ExportBook builds the interior and, when the project has front cover art,
// the cover wrap. Used by the async job path: it either returns every
// artifact or an error, never a partial set.
func (svc *Service) ExportBook(ctx context.Context, project *models.StorybookProject, opts models.ExportOptions) (*Export, error) {
	interior, err := svc.ExportInterior(ctx, project, opts)
	if err != nil {
		return nil, err
	}

	export := &Export{Interior: interior}

	if project.CoverImageURL != "" {
		coverArtifact, err := svc.ExportCover(ctx, project, opts)
		if err != nil {
			return nil, err
		}
		export.Cover = coverArtifact
	}

	return export, nil
}

func (svc *Service) prefetch(ctx context.Context, urls []string) map[string]imagefetch.Image {
	if svc.fetcher == nil {
		return nil
	}
	return imagefetch.Prefetch(ctx, svc.fetcher, urls, svc.fetchConcurrency)
}

// finish serializes the surface and rejects a corrupt artifact before it
// reaches the caller.
func (svc *Service) finish(surf pdfdraw.Surface) ([]byte, error) {
	data, err := surf.Serialize()
	if err != nil {
		return nil, err
	}

	if svc.validateOutput {
		err = api.Validate(bytes.NewReader(data), pdfcpumodel.NewDefaultConfiguration())
		if err != nil {
			return nil, errors.Wrap(err, "generated pdf failed validation")
		}
	}

	return data, nil
}

func interiorImageURLs(pages []models.PageRecord) []string {
	urls := make([]string, 0, len(pages)*2)
	for i := range pages {
		if pages[i].ImageURL != "" {
			urls = append(urls, pages[i].ImageURL)
		}
		if pages[i].SecondImageURL != "" {
			urls = append(urls, pages[i].SecondImageURL)
		}
	}
	return urls
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

func sanitizeTitle(title string) string {
	s := nonAlphanumeric.ReplaceAllString(title, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "book"
	}
	return strings.ToLower(s)
}
