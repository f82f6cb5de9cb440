package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
	"github.com/taskmasterpeace/bookpress/pkg/config"
	"github.com/taskmasterpeace/bookpress/pkg/exports"
	"github.com/taskmasterpeace/bookpress/pkg/imagefetch"
	"github.com/taskmasterpeace/bookpress/pkg/models"
	"github.com/urfave/cli/v2"
)

func main() {
	log := logger.New()

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	fetcher := imagefetch.NewHTTPFetcher(imagefetch.Options{
		Timeout:           cfg.FetchTimeout,
		RequestsPerSecond: cfg.FetchRatePerSecond,
		CacheTTL:          cfg.CacheTTL,
	})
	exportService := exports.NewService(exports.ServiceOptions{
		Fetcher:          fetcher,
		FetchConcurrency: cfg.FetchConcurrency,
	})

	app := &cli.App{
		Name:        "bookpress",
		Usage:       "CLI to build print-ready book PDFs",
		Description: "CLI to build print-ready book PDFs",
		Commands: []*cli.Command{
			{
				Name:      "export",
				Usage:     "build the interior PDF (and the cover wrap when the project has cover art)",
				ArgsUsage: "<project.json>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "directory to write the PDFs into",
						Value: ".",
					},
					&cli.BoolFlag{
						Name:  "draft",
						Usage: "render draft quality with trim and spine guides",
					},
					&cli.BoolFlag{
						Name:  "no-bleed",
						Usage: "render at trim size without bleed",
					},
					&cli.StringFlag{
						Name:  "paper",
						Usage: "paper type: premium-color, standard-color, white-paper, or cream-paper",
						Value: string(models.PaperTypePremiumColor),
					},
				},
				Action: func(c *cli.Context) error {
					project, err := loadProject(c.Args().First())
					if err != nil {
						return err
					}

					opts := models.DefaultExportOptions()
					if c.Bool("draft") {
						opts.Quality = models.QualityDraft
					}
					if c.Bool("no-bleed") {
						opts.IncludeBleed = false
					}
					opts.PaperType = models.PaperType(c.String("paper"))

					export, err := exportService.ExportBook(c.Context, project, opts)
					if err != nil {
						return err
					}

					artifacts := []*exports.Artifact{export.Interior}
					if export.Cover != nil {
						artifacts = append(artifacts, export.Cover)
					}
					for _, artifact := range artifacts {
						path := filepath.Join(c.String("out"), artifact.Filename)
						if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
							return errors.WithStack(err)
						}
						fmt.Printf("Wrote %s\n", path)
					}
					return nil
				},
			},
			{
				Name:      "breakdown",
				Usage:     "report how a project's content maps onto physical pages",
				ArgsUsage: "<project.json>",
				Action: func(c *cli.Context) error {
					project, err := loadProject(c.Args().First())
					if err != nil {
						return err
					}

					report, err := exportService.Breakdown(c.Context, project)
					if err != nil {
						return err
					}

					out, err := json.MarshalIndent(report, "", "  ")
					if err != nil {
						return errors.WithStack(err)
					}
					fmt.Println(string(out))
					return nil
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Err(err).Fatal("app run error")
	}
}

func loadProject(path string) (*models.StorybookProject, error) {
	if path == "" {
		return nil, errors.New("a project file argument is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	project := &models.StorybookProject{}
	if err := json.Unmarshal(data, project); err != nil {
		return nil, errors.Wrap(err, "parse project file")
	}
	return project, nil
}
