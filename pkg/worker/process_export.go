package worker

import (
	"context"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/taskmasterpeace/bookpress/pkg/exports"
	"github.com/taskmasterpeace/bookpress/pkg/jobs"
)

// ProcessExportJob builds the job's book and attaches the finished artifacts.
// All artifacts are stored before the job is marked completed, so a caller
// that sees "completed" can always download every listed file.
func (w *Worker) ProcessExportJob(ctx context.Context, job *jobs.Job) error {
	log := logger.FromContext(ctx)

	data, ok := job.DataParsed.(*jobs.JobExportData)
	if !ok || data.Project == nil {
		return errors.New("export job has no project payload")
	}

	export, err := w.exportService.ExportBook(ctx, data.Project, data.Options.ExportOptions())
	if err != nil {
		return errors.WithStack(err)
	}

	built := []*exports.Artifact{export.Interior}
	if export.Cover != nil {
		built = append(built, export.Cover)
	}

	job.Artifacts = nil
	for _, artifact := range built {
		if err := w.jobService.StoreArtifact(ctx, job.ID, artifact.Filename, artifact.Data); err != nil {
			return errors.WithStack(err)
		}
		job.Artifacts = append(job.Artifacts, artifact.Filename)
	}

	log.Info("export job finished", logger.Data{"artifacts": len(job.Artifacts)})

	return nil
}
