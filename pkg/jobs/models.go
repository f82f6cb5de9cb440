package jobs

import (
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/taskmasterpeace/bookpress/pkg/exports"
	"github.com/taskmasterpeace/bookpress/pkg/models"
)

const (
	JobStatusPending    = "pending"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

const (
	JobTypeExport = "export"
)

// Job is one queued book build. Exports are stateless, so jobs and their
// artifacts live in memory for the lifetime of the process.
type Job struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Status     string      `json:"status"`
	Data       string      `json:"-"`
	DataParsed interface{} `json:"data"`
	Error      string      `json:"error,omitempty"`
	ProcessID  *string     `json:"process_id,omitempty"`
	Artifacts  []string    `json:"artifacts,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

func (job *Job) UnmarshalData() error {
	switch job.Type {
	case JobTypeExport:
		job.DataParsed = &JobExportData{}
	}

	err := json.Unmarshal([]byte(job.Data), job.DataParsed)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// JobExportData is the payload of an export job: the project to build plus
// the build options.
type JobExportData struct {
	Project *models.StorybookProject     `json:"project"`
	Options exports.ExportOptionsPayload `json:"options"`
}
