package jobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskmasterpeace/bookpress/pkg/binder"
	"github.com/taskmasterpeace/bookpress/pkg/errcodes"
	"github.com/taskmasterpeace/bookpress/pkg/models"
)

func setupTestServer(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	svc := NewService()
	RegisterRoutesWithGroup(e.Group("/jobs"), svc)

	return e, svc
}

func executeJSONRequest(t *testing.T, e *echo.Echo, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, strings.NewReader(string(body)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)
	return rr
}

func TestCreateJobHandler(t *testing.T) {
	t.Parallel()

	e, _ := setupTestServer(t)

	rr := executeJSONRequest(t, e, http.MethodPost, "/jobs", CreateJobPayload{
		Type: JobTypeExport,
		Data: &JobExportData{
			Project: &models.StorybookProject{
				Title:      "Luna's Journey",
				BookFormat: models.BookFormatSquare,
			},
		},
	})

	require.Equal(t, http.StatusOK, rr.Code)

	job := Job{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &job))
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, JobTypeExport, job.Type)
	assert.Equal(t, JobStatusPending, job.Status)
}

func TestCreateJobHandlerMissingData(t *testing.T) {
	t.Parallel()

	e, _ := setupTestServer(t)

	rr := executeJSONRequest(t, e, http.MethodPost, "/jobs", map[string]interface{}{
		"type": JobTypeExport,
	})

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	resp := struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error.Code)
}

func TestRetrieveJobHandlerNotFound(t *testing.T) {
	t.Parallel()

	e, _ := setupTestServer(t)

	rr := executeJSONRequest(t, e, http.MethodGet, "/jobs/nope", nil)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListJobsHandler(t *testing.T) {
	t.Parallel()

	e, svc := setupTestServer(t)

	for i := 0; i < 3; i++ {
		job := &Job{
			Type:       JobTypeExport,
			Status:     JobStatusPending,
			DataParsed: exportData(),
		}
		require.NoError(t, svc.CreateJob(context.Background(), job))
	}

	rr := executeJSONRequest(t, e, http.MethodGet, "/jobs?limit=2", nil)

	require.Equal(t, http.StatusOK, rr.Code)

	resp := struct {
		Jobs  []*Job `json:"jobs"`
		Total int    `json:"total"`
	}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Jobs, 2)
	assert.Equal(t, 3, resp.Total)
}

func TestArtifactHandler(t *testing.T) {
	t.Parallel()

	e, svc := setupTestServer(t)

	job := &Job{
		Type:       JobTypeExport,
		Status:     JobStatusPending,
		DataParsed: exportData(),
	}
	require.NoError(t, svc.CreateJob(context.Background(), job))
	require.NoError(t, svc.StoreArtifact(context.Background(), job.ID, "t-interior.pdf", []byte("%PDF-1.7")))

	rr := executeJSONRequest(t, e, http.MethodGet, "/jobs/"+job.ID+"/artifacts/t-interior.pdf", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "%PDF-1.7", rr.Body.String())

	rr = executeJSONRequest(t, e, http.MethodGet, "/jobs/"+job.ID+"/artifacts/missing.pdf", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}
