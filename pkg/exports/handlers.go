package exports

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	exportService *Service
}

func (h *handler) interior(c echo.Context) error {
	ctx := c.Request().Context()

	params := ExportPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	artifact, err := h.exportService.ExportInterior(ctx, params.Project, params.Options.ExportOptions())
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(pdfResponse(c, artifact))
}

func (h *handler) cover(c echo.Context) error {
	ctx := c.Request().Context()

	params := ExportPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	artifact, err := h.exportService.ExportCover(ctx, params.Project, params.Options.ExportOptions())
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(pdfResponse(c, artifact))
}

func (h *handler) breakdown(c echo.Context) error {
	ctx := c.Request().Context()

	params := ExportPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	report, err := h.exportService.Breakdown(ctx, params.Project)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, report))
}

func pdfResponse(c echo.Context, artifact *Artifact) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	return c.Blob(http.StatusOK, "application/pdf", artifact.Data)
}
