package jobs

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers job routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, jobService *Service) {
	h := &handler{
		jobService: jobService,
	}

	g.GET("", h.list)
	g.GET("/:id", h.retrieve)
	g.GET("/:id/artifacts/:name", h.artifact)
	g.POST("", h.create)
}
