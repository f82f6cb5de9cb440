package exports

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers export routes on a pre-configured group.
func RegisterRoutesWithGroup(g *echo.Group, exportService *Service) {
	h := &handler{
		exportService: exportService,
	}

	g.POST("/interior", h.interior)
	g.POST("/cover", h.cover)
	g.POST("/breakdown", h.breakdown)
}
