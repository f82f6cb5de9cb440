package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/taskmasterpeace/bookpress/pkg/binder"
	"github.com/taskmasterpeace/bookpress/pkg/config"
	"github.com/taskmasterpeace/bookpress/pkg/errcodes"
	"github.com/taskmasterpeace/bookpress/pkg/exports"
	"github.com/taskmasterpeace/bookpress/pkg/jobs"
)

// Services carries the shared service instances the routes are built on. The
// job service must be the same instance the worker polls.
type Services struct {
	Exports *exports.Service
	Jobs    *jobs.Service
}

func New(cfg *config.Config, svcs Services) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())

	health.RegisterRoutes(e)

	exports.RegisterRoutesWithGroup(e.Group("/exports"), svcs.Exports)
	jobs.RegisterRoutesWithGroup(e.Group("/jobs"), svcs.Jobs)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func notFoundHandler(c echo.Context) error {
	return errcodes.NotFound("Route")
}
