package main

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/robinjoseph08/golib/signals"
	"github.com/taskmasterpeace/bookpress/pkg/config"
	"github.com/taskmasterpeace/bookpress/pkg/exports"
	"github.com/taskmasterpeace/bookpress/pkg/imagefetch"
	"github.com/taskmasterpeace/bookpress/pkg/jobs"
	"github.com/taskmasterpeace/bookpress/pkg/server"
	"github.com/taskmasterpeace/bookpress/pkg/version"
	"github.com/taskmasterpeace/bookpress/pkg/worker"
)

func main() {
	ctx := context.Background()
	log := logger.New()

	log.Info("starting bookpress", logger.Data{"version": version.Version})

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
	jobService := jobs.NewService()

	wrkr := worker.New(cfg, jobService, exportService)

	srv, err := server.New(cfg, server.Services{
		Exports: exportService,
		Jobs:    jobService,
	})
	if err != nil {
		log.Err(err).Fatal("server error")
	}

	graceful := signals.Setup()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)
		lc := net.ListenConfig{}
		listener, err := lc.Listen(ctx, "tcp", addr)
		if err != nil {
			log.Err(err).Fatal("failed to bind port")
		}

		actualPort := listener.Addr().(*net.TCPAddr).Port
		log.Info("server started", logger.Data{"port": actualPort})

		err = srv.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Err(err).Fatal("server stopped")
		}
		log.Info("server stopped")
	}()

	wrkr.Start()
	log.Info("worker started")

	<-graceful
	log.Info("starting graceful shutdown")

	err = srv.Shutdown(ctx)
	if err != nil {
		log.Err(err).Error("server shutdown error")
	}
	log.Info("server shutdown")

	wrkr.Shutdown()
	log.Info("worker shutdown")
}
