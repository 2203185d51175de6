package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/okugula/work-kg-admin/internal/adapter"
	"github.com/okugula/work-kg-admin/internal/client"
	"github.com/okugula/work-kg-admin/internal/config"
	"github.com/okugula/work-kg-admin/internal/logger"
	"github.com/okugula/work-kg-admin/internal/service"
	"github.com/okugula/work-kg-admin/internal/store"
	"github.com/okugula/work-kg-admin/internal/tui"
	"github.com/okugula/work-kg-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("work-kg-admin").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("work-kg-admin", cfg.Log.File, cfg.Log.Level)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Str("backend", cfg.Adapter.HTTPAddress).
		Msg("starting admin console")
	defer log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	api, err := adapter.NewHTTPAdminAdapter(cfg.Adapter, storages.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create admin api client")
	}

	services := service.NewClientServices(api, storages.Session, log)
	ui := tui.New(services, buildInfo, cfg.Dashboard.RefreshInterval, log)
	app := client.NewApp(services, ui, log)

	if err = app.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Error().Err(err).Msg("client run error")
		storages.Close()
		log.Close()
		os.Exit(1)
	}

	log.Info().Msg("admin console stopped")
}
