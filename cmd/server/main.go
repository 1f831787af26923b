package main

import (
	"context"
	"fmt"

	"github.com/akarpov/go-music-library/internal/config"
	httpHandler "github.com/akarpov/go-music-library/internal/handler/http"
	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/internal/notifier"
	"github.com/akarpov/go-music-library/internal/server"
	"github.com/akarpov/go-music-library/internal/service"
	"github.com/akarpov/go-music-library/internal/store"
	"github.com/akarpov/go-music-library/internal/workers"
	"github.com/akarpov/go-music-library/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("music-library-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	mailer := newNotifier(cfg.SMTP, log)

	services := service.NewServices(storages, *cfg, mailer, log)

	handler := httpHandler.NewHandler(services, cfg.App.Version, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(ctx, storages, cfg.Workers, log).Run()

	srv.RunServer()
}

// newNotifier picks the outbound mail transport: real SMTP when a host
// is configured, otherwise a nop transport that only logs the codes.
func newNotifier(cfg config.SMTP, log *logger.Logger) service.Notifier {
	if cfg.Host == "" {
		log.Warn().Msg("no SMTP host configured, verification codes will only be logged")
		return notifier.NewNopNotifier(log)
	}

	mailer, err := notifier.NewSMTPNotifier(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating SMTP notifier")
	}

	return mailer
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
