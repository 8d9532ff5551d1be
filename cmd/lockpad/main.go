package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-lockpad/internal/auth"
	"github.com/MKhiriev/go-lockpad/internal/client"
	"github.com/MKhiriev/go-lockpad/internal/config"
	"github.com/MKhiriev/go-lockpad/internal/logger"
	"github.com/MKhiriev/go-lockpad/internal/service"
	"github.com/MKhiriev/go-lockpad/internal/store"
	"github.com/MKhiriev/go-lockpad/internal/tui"
	"github.com/MKhiriev/go-lockpad/internal/workers"
	"github.com/MKhiriev/go-lockpad/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("go-lockpad", cfg.Log.File, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create note store")
	}

	prompter := tui.NewPassphrasePrompter()
	capability, err := auth.NewCapability(cfg.Auth, prompter)
	if err != nil {
		log.Fatal().Err(err).Msg("create authentication capability")
	}
	authenticator := auth.NewAuthenticator(capability, cfg.Auth.Reason, log)

	services := service.NewClientServices(storages, authenticator, cfg.Note, log)

	ui, err := tui.New(services.NoteController, prompter, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	bgWorkers := workers.NewWorkers(
		workers.NewSignalWorker(services.NoteController, log),
		workers.NewIdleLockWorker(services.NoteController, cfg.Note.AutoLock, log),
	)

	app, err := client.NewApp(services, ui, bgWorkers, storages, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
