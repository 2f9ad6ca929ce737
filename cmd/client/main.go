package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-user-client/internal/adapter"
	"github.com/MKhiriev/go-user-client/internal/client"
	"github.com/MKhiriev/go-user-client/internal/config"
	"github.com/MKhiriev/go-user-client/internal/logger"
	"github.com/MKhiriev/go-user-client/internal/service"
	"github.com/MKhiriev/go-user-client/internal/store"
	"github.com/MKhiriev/go-user-client/models"
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
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("user-client", cfg.App.LogFile)
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	userAPI, err := adapter.NewHTTPUserAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create user api adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client storages")
	}
	defer storages.Close()

	services := service.NewClientServices(cfg.App, storages, userAPI, log)
	app := client.NewApp(services, buildInfo, cfg.App.Locale, os.Stdout, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, flag.Args()); err != nil {
		log.Error().Err(err).Strs("args", flag.Args()).Msg("command failed")
		fmt.Fprintln(os.Stderr, err)
		stop()
		storages.Close()
		os.Exit(1)
	}
}
