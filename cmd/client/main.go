package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-book/internal/adapter"
	"github.com/MKhiriev/go-recipe-book/internal/client"
	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/internal/session"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/internal/tui"
	"github.com/MKhiriev/go-recipe-book/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("recipe-book-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	catalogAdapter, err := adapter.NewHTTPCatalogAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create catalog adapter")
	}

	localStorage, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	sessionStore := session.NewStore(localStorage.SessionSlots, log)
	services := service.NewClientServices(sessionStore, catalogAdapter, cfg.App.PageSize, log)

	ui, err := tui.New(services, cfg.App.PageSize, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, localStorage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
