package main

import (
	"fmt"

	"github.com/MKhiriev/go-recipe-book/internal/catalog"
	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/handler"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/server"
	"github.com/MKhiriev/go-recipe-book/internal/service"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("recipe-book-catalog")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	seed, err := catalog.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading seed catalog")
	}

	storages := store.NewStorages(seed, log)
	services := service.NewServices(storages, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
