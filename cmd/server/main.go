package main

import (
	"context"
	"fmt"

	"github.com/ndanilchenko/go-skill-market/internal/config"
	httphandler "github.com/ndanilchenko/go-skill-market/internal/handler/http"
	"github.com/ndanilchenko/go-skill-market/internal/logger"
	"github.com/ndanilchenko/go-skill-market/internal/server"
	"github.com/ndanilchenko/go-skill-market/internal/service"
	"github.com/ndanilchenko/go-skill-market/internal/store"
	"github.com/ndanilchenko/go-skill-market/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("skill-market-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg, log)

	rateLimiter := httphandler.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	handler := httphandler.NewHandler(services, rateLimiter, log)

	workers.NewWorkers(
		httphandler.NewRateLimiterJanitor(rateLimiter, cfg.RateLimit.Window, log),
	).Run()

	srv, err := server.NewServer(handler.Init(cfg.Server.RequestTimeout), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
