// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/al90012/primetrade-ai-assignment/internal/config"
	myHTTP "github.com/al90012/primetrade-ai-assignment/internal/handler/http"
	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/internal/server"
	"github.com/al90012/primetrade-ai-assignment/internal/service"
	"github.com/al90012/primetrade-ai-assignment/internal/store"
	"github.com/al90012/primetrade-ai-assignment/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const storageConnectTimeout = 30 * time.Second

func main() {
	buildInfo := models.BuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	printBuildInfo(buildInfo.OrUnset())

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("server", config.ModeProduction).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("server", cfg.App.Mode)
	log.Debug().
		Str("mode", cfg.App.Mode).
		Str("address", cfg.Server.Address()).
		Msg("received configs")

	connectCtx, cancel := context.WithTimeout(context.Background(), storageConnectTimeout)
	storages, err := store.NewStorages(connectCtx, cfg.Storage.DB, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.Background()); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, *cfg, buildInfo, log)
	handler := myHTTP.NewHandler(services, *cfg, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.BuildInfo) {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", info.Version, info.Date, info.Commit)
}
