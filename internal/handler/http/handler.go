// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/al90012/primetrade-ai-assignment/internal/config"
	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/internal/service"
)

type Handler struct {
	services *service.Services

	// production hides internal error details from 500 responses.
	production     bool
	corsOrigins    []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		production:     cfg.App.IsProduction(),
		corsOrigins:    cfg.Server.CORSOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
