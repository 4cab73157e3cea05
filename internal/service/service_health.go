// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/al90012/primetrade-ai-assignment/internal/config"
	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/internal/store"
	"github.com/al90012/primetrade-ai-assignment/models"
)

const (
	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
)

type healthService struct {
	connection store.Connection
	mode       string
	version    string
	commit     string
	logger     *logger.Logger
}

func NewHealthService(connection store.Connection, cfg config.App, buildInfo models.BuildInfo, logger *logger.Logger) HealthService {
	buildInfo = buildInfo.OrUnset()

	return &healthService{
		connection: connection,
		mode:       cfg.Mode,
		version:    buildInfo.Version,
		commit:     buildInfo.Commit,
		logger:     logger,
	}
}

func (s *healthService) Check(ctx context.Context) (models.HealthResponse, error) {
	report := models.HealthResponse{
		Status:  healthStatusOK,
		Mode:    s.mode,
		Version: s.version,
		Commit:  s.commit,
	}

	if err := s.connection.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("storage ping failed")
		report.Status = healthStatusUnavailable
		return report, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return report, nil
}
