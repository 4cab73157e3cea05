// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/al90012/primetrade-ai-assignment/internal/config"
	"github.com/al90012/primetrade-ai-assignment/internal/logger"
	"github.com/al90012/primetrade-ai-assignment/internal/store"
	"github.com/al90012/primetrade-ai-assignment/internal/validators"
	"github.com/al90012/primetrade-ai-assignment/models"
)

type Services struct {
	AuthService   AuthService
	UserService   UserService
	TaskService   TaskService
	HealthService HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.BuildInfo, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()
	authService := NewAuthService(storages.UserRepository, validator, cfg.App, logger)

	return &Services{
		AuthService:   authService,
		UserService:   NewUserService(storages.UserRepository, authService, validator, cfg.App, logger),
		TaskService:   NewTaskValidationService(validator).Wrap(NewTaskService(storages.TaskRepository, logger)),
		HealthService: NewHealthService(storages, cfg.App, buildInfo, logger),
	}
}
