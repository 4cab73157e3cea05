// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/al90012/primetrade-ai-assignment/models"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Authenticate verifies tokenString and loads the user it was issued to.
	Authenticate(ctx context.Context, tokenString string) (models.Identity, error)
}

type UserService interface {
	GetProfile(ctx context.Context, identity models.Identity) (models.Identity, error)
	UpdateProfile(ctx context.Context, identity models.Identity, req models.UpdateProfileRequest) (models.User, models.Token, error)
}

type TaskService interface {
	ListTasks(ctx context.Context, identity models.Identity, search string, status models.TaskStatus) ([]models.Task, error)
	GetTask(ctx context.Context, identity models.Identity, taskID string) (models.Task, error)
	CreateTask(ctx context.Context, identity models.Identity, req models.CreateTaskRequest) (models.Task, error)
	UpdateTask(ctx context.Context, identity models.Identity, taskID string, req models.UpdateTaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, identity models.Identity, taskID string) error
}

// TaskServiceWrapper decorates a TaskService with additional behavior such
// as request validation.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService
}

type HealthService interface {
	// Check pings the persistence backend. The report is filled in even
	// when the returned error is non-nil.
	Check(ctx context.Context) (models.HealthResponse, error)
}
