// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client for the task manager REST API.
//
// [APIClient] hides the envelope format: successful calls return the decoded
// "data" payload, failed calls return an [*APIError] that wraps one of the
// sentinel errors in errors.go, so callers can branch with [errors.Is]
// (e.g. [ErrTaskNotFound] for a missing or foreign task).
package adapter

import (
	"context"

	"github.com/al90012/primetrade-ai-assignment/models"
)

// APIClient talks to the task manager API on behalf of one user.
// Register and Login store the returned token, which is then sent as a
// bearer token on every authenticated call.
type APIClient interface {
	// SetToken replaces the bearer token used for authenticated calls.
	SetToken(token string)

	// Token returns the current bearer token or an empty string.
	Token() string

	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	Profile(ctx context.Context) (models.Identity, error)
	// UpdateProfile stores the freshly issued token on success.
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.AuthResponse, error)

	// ListTasks returns the caller's tasks, newest first. Empty search and
	// status mean no filter.
	ListTasks(ctx context.Context, search string, status models.TaskStatus) ([]models.Task, error)
	GetTask(ctx context.Context, taskID string) (models.Task, error)
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)
	UpdateTask(ctx context.Context, taskID string, req models.UpdateTaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, taskID string) error

	// Health returns the service report. A 503 answer yields both the report
	// and an error wrapping [ErrServiceUnavailable].
	Health(ctx context.Context) (models.HealthResponse, error)
}
