// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/al90012/primetrade-ai-assignment/internal/validators"
	"github.com/al90012/primetrade-ai-assignment/models"
)

// TaskValidationService validates create and update requests before they
// reach the wrapped TaskService. Reads and deletes pass straight through.
type TaskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService(validator validators.Validator) TaskServiceWrapper {
	return &TaskValidationService{
		validator: validator,
	}
}

func (v *TaskValidationService) ListTasks(ctx context.Context, identity models.Identity, search string, status models.TaskStatus) ([]models.Task, error) {
	return v.inner.ListTasks(ctx, identity, search, status)
}

func (v *TaskValidationService) GetTask(ctx context.Context, identity models.Identity, taskID string) (models.Task, error) {
	return v.inner.GetTask(ctx, identity, taskID)
}

func (v *TaskValidationService) CreateTask(ctx context.Context, identity models.Identity, req models.CreateTaskRequest) (models.Task, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Task{}, err
	}

	return v.inner.CreateTask(ctx, identity, req)
}

func (v *TaskValidationService) UpdateTask(ctx context.Context, identity models.Identity, taskID string, req models.UpdateTaskRequest) (models.Task, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Task{}, err
	}

	return v.inner.UpdateTask(ctx, identity, taskID, req)
}

func (v *TaskValidationService) DeleteTask(ctx context.Context, identity models.Identity, taskID string) error {
	return v.inner.DeleteTask(ctx, identity, taskID)
}

func (v *TaskValidationService) Wrap(wrapped TaskService) TaskService {
	v.inner = wrapped
	return v
}
