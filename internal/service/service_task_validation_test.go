// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/al90012/primetrade-ai-assignment/internal/mock"
	"github.com/al90012/primetrade-ai-assignment/internal/validators"
	"github.com/al90012/primetrade-ai-assignment/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newValidatingTaskService(t *testing.T) (TaskService, *mock.MockTaskService) {
	t.Helper()
	inner := mock.NewMockTaskService(gomock.NewController(t))
	return NewTaskValidationService(validators.NewRequestValidator()).Wrap(inner), inner
}

func TestTaskValidationService_RejectsBeforeInner(t *testing.T) {
	ctx := context.Background()
	blank := " "
	bogus := models.TaskStatus("done")

	t.Run("create", func(t *testing.T) {
		svc, _ := newValidatingTaskService(t)

		_, err := svc.CreateTask(ctx, jo, models.CreateTaskRequest{Title: "", Status: bogus})

		var validationErr *validators.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{validators.MsgTitleRequired, validators.MsgInvalidStatus}, validationErr.Errors)
	})

	t.Run("update", func(t *testing.T) {
		svc, _ := newValidatingTaskService(t)

		_, err := svc.UpdateTask(ctx, jo, "t1", models.UpdateTaskRequest{Title: &blank})

		require.ErrorIs(t, err, validators.ErrValidation)
	})
}

func TestTaskValidationService_PassesThrough(t *testing.T) {
	ctx := context.Background()
	svc, inner := newValidatingTaskService(t)

	create := models.CreateTaskRequest{Title: "T1"}
	inner.EXPECT().CreateTask(ctx, jo, create).Return(models.Task{TaskID: "t1"}, nil)
	inner.EXPECT().ListTasks(ctx, jo, "", models.TaskStatus("")).Return([]models.Task{}, nil)
	inner.EXPECT().GetTask(ctx, jo, "t1").Return(models.Task{TaskID: "t1"}, nil)
	inner.EXPECT().UpdateTask(ctx, jo, "t1", models.UpdateTaskRequest{}).Return(models.Task{TaskID: "t1"}, nil)
	inner.EXPECT().DeleteTask(ctx, jo, "t1").Return(nil)

	_, err := svc.CreateTask(ctx, jo, create)
	require.NoError(t, err)
	_, err = svc.ListTasks(ctx, jo, "", "")
	require.NoError(t, err)
	_, err = svc.GetTask(ctx, jo, "t1")
	require.NoError(t, err)
	_, err = svc.UpdateTask(ctx, jo, "t1", models.UpdateTaskRequest{})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteTask(ctx, jo, "t1"))
}
