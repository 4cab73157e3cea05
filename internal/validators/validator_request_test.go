// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/al90012/primetrade-ai-assignment/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validationMessages(t *testing.T, err error) []string {
	t.Helper()
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "expected *ValidationError, got %v", err)
	assert.ErrorIs(t, err, ErrValidation)
	return vErr.Errors
}

func TestRequestValidator_Register(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.RegisterRequest
		want []string
	}{
		{
			name: "valid",
			req:  models.RegisterRequest{Name: "Jo", Email: "jo@x.com", Password: "secret1"},
		},
		{
			name: "all invalid",
			req:  models.RegisterRequest{Name: " J ", Email: "nope", Password: "123"},
			want: []string{MsgInvalidName, MsgInvalidEmail, MsgInvalidPassword},
		},
		{
			name: "empty body",
			req:  models.RegisterRequest{},
			want: []string{MsgInvalidName, MsgInvalidEmail, MsgInvalidPassword},
		},
		{
			name: "only password short",
			req:  models.RegisterRequest{Name: "Jo", Email: "jo@x.com", Password: "12345"},
			want: []string{MsgInvalidPassword},
		},
		{
			name: "password over bcrypt limit",
			req:  models.RegisterRequest{Name: "Jo", Email: "jo@x.com", Password: strings.Repeat("p", 80)},
			want: []string{MsgPasswordTooLong},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, validationMessages(t, err))
		})
	}
}

func TestRequestValidator_UpdateProfile(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.UpdateProfileRequest{}))
	assert.NoError(t, v.Validate(ctx, &models.UpdateProfileRequest{Name: ptr("Jo")}))

	err := v.Validate(ctx, models.UpdateProfileRequest{Email: ptr(""), Password: ptr("1")})
	assert.Equal(t, []string{MsgInvalidEmail, MsgInvalidPassword}, validationMessages(t, err))

	err = v.Validate(ctx, models.UpdateProfileRequest{Password: ptr(strings.Repeat("ä", 40))})
	assert.Equal(t, []string{MsgPasswordTooLong}, validationMessages(t, err))
}

func TestRequestValidator_CreateTask(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CreateTaskRequest{Title: "T1"}))
	assert.NoError(t, v.Validate(ctx, models.CreateTaskRequest{Title: "T1", Status: models.TaskStatusCompleted}))

	err := v.Validate(ctx, models.CreateTaskRequest{Title: "   ", Status: "done"})
	assert.Equal(t, []string{MsgTitleRequired, MsgInvalidStatus}, validationMessages(t, err))
}

func TestRequestValidator_UpdateTask(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	status := models.TaskStatusInProgress
	assert.NoError(t, v.Validate(ctx, models.UpdateTaskRequest{}))
	assert.NoError(t, v.Validate(ctx, models.UpdateTaskRequest{Status: &status}))
	assert.NoError(t, v.Validate(ctx, models.UpdateTaskRequest{Description: ptr("")}))

	empty := models.TaskStatus("")
	err := v.Validate(ctx, models.UpdateTaskRequest{Title: ptr(""), Status: &empty})
	assert.Equal(t, []string{MsgTitleRequired, MsgInvalidStatus}, validationMessages(t, err))
}

func TestRequestValidator_PartialFields(t *testing.T) {
	v := NewRequestValidator()

	req := models.RegisterRequest{Name: "J", Email: "jo@x.com", Password: "1"}
	err := v.Validate(context.Background(), req, "Email")

	assert.NoError(t, err)
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.RegisterRequest)(nil)), ErrUnsupportedType)
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError("a", "b")

	assert.Equal(t, "validation failed: a; b", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
}
