// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"name"`
	Email    string `json:"email" validate:"email_shape"`
	Password string `json:"password" validate:"password,password_max"`
}

// LoginRequest is the body of POST /api/auth/login.
// Presence of both fields is checked by the auth service, not by tags.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of PUT /api/users/me.
// Nil (absent or null) fields are left unchanged; supplied fields are
// validated with the registration rules.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitnil,name"`
	Email    *string `json:"email,omitempty" validate:"omitnil,email_shape"`
	Password *string `json:"password,omitempty" validate:"omitnil,password,password_max"`
}

// CreateTaskRequest is the body of POST /api/tasks.
// Any owner field in the incoming JSON is ignored: it has no field here.
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"notblank"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status,omitempty" validate:"omitempty,task_status"`
}

// UpdateTaskRequest is the body of PUT /api/tasks/{id}.
// Nil fields are left unchanged. A supplied title must be non-blank, a
// supplied status must be valid, and a supplied description (even "")
// overwrites the stored one.
type UpdateTaskRequest struct {
	Title       *string     `json:"title,omitempty" validate:"omitnil,notblank"`
	Description *string     `json:"description,omitempty"`
	Status      *TaskStatus `json:"status,omitempty" validate:"omitnil,task_status"`
}
